package handler

import (
	"net/http"

	"videolocale-go/internal/api/dto"
	"videolocale-go/internal/api/response"
	"videolocale-go/internal/model"
	"videolocale-go/internal/service"
	"videolocale-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PageHandler struct {
	searchService     *service.SearchService
	playlistService   *service.PlaylistService
	mapboxAPIKey      string
	defaultMaxResults int64
}

func NewPageHandler(
	searchService *service.SearchService,
	playlistService *service.PlaylistService,
	mapboxAPIKey string,
	defaultMaxResults int64,
) *PageHandler {
	return &PageHandler{
		searchService:     searchService,
		playlistService:   playlistService,
		mapboxAPIKey:      mapboxAPIKey,
		defaultMaxResults: defaultMaxResults,
	}
}

// Index 首页：地图 + 筛选项
func (h *PageHandler) Index(c *gin.Context) {
	response.Page(c, response.TemplateMain, &dto.MainPageData{
		Filters:      model.DefaultFilters(),
		MapboxAPIKey: h.mapboxAPIKey,
	})
}

// Generate 根据表单执行搜索，保存结果后重定向到播放列表页
func (h *PageHandler) Generate(c *gin.Context) {
	var regions []model.Region
	if coords, ok := c.GetPostForm(dto.FieldCoordinates); ok {
		regions = service.ParseRegions(coords)
	}

	requests := service.BuildQueryRequests(c.GetPostForm, regions, h.defaultMaxResults)

	ctx := c.Request.Context()
	videoIDs, err := h.searchService.SearchAll(ctx, requests)
	if err != nil {
		logger.Error("Search videos failed", zap.Int("requests", len(requests)), zap.Error(err))
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	if len(videoIDs) == 0 {
		response.Page(c, response.TemplateNoResults, nil)
		return
	}

	id, err := h.playlistService.Create(ctx, videoIDs)
	if err != nil {
		logger.Error("Create playlist failed", zap.Error(err))
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/playlist/"+id)
}

// Playlist 播放列表页
func (h *PageHandler) Playlist(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	videoIDs, ok, err := h.playlistService.Get(ctx, id)
	if err != nil {
		logger.Error("Load playlist failed", zap.String("id", id), zap.Error(err))
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}

	videos, err := h.searchService.Metadata(ctx, videoIDs)
	if err != nil {
		logger.Error("Fetch playlist metadata failed", zap.String("id", id), zap.Error(err))
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.Page(c, response.TemplatePlaylist, &dto.PlaylistPageData{
		PlaylistID:   id,
		Videos:       videos,
		MapboxAPIKey: h.mapboxAPIKey,
	})
}

// NotFound 未匹配路由
func (h *PageHandler) NotFound(c *gin.Context) {
	response.NotFound(c)
}
