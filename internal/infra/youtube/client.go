package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"videolocale-go/internal/config"
	"videolocale-go/internal/model"
	"videolocale-go/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// videos.list 单次最多 50 个 id
const videosBatchSize = 50

var videoParts = []string{"snippet", "contentDetails", "statistics", "recordingDetails"}

// Client YouTube Data API v3 封装，只做 search.list 与 videos.list
type Client struct {
	svc     *yt.Service
	timeout time.Duration
}

// New 创建客户端；Endpoint 非空时覆盖默认地址（测试用）
func New(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	logger.Info("YouTube client initialized", zap.Duration("timeout", timeout))
	return &Client{svc: svc, timeout: timeout}, nil
}

// Search 执行一次 search.list，返回视频 ID 列表
func (c *Client) Search(ctx context.Context, req *model.QueryRequest) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	call := c.svc.Search.List([]string{"id"}).Type("video")
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}
	if req.Query != "" {
		call = call.Q(req.Query)
	}
	if req.Location != nil {
		call = call.Location(req.Location.String())
		if req.LocationRadius != "" {
			call = call.LocationRadius(req.LocationRadius)
		}
	}
	if req.EventType != "" {
		call = call.EventType(req.EventType)
	}
	if req.Order != "" {
		call = call.Order(req.Order)
	}
	if req.SafeSearch != "" {
		call = call.SafeSearch(req.SafeSearch)
	}
	if req.Caption != "" {
		call = call.VideoCaption(req.Caption)
	}
	if req.CategoryID != "" {
		call = call.VideoCategoryId(req.CategoryID)
	}
	if req.Definition != "" {
		call = call.VideoDefinition(req.Definition)
	}
	if req.Dimension != "" {
		call = call.VideoDimension(req.Dimension)
	}
	if req.Duration != "" {
		call = call.VideoDuration(req.Duration)
	}
	if req.PublishedAfter != "" {
		call = call.PublishedAfter(req.PublishedAfter)
	}
	if req.PublishedBefore != "" {
		call = call.PublishedBefore(req.PublishedBefore)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	return ids, nil
}

// Videos 按 id 查询展示信息，结果顺序与入参一致，查不到的 id 被忽略
func (c *Client) Videos(ctx context.Context, ids []string) ([]model.VideoInfo, error) {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			cleaned = append(cleaned, id)
		}
	}
	if len(cleaned) == 0 {
		return []model.VideoInfo{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	found := make(map[string]model.VideoInfo, len(cleaned))
	for start := 0; start < len(cleaned); start += videosBatchSize {
		end := min(start+videosBatchSize, len(cleaned))

		resp, err := c.svc.Videos.List(videoParts).Id(cleaned[start:end]...).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("youtube videos: %w", err)
		}
		for _, v := range resp.Items {
			found[v.Id] = toVideoInfo(v)
		}
	}

	videos := make([]model.VideoInfo, 0, len(cleaned))
	for _, id := range cleaned {
		if v, ok := found[id]; ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func toVideoInfo(v *yt.Video) model.VideoInfo {
	info := model.VideoInfo{ID: v.Id}
	if s := v.Snippet; s != nil {
		info.Title = s.Title
		info.ChannelTitle = s.ChannelTitle
		info.Description = s.Description
		info.PublishedAt = s.PublishedAt
		if s.Thumbnails != nil {
			switch {
			case s.Thumbnails.Medium != nil:
				info.ThumbnailURL = s.Thumbnails.Medium.Url
			case s.Thumbnails.Default != nil:
				info.ThumbnailURL = s.Thumbnails.Default.Url
			}
		}
	}
	if v.ContentDetails != nil {
		info.Duration = v.ContentDetails.Duration
	}
	if v.Statistics != nil {
		info.ViewCount = v.Statistics.ViewCount
	}
	if rd := v.RecordingDetails; rd != nil && rd.Location != nil {
		lat, lng := rd.Location.Latitude, rd.Location.Longitude
		info.Latitude = &lat
		info.Longitude = &lng
	}
	return info
}
