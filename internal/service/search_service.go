package service

import (
	"context"
	"fmt"

	"videolocale-go/internal/model"
	"videolocale-go/pkg/logger"

	"go.uber.org/zap"
)

// VideoGateway 外部视频搜索 API
type VideoGateway interface {
	Search(ctx context.Context, req *model.QueryRequest) ([]string, error)
	Videos(ctx context.Context, ids []string) ([]model.VideoInfo, error)
}

type SearchService struct {
	gateway VideoGateway
}

func NewSearchService(gateway VideoGateway) *SearchService {
	return &SearchService{gateway: gateway}
}

// SearchAll 按顺序逐个执行请求并合并结果，重复的视频 ID 保留
func (s *SearchService) SearchAll(ctx context.Context, requests []*model.QueryRequest) ([]string, error) {
	var videoIDs []string
	for i, req := range requests {
		ids, err := s.gateway.Search(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("search request %d: %w", i, err)
		}
		logger.Debug("Search request finished",
			zap.Int("index", i),
			zap.String("query", req.Query),
			zap.Bool("has_location", req.HasLocation()),
			zap.Int("results", len(ids)),
		)
		videoIDs = append(videoIDs, ids...)
	}
	return videoIDs, nil
}

// Metadata 查询视频展示信息，空列表直接返回
func (s *SearchService) Metadata(ctx context.Context, ids []string) ([]model.VideoInfo, error) {
	if len(ids) == 0 {
		return []model.VideoInfo{}, nil
	}
	videos, err := s.gateway.Videos(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch video metadata: %w", err)
	}
	return videos, nil
}
