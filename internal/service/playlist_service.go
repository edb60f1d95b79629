package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"videolocale-go/internal/repository"
	"videolocale-go/pkg/logger"

	"go.uber.org/zap"
)

var ErrPlaylistIDExhausted = errors.New("no unused playlist id found")

const (
	defaultMaxIDAttempts = 5
	idSeparator          = ","

	// idTick id 去掉末两位十六进制后的时间粒度：256 * 100ns
	idTick = 256 * 100 * time.Nanosecond
)

// PlaylistCreatedEvent 播放列表创建事件
type PlaylistCreatedEvent struct {
	PlaylistID string    `json:"playlist_id"`
	VideoCount int       `json:"video_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventPublisher 播放列表事件发布，失败不影响主流程
type EventPublisher interface {
	PublishPlaylistCreated(ctx context.Context, event *PlaylistCreatedEvent) error
}

type PlaylistService struct {
	repo          repository.PlaylistRepository
	publisher     EventPublisher
	now           func() time.Time
	sleep         func(time.Duration)
	maxIDAttempts int
}

// PlaylistOption 可选配置
type PlaylistOption func(*PlaylistService)

// WithEventPublisher 设置事件发布器
func WithEventPublisher(p EventPublisher) PlaylistOption {
	return func(s *PlaylistService) { s.publisher = p }
}

// WithClock 替换时间来源（测试用）
func WithClock(now func() time.Time) PlaylistOption {
	return func(s *PlaylistService) { s.now = now }
}

// WithSleep 替换冲突重试前的等待函数（测试用）
func WithSleep(sleep func(time.Duration)) PlaylistOption {
	return func(s *PlaylistService) { s.sleep = sleep }
}

// WithMaxIDAttempts 设置生成 id 的最大尝试次数
func WithMaxIDAttempts(n int) PlaylistOption {
	return func(s *PlaylistService) {
		if n > 0 {
			s.maxIDAttempts = n
		}
	}
}

func NewPlaylistService(repo repository.PlaylistRepository, opts ...PlaylistOption) *PlaylistService {
	s := &PlaylistService{
		repo:          repo,
		now:           time.Now,
		sleep:         time.Sleep,
		maxIDAttempts: defaultMaxIDAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateID 由时间戳（100ns 精度）生成十六进制 id，去掉末两位以缩短 URL
// 不保证唯一，调用方需检查冲突
func GenerateID(t time.Time) string {
	hex := strconv.FormatInt(t.UnixNano()/100, 16)
	return hex[:len(hex)-2]
}

// NewID 生成一个当前未被占用的 id
// 冲突时等待一个 idTick，保证下一次尝试得到新的候选 id
// 检查与写入之间没有加锁，并发请求理论上可能拿到同一个 id
func (s *PlaylistService) NewID(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= s.maxIDAttempts; attempt++ {
		id := GenerateID(s.now())
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check playlist id: %w", err)
		}
		if !exists {
			return id, nil
		}
		logger.Debug("Playlist id collision", zap.String("id", id), zap.Int("attempt", attempt))

		if attempt < s.maxIDAttempts {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			s.sleep(idTick)
		}
	}
	return "", ErrPlaylistIDExhausted
}

// Put 保存视频 ID 列表（覆盖已有记录）
func (s *PlaylistService) Put(ctx context.Context, id string, videoIDs []string) error {
	if err := s.repo.Set(ctx, id, strings.Join(videoIDs, idSeparator)); err != nil {
		return fmt.Errorf("save playlist %s: %w", id, err)
	}
	return nil
}

// Get 读取视频 ID 列表，记录不存在时返回 ok=false
func (s *PlaylistService) Get(ctx context.Context, id string) ([]string, bool, error) {
	val, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("load playlist %s: %w", id, err)
	}
	if !ok {
		return nil, false, nil
	}
	return splitIDs(val), true, nil
}

// Create 分配 id 并保存播放列表
func (s *PlaylistService) Create(ctx context.Context, videoIDs []string) (string, error) {
	id, err := s.NewID(ctx)
	if err != nil {
		return "", err
	}
	if err := s.Put(ctx, id, videoIDs); err != nil {
		return "", err
	}

	logger.Info("Playlist created", zap.String("id", id), zap.Int("videos", len(videoIDs)))

	if s.publisher != nil {
		event := &PlaylistCreatedEvent{
			PlaylistID: id,
			VideoCount: len(videoIDs),
			CreatedAt:  s.now().UTC(),
		}
		if err := s.publisher.PublishPlaylistCreated(ctx, event); err != nil {
			logger.Warn("Publish playlist created event failed", zap.String("id", id), zap.Error(err))
		}
	}

	return id, nil
}

func splitIDs(val string) []string {
	parts := strings.Split(val, idSeparator)
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
