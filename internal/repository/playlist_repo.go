package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// PlaylistRepository 播放列表记录的键值存储：id -> 逗号拼接的视频 ID
type PlaylistRepository interface {
	Get(ctx context.Context, id string) (string, bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	Set(ctx context.Context, id, value string) error
}

// RedisPlaylistRepository 基于 Redis 的实现，不设置过期时间
type RedisPlaylistRepository struct {
	client *redis.Client
}

func NewRedisPlaylistRepository(client *redis.Client) *RedisPlaylistRepository {
	return &RedisPlaylistRepository{client: client}
}

// Get 读取记录，key 不存在时返回 ok=false
func (r *RedisPlaylistRepository) Get(ctx context.Context, id string) (string, bool, error) {
	val, err := r.client.Get(ctx, id).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Exists 检查 key 是否已被占用
func (r *RedisPlaylistRepository) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Set 写入记录（覆盖）
func (r *RedisPlaylistRepository) Set(ctx context.Context, id, value string) error {
	return r.client.Set(ctx, id, value, 0).Err()
}

// MemoryPlaylistRepository 进程内实现，只用于离线/测试模式
// 数据不跨进程共享，重启即丢失
type MemoryPlaylistRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryPlaylistRepository() *MemoryPlaylistRepository {
	return &MemoryPlaylistRepository{data: make(map[string]string)}
}

func (r *MemoryPlaylistRepository) Get(_ context.Context, id string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	val, ok := r.data[id]
	return val, ok, nil
}

func (r *MemoryPlaylistRepository) Exists(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[id]
	return ok, nil
}

func (r *MemoryPlaylistRepository) Set(_ context.Context, id, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[id] = value
	return nil
}

// Len 当前记录数
func (r *MemoryPlaylistRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
