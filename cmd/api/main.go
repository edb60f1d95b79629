package main

import (
	"context"
	"fmt"
	"time"

	"videolocale-go/internal/api/handler"
	"videolocale-go/internal/api/middleware"
	"videolocale-go/internal/api/response"
	"videolocale-go/internal/api/router"
	"videolocale-go/internal/config"
	infraKafka "videolocale-go/internal/infra/kafka"
	infraRedis "videolocale-go/internal/infra/redis"
	"videolocale-go/internal/infra/youtube"
	"videolocale-go/internal/repository"
	"videolocale-go/internal/service"
	"videolocale-go/pkg/logger"
	"videolocale-go/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 播放列表存储：离线模式使用进程内存储，否则使用 Redis
	var playlistRepo repository.PlaylistRepository
	if cfg.Store.Offline {
		logger.Warn("Offline mode enabled, playlists are kept in process memory only")
		playlistRepo = repository.NewMemoryPlaylistRepository()
	} else {
		if err := infraRedis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to init redis", zap.Error(err))
		}
		defer infraRedis.Close()
		playlistRepo = repository.NewRedisPlaylistRepository(infraRedis.Get())
	}

	ytClient, err := youtube.New(context.Background(), &cfg.YouTube)
	if err != nil {
		logger.Fatal("Failed to init youtube client", zap.Error(err))
	}
	if cfg.YouTube.APIKey == "" {
		logger.Warn("YouTube API key is empty, searches will fail")
	}
	if cfg.Mapbox.APIKey == "" {
		logger.Warn("Mapbox API key is empty, the map will not load")
	}

	playlistOpts := []service.PlaylistOption{service.WithMaxIDAttempts(cfg.Store.MaxIDAttempts)}
	if cfg.Kafka.Enabled() {
		producer := infraKafka.NewProducer(&cfg.Kafka)
		defer producer.Close()
		playlistOpts = append(playlistOpts, service.WithEventPublisher(producer))
	}

	searchService := service.NewSearchService(ytClient)
	playlistService := service.NewPlaylistService(playlistRepo, playlistOpts...)
	pageHandler := handler.NewPageHandler(searchService, playlistService, cfg.Mapbox.APIKey, cfg.YouTube.DefaultMaxResults)

	gin.SetMode(cfg.App.Mode)

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	r.GET("/healthz", func(c *gin.Context) {
		response.Health(c, gin.H{
			"status":    "ok",
			"service":   cfg.App.Name,
			"mode":      cfg.App.Mode,
			"offline":   cfg.Store.Offline,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
	router.Setup(r, pageHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
		zap.Bool("offline", cfg.Store.Offline),
		zap.Bool("kafka", cfg.Kafka.Enabled()),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
