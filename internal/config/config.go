package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAppName        = "videolocale"
	defaultAppMode        = "debug"
	defaultAppPort        = 5000
	defaultRedisHost      = "dokku-redis-videolocale-db"
	defaultRedisPort      = 6379
	defaultRedisPoolSize  = 10
	defaultMaxIDAttempts  = 5
	defaultYouTubeTimeout = 10 * time.Second
	defaultMaxResults     = 25
	maxResultsLimit       = 50
	defaultKafkaTopic     = "playlist-created"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultLogOutput      = "stdout"
	defaultLogFilePath    = "logs/videolocale.log"
)

// Config 全局配置结构体
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Store   StoreConfig   `mapstructure:"store"`
	YouTube YouTubeConfig `mapstructure:"youtube"`
	Mapbox  MapboxConfig  `mapstructure:"mapbox"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	Log     LogConfig     `mapstructure:"log"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name  string `mapstructure:"name"`
	Mode  string `mapstructure:"mode"`
	Port  int    `mapstructure:"port"`
	Dokku bool   `mapstructure:"dokku"` // 部署在 dokku 上时强制 release 模式
}

// RedisConfig Redis配置
type RedisConfig struct {
	URL      string `mapstructure:"url"` // 设置后优先于 host/port
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StoreConfig 播放列表存储配置
type StoreConfig struct {
	Offline       bool `mapstructure:"offline"` // true 时使用进程内存储，仅用于测试/离线
	MaxIDAttempts int  `mapstructure:"max_id_attempts"`
}

// YouTubeConfig YouTube Data API 配置
type YouTubeConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	Endpoint          string        `mapstructure:"endpoint"`
	Timeout           time.Duration `mapstructure:"timeout"`
	DefaultMaxResults int64         `mapstructure:"default_max_results"`
}

// MapboxConfig 地图配置
type MapboxConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// KafkaConfig Kafka配置，Brokers 为空时不发送事件
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// Enabled 是否启用 Kafka 事件
func (k *KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// Load 加载配置：.env（可选）-> 配置文件（可选）-> 环境变量
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyLegacyFlags(&cfg)

	if cfg.App.Dokku {
		cfg.App.Mode = "release"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", defaultAppName)
	v.SetDefault("app.mode", defaultAppMode)
	v.SetDefault("app.port", defaultAppPort)
	v.SetDefault("app.dokku", false)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.host", defaultRedisHost)
	v.SetDefault("redis.port", defaultRedisPort)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", defaultRedisPoolSize)

	v.SetDefault("store.offline", false)
	v.SetDefault("store.max_id_attempts", defaultMaxIDAttempts)

	v.SetDefault("youtube.api_key", "")
	v.SetDefault("youtube.endpoint", "")
	v.SetDefault("youtube.timeout", defaultYouTubeTimeout)
	v.SetDefault("youtube.default_max_results", defaultMaxResults)

	v.SetDefault("mapbox.api_key", "")

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", defaultKafkaTopic)

	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.format", defaultLogFormat)
	v.SetDefault("log.output", defaultLogOutput)
	v.SetDefault("log.file_path", defaultLogFilePath)
}

// bindLegacyEnv 兼容部署环境中已有的环境变量名
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"mapbox.api_key":  {"MAPBOX_API_KEY"},
		"youtube.api_key": {"YOUTUBE_API_KEY"},
		"redis.url":       {"REDIS_URL"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// applyLegacyFlags 旧的开关变量只要非空即视为开启，不按布尔值解析
func applyLegacyFlags(cfg *Config) {
	if os.Getenv("TEST_VIDEOLOCALE_OFFLINE") != "" {
		cfg.Store.Offline = true
	}
	if os.Getenv("DOKKU") != "" {
		cfg.App.Dokku = true
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.App.Port < 1 || c.App.Port > 65535 {
		return fmt.Errorf("invalid app port: %d", c.App.Port)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Store.MaxIDAttempts < 1 {
		return fmt.Errorf("invalid store.max_id_attempts: %d (must be >= 1)", c.Store.MaxIDAttempts)
	}

	if c.YouTube.DefaultMaxResults < 1 || c.YouTube.DefaultMaxResults > maxResultsLimit {
		return fmt.Errorf("invalid youtube.default_max_results: %d (must be 1-%d)", c.YouTube.DefaultMaxResults, maxResultsLimit)
	}

	if c.YouTube.Timeout <= 0 {
		return fmt.Errorf("invalid youtube.timeout: %v", c.YouTube.Timeout)
	}

	return nil
}
