package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppPort   string `mapstructure:"APP_PORT"`
	AssetsDir string `mapstructure:"ASSETS_DIR"`

	// --- загрузка ---
	MaxConcurrent int `mapstructure:"UPLOAD_MAX_CONCURRENT"` // глобальный гейт инжеста
	IngestChunkKB int `mapstructure:"INGEST_CHUNK_KB"`       // гранулярность хэширования
	ServeChunkKB  int `mapstructure:"SERVE_CHUNK_KB"`        // гранулярность отдачи

	// --- Redis ---
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// TTL кеша, секунд
	MetaTTL int `mapstructure:"CACHE_META_TTL"`
	ListTTL int `mapstructure:"CACHE_LIST_TTL"`
}

// String реализует интерфейс Stringer
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  AppPort: %s\n", c.AppPort))
	sb.WriteString(fmt.Sprintf("  AssetsDir: %s\n", c.AssetsDir))
	sb.WriteString(fmt.Sprintf("  MaxConcurrent: %d\n", c.MaxConcurrent))
	sb.WriteString(fmt.Sprintf("  IngestChunkKB: %d\n", c.IngestChunkKB))
	sb.WriteString(fmt.Sprintf("  ServeChunkKB: %d\n", c.ServeChunkKB))
	sb.WriteString(fmt.Sprintf("  RedisAddr: %s\n", c.RedisAddr))
	sb.WriteString(fmt.Sprintf("  RedisDB: %d\n", c.RedisDB))

	// пароль маскируем
	if c.RedisPassword != "" {
		sb.WriteString("  RedisPassword: ********\n")
	} else {
		sb.WriteString("  RedisPassword: (empty)\n")
	}

	sb.WriteString(fmt.Sprintf("  MetaTTL: %d\n", c.MetaTTL))
	sb.WriteString(fmt.Sprintf("  ListTTL: %d\n", c.ListTTL))

	return sb.String()
}

// LoadFromEnv загружает конфигурацию из переменных окружения
func LoadFromEnv() (*Config, error) {
	// Загружаем .env только для локальной разработки
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	// Регистрируем интересующие ключи окружения
	keys := []string{
		"APP_ENV", "APP_PORT", "ASSETS_DIR",
		"UPLOAD_MAX_CONCURRENT", "INGEST_CHUNK_KB", "SERVE_CHUNK_KB",
		"REDIS_ADDR", "REDIS_DB", "REDIS_PASSWORD",
		"CACHE_META_TTL", "CACHE_LIST_TTL",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.AppPort == "" {
		c.AppPort = ":8080"
	}
	if c.AssetsDir == "" {
		c.AssetsDir = "Assets"
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 3
	}
	if c.IngestChunkKB <= 0 {
		c.IngestChunkKB = 64 // 64 KiB на хэширование
	}
	if c.ServeChunkKB <= 0 {
		c.ServeChunkKB = 1024 // 1 MiB на отдачу
	}
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	if c.MetaTTL <= 0 {
		c.MetaTTL = 300
	}
	if c.ListTTL <= 0 {
		c.ListTTL = 60
	}
}

func (c *Config) IngestChunkSize() int { return c.IngestChunkKB << 10 }
func (c *Config) ServeChunkSize() int  { return c.ServeChunkKB << 10 }
