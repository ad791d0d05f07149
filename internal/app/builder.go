package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Kenni13/VideoHosting/internal/config"
	"github.com/Kenni13/VideoHosting/internal/domain"
	redisx "github.com/Kenni13/VideoHosting/internal/infra/cache/redis"
	"github.com/Kenni13/VideoHosting/internal/infra/metadata/fsjson"
	"github.com/Kenni13/VideoHosting/internal/infra/storage/disk"
	"github.com/Kenni13/VideoHosting/internal/transport/web"
)

type App struct {
	config  *config.Config
	server  *web.Server
	log     *log.Logger
	storage domain.MediaStorage
	cache   domain.Cache
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	diskLog := log.New(base.Writer(), base.Prefix()+"[disk] ", base.Flags())
	metaLog := log.New(base.Writer(), base.Prefix()+"[meta] ", base.Flags())
	redisLog := log.New(base.Writer(), base.Prefix()+"[redis] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init metadata repo")
	meta, err := fsjson.New(cfg.AssetsDir, metaLog)
	if err != nil {
		return nil, fmt.Errorf("failed init metadata repo: %w", err)
	}

	base.Println("init disk storage")
	storage, err := disk.New(disk.Config{
		Root:          cfg.AssetsDir,
		MaxConcurrent: cfg.MaxConcurrent,
		IngestChunk:   cfg.IngestChunkSize(),
		ServeChunk:    cfg.ServeChunkSize(),
	}, diskLog, meta)
	if err != nil {
		return nil, fmt.Errorf("failed init disk storage: %w", err)
	}
	base.Println("disk storage is initialized")

	base.Println("init Redis")
	rc := redisx.New(redisx.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, redisLog)
	if err := rc.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed init redis: %w", err)
	}
	base.Println("Redis is initialized")

	base.Println("init Server")
	server := web.New(serverLog, cfg, web.Deps{Storage: storage, Meta: meta, Cache: rc})
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config:  cfg,
		server:  server,
		log:     base,
		storage: storage,
		cache:   rc,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.cache.Close()

	return nil
}
