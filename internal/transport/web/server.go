package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Kenni13/VideoHosting/internal/config"
	"github.com/Kenni13/VideoHosting/internal/transport/web/v1/health"
	"github.com/Kenni13/VideoHosting/internal/transport/web/v1/media"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, deps Deps) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	mediaLog := log.New(logger.Writer(), logger.Prefix()+"[media] ", logger.Flags())

	healthHandler := &health.Handler{Log: healthLog, Storage: deps.Storage, Cache: deps.Cache}
	mediaHandler := &media.Handler{
		Log:     mediaLog,
		Storage: deps.Storage,
		Meta:    deps.Meta,
		Cache:   deps.Cache,
		MetaTTL: cfg.MetaTTL,
		ListTTL: cfg.ListTTL,
	}

	srv := &http.Server{
		Addr:    cfg.AppPort,
		Handler: newRouter(healthHandler, mediaHandler, logger),
		// без Read/Write-таймаутов: аплоады и стримы видео живут дольше любого
		// разумного фиксированного лимита
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
