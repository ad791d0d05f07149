package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Kenni13/VideoHosting/internal/app"
)

// @title       VideoHosting API
// @version     1.0
// @description Контент-адресуемое хранилище медиа: загрузка с дедупликацией и byte-range отдача.
// @BasePath    /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build: %v", err)
	}
	if err := a.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
