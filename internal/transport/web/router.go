package web

import (
	"log"
	"net/http"

	_ "github.com/Kenni13/VideoHosting/internal/docs"
	"github.com/Kenni13/VideoHosting/internal/transport/web/mw"
	"github.com/Kenni13/VideoHosting/internal/transport/web/v1/health"
	"github.com/Kenni13/VideoHosting/internal/transport/web/v1/media"
	httpSwagger "github.com/swaggo/http-swagger"
)

func newRouter(hh *health.Handler, mh *media.Handler, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /v1/healthz", hh.Liveness)
	mux.HandleFunc("GET /v1/readyz", hh.Readiness)

	// media
	mux.HandleFunc("POST /upload", limitBody(64<<20, mh.Upload)) // 64MB лимит
	mux.HandleFunc("DELETE /delete", mh.Delete)
	mux.HandleFunc("GET /attachments/{id}", mh.Serve)
	mux.HandleFunc("HEAD /attachments/{id}", mh.Serve)
	mux.HandleFunc("GET /list", mh.List)
	mux.HandleFunc("GET /file/{id}", mh.GetMeta)

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
