package media

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Kenni13/VideoHosting/internal/transport/web/logx"
	"github.com/Kenni13/VideoHosting/internal/transport/web/mw"
	v1 "github.com/Kenni13/VideoHosting/internal/transport/web/v1"
)

// Serve godoc
// @Summary     Serve stored media
// @Description Отдаёт файл по каноническому имени. Понимает Range (206),
// @Description If-None-Match (304) и ?download=1 (Content-Disposition: attachment).
// @Tags        media
// @Produce     octet-stream
// @Param       id path string true "каноническое имя файла"
// @Param       download query int false "1 — скачивание вместо inline"
// @Success     200 {file} []byte
// @Success     206 {file} []byte
// @Failure     400 {object} v1.APIError
// @Failure     404 {object} v1.APIError
// @Router      /attachments/{id} [get]
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	const op = "media.serve"
	reqID := mw.RequestIDFromCtx(r.Context())

	id := r.PathValue("id")
	rangeHdr := r.Header.Get("Range")

	rc, contentLen, totalSize, contentRange, contentType, modTime, err := h.Storage.Get(r.Context(), id, rangeHdr)
	if err != nil {
		logx.Error(h.Log, reqID, op, "storage get failed", err, "id", id, "range", rangeHdr)
		v1.WriteDomainError(w, r, err)
		return
	}
	defer rc.Close()

	etag := weakETag(modTime, totalSize)
	w.Header().Set("ETag", etag)
	w.Header().Set("Last-Modified", v1.HTTPTime(modTime))
	w.Header().Set("Cache-Control", "private, max-age=60")
	w.Header().Set("Accept-Ranges", "bytes")

	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		logx.Info(h.Log, reqID, op, "not modified by etag", "id", id)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(contentLen, 10))

	if r.URL.Query().Get("download") == "1" {
		// для attachment показываем оригинальное имя, если сайдкар жив
		name := id
		if m, err := h.Meta.ByStem(r.Context(), stemOf(id)); err == nil && m.Original != "" {
			name = m.Original
		}
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}

	status := http.StatusOK
	if contentRange != "" {
		w.Header().Set("Content-Range", contentRange)
		status = http.StatusPartialContent
	}
	w.WriteHeader(status)

	if r.Method == http.MethodHead {
		logx.Info(h.Log, reqID, op, "head ok", "id", id, "status", status)
		return
	}

	n, err := io.Copy(w, rc)
	if err != nil {
		// клиент отвалился посреди стрима — фиксируем и выходим
		logx.Error(h.Log, reqID, op, "stream interrupted", err, "id", id, "sent", n)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "id", id, "status", status, "len", n)
}
