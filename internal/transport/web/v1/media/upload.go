package media

import (
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/Kenni13/VideoHosting/internal/domain"
	"github.com/Kenni13/VideoHosting/internal/transport/web/logx"
	"github.com/Kenni13/VideoHosting/internal/transport/web/mw"
	v1 "github.com/Kenni13/VideoHosting/internal/transport/web/v1"
)

// Upload godoc
// @Summary     Upload media files
// @Description Принимает несколько файлов в multipart/form-data (поле files) и сохраняет
// @Description под контент-адресуемыми именами. Результаты в порядке входного списка.
// @Tags        media
// @Accept      multipart/form-data
// @Produce     json
// @Param       files formData file true "Файлы для загрузки"
// @Success     200 {object} map[string][]domain.UploadResult
// @Failure     400 {object} v1.APIError
// @Router      /upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "media.upload"
	reqID := mw.RequestIDFromCtx(r.Context())

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		logx.Error(h.Log, reqID, op, "parse form", err)
		v1.WriteError(w, r, http.StatusBadRequest, domain.ErrCodeBadParams, "invalid multipart")
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		v1.WriteError(w, r, http.StatusBadRequest, domain.ErrCodeBadParams, "missing files")
		return
	}

	// Фан-аут по файлам; глобальный гейт — внутри Ingest.
	// Результаты кладём по индексу: порядок ответа = порядок входного списка,
	// хотя запись на диск завершается в произвольном порядке.
	results := make([]domain.UploadResult, len(files))
	var wg sync.WaitGroup
	for i, fh := range files {
		wg.Add(1)
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			part, err := fh.Open()
			if err != nil {
				logx.Error(h.Log, reqID, op, "open part", err, "filename", fh.Filename)
				results[i] = domain.Rejected(fh.Filename, "unreadable multipart file")
				return
			}
			defer part.Close()
			results[i] = h.Storage.Ingest(r.Context(), part, fh.Filename)
		}(i, fh)
	}
	wg.Wait()

	accepted := 0
	for _, res := range results {
		if res.Status == domain.StatusAccepted {
			accepted++
		}
	}
	if accepted > 0 {
		// листинг устарел
		if err := h.Cache.Del(r.Context(), domain.CacheKeyListing()); err != nil {
			logx.Error(h.Log, reqID, op, "cache del listing", err)
		}
	}

	logx.Info(h.Log, reqID, op, "done", "files", len(files), "accepted", accepted)
	v1.WriteJSON(w, r, http.StatusOK, map[string]any{"results": results})
}
