package media

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Kenni13/VideoHosting/internal/domain"
	"github.com/Kenni13/VideoHosting/internal/transport/web/logx"
	"github.com/Kenni13/VideoHosting/internal/transport/web/mw"
	v1 "github.com/Kenni13/VideoHosting/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete stored media
// @Description Батч-удаление по списку канонических имён. Всегда 200:
// @Description per-file ошибки в errors, сбой одного файла не роняет остальные.
// @Tags        media
// @Accept      json
// @Produce     json
// @Param       body body map[string][]string true "{\"files\":[\"<hex>.png\", ...]}"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} v1.APIError
// @Router      /delete [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "media.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	var in struct {
		Files []string `json:"files"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logx.Error(h.Log, reqID, op, "decode body", err)
		v1.WriteError(w, r, http.StatusBadRequest, domain.ErrCodeBadParams, "invalid json body")
		return
	}
	if len(in.Files) == 0 {
		v1.WriteError(w, r, http.StatusBadRequest, domain.ErrCodeBadParams, "missing files")
		return
	}

	deleted := make([]string, 0, len(in.Files))
	failures := make(map[string]string)
	invalidate := []string{domain.CacheKeyListing()}

	for _, name := range in.Files {
		if err := h.Storage.Delete(r.Context(), name); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				failures[name] = "file not found"
			case errors.Is(err, domain.ErrUnsupportedMedia):
				failures[name] = "unsupported file type"
			default:
				logx.Error(h.Log, reqID, op, "delete failed", err, "name", name)
				failures[name] = "failed to delete"
			}
			continue
		}
		deleted = append(deleted, name)
		invalidate = append(invalidate, domain.CacheKeyFileMeta(stemOf(name)))
	}

	if err := h.Cache.Del(r.Context(), invalidate...); err != nil {
		logx.Error(h.Log, reqID, op, "cache del", err)
	}

	logx.Info(h.Log, reqID, op, "done", "deleted", len(deleted), "errors", len(failures))
	v1.WriteJSON(w, r, http.StatusOK, map[string]any{
		"deleted": deleted,
		"errors":  failures,
	})
}
