package media

import (
	"encoding/json"
	"net/http"

	"github.com/Kenni13/VideoHosting/internal/domain"
	"github.com/Kenni13/VideoHosting/internal/transport/web/logx"
	"github.com/Kenni13/VideoHosting/internal/transport/web/mw"
	v1 "github.com/Kenni13/VideoHosting/internal/transport/web/v1"
)

// GetMeta godoc
// @Summary     Get media metadata
// @Description Json-запись по стему канонического имени (hex-хэш, расширение опционально)
// @Tags        media
// @Produce     json
// @Param       id path string true "стем или каноническое имя"
// @Success     200 {object} domain.Metadata
// @Failure     404 {object} v1.APIError
// @Router      /file/{id} [get]
func (h *Handler) GetMeta(w http.ResponseWriter, r *http.Request) {
	const op = "media.get_meta"
	reqID := mw.RequestIDFromCtx(r.Context())

	stem := stemOf(r.PathValue("id"))
	ckey := domain.CacheKeyFileMeta(stem)

	if b, err := h.Cache.Get(r.Context(), ckey); err != nil {
		logx.Error(h.Log, reqID, op, "cache get", err)
	} else if b != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
		return
	}

	m, err := h.Meta.ByStem(r.Context(), stem)
	if err != nil {
		logx.Error(h.Log, reqID, op, "metadata lookup", err, "stem", stem)
		v1.WriteDomainError(w, r, err)
		return
	}

	if buf, err := json.Marshal(m); err == nil {
		if err := h.Cache.Set(r.Context(), ckey, buf, h.MetaTTL); err != nil {
			logx.Error(h.Log, reqID, op, "cache set", err)
		}
	}

	logx.Info(h.Log, reqID, op, "ok", "stem", stem)
	v1.WriteJSON(w, r, http.StatusOK, m)
}
