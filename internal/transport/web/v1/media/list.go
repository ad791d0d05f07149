package media

import (
	"encoding/json"
	"net/http"

	"github.com/Kenni13/VideoHosting/internal/domain"
	"github.com/Kenni13/VideoHosting/internal/transport/web/logx"
	"github.com/Kenni13/VideoHosting/internal/transport/web/mw"
	v1 "github.com/Kenni13/VideoHosting/internal/transport/web/v1"
)

// List godoc
// @Summary     List stored media
// @Description Имена файлов по бакетам (videos/images)
// @Tags        media
// @Produce     json
// @Success     200 {object} domain.Listing
// @Failure     500 {object} v1.APIError
// @Router      /list [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "media.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	ckey := domain.CacheKeyListing()
	if b, err := h.Cache.Get(r.Context(), ckey); err != nil {
		logx.Error(h.Log, reqID, op, "cache get", err)
	} else if b != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
		return
	}

	listing, err := h.Storage.List(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "storage list", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	if buf, err := json.Marshal(listing); err == nil {
		if err := h.Cache.Set(r.Context(), ckey, buf, h.ListTTL); err != nil {
			logx.Error(h.Log, reqID, op, "cache set", err)
		}
	}

	logx.Info(h.Log, reqID, op, "ok", "videos", len(listing.Videos), "images", len(listing.Images))
	v1.WriteJSON(w, r, http.StatusOK, listing)
}
