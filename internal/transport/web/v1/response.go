package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Kenni13/VideoHosting/internal/domain"
)

// Тело ошибки: {"error":{"code":...,"text":"..."}}
type APIError struct {
	Code int    `json:"code"`
	Text string `json:"text"`
}

type errEnvelope struct {
	Error APIError `json:"error"`
}

// WriteJSON пишет произвольный payload; для HEAD — без тела
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status, code int, text string) {
	WriteJSON(w, r, status, errEnvelope{Error: APIError{Code: code, Text: text}})
}

// MapDomainError решает HTTP-статус + error.code/text
func MapDomainError(err error) (int, int, string) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return http.StatusBadRequest, domain.ErrCodeUnsupportedMedia, "unsupported media type"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, domain.ErrCodeNotFound, "not found"
	case errors.Is(err, domain.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, domain.ErrCodeMethodNotAllowed, "method not allowed"
	case errors.Is(err, domain.ErrStorage):
		return http.StatusInternalServerError, domain.ErrCodeStorage, "storage failure"
	default:
		// Таймауты/отмены — как 500
		return http.StatusInternalServerError, domain.ErrCodeUnexpected, "unexpected"
	}
}

func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, text := MapDomainError(err)
	WriteError(w, r, status, code, text)
}

// Стандартный формат времени заголовков
func HTTPTime(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
