package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды в v1/response.go)
var (
	ErrUnsupportedMedia = errors.New("unsupported_media")  // 400 (расширение вне whitelist)
	ErrNotFound         = errors.New("not_found")          // 404
	ErrMethodNotAllowed = errors.New("method_not_allowed") // 405
	ErrStorage          = errors.New("storage_failure")    // 500: rename/write
	ErrUnexpected       = errors.New("unexpected")         // 500
)

// Числовые коды для конверта ошибки
const (
	ErrCodeBadParams        = 1000
	ErrCodeUnsupportedMedia = 1002
	ErrCodeNotFound         = 1004
	ErrCodeMethodNotAllowed = 1005
	ErrCodeStorage          = 1500
	ErrCodeUnexpected       = 1999
)
