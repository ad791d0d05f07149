package domain

import "time"

// Статус одной попытки загрузки (тройной исход, не bool)
type UploadStatus string

const (
	StatusAccepted  UploadStatus = "accepted"
	StatusDuplicate UploadStatus = "duplicate"
	StatusRejected  UploadStatus = "rejected"
)

// Итог обработки одного файла из батча. Создаётся один раз, не мутируется.
type UploadResult struct {
	// Имя для клиента: исходное при отказе, каноническое (hex(sha256)+ext) при успехе
	Filename string       `json:"filename"`
	Status   UploadStatus `json:"status"`
	// Причина — только когда Status != accepted
	Reason string `json:"reason,omitempty"`
}

func Accepted(canonical string) UploadResult {
	return UploadResult{Filename: canonical, Status: StatusAccepted}
}

func Duplicate(canonical, reason string) UploadResult {
	return UploadResult{Filename: canonical, Status: StatusDuplicate, Reason: reason}
}

func Rejected(original, reason string) UploadResult {
	if original == "" {
		original = "(none)"
	}
	return UploadResult{Filename: original, Status: StatusRejected, Reason: reason}
}

// Сайдкар-метаданные опубликованного файла.
// Существуют тогда и только тогда, когда файл был принят (не duplicate/rejected).
type Metadata struct {
	// Каноническое имя файла на диске
	Name string `json:"name"`
	// Имя, присланное клиентом
	Original string `json:"original"`
	// Контент-хэш явно, а не только в имени файла
	SHA256      string    `json:"sha256"`
	UploadedAt  time.Time `json:"uploaded_at"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
}

// Список содержимого бакетов (только имена)
type Listing struct {
	Videos []string `json:"videos"`
	Images []string `json:"images"`
}
