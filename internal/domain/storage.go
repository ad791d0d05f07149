package domain

import (
	"context"
	"io"
	"time"
)

// Хранилище медиа на локальном диске (контент-адресация по sha256)
type MediaStorage interface {
	// Ingest принимает поток одного файла и доводит его до терминального результата.
	// Ошибки per-file упакованы в UploadResult — батч не падает целиком.
	Ingest(ctx context.Context, r io.Reader, declaredName string) UploadResult
	// Get открывает поток для отдачи клиенту.
	// rangeHeader в формате "bytes=START-END" (опционально).
	// Возвращает поток, длину отдаваемого тела (полного или диапазона),
	// полный размер файла (для валидаторов — ETag не зависит от диапазона),
	// Content-Range (если диапазон распознан), Content-Type и mtime.
	Get(ctx context.Context, name, rangeHeader string) (rc io.ReadCloser, contentLen, totalSize int64, contentRange, contentType string, modTime time.Time, err error)
	// Удаление файла и его сайдкара
	Delete(ctx context.Context, name string) error
	// Список имён по бакетам
	List(ctx context.Context) (Listing, error)
	Ping(ctx context.Context) error
}

// Рекордер метаданных (json-сайдкары). Best-effort: сбой записи логируется,
// уже опубликованный файл не откатывается.
type MetadataRepo interface {
	Record(ctx context.Context, m Metadata) error
	// ByStem ищет запись по hex-хэшу (имя канонического файла без расширения)
	ByStem(ctx context.Context, stem string) (Metadata, error)
	Remove(ctx context.Context, stem string) error
}

// Простой k/v интерфейс. Реализация — Redis.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
	Ping(context.Context) error
	Close()
}

// Ключи кеша — единое место, чтобы не расползались по коду.
func CacheKeyFileMeta(stem string) string { return "filemeta:" + stem }
func CacheKeyListing() string             { return "listing" }
