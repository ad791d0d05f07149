package media

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/Kenni13/VideoHosting/internal/domain"
)

// Узкие порты хендлера — реализация в infra (disk, fsjson, redis)
type Storage interface {
	Ingest(ctx context.Context, r io.Reader, declaredName string) domain.UploadResult
	Get(ctx context.Context, name, rangeHeader string) (rc io.ReadCloser, contentLen, totalSize int64, contentRange, contentType string, modTime time.Time, err error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) (domain.Listing, error)
}

type MetaRepo interface {
	ByStem(ctx context.Context, stem string) (domain.Metadata, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
}

type Handler struct {
	Log     *log.Logger
	Storage Storage
	Meta    MetaRepo
	Cache   Cache

	MetaTTL int // секунд
	ListTTL int // секунд
}
