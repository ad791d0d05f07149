// Package disk — контент-адресуемое хранилище медиа на локальном диске.
// Дедупликация по sha256, публикация через атомарный create-exclusive,
// корректно при нескольких процессах на одном сторидже (без app-level локов).
package disk

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/semaphore"

	"github.com/Kenni13/VideoHosting/internal/domain"
)

const tempDir = "Temp"

type Config struct {
	Root          string
	MaxConcurrent int // разрешений у гейта инжеста
	IngestChunk   int // байт на итерацию хэширования
	ServeChunk    int // байт на итерацию отдачи
}

type Storage struct {
	root        string
	temp        string
	log         *log.Logger
	meta        domain.MetadataRepo
	gate        *semaphore.Weighted
	ingestChunk int
	serveChunk  int
}

// New создаёт layout бакетов под корнем и возвращает готовое хранилище.
func New(cfg Config, logger *log.Logger, meta domain.MetadataRepo) (*Storage, error) {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 3
	}
	if cfg.IngestChunk <= 0 {
		cfg.IngestChunk = 64 << 10
	}
	if cfg.ServeChunk <= 0 {
		cfg.ServeChunk = 1 << 20
	}

	s := &Storage{
		root:        cfg.Root,
		temp:        filepath.Join(cfg.Root, tempDir),
		log:         logger,
		meta:        meta,
		gate:        semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
		ingestChunk: cfg.IngestChunk,
		serveChunk:  cfg.ServeChunk,
	}

	dirs := []string{
		cfg.Root,
		filepath.Join(cfg.Root, string(domain.BucketVideos)),
		filepath.Join(cfg.Root, string(domain.BucketImages)),
		s.temp,
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", d, err)
		}
	}
	return s, nil
}

func (s *Storage) bucketPath(b domain.Bucket) string {
	return filepath.Join(s.root, string(b))
}

// locate определяет путь канонического файла по имени; имя урезается до base
// (никаких traversal через id из URL).
func (s *Storage) locate(name string) (path string, ext string, err error) {
	name = filepath.Base(name)
	ext = strings.ToLower(filepath.Ext(name))
	bucket, ok := domain.BucketForExt(ext)
	if !ok {
		return "", ext, fmt.Errorf("%w: unsupported file type %q", domain.ErrUnsupportedMedia, ext)
	}
	return filepath.Join(s.bucketPath(bucket), name), ext, nil
}

// Delete удаляет файл и его json-сайдкар.
func (s *Storage) Delete(ctx context.Context, name string) error {
	path, ext, err := s.locate(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, filepath.Base(name))
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	stem := strings.TrimSuffix(filepath.Base(name), ext)
	if err := s.meta.Remove(ctx, stem); err != nil {
		// сайдкара может не быть (duplicate-загрузки его не создают повторно)
		s.log.Printf("remove metadata %s: %v", stem, err)
	}
	return nil
}

// List возвращает имена файлов по бакетам.
func (s *Storage) List(ctx context.Context) (domain.Listing, error) {
	listing := domain.Listing{Videos: []string{}, Images: []string{}}

	read := func(b domain.Bucket) ([]string, error) {
		entries, err := os.ReadDir(s.bucketPath(b))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.Type().IsRegular() {
				names = append(names, e.Name())
			}
		}
		return names, nil
	}

	var err error
	if listing.Videos, err = read(domain.BucketVideos); err != nil {
		return domain.Listing{}, err
	}
	if listing.Images, err = read(domain.BucketImages); err != nil {
		return domain.Listing{}, err
	}
	return listing, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	for _, b := range []domain.Bucket{domain.BucketVideos, domain.BucketImages} {
		if _, err := os.Stat(s.bucketPath(b)); err != nil {
			return err
		}
	}
	_, err := os.Stat(s.temp)
	return err
}
