// Package fsjson — json-сайдкары метаданных рядом с контентом.
// Запись атомарная (temp + rename), ключ — hex-хэш канонического файла.
package fsjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Kenni13/VideoHosting/internal/domain"
)

const jsonDir = "Json"

type Repo struct {
	dir string
	log *log.Logger
}

func New(root string, logger *log.Logger) (*Repo, error) {
	dir := filepath.Join(root, jsonDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Repo{dir: dir, log: logger}, nil
}

func (r *Repo) path(stem string) string {
	// stem приходит из URL/имён файлов — срезаем всё лишнее
	return filepath.Join(r.dir, filepath.Base(stem)+".json")
}

// Record пишет запись одним атомарным файлом, имя парное каноническому.
func (r *Repo) Record(ctx context.Context, m domain.Metadata) error {
	buf, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal metadata %s: %w", m.Name, err)
	}

	stem := strings.TrimSuffix(m.Name, filepath.Ext(m.Name))
	tmp := filepath.Join(r.dir, uuid.NewString()+".part")
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return fmt.Errorf("write metadata temp: %w", err)
	}
	// сайдкар не несёт семантики дедупа — перезапись rename-ом допустима
	if err := os.Rename(tmp, r.path(stem)); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			r.log.Printf("remove metadata temp %s: %v", tmp, rmErr)
		}
		return fmt.Errorf("publish metadata %s: %w", stem, err)
	}
	return nil
}

func (r *Repo) ByStem(ctx context.Context, stem string) (domain.Metadata, error) {
	buf, err := os.ReadFile(r.path(stem))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Metadata{}, fmt.Errorf("%w: metadata %s", domain.ErrNotFound, stem)
		}
		return domain.Metadata{}, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	var m domain.Metadata
	if err := json.Unmarshal(buf, &m); err != nil {
		return domain.Metadata{}, fmt.Errorf("%w: corrupt metadata %s: %v", domain.ErrStorage, stem, err)
	}
	return m, nil
}

func (r *Repo) Remove(ctx context.Context, stem string) error {
	if err := os.Remove(r.path(stem)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: metadata %s", domain.ErrNotFound, stem)
		}
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}
