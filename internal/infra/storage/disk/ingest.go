package disk

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kenni13/VideoHosting/internal/domain"
)

// Ingest принимает поток одного файла: стримит во временный файл с инкрементальным
// sha256, затем либо публикует под каноническим именем, либо фиксирует дубликат.
// Работает под глобальным гейтом; разрешение отпускается до записи метаданных.
func (s *Storage) Ingest(ctx context.Context, r io.Reader, declaredName string) domain.UploadResult {
	if declaredName == "" {
		return domain.Rejected(declaredName, "missing filename")
	}
	base := filepath.Base(declaredName)
	ext := strings.ToLower(filepath.Ext(base))
	bucket, ok := domain.BucketForExt(ext)
	if !ok {
		// до этой точки ни байта не записано
		return domain.Rejected(base, fmt.Sprintf("unsupported file type %q", ext))
	}

	if err := s.gate.Acquire(ctx, 1); err != nil {
		return domain.Rejected(base, "upload cancelled")
	}
	res, meta, accepted := s.ingest(ctx, r, base, ext, bucket)
	s.gate.Release(1)

	// метаданные — best-effort, уже вне гейта
	if accepted {
		if err := s.meta.Record(ctx, meta); err != nil {
			s.log.Printf("record metadata %s: %v", meta.Name, err)
		}
	}
	return res
}

func (s *Storage) ingest(ctx context.Context, r io.Reader, base, ext string, bucket domain.Bucket) (domain.UploadResult, domain.Metadata, bool) {
	none := domain.Metadata{}

	// имя не зависит от клиентского: коллизии параллельных загрузок исключены
	tmp := filepath.Join(s.temp, uuid.NewString()+".part")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		s.log.Printf("create temp %s: %v", tmp, err)
		return domain.Rejected(base, "failed to save file"), none, false
	}

	h := sha256.New()
	written, copyErr := s.copyStream(ctx, io.MultiWriter(f, h), r)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		s.removeTemp(tmp)
		if copyErr == nil {
			copyErr = closeErr
		}
		s.log.Printf("stream %s: %v", base, copyErr)
		if errors.Is(copyErr, context.Canceled) || errors.Is(copyErr, context.DeadlineExceeded) {
			return domain.Rejected(base, "upload cancelled"), none, false
		}
		return domain.Rejected(base, "failed to save file"), none, false
	}

	sum := hex.EncodeToString(h.Sum(nil))
	canonical := sum + ext
	target := filepath.Join(s.bucketPath(bucket), canonical)

	if _, err := os.Stat(target); err == nil {
		s.removeTemp(tmp)
		return domain.Duplicate(canonical, "content already stored as "+canonical), none, false
	}

	// Публикация: хардлинк (в отличие от rename) гарантированно падает с EEXIST,
	// если назначение уже существует — проигравший гонку никогда не перетирает победителя.
	if err := os.Link(tmp, target); err != nil {
		s.removeTemp(tmp)
		// проигравший гонку за идентичный контент — это дубликат, а не сбой
		if errors.Is(err, fs.ErrExist) {
			return domain.Duplicate(canonical, "content already stored as "+canonical), none, false
		}
		s.log.Printf("publish %s: %v", canonical, err)
		return domain.Rejected(base, "failed to save file"), none, false
	}
	// файл уже опубликован; сбой удаления temp не влияет на результат
	s.removeTemp(tmp)

	meta := domain.Metadata{
		Name:        canonical,
		Original:    base,
		SHA256:      sum,
		UploadedAt:  time.Now().UTC(),
		SizeBytes:   written,
		ContentType: domain.MIMEForExt(ext),
	}
	return domain.Accepted(canonical), meta, true
}

// copyStream копирует ограниченными чанками, проверяя отмену перед каждым чтением.
func (s *Storage) copyStream(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, s.ingestChunk)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return written, werr
			}
			written += int64(n)
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}

// В бакет попадает только полностью записанный контент; недописанные temp
// зачищаются здесь, сбой зачистки — только в лог.
func (s *Storage) removeTemp(tmp string) {
	if err := os.Remove(tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Printf("remove temp %s: %v", tmp, err)
	}
}
