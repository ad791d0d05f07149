package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Kenni13/VideoHosting/internal/domain"
)

// Get открывает поток для отдачи файла клиенту.
// totalSize — полный размер файла независимо от Range (для валидаторов).
// Поток одноразовый: повторная отдача — новый вызов Get.
func (s *Storage) Get(ctx context.Context, name, rangeHeader string) (rc io.ReadCloser, contentLen, totalSize int64, contentRange, contentType string, modTime time.Time, err error) {
	path, ext, err := s.locate(name)
	if err != nil {
		return nil, 0, 0, "", "", time.Time{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, 0, "", "", time.Time{}, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	totalSize = info.Size()
	contentType = domain.MIMEForExt(ext)
	modTime = info.ModTime()

	// нераспознанный или отсутствующий Range — отдаём файл целиком
	span, useRange := ParseRange(rangeHeader, totalSize)
	if !useRange {
		span = Span{Start: 0, End: totalSize - 1}
	} else {
		contentRange = fmt.Sprintf("bytes %d-%d/%d", span.Start, span.End, totalSize)
	}
	contentLen = span.Len()

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, "", "", time.Time{}, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if _, err := f.Seek(span.Start, io.SeekStart); err != nil {
		f.Close()
		return nil, 0, 0, "", "", time.Time{}, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	rc = &chunkReader{ctx: ctx, f: f, remaining: contentLen, chunk: s.serveChunk}
	return rc, contentLen, totalSize, contentRange, contentType, modTime, nil
}

// chunkReader читает из файла не больше chunk байт за один Read и ровно
// remaining байт суммарно. Короткий файл завершает поток раньше без ошибки.
type chunkReader struct {
	ctx       context.Context
	f         *os.File
	remaining int64
	chunk     int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, io.EOF
	}
	// отвалившийся клиент останавливает чтение сразу, а не в конце диапазона
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}

	limit := int64(r.chunk)
	if limit > r.remaining {
		limit = r.remaining
	}
	if limit > int64(len(p)) {
		limit = int64(len(p))
	}

	n, err := r.f.Read(p[:limit])
	r.remaining -= int64(n)
	if err == io.EOF {
		// файл короче диапазона — стоп без ошибки
		r.remaining = 0
	}
	return n, err
}

func (r *chunkReader) Close() error { return r.f.Close() }
