package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kenni13/VideoHosting/internal/domain"
)

// кладёт файл напрямую в бакет, минуя инжест
func plantFile(t *testing.T, s *Storage, bucket domain.Bucket, name string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(s.bucketPath(bucket), name), content, 0o644))
}

func TestGetFullContent(t *testing.T) {
	s, _ := newTestStorage(t, Config{})
	content := []byte("0123456789")
	plantFile(t, s, domain.BucketImages, "pic.png", content)

	rc, contentLen, totalSize, contentRange, contentType, modTime, err := s.Get(context.Background(), "pic.png", "")
	require.NoError(t, err)
	defer rc.Close()

	require.Equal(t, int64(10), contentLen)
	require.Equal(t, int64(10), totalSize)
	require.Empty(t, contentRange) // диапазон не запрошен — 200-семантика
	require.Equal(t, "image/png", contentType)
	require.False(t, modTime.IsZero())

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestGetRangeSpan(t *testing.T) {
	s, _ := newTestStorage(t, Config{})
	content := []byte("0123456789")
	plantFile(t, s, domain.BucketImages, "pic.png", content)

	rc, contentLen, totalSize, contentRange, _, _, err := s.Get(context.Background(), "pic.png", "bytes=2-5")
	require.NoError(t, err)
	defer rc.Close()

	require.Equal(t, int64(4), contentLen)
	require.Equal(t, int64(10), totalSize) // полный размер не зависит от диапазона
	require.Equal(t, "bytes 2-5/10", contentRange)

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, []byte("2345"), got)
}

// для любого валидного диапазона стрим воспроизводит ровно bytes[start:end+1],
// независимо от границ чанков
func TestGetRangeExhaustive(t *testing.T) {
	content := []byte("abcdefghijklmnopqrstuvwxyz")
	// нарочно мелкий чанк, чтобы диапазоны резались на несколько чтений
	s, _ := newTestStorage(t, Config{ServeChunk: 3})
	plantFile(t, s, domain.BucketVideos, "clip.mp4", content)

	size := int64(len(content))
	for start := int64(0); start < size; start += 5 {
		for end := start; end < size; end += 7 {
			hdr := fmt.Sprintf("bytes=%d-%d", start, end)
			rc, contentLen, _, contentRange, _, _, err := s.Get(context.Background(), "clip.mp4", hdr)
			require.NoError(t, err, hdr)

			got, err := io.ReadAll(rc)
			require.NoError(t, rc.Close())
			require.NoError(t, err, hdr)
			require.Equal(t, content[start:end+1], got, hdr)
			require.Equal(t, end-start+1, contentLen, hdr)
			require.Equal(t, fmt.Sprintf("bytes %d-%d/%d", start, end, size), contentRange, hdr)
		}
	}
}

func TestGetMalformedRangeFallsBackToFull(t *testing.T) {
	s, _ := newTestStorage(t, Config{})
	content := []byte("0123456789")
	plantFile(t, s, domain.BucketImages, "pic.png", content)

	for _, hdr := range []string{"bytes=abc-def", "bytes=-", "bytes=5-2", "units=0-4"} {
		rc, contentLen, _, contentRange, _, _, err := s.Get(context.Background(), "pic.png", hdr)
		require.NoError(t, err, hdr)

		got, err := io.ReadAll(rc)
		require.NoError(t, rc.Close())
		require.NoError(t, err, hdr)
		require.Empty(t, contentRange, hdr) // фолбэк — полный файл без Content-Range
		require.Equal(t, int64(10), contentLen, hdr)
		require.Equal(t, content, got, hdr)
	}
}

func TestGetOpenEndedRange(t *testing.T) {
	s, _ := newTestStorage(t, Config{})
	plantFile(t, s, domain.BucketImages, "pic.png", []byte("0123456789"))

	rc, contentLen, _, contentRange, _, _, err := s.Get(context.Background(), "pic.png", "bytes=7-")
	require.NoError(t, err)
	defer rc.Close()

	require.Equal(t, int64(3), contentLen)
	require.Equal(t, "bytes 7-9/10", contentRange)

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, []byte("789"), got)
}

func TestGetMissingFile(t *testing.T) {
	s, _ := newTestStorage(t, Config{})

	_, _, _, _, _, _, err := s.Get(context.Background(), "deadbeef.png", "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetUnsupportedExtension(t *testing.T) {
	s, _ := newTestStorage(t, Config{})

	_, _, _, _, _, _, err := s.Get(context.Background(), "script.exe", "")
	require.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestGetEscapesNowhere(t *testing.T) {
	s, _ := newTestStorage(t, Config{})
	plantFile(t, s, domain.BucketImages, "pic.png", []byte("x"))

	// id с путём урезается до base — traversal невозможен
	rc, _, _, _, _, _, err := s.Get(context.Background(), "../../Images/pic.png", "")
	require.NoError(t, err)
	rc.Close()
}

func TestGetCancelledContextStopsStream(t *testing.T) {
	s, _ := newTestStorage(t, Config{ServeChunk: 2})
	plantFile(t, s, domain.BucketVideos, "clip.mp4", []byte("0123456789"))

	ctx, cancel := context.WithCancel(context.Background())
	rc, _, _, _, _, _, err := s.Get(ctx, "clip.mp4", "")
	require.NoError(t, err)
	defer rc.Close()

	buf := make([]byte, 2)
	_, err = rc.Read(buf)
	require.NoError(t, err)

	// отмена посреди диапазона — чтение прекращается сразу
	cancel()
	_, err = rc.Read(buf)
	require.ErrorIs(t, err, context.Canceled)
}

func TestChunkReaderBoundsSingleRead(t *testing.T) {
	s, _ := newTestStorage(t, Config{ServeChunk: 4})
	plantFile(t, s, domain.BucketImages, "pic.png", []byte("0123456789"))

	rc, _, _, _, _, _, err := s.Get(context.Background(), "pic.png", "")
	require.NoError(t, err)
	defer rc.Close()

	// буфер больше чанка: одно чтение отдаёт не больше ServeChunk
	buf := make([]byte, 64)
	n, err := rc.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
}
