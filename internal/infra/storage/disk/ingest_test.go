package disk

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kenni13/VideoHosting/internal/domain"
)

// recorderStub копит записанные метаданные вместо json-сайдкаров
type recorderStub struct {
	mu      sync.Mutex
	records []domain.Metadata
	fail    bool
}

func (s *recorderStub) Record(_ context.Context, m domain.Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("recorder down")
	}
	s.records = append(s.records, m)
	return nil
}

func (s *recorderStub) ByStem(_ context.Context, stem string) (domain.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.records {
		if strings.TrimSuffix(m.Name, filepath.Ext(m.Name)) == stem {
			return m, nil
		}
	}
	return domain.Metadata{}, domain.ErrNotFound
}

func (s *recorderStub) Remove(_ context.Context, stem string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.records {
		if strings.TrimSuffix(m.Name, filepath.Ext(m.Name)) == stem {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *recorderStub) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func newTestStorage(t *testing.T, cfg Config) (*Storage, *recorderStub) {
	t.Helper()
	if cfg.Root == "" {
		cfg.Root = t.TempDir()
	}
	rec := &recorderStub{}
	s, err := New(cfg, log.New(io.Discard, "", 0), rec)
	require.NoError(t, err)
	return s, rec
}

func canonicalFor(content []byte, ext string) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:]) + ext
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestIngestAcceptsAndPublishes(t *testing.T) {
	s, rec := newTestStorage(t, Config{})
	content := []byte("0123456789")

	res := s.Ingest(context.Background(), strings.NewReader(string(content)), "holiday.png")

	want := canonicalFor(content, ".png")
	require.Equal(t, domain.StatusAccepted, res.Status)
	require.Equal(t, want, res.Filename)
	require.Empty(t, res.Reason)

	// контент лежит в Images под каноническим именем
	got, err := os.ReadFile(filepath.Join(s.bucketPath(domain.BucketImages), want))
	require.NoError(t, err)
	require.Equal(t, content, got)

	// temp зачищен
	require.Empty(t, listDir(t, s.temp))

	// метаданные записаны один раз и согласованы
	require.Equal(t, 1, rec.count())
	m := rec.records[0]
	require.Equal(t, want, m.Name)
	require.Equal(t, "holiday.png", m.Original)
	require.Equal(t, strings.TrimSuffix(want, ".png"), m.SHA256)
	require.Equal(t, int64(len(content)), m.SizeBytes)
	require.Equal(t, "image/png", m.ContentType)
	require.False(t, m.UploadedAt.IsZero())
}

func TestIngestSameBytesTwiceIsDuplicate(t *testing.T) {
	s, rec := newTestStorage(t, Config{})
	content := "same content"

	first := s.Ingest(context.Background(), strings.NewReader(content), "a.png")
	second := s.Ingest(context.Background(), strings.NewReader(content), "b.png")

	require.Equal(t, domain.StatusAccepted, first.Status)
	require.Equal(t, domain.StatusDuplicate, second.Status)
	require.Equal(t, first.Filename, second.Filename)
	require.Contains(t, second.Reason, first.Filename)

	// ровно один файл на этот контент, одна запись метаданных
	require.Len(t, listDir(t, s.bucketPath(domain.BucketImages)), 1)
	require.Equal(t, 1, rec.count())
	require.Empty(t, listDir(t, s.temp))
}

func TestIngestRejectsMissingFilename(t *testing.T) {
	s, rec := newTestStorage(t, Config{})

	res := s.Ingest(context.Background(), strings.NewReader("data"), "")

	require.Equal(t, domain.StatusRejected, res.Status)
	require.Equal(t, "(none)", res.Filename)
	require.Equal(t, "missing filename", res.Reason)

	// ни байта не записано
	require.Empty(t, listDir(t, s.temp))
	require.Empty(t, listDir(t, s.bucketPath(domain.BucketVideos)))
	require.Empty(t, listDir(t, s.bucketPath(domain.BucketImages)))
	require.Zero(t, rec.count())
}

func TestIngestRejectsUnsupportedExtension(t *testing.T) {
	s, rec := newTestStorage(t, Config{})

	// ридер, падающий при первом же чтении: до стрима дойти не должны
	res := s.Ingest(context.Background(), failingReader{}, "malware.exe")

	require.Equal(t, domain.StatusRejected, res.Status)
	require.Equal(t, "malware.exe", res.Filename)
	require.Contains(t, res.Reason, ".exe")

	require.Empty(t, listDir(t, s.temp))
	require.Empty(t, listDir(t, s.bucketPath(domain.BucketVideos)))
	require.Empty(t, listDir(t, s.bucketPath(domain.BucketImages)))
	require.Zero(t, rec.count())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("should not be read") }

func TestIngestStreamErrorCleansTemp(t *testing.T) {
	s, rec := newTestStorage(t, Config{})

	r := io.MultiReader(strings.NewReader("partial"), failingReader{})
	res := s.Ingest(context.Background(), r, "clip.mp4")

	require.Equal(t, domain.StatusRejected, res.Status)
	require.Equal(t, "failed to save file", res.Reason)
	require.Empty(t, listDir(t, s.temp))
	require.Empty(t, listDir(t, s.bucketPath(domain.BucketVideos)))
	require.Zero(t, rec.count())
}

func TestIngestCancelledContextCleansTemp(t *testing.T) {
	s, rec := newTestStorage(t, Config{IngestChunk: 4})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.Ingest(ctx, strings.NewReader("we never finish this"), "clip.mp4")

	require.Equal(t, domain.StatusRejected, res.Status)
	require.Equal(t, "upload cancelled", res.Reason)
	require.Empty(t, listDir(t, s.temp))
	require.Empty(t, listDir(t, s.bucketPath(domain.BucketVideos)))
	require.Zero(t, rec.count())
}

func TestIngestConcurrentIdenticalContent(t *testing.T) {
	s, rec := newTestStorage(t, Config{MaxConcurrent: 2})
	content := "X-bytes-raced-by-two-uploads"

	results := make([]domain.UploadResult, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Ingest(context.Background(), strings.NewReader(content), "a.png")
		}(i)
	}
	wg.Wait()

	statuses := map[domain.UploadStatus]int{}
	for _, r := range results {
		statuses[r.Status]++
	}
	// ровно один победитель; проигравший — duplicate, не rejected
	require.Equal(t, 1, statuses[domain.StatusAccepted])
	require.Equal(t, 1, statuses[domain.StatusDuplicate])

	require.Len(t, listDir(t, s.bucketPath(domain.BucketImages)), 1)
	require.Equal(t, 1, rec.count())
	require.Empty(t, listDir(t, s.temp))
}

// gaugeReader считает, сколько стримов читаются одновременно:
// чтение — это дисковая фаза инжеста, её и ограничивает гейт.
type gaugeReader struct {
	r       io.Reader
	active  *atomic.Int32
	maxSeen *atomic.Int32
}

func (g *gaugeReader) Read(p []byte) (int, error) {
	cur := g.active.Add(1)
	for {
		seen := g.maxSeen.Load()
		if cur <= seen || g.maxSeen.CompareAndSwap(seen, cur) {
			break
		}
	}
	defer g.active.Add(-1)
	return g.r.Read(p)
}

func TestIngestGateBoundsConcurrency(t *testing.T) {
	const permits = 2
	const uploads = 8

	s, rec := newTestStorage(t, Config{MaxConcurrent: permits, IngestChunk: 8})

	var active, maxSeen atomic.Int32
	var wg sync.WaitGroup
	results := make([]domain.UploadResult, uploads)
	for i := 0; i < uploads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			content := strings.Repeat(fmt.Sprintf("file-%d|", i), 64)
			r := &gaugeReader{r: strings.NewReader(content), active: &active, maxSeen: &maxSeen}
			results[i] = s.Ingest(context.Background(), r, fmt.Sprintf("file-%d.png", i))
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		require.Equal(t, domain.StatusAccepted, res.Status, "upload %d", i)
	}
	require.LessOrEqual(t, maxSeen.Load(), int32(permits))
	require.Len(t, listDir(t, s.bucketPath(domain.BucketImages)), uploads)
	require.Equal(t, uploads, rec.count())
}

func TestIngestMetadataFailureDoesNotRollBack(t *testing.T) {
	s, rec := newTestStorage(t, Config{})
	rec.fail = true

	res := s.Ingest(context.Background(), strings.NewReader("content"), "pic.jpg")

	// файл опубликован, несмотря на недоступный рекордер
	require.Equal(t, domain.StatusAccepted, res.Status)
	require.Len(t, listDir(t, s.bucketPath(domain.BucketImages)), 1)
	require.Zero(t, rec.count())
}
