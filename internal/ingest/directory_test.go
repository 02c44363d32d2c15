package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardvault/cardvault/internal/async"
)

type captureQueue struct {
	jobs []async.Job
}

func (q *captureQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *captureQueue) Shutdown(context.Context) {}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "card1.txt", "John Smith\nAcme Corp Inc\njohn@acme.com")
	writeFile(t, dir, "card2.ocr", "Jane Doe\nInitech LLC")
	writeFile(t, dir, "photo.jpg", "binary junk")
	writeFile(t, dir, "empty.txt", "   \n  ")
	writeFile(t, dir, ".hidden.txt", "should be skipped")

	queue := &captureQueue{}
	ing := NewIngestor(queue, nil)
	ownerID := uuid.New()

	results, stats, err := ing.IngestDirectory(context.Background(), ownerID, dir, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(2), stats.Enqueued)
	assert.Equal(t, uint32(1), stats.Skipped)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, results, 3)

	require.Len(t, queue.jobs, 2)
	for _, job := range queue.jobs {
		assert.Equal(t, ownerID, job.OwnerID)
		assert.Equal(t, "UPLOAD", job.Source)
		assert.NotEmpty(t, job.RawText)
		assert.NotEmpty(t, job.TraceID)
	}
}

func TestIngestDirectorySkipsOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	big := make([]byte, 256)
	for i := range big {
		big[i] = 'x'
	}
	writeFile(t, dir, "big.txt", string(big))

	queue := &captureQueue{}
	ing := NewIngestor(queue, nil)
	ing.MaxSize = 100

	_, stats, err := ing.IngestDirectory(context.Background(), uuid.New(), dir, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), stats.Skipped)
	assert.Empty(t, queue.jobs)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewIngestor(&captureQueue{}, nil)

	_, _, err := ing.IngestDirectory(context.Background(), uuid.New(), "  ", true)
	assert.Error(t, err)
}
