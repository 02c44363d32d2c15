package async

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	scan "github.com/cardvault/cardvault/internal/pipeline/scan"
)

func TestScanQueueShutdownIsIdempotent(t *testing.T) {
	q := NewScanQueue(&scan.Pipeline{}, nil, WithWorkers(2), WithQueueSize(8))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	q.Shutdown(ctx)
	q.Shutdown(ctx) // second call must not panic or block
}

func TestScanQueueRejectsEnqueueAfterShutdown(t *testing.T) {
	q := NewScanQueue(&scan.Pipeline{}, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	err := q.Enqueue(context.Background(), Job{
		OwnerID: uuid.New(),
		RawText: "late arrival",
		Source:  "UPLOAD",
	})
	assert.NoError(t, err) // dropped quietly, never sent to a closed channel
}
