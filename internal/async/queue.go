package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit: one raw OCR text waiting for the scan
// pipeline.
type Job struct {
	OwnerID     uuid.UUID
	RawText     string
	Source      string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
