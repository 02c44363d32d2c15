package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cardvault/cardvault/internal/pipeline/scan"
)

// ScanQueue drains submitted scans through the pipeline with a bounded
// worker pool.
type ScanQueue struct {
	pipeline *scan.Pipeline
	logger   *slog.Logger
	workers  int
	timeout  time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ScanQueue)

func WithWorkers(n int) Option {
	return func(q *ScanQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ScanQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ScanQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewScanQueue(pipeline *scan.Pipeline, logger *slog.Logger, opts ...Option) *ScanQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ScanQueue{
		pipeline: pipeline,
		logger:   logger,
		workers:  4,
		timeout:  time.Minute,
		ch:       make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ScanQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res, err := q.pipeline.Run(ctx, job.OwnerID, job.RawText, job.Source)
					cancel()

					if err != nil {
						q.logger.Error("scan failed", "worker_id", workerID, "owner_id", job.OwnerID, "error", err)
					} else {
						q.logger.Info("scan processed", "worker_id", workerID, "job_id", res.JobID, "is_duplicate", res.Duplicate.IsDuplicate)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ScanQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "owner_id", job.OwnerID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued scan for processing", "owner_id", job.OwnerID, "source", job.Source)
	default:
		q.logger.Warn("queue full, applying backpressure", "owner_id", job.OwnerID)
		q.ch <- job
	}
	return nil
}

func (q *ScanQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
