// Package ingest feeds a drop directory of exported OCR text dumps into
// the scan queue. Each matching file becomes one scan job; the recognizer
// that produced the text is an external concern.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cardvault/cardvault/constants"
	"github.com/cardvault/cardvault/internal/async"
)

// FileResult is the per-file ingest outcome.
type FileResult struct {
	Path     string
	Enqueued bool
	Err      string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned  uint32
	Matched  uint32
	Enqueued uint32
	Skipped  uint32
	Failed   uint32
}

// Ingestor walks drop directories and enqueues their text dumps.
type Ingestor struct {
	Queue   async.Queue
	Logger  *slog.Logger
	MaxSize int64 // bytes; files larger than this are skipped
}

func NewIngestor(queue async.Queue, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{Queue: queue, Logger: logger, MaxSize: 64 * 1024}
}

// IngestDirectory walks root, filters by the allowed text extensions,
// skips hidden entries if requested, and enqueues one scan job per file.
// Returns per-file results plus aggregate stats.
func (u *Ingestor) IngestDirectory(ctx context.Context, ownerID uuid.UUID, root string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedIngestExtensions[ext]; !ok {
			return nil
		}
		stats.Matched++

		res := u.ingestFile(ctx, ownerID, path)
		results = append(results, res)
		switch {
		case res.Err != "":
			stats.Failed++
		case res.Enqueued:
			stats.Enqueued++
		default:
			stats.Skipped++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func (u *Ingestor) ingestFile(ctx context.Context, ownerID uuid.UUID, path string) FileResult {
	info, err := os.Stat(path)
	if err != nil {
		return FileResult{Path: path, Err: err.Error()}
	}
	if u.MaxSize > 0 && info.Size() > u.MaxSize {
		u.Logger.Warn("skipping oversized drop file", "path", path, "size", info.Size())
		return FileResult{Path: path}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: err.Error()}
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		u.Logger.Warn("skipping empty drop file", "path", path)
		return FileResult{Path: path}
	}

	err = u.Queue.Enqueue(ctx, async.Job{
		OwnerID:     ownerID,
		RawText:     text,
		Source:      string(constants.SourceUpload),
		SubmittedAt: time.Now(),
		TraceID:     filepath.Base(path),
	})
	if err != nil {
		return FileResult{Path: path, Err: err.Error()}
	}
	return FileResult{Path: path, Enqueued: true}
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
