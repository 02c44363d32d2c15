package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cardvault/cardvault/constants"
	"github.com/cardvault/cardvault/gen/ent"
	"github.com/cardvault/cardvault/gen/ent/scanjob"
	"github.com/cardvault/cardvault/internal/entity"
	"github.com/cardvault/cardvault/internal/utils"
)

// ExtractionOutcome is what the scan pipeline persists on success.
type ExtractionOutcome struct {
	ExtractedJSON    []byte
	IsDuplicate      bool
	MatchScore       int
	MatchedContactID *uuid.UUID
	MatchReasons     []string
}

type ScanJobRepository interface {
	Start(ctx context.Context, ownerID uuid.UUID, rawText, source string) (*ent.ScanJob, error)
	FinishExtraction(ctx context.Context, jobID uuid.UUID, outcome *ExtractionOutcome) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, ownerID, jobID uuid.UUID) (*entity.ScanJob, error)
	SetContactID(ctx context.Context, jobID, contactID uuid.UUID) error
}

type scanJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewScanJobRepository(entc *ent.Client, log *slog.Logger) ScanJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &scanJobRepo{ent: entc, log: log}
}

func (r *scanJobRepo) Start(ctx context.Context, ownerID uuid.UUID, rawText, source string) (*ent.ScanJob, error) {
	job, err := r.ent.ScanJob.
		Create().
		SetOwnerID(ownerID).
		SetRawText(rawText).
		SetSource(source).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job start failed", "owner_id", ownerID, "err", err)
		return nil, err
	}
	r.log.Info("scan_job started", "job_id", job.ID, "owner_id", ownerID, "source", source)
	return job, nil
}

func (r *scanJobRepo) FinishExtraction(ctx context.Context, jobID uuid.UUID, outcome *ExtractionOutcome) error {
	builder := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetExtractedJSON(outcome.ExtractedJSON).
		SetIsDuplicate(outcome.IsDuplicate).
		SetMatchScore(outcome.MatchScore).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtracted))
	if outcome.MatchedContactID != nil {
		builder = builder.SetMatchedContactID(*outcome.MatchedContactID)
	}
	if len(outcome.MatchReasons) > 0 {
		builder = builder.SetMatchReasons(outcome.MatchReasons)
	}

	if _, err := builder.Save(ctx); err != nil {
		r.log.Error("scan_job finish(EXTRACTED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("scan_job finished (EXTRACTED)", "job_id", jobID,
		"is_duplicate", outcome.IsDuplicate, "match_score", outcome.MatchScore)
	return nil
}

func (r *scanJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("scan_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *scanJobRepo) GetByID(ctx context.Context, ownerID, jobID uuid.UUID) (*entity.ScanJob, error) {
	job, err := r.ent.ScanJob.Query().
		Where(scanjob.ID(jobID), scanjob.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToScanJob(job), nil
}

func (r *scanJobRepo) SetContactID(ctx context.Context, jobID, contactID uuid.UUID) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetContactID(contactID).
		Save(ctx)
	return err
}
