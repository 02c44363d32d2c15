package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cardvault/cardvault/internal/dedupe"
	"github.com/cardvault/cardvault/internal/extract"
	"github.com/cardvault/cardvault/internal/repository"
)

// Pipeline runs one submitted card scan end to end: start a job, extract
// fields from the raw OCR text, check the owner's address book for a
// duplicate, persist the outcome on the job.
type Pipeline struct {
	Logger    *slog.Logger
	JobsRepo  repository.ScanJobRepository
	Contacts  repository.ContactRepository
	Extractor *extract.Extractor
	Matcher   *dedupe.Matcher
}

func NewPipeline(
	logger *slog.Logger,
	jobs repository.ScanJobRepository,
	contacts repository.ContactRepository,
	extractor *extract.Extractor,
	matcher *dedupe.Matcher,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if extractor == nil {
		extractor = extract.NewExtractor(extract.Config{})
	}
	if matcher == nil {
		matcher = dedupe.NewMatcher(dedupe.Config{})
	}
	return &Pipeline{
		Logger:    logger,
		JobsRepo:  jobs,
		Contacts:  contacts,
		Extractor: extractor,
		Matcher:   matcher,
	}
}

// Result bundles what one scan produced.
type Result struct {
	JobID     uuid.UUID
	Extracted extract.ExtractedContact
	Duplicate dedupe.Result
}

// Run executes the scan for rawText on behalf of ownerID.
// Extraction itself cannot fail; only persistence and the address-book
// lookup can, and those mark the job FAILED.
func (p *Pipeline) Run(ctx context.Context, ownerID uuid.UUID, rawText, source string) (Result, error) {
	job, err := p.JobsRepo.Start(ctx, ownerID, rawText, source)
	if err != nil {
		return Result{}, fmt.Errorf("start scan job: %w", err)
	}

	extracted := p.Extractor.Extract(rawText)
	p.Logger.Info("scan.extract.ok",
		"job_id", job.ID,
		"raw_bytes", len(rawText),
		"empty", extracted.Empty(),
	)

	existing, err := p.Contacts.List(ctx, ownerID, repository.ListContactsFilter{})
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return Result{JobID: job.ID}, fmt.Errorf("list contacts: %w", err)
	}

	verdict := p.Matcher.FindDuplicate(dedupe.Candidate{
		Name:    extracted.Name.Value,
		Company: extracted.Company.Value,
		Phone:   extracted.Phone.Value,
		Email:   extracted.Email.Value,
	}, existing)

	extractedJSON, err := json.Marshal(extracted)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return Result{JobID: job.ID}, fmt.Errorf("encode extraction: %w", err)
	}

	outcome := &repository.ExtractionOutcome{
		ExtractedJSON: extractedJSON,
		IsDuplicate:   verdict.IsDuplicate,
		MatchScore:    verdict.MatchScore,
		MatchReasons:  verdict.MatchReasons,
	}
	if verdict.MatchedContact != nil {
		id := verdict.MatchedContact.ID
		outcome.MatchedContactID = &id
	}
	if err := p.JobsRepo.FinishExtraction(ctx, job.ID, outcome); err != nil {
		return Result{JobID: job.ID}, err
	}

	p.Logger.Info("scan.ok",
		"job_id", job.ID,
		"name", extracted.Name.Value,
		"email", extracted.Email.Value,
		"is_duplicate", verdict.IsDuplicate,
		"match_score", verdict.MatchScore,
	)
	return Result{JobID: job.ID, Extracted: extracted, Duplicate: verdict}, nil
}
