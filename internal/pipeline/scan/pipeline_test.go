package scan

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardvault/cardvault/gen/ent"
	"github.com/cardvault/cardvault/internal/entity"
	"github.com/cardvault/cardvault/internal/extract"
	"github.com/cardvault/cardvault/internal/repository"
)

type fakeJobsRepo struct {
	started   int
	outcome   *repository.ExtractionOutcome
	failedMsg string
	startErr  error
}

func (f *fakeJobsRepo) Start(_ context.Context, ownerID uuid.UUID, rawText, source string) (*ent.ScanJob, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.started++
	return &ent.ScanJob{ID: uuid.New(), OwnerID: ownerID, RawText: rawText, Source: source}, nil
}

func (f *fakeJobsRepo) FinishExtraction(_ context.Context, _ uuid.UUID, outcome *repository.ExtractionOutcome) error {
	f.outcome = outcome
	return nil
}

func (f *fakeJobsRepo) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.failedMsg = message
	return nil
}

func (f *fakeJobsRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (*entity.ScanJob, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeJobsRepo) SetContactID(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type fakeContactRepo struct {
	contacts []*entity.Contact
	listErr  error
}

func (f *fakeContactRepo) Create(context.Context, *repository.CreateContactRequest) (*entity.Contact, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeContactRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (*entity.Contact, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeContactRepo) Update(context.Context, uuid.UUID, uuid.UUID, *repository.UpdateContactRequest) (*entity.Contact, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeContactRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return errors.New("not implemented")
}

func (f *fakeContactRepo) List(context.Context, uuid.UUID, repository.ListContactsFilter) ([]*entity.Contact, error) {
	return f.contacts, f.listErr
}

func TestPipelineRunExtractsAndFlagsDuplicate(t *testing.T) {
	existing := &entity.Contact{
		ID:    uuid.New(),
		Name:  "Alice Wong",
		Email: "john@acme.com",
	}
	jobs := &fakeJobsRepo{}
	contacts := &fakeContactRepo{contacts: []*entity.Contact{existing}}
	p := NewPipeline(nil, jobs, contacts, nil, nil)

	raw := "John Smith\nAcme Corp Inc\njohn@acme.com"
	result, err := p.Run(context.Background(), uuid.New(), raw, "UPLOAD")
	require.NoError(t, err)

	assert.Equal(t, "john@acme.com", result.Extracted.Email.Value)
	assert.True(t, result.Duplicate.IsDuplicate)
	require.NotNil(t, result.Duplicate.MatchedContact)
	assert.Equal(t, existing.ID, result.Duplicate.MatchedContact.ID)

	require.NotNil(t, jobs.outcome)
	assert.True(t, jobs.outcome.IsDuplicate)
	assert.GreaterOrEqual(t, jobs.outcome.MatchScore, 50)
	require.NotNil(t, jobs.outcome.MatchedContactID)
	assert.Equal(t, existing.ID, *jobs.outcome.MatchedContactID)

	var persisted extract.ExtractedContact
	require.NoError(t, json.Unmarshal(jobs.outcome.ExtractedJSON, &persisted))
	assert.Equal(t, result.Extracted, persisted)
}

func TestPipelineRunNoDuplicateOnEmptyAddressBook(t *testing.T) {
	jobs := &fakeJobsRepo{}
	p := NewPipeline(nil, jobs, &fakeContactRepo{}, nil, nil)

	result, err := p.Run(context.Background(), uuid.New(), "John Smith\nAcme Corp Inc", "MANUAL")
	require.NoError(t, err)

	assert.False(t, result.Duplicate.IsDuplicate)
	require.NotNil(t, jobs.outcome)
	assert.Nil(t, jobs.outcome.MatchedContactID)
}

func TestPipelineRunMarksJobFailedWhenListFails(t *testing.T) {
	jobs := &fakeJobsRepo{}
	contacts := &fakeContactRepo{listErr: errors.New("db gone")}
	p := NewPipeline(nil, jobs, contacts, nil, nil)

	_, err := p.Run(context.Background(), uuid.New(), "John Smith\nAcme Corp", "MANUAL")
	require.Error(t, err)
	assert.Contains(t, jobs.failedMsg, "db gone")
}

func TestPipelineRunPropagatesStartError(t *testing.T) {
	jobs := &fakeJobsRepo{startErr: errors.New("insert failed")}
	p := NewPipeline(nil, jobs, &fakeContactRepo{}, nil, nil)

	result, err := p.Run(context.Background(), uuid.New(), "text", "MANUAL")
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, result.JobID)
}
