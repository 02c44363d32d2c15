package server

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cardvault/cardvault/constants"
	"github.com/cardvault/cardvault/gen/ent"
	contactspb "github.com/cardvault/cardvault/gen/proto/contacts/v1"
	"github.com/cardvault/cardvault/internal/common"
	"github.com/cardvault/cardvault/internal/dedupe"
	"github.com/cardvault/cardvault/internal/repository"
	"github.com/cardvault/cardvault/internal/utils"
)

func (s *ContactsService) ExtractFields(_ context.Context, req *contactspb.ExtractFieldsRequest) (*contactspb.ExtractFieldsResponse, error) {
	extracted := s.extractor.Extract(req.GetRawText())
	return &contactspb.ExtractFieldsResponse{
		Contact: utils.ToPBExtractedContact(extracted),
	}, nil
}

func (s *ContactsService) CheckDuplicate(ctx context.Context, req *contactspb.CheckDuplicateRequest) (*contactspb.CheckDuplicateResponse, error) {
	validator := common.NewValidator().
		Field("owner_id", req.GetOwnerId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	ownerID, _ := uuid.Parse(req.GetOwnerId())

	existing, err := s.contactRepo.List(ctx, ownerID, repository.ListContactsFilter{})
	if err != nil {
		s.logger.Error("check duplicate list failed", "owner_id", ownerID, "error", err)
		return nil, status.Errorf(codes.Internal, "list contacts: %v", err)
	}

	verdict := s.matcher.FindDuplicate(dedupe.Candidate{
		Name:    req.GetName(),
		Company: req.GetCompany(),
		Phone:   req.GetPhone(),
		Email:   req.GetEmail(),
	}, existing)

	match := &contactspb.DuplicateMatch{
		IsDuplicate:  verdict.IsDuplicate,
		MatchScore:   int32(verdict.MatchScore),
		MatchReasons: verdict.MatchReasons,
	}
	if verdict.MatchedContact != nil {
		match.MatchedContact = utils.ToPBContact(verdict.MatchedContact)
	}
	return &contactspb.CheckDuplicateResponse{Match: match}, nil
}

func (s *ContactsService) SubmitScan(ctx context.Context, req *contactspb.SubmitScanRequest) (*contactspb.SubmitScanResponse, error) {
	validator := common.NewValidator().
		Field("owner_id", req.GetOwnerId(), common.Required, common.UUID).
		Field("raw_text", req.GetRawText(), common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	ownerID, _ := uuid.Parse(req.GetOwnerId())
	source, _ := constants.ParseScanSource(req.GetSource())

	result, err := s.pipeline.Run(ctx, ownerID, req.GetRawText(), string(source))
	if err != nil {
		s.logger.Error("scan failed", "owner_id", ownerID, "error", err)
		if result.JobID == uuid.Nil {
			return nil, status.Errorf(codes.Internal, "scan: %v", err)
		}
		// The job row exists and records the failure; return it.
	}

	job, err := s.jobsRepo.GetByID(ctx, ownerID, result.JobID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load scan job: %v", err)
	}
	return &contactspb.SubmitScanResponse{Job: utils.ToPBScanJob(job)}, nil
}

func (s *ContactsService) GetScanJob(ctx context.Context, req *contactspb.GetScanJobRequest) (*contactspb.GetScanJobResponse, error) {
	validator := common.NewValidator().
		Field("owner_id", req.GetOwnerId(), common.Required, common.UUID).
		Field("job_id", req.GetJobId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	ownerID, _ := uuid.Parse(req.GetOwnerId())
	jobID, _ := uuid.Parse(req.GetJobId())

	job, err := s.jobsRepo.GetByID(ctx, ownerID, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("scan job not found")
		}
		return nil, status.Errorf(codes.Internal, "load scan job: %v", err)
	}
	return &contactspb.GetScanJobResponse{Job: utils.ToPBScanJob(job)}, nil
}
