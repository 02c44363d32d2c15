package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cardvault/cardvault/constants"
	"github.com/cardvault/cardvault/gen/ent"
	contactspb "github.com/cardvault/cardvault/gen/proto/contacts/v1"
	"github.com/cardvault/cardvault/internal/common"
	"github.com/cardvault/cardvault/internal/entity"
	"github.com/cardvault/cardvault/internal/repository"
	"github.com/cardvault/cardvault/internal/utils"
)

const maxFieldLength = 500

func (s *ContactsService) CreateContact(ctx context.Context, req *contactspb.CreateContactRequest) (*contactspb.CreateContactResponse, error) {
	validator := common.NewValidator().
		Field("owner_id", req.GetOwnerId(), common.Required, common.UUID).
		Field("name", req.GetName(), common.Required, common.MaxLength(maxFieldLength)).
		Field("email", req.GetEmail(), common.Email)
	for _, t := range req.GetTags() {
		validator.Field("tags", t, common.Tag)
	}
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	ownerID, _ := uuid.Parse(req.GetOwnerId())
	source, _ := constants.ParseScanSource(req.GetScanSource())

	created, err := s.contactRepo.Create(ctx, &repository.CreateContactRequest{
		OwnerID:    ownerID,
		Name:       strings.TrimSpace(req.GetName()),
		Company:    strings.TrimSpace(req.GetCompany()),
		Phone:      strings.TrimSpace(req.GetPhone()),
		Email:      strings.TrimSpace(strings.ToLower(req.GetEmail())),
		Address:    strings.TrimSpace(req.GetAddress()),
		Website:    strings.TrimSpace(req.GetWebsite()),
		Tags:       canonicalTags(req.GetTags()),
		Notes:      req.GetNotes(),
		Confidence: confidenceFromPB(req.GetOcrConfidence()),
		ScanSource: string(source),
	})
	if err != nil {
		s.logger.Error("create contact failed", "owner_id", ownerID, "error", err)
		return nil, status.Errorf(codes.Internal, "create contact: %v", err)
	}

	if jobID := strings.TrimSpace(req.GetScanJobId()); jobID != "" {
		id, err := uuid.Parse(jobID)
		if err != nil {
			return nil, common.InvalidArgumentError("scan_job_id must be a UUID")
		}
		if err := s.jobsRepo.SetContactID(ctx, id, created.ID); err != nil {
			s.logger.Warn("link scan job failed", "job_id", id, "contact_id", created.ID, "error", err)
		}
	}

	s.logger.Info("contact created", "owner_id", ownerID, "contact_id", created.ID)
	return &contactspb.CreateContactResponse{Contact: utils.ToPBContact(created)}, nil
}

func (s *ContactsService) GetContact(ctx context.Context, req *contactspb.GetContactRequest) (*contactspb.GetContactResponse, error) {
	ownerID, contactID, err := parseOwnerAndContact(req.GetOwnerId(), req.GetContactId())
	if err != nil {
		return nil, err
	}

	c, err := s.contactRepo.GetByID(ctx, ownerID, contactID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("contact not found")
		}
		return nil, status.Errorf(codes.Internal, "get contact: %v", err)
	}
	return &contactspb.GetContactResponse{Contact: utils.ToPBContact(c)}, nil
}

func (s *ContactsService) UpdateContact(ctx context.Context, req *contactspb.UpdateContactRequest) (*contactspb.UpdateContactResponse, error) {
	ownerID, contactID, err := parseOwnerAndContact(req.GetOwnerId(), req.GetContactId())
	if err != nil {
		return nil, err
	}

	validator := common.NewValidator()
	if req.Name != nil {
		validator.Field("name", req.GetName(), common.Required, common.MaxLength(maxFieldLength))
	}
	if req.Email != nil {
		validator.Field("email", req.GetEmail(), common.Email)
	}
	if req.GetUpdateTags() {
		for _, t := range req.GetTags() {
			validator.Field("tags", t, common.Tag)
		}
	}
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	update := &repository.UpdateContactRequest{
		Name:    req.Name,
		Company: req.Company,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Website: req.Website,
		Notes:   req.Notes,
	}
	if req.GetUpdateTags() {
		tags := canonicalTags(req.GetTags())
		update.Tags = &tags
	}

	updated, err := s.contactRepo.Update(ctx, ownerID, contactID, update)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("contact not found")
		}
		s.logger.Error("update contact failed", "owner_id", ownerID, "contact_id", contactID, "error", err)
		return nil, status.Errorf(codes.Internal, "update contact: %v", err)
	}
	return &contactspb.UpdateContactResponse{Contact: utils.ToPBContact(updated)}, nil
}

func (s *ContactsService) DeleteContact(ctx context.Context, req *contactspb.DeleteContactRequest) (*contactspb.DeleteContactResponse, error) {
	ownerID, contactID, err := parseOwnerAndContact(req.GetOwnerId(), req.GetContactId())
	if err != nil {
		return nil, err
	}

	if err := s.contactRepo.Delete(ctx, ownerID, contactID); err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("contact not found")
		}
		return nil, status.Errorf(codes.Internal, "delete contact: %v", err)
	}
	s.logger.Info("contact deleted", "owner_id", ownerID, "contact_id", contactID)
	return &contactspb.DeleteContactResponse{}, nil
}

func (s *ContactsService) ListContacts(ctx context.Context, req *contactspb.ListContactsRequest) (*contactspb.ListContactsResponse, error) {
	validator := common.NewValidator().
		Field("owner_id", req.GetOwnerId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	ownerID, _ := uuid.Parse(req.GetOwnerId())

	filter := repository.ListContactsFilter{
		Tags:     canonicalTags(req.GetTags()),
		Search:   strings.TrimSpace(req.GetSearch()),
		SortBy:   req.GetSortBy(),
		SortDesc: req.GetSortDesc(),
	}
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		filter.To = &t
	}

	rows, err := s.contactRepo.List(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error("list contacts failed", "owner_id", ownerID, "error", err)
		return nil, status.Errorf(codes.Internal, "list contacts: %v", err)
	}

	out := make([]*contactspb.Contact, 0, len(rows))
	for _, c := range rows {
		out = append(out, utils.ToPBContact(c))
	}
	return &contactspb.ListContactsResponse{Contacts: out}, nil
}

func parseOwnerAndContact(owner, contact string) (uuid.UUID, uuid.UUID, error) {
	validator := common.NewValidator().
		Field("owner_id", owner, common.Required, common.UUID).
		Field("contact_id", contact, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	ownerID, _ := uuid.Parse(owner)
	contactID, _ := uuid.Parse(contact)
	return ownerID, contactID, nil
}

func canonicalTags(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, t := range in {
		tag, _ := constants.CanonicalizeTag(t)
		out = append(out, string(tag))
	}
	return out
}

func confidenceFromPB(pb *contactspb.FieldConfidence) entity.FieldConfidence {
	if pb == nil {
		return entity.FieldConfidence{}
	}
	return entity.FieldConfidence{
		Name:    pb.GetName(),
		Company: pb.GetCompany(),
		Phone:   pb.GetPhone(),
		Email:   pb.GetEmail(),
		Address: pb.GetAddress(),
		Website: pb.GetWebsite(),
	}
}
