package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contactspb "github.com/cardvault/cardvault/gen/proto/contacts/v1"
	"github.com/cardvault/cardvault/internal/common"
	"github.com/cardvault/cardvault/internal/export"
	"github.com/cardvault/cardvault/internal/repository"
)

func (s *ContactsService) ImportContacts(ctx context.Context, req *contactspb.ImportContactsRequest) (*contactspb.ImportContactsResponse, error) {
	validator := common.NewValidator().
		Field("owner_id", req.GetOwnerId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	if len(req.GetPayload()) == 0 {
		return nil, common.InvalidArgumentError("payload is required")
	}
	ownerID, _ := uuid.Parse(req.GetOwnerId())

	result, err := s.importer.ImportJSON(ctx, ownerID, req.GetPayload())
	if err != nil {
		s.logger.Error("import failed", "owner_id", ownerID, "error", err)
		return nil, common.InvalidArgumentErrorf("import: %v", err)
	}

	return &contactspb.ImportContactsResponse{
		Imported: int32(result.Imported),
		Skipped:  int32(result.Skipped),
		Errors:   result.Errors,
	}, nil
}

func (s *ContactsService) ExportContacts(ctx context.Context, req *contactspb.ExportContactsRequest) (*contactspb.ExportContactsResponse, error) {
	validator := common.NewValidator().
		Field("owner_id", req.GetOwnerId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	ownerID, _ := uuid.Parse(req.GetOwnerId())

	filter := repository.ListContactsFilter{Tags: canonicalTags(req.GetTags())}
	stamp := time.Now().UTC().Format("2006-01-02")

	switch req.GetFormat() {
	case contactspb.ExportFormat_EXPORT_FORMAT_XLSX:
		data, err := s.exporter.ExportContactsXLSX(ctx, ownerID, filter)
		if err != nil {
			s.logger.Error("export.xlsx.failed", "owner_id", ownerID, "error", err)
			return nil, status.Errorf(codes.Internal, "export: %v", err)
		}
		return &contactspb.ExportContactsResponse{
			Data:     data,
			Filename: export.SanitizeFilename("contacts-"+stamp, ".xlsx"),
		}, nil
	case contactspb.ExportFormat_EXPORT_FORMAT_VCARD:
		data, err := s.exporter.ExportContactsVCard(ctx, ownerID, filter)
		if err != nil {
			s.logger.Error("export.vcard.failed", "owner_id", ownerID, "error", err)
			return nil, status.Errorf(codes.Internal, "export: %v", err)
		}
		return &contactspb.ExportContactsResponse{
			Data:     data,
			Filename: export.SanitizeFilename("contacts-"+stamp, ".vcf"),
		}, nil
	default:
		return nil, common.InvalidArgumentError("format must be XLSX or VCARD")
	}
}
