package utils

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/cardvault/cardvault/gen/ent"
	contactspb "github.com/cardvault/cardvault/gen/proto/contacts/v1"
	"github.com/cardvault/cardvault/internal/entity"
	"github.com/cardvault/cardvault/internal/extract"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func uuidOrEmpty(p *uuid.UUID) string {
	if p == nil {
		return ""
	}
	return p.String()
}

func ToContact(e *ent.Contact) *entity.Contact {
	var conf entity.FieldConfidence
	if len(e.OcrConfidence) > 0 {
		_ = json.Unmarshal(e.OcrConfidence, &conf)
	}
	return &entity.Contact{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		Name:       e.Name,
		Company:    e.Company,
		Phone:      e.Phone,
		Email:      e.Email,
		Address:    e.Address,
		Website:    e.Website,
		Tags:       e.Tags,
		Notes:      e.Notes,
		Confidence: conf,
		ScanSource: e.ScanSource,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToScanJob(e *ent.ScanJob) *entity.ScanJob {
	return &entity.ScanJob{
		ID:               e.ID,
		OwnerID:          e.OwnerID,
		ContactID:        e.ContactID,
		RawText:          e.RawText,
		Source:           e.Source,
		Status:           e.Status,
		StartedAt:        e.StartedAt,
		FinishedAt:       e.FinishedAt,
		ErrorMessage:     e.ErrorMessage,
		ExtractedJSON:    e.ExtractedJSON,
		IsDuplicate:      e.IsDuplicate,
		MatchScore:       e.MatchScore,
		MatchedContactID: e.MatchedContactID,
		MatchReasons:     e.MatchReasons,
	}
}

func ToPBContact(c *entity.Contact) *contactspb.Contact {
	return &contactspb.Contact{
		Id:      c.ID.String(),
		OwnerId: c.OwnerID.String(),
		Name:    c.Name,
		Company: c.Company,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
		Website: c.Website,
		Tags:    c.Tags,
		Notes:   c.Notes,
		OcrConfidence: &contactspb.FieldConfidence{
			Name:    c.Confidence.Name,
			Company: c.Confidence.Company,
			Phone:   c.Confidence.Phone,
			Email:   c.Confidence.Email,
			Address: c.Confidence.Address,
			Website: c.Confidence.Website,
		},
		ScanSource: c.ScanSource,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBExtractedField(f extract.ExtractedField) *contactspb.ExtractedField {
	return &contactspb.ExtractedField{
		Value:      f.Value,
		Confidence: f.Confidence,
		SourceText: f.SourceText,
	}
}

func ToPBExtractedContact(c extract.ExtractedContact) *contactspb.ExtractedContact {
	return &contactspb.ExtractedContact{
		Name:    ToPBExtractedField(c.Name),
		Company: ToPBExtractedField(c.Company),
		Phone:   ToPBExtractedField(c.Phone),
		Email:   ToPBExtractedField(c.Email),
		Address: ToPBExtractedField(c.Address),
		Website: ToPBExtractedField(c.Website),
	}
}

func ToPBScanJob(j *entity.ScanJob) *contactspb.ScanJob {
	pb := &contactspb.ScanJob{
		Id:               j.ID.String(),
		OwnerId:          j.OwnerID.String(),
		ContactId:        uuidOrEmpty(j.ContactID),
		RawText:          j.RawText,
		Source:           j.Source,
		Status:           j.Status,
		StartedAt:        j.StartedAt.UTC().Format(time.RFC3339),
		ErrorMessage:     strOrEmpty(j.ErrorMessage),
		IsDuplicate:      j.IsDuplicate,
		MatchScore:       int32(j.MatchScore),
		MatchedContactId: uuidOrEmpty(j.MatchedContactID),
		MatchReasons:     j.MatchReasons,
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	if len(j.ExtractedJSON) > 0 {
		var extracted extract.ExtractedContact
		if err := json.Unmarshal(j.ExtractedJSON, &extracted); err == nil {
			pb.Extracted = ToPBExtractedContact(extracted)
		}
	}
	return pb
}
