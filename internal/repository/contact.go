package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/cardvault/cardvault/gen/ent"
	"github.com/cardvault/cardvault/gen/ent/contact"
	"github.com/cardvault/cardvault/internal/entity"
	"github.com/cardvault/cardvault/internal/utils"
)

// CreateContactRequest wraps parameters for creating a contact.
type CreateContactRequest struct {
	OwnerID    uuid.UUID
	Name       string
	Company    string
	Phone      string
	Email      string
	Address    string
	Website    string
	Tags       []string
	Notes      string
	Confidence entity.FieldConfidence
	ScanSource string
}

// UpdateContactRequest carries partial updates; nil fields are untouched.
type UpdateContactRequest struct {
	Name    *string
	Company *string
	Phone   *string
	Email   *string
	Address *string
	Website *string
	Tags    *[]string
	Notes   *string
}

// ListContactsFilter narrows and orders a contact listing.
type ListContactsFilter struct {
	Tags     []string
	Search   string
	SortBy   string // "name", "company" or "created_at" (default)
	SortDesc bool
	From     *time.Time
	To       *time.Time
}

type ContactRepository interface {
	Create(ctx context.Context, req *CreateContactRequest) (*entity.Contact, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contact, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req *UpdateContactRequest) (*entity.Contact, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, filter ListContactsFilter) ([]*entity.Contact, error)
}

type contactRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContactRepository(client *ent.Client, logger *slog.Logger) ContactRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &contactRepository{client: client, logger: logger}
}

func (r *contactRepository) Create(ctx context.Context, req *CreateContactRequest) (*entity.Contact, error) {
	confJSON, err := json.Marshal(req.Confidence)
	if err != nil {
		return nil, err
	}

	builder := r.client.Contact.Create().
		SetOwnerID(req.OwnerID).
		SetName(req.Name).
		SetOcrConfidence(confJSON).
		SetScanSource(req.ScanSource)

	if req.Company != "" {
		builder = builder.SetCompany(req.Company)
	}
	if req.Phone != "" {
		builder = builder.SetPhone(req.Phone)
	}
	if req.Email != "" {
		builder = builder.SetEmail(req.Email)
	}
	if req.Address != "" {
		builder = builder.SetAddress(req.Address)
	}
	if req.Website != "" {
		builder = builder.SetWebsite(req.Website)
	}
	if len(req.Tags) > 0 {
		builder = builder.SetTags(req.Tags)
	}
	if req.Notes != "" {
		builder = builder.SetNotes(req.Notes)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contact", "owner_id", req.OwnerID, "error", err)
		return nil, err
	}
	return utils.ToContact(c), nil
}

func (r *contactRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Contact, error) {
	c, err := r.client.Contact.Query().
		Where(contact.ID(id), contact.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToContact(c), nil
}

func (r *contactRepository) Update(ctx context.Context, ownerID, id uuid.UUID, req *UpdateContactRequest) (*entity.Contact, error) {
	// Scope the update to the owner before touching the row.
	if _, err := r.client.Contact.Query().
		Where(contact.ID(id), contact.OwnerID(ownerID)).
		Only(ctx); err != nil {
		return nil, err
	}

	builder := r.client.Contact.UpdateOneID(id)
	if req.Name != nil {
		builder = builder.SetName(*req.Name)
	}
	if req.Company != nil {
		builder = builder.SetCompany(*req.Company)
	}
	if req.Phone != nil {
		builder = builder.SetPhone(*req.Phone)
	}
	if req.Email != nil {
		builder = builder.SetEmail(*req.Email)
	}
	if req.Address != nil {
		builder = builder.SetAddress(*req.Address)
	}
	if req.Website != nil {
		builder = builder.SetWebsite(*req.Website)
	}
	if req.Tags != nil {
		builder = builder.SetTags(*req.Tags)
	}
	if req.Notes != nil {
		builder = builder.SetNotes(*req.Notes)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update contact", "contact_id", id, "error", err)
		return nil, err
	}
	return utils.ToContact(c), nil
}

func (r *contactRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	n, err := r.client.Contact.Delete().
		Where(contact.ID(id), contact.OwnerID(ownerID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete contact", "contact_id", id, "error", err)
		return err
	}
	if n == 0 {
		return &ent.NotFoundError{}
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context, ownerID uuid.UUID, filter ListContactsFilter) ([]*entity.Contact, error) {
	q := r.client.Contact.Query().Where(contact.OwnerID(ownerID))

	if filter.Search != "" {
		q = q.Where(contact.Or(
			contact.NameContainsFold(filter.Search),
			contact.CompanyContainsFold(filter.Search),
			contact.EmailContainsFold(filter.Search),
			contact.NotesContainsFold(filter.Search),
		))
	}
	if filter.From != nil {
		q = q.Where(contact.CreatedAtGTE(*filter.From))
	}
	if filter.To != nil {
		q = q.Where(contact.CreatedAtLTE(*filter.To))
	}

	var order []entsql.OrderTermOption
	if filter.SortDesc {
		order = append(order, entsql.OrderDesc())
	}
	switch filter.SortBy {
	case "name":
		q = q.Order(contact.ByName(order...))
	case "company":
		q = q.Order(contact.ByCompany(order...))
	default:
		q = q.Order(contact.ByCreatedAt(order...))
	}

	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list contacts", "owner_id", ownerID, "error", err)
		return nil, err
	}

	result := make([]*entity.Contact, 0, len(rows))
	for _, c := range rows {
		ec := utils.ToContact(c)
		// Tag membership is a JSON column; filter after the query.
		if len(filter.Tags) > 0 && !hasAnyTag(ec.Tags, filter.Tags) {
			continue
		}
		result = append(result, ec)
	}
	return result, nil
}

func hasAnyTag(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, t := range have {
		set[t] = struct{}{}
	}
	for _, t := range want {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
