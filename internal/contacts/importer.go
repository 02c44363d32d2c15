package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cardvault/cardvault/constants"
	"github.com/cardvault/cardvault/internal/dedupe"
	"github.com/cardvault/cardvault/internal/repository"
)

// BackupContact is one entry of an exported backup file.
type BackupContact struct {
	Name       string   `json:"name"`
	Company    string   `json:"company,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Email      string   `json:"email,omitempty"`
	Address    string   `json:"address,omitempty"`
	Website    string   `json:"website,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	ScanSource string   `json:"scan_source,omitempty"`
}

// ImportResult summarises a backup import run.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []string
}

// Importer restores contacts from a JSON backup payload.
type Importer struct {
	Logger   *slog.Logger
	Contacts repository.ContactRepository
	Matcher  *dedupe.Matcher
}

func NewImporter(logger *slog.Logger, contacts repository.ContactRepository, matcher *dedupe.Matcher) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	if matcher == nil {
		matcher = dedupe.NewMatcher(dedupe.DefaultConfig())
	}
	return &Importer{Logger: logger, Contacts: contacts, Matcher: matcher}
}

// ImportJSON validates the payload, skips entries that duplicate an existing
// contact and inserts the rest. Per-entry failures are collected rather than
// aborting the whole import.
func (i *Importer) ImportJSON(ctx context.Context, ownerID uuid.UUID, payload []byte) (*ImportResult, error) {
	if _, err := ValidatePayload(payload, BuildBackupSchema()); err != nil {
		return nil, err
	}

	var entries []BackupContact
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("decode backup entries: %w", err)
	}

	existing, err := i.Contacts.List(ctx, ownerID, repository.ListContactsFilter{})
	if err != nil {
		return nil, fmt.Errorf("list existing contacts: %w", err)
	}

	result := &ImportResult{}
	for idx, entry := range entries {
		entry = sanitizeEntry(entry)
		if entry.Name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("entry %d: empty name after trimming", idx))
			continue
		}

		match := i.Matcher.FindDuplicate(dedupe.Candidate{
			Name:    entry.Name,
			Company: entry.Company,
			Phone:   entry.Phone,
			Email:   entry.Email,
		}, existing)
		if match.IsDuplicate {
			i.Logger.Info("import.skip_duplicate",
				"entry", idx, "score", match.MatchScore, "matched", match.MatchedContact.ID)
			result.Skipped++
			continue
		}

		source := constants.SourceManual
		if parsed, ok := constants.ParseScanSource(entry.ScanSource); ok {
			source = parsed
		}

		created, err := i.Contacts.Create(ctx, &repository.CreateContactRequest{
			OwnerID:    ownerID,
			Name:       entry.Name,
			Company:    entry.Company,
			Phone:      entry.Phone,
			Email:      entry.Email,
			Address:    entry.Address,
			Website:    entry.Website,
			Tags:       entry.Tags,
			Notes:      entry.Notes,
			ScanSource: string(source),
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("entry %d: %v", idx, err))
			continue
		}
		existing = append(existing, created)
		result.Imported++
	}

	i.Logger.Info("import.done",
		"imported", result.Imported, "skipped", result.Skipped, "errors", len(result.Errors))
	return result, nil
}

func sanitizeEntry(e BackupContact) BackupContact {
	e.Name = strings.TrimSpace(e.Name)
	e.Company = strings.TrimSpace(e.Company)
	e.Phone = strings.TrimSpace(e.Phone)
	e.Email = strings.TrimSpace(strings.ToLower(e.Email))
	e.Address = strings.TrimSpace(e.Address)
	e.Website = strings.TrimSpace(e.Website)
	e.Notes = strings.TrimSpace(e.Notes)

	tags := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		tag, _ := constants.CanonicalizeTag(t)
		tags = append(tags, string(tag))
	}
	e.Tags = tags
	return e
}
