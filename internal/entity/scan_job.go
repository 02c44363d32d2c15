package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanJob represents one submitted card scan for data transfer between layers.
type ScanJob struct {
	ID               uuid.UUID  `json:"id"`
	OwnerID          uuid.UUID  `json:"owner_id"`
	ContactID        *uuid.UUID `json:"contact_id,omitempty"`
	RawText          string     `json:"raw_text"`
	Source           string     `json:"source"`
	Status           string     `json:"status"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	ExtractedJSON    []byte     `json:"extracted_json,omitempty"`
	IsDuplicate      bool       `json:"is_duplicate"`
	MatchScore       int        `json:"match_score"`
	MatchedContactID *uuid.UUID `json:"matched_contact_id,omitempty"`
	MatchReasons     []string   `json:"match_reasons,omitempty"`
}
