package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldConfidence is the per-field OCR confidence snapshot taken when the
// contact was created from a scan. Manual contacts carry all zeros.
type FieldConfidence struct {
	Name    float32 `json:"name"`
	Company float32 `json:"company"`
	Phone   float32 `json:"phone"`
	Email   float32 `json:"email"`
	Address float32 `json:"address"`
	Website float32 `json:"website"`
}

// Contact represents an address-book entry for data transfer between layers.
type Contact struct {
	ID         uuid.UUID       `json:"id"`
	OwnerID    uuid.UUID       `json:"owner_id"`
	Name       string          `json:"name"`
	Company    string          `json:"company,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Email      string          `json:"email,omitempty"`
	Address    string          `json:"address,omitempty"`
	Website    string          `json:"website,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Confidence FieldConfidence `json:"ocr_confidence"`
	ScanSource string          `json:"scan_source"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
