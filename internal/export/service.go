package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/cardvault/cardvault/internal/repository"
)

// Service produces downloadable snapshots of an owner's address book.
type Service struct {
	contacts repository.ContactRepository
	logger   *slog.Logger
}

func NewService(contacts repository.ContactRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contacts: contacts, logger: logger}
}

// ExportContactsXLSX returns an XLSX workbook (as bytes) with one row per
// contact matching the filter.
func (s *Service) ExportContactsXLSX(ctx context.Context, ownerID uuid.UUID, filter repository.ListContactsFilter) ([]byte, error) {
	start := time.Now()

	rows, err := s.contacts.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Contacts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Company",
		"Phone",
		"Email",
		"Address",
		"Website",
		"Tags",
		"Notes",
		"Source",
		"Added",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.Name)
		write(2, c.Company)
		write(3, c.Phone)
		write(4, c.Email)
		write(5, c.Address)
		write(6, c.Website)
		write(7, strings.Join(c.Tags, ", "))
		write(8, truncate(c.Notes, 140))
		write(9, c.ScanSource)
		if !c.CreatedAt.IsZero() {
			write(10, c.CreatedAt.Format("2006-01-02"))
		} else {
			write(10, "")
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 24)
	_ = f.SetColWidth(sheet, "C", "C", 18)
	_ = f.SetColWidth(sheet, "D", "D", 28)
	_ = f.SetColWidth(sheet, "E", "E", 40)
	_ = f.SetColWidth(sheet, "F", "F", 28)
	_ = f.SetColWidth(sheet, "G", "G", 18)
	_ = f.SetColWidth(sheet, "H", "H", 48)
	_ = f.SetColWidth(sheet, "I", "J", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"owner_id", ownerID.String(),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportContactsVCard returns a VCARD 3.0 document with one card per contact
// matching the filter.
func (s *Service) ExportContactsVCard(ctx context.Context, ownerID uuid.UUID, filter repository.ListContactsFilter) ([]byte, error) {
	rows, err := s.contacts.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}

	cards := make([]string, 0, len(rows))
	for _, c := range rows {
		cards = append(cards, GenerateVCard(c))
	}

	s.logger.Info("export.vcard.ok",
		"owner_id", ownerID.String(),
		"rows", len(rows),
	)
	return []byte(strings.Join(cards, "\r\n")), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
