package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cardvault/cardvault/internal/entity"
)

func TestGenerateVCard(t *testing.T) {
	c := &entity.Contact{
		Name:      "John Smith",
		Company:   "Acme Corp",
		Phone:     "+1 415-555-0100",
		Email:     "john@acme.com",
		Website:   "https://www.acme.com",
		Address:   "123 Main Street, Springfield",
		Notes:     "met at conference",
		Tags:      []string{"client", "vendor"},
		UpdatedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	card := GenerateVCard(c)
	lines := strings.Split(card, "\r\n")

	assert.Equal(t, "BEGIN:VCARD", lines[0])
	assert.Equal(t, "VERSION:3.0", lines[1])
	assert.Equal(t, "END:VCARD", lines[len(lines)-1])

	assert.Contains(t, lines, "FN:John Smith")
	assert.Contains(t, lines, "N:Smith;John;;;")
	assert.Contains(t, lines, "ORG:Acme Corp")
	assert.Contains(t, lines, "TEL;TYPE=WORK,VOICE:+1 415-555-0100")
	assert.Contains(t, lines, "EMAIL:john@acme.com")
	assert.Contains(t, lines, "URL:https://www.acme.com")
	assert.Contains(t, lines, `ADR;TYPE=WORK:;;123 Main Street\, Springfield;;;;`)
	assert.Contains(t, lines, "NOTE:met at conference")
	assert.Contains(t, lines, "CATEGORIES:client,vendor")
	assert.Contains(t, lines, "REV:20260314T092653Z")
}

func TestGenerateVCardSingleWordName(t *testing.T) {
	card := GenerateVCard(&entity.Contact{Name: "Cher"})

	assert.Contains(t, card, "FN:Cher")
	assert.Contains(t, card, "N:Cher;;;;")
}

func TestGenerateVCardOmitsEmptyProperties(t *testing.T) {
	card := GenerateVCard(&entity.Contact{Name: "Jane Doe"})

	assert.NotContains(t, card, "ORG:")
	assert.NotContains(t, card, "TEL;")
	assert.NotContains(t, card, "EMAIL:")
	assert.NotContains(t, card, "ADR;")
	assert.NotContains(t, card, "CATEGORIES:")
}

func TestEscapeVCardValue(t *testing.T) {
	assert.Equal(t, `a\;b\,c\\d`, escapeVCardValue(`a;b,c\d`))
	assert.Equal(t, `line1\nline2`, escapeVCardValue("line1\nline2"))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "John_Smith.vcf", SanitizeFilename("John Smith", ".vcf"))
	assert.Equal(t, "contact.vcf", SanitizeFilename("///", ".vcf"))
	assert.Equal(t, "contacts-2026-08-28.xlsx", SanitizeFilename("contacts-2026-08-28", ".xlsx"))
}
