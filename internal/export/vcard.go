package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cardvault/cardvault/internal/entity"
)

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9._\-]+`)

// GenerateVCard renders one contact as a VCARD 3.0 card. Lines are joined
// with CRLF as the format requires.
func GenerateVCard(c *entity.Contact) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + escapeVCardValue(c.Name),
		"N:" + structuredName(c.Name),
	}

	if c.Company != "" {
		lines = append(lines, "ORG:"+escapeVCardValue(c.Company))
	}
	if c.Phone != "" {
		lines = append(lines, "TEL;TYPE=WORK,VOICE:"+escapeVCardValue(c.Phone))
	}
	if c.Email != "" {
		lines = append(lines, "EMAIL:"+escapeVCardValue(c.Email))
	}
	if c.Website != "" {
		lines = append(lines, "URL:"+escapeVCardValue(c.Website))
	}
	if c.Address != "" {
		lines = append(lines, "ADR;TYPE=WORK:;;"+escapeVCardValue(c.Address)+";;;;")
	}
	if c.Notes != "" {
		lines = append(lines, "NOTE:"+escapeVCardValue(c.Notes))
	}
	if len(c.Tags) > 0 {
		escaped := make([]string, len(c.Tags))
		for i, t := range c.Tags {
			escaped[i] = escapeVCardValue(t)
		}
		lines = append(lines, "CATEGORIES:"+strings.Join(escaped, ","))
	}

	rev := c.UpdatedAt
	if rev.IsZero() {
		rev = time.Now().UTC()
	}
	lines = append(lines,
		"REV:"+rev.UTC().Format("20060102T150405Z"),
		"END:VCARD",
	)
	return strings.Join(lines, "\r\n")
}

// structuredName produces the N component, family name first. A single word
// goes into the family slot; everything before the last word is the given
// name.
func structuredName(full string) string {
	words := strings.Fields(strings.TrimSpace(full))
	switch len(words) {
	case 0:
		return ";;;;"
	case 1:
		return escapeVCardValue(words[0]) + ";;;;"
	default:
		family := words[len(words)-1]
		given := strings.Join(words[:len(words)-1], " ")
		return fmt.Sprintf("%s;%s;;;", escapeVCardValue(family), escapeVCardValue(given))
	}
}

// escapeVCardValue escapes the characters VCARD 3.0 reserves in property
// values.
func escapeVCardValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, ";", `\;`)
	v = strings.ReplaceAll(v, ",", `\,`)
	v = strings.ReplaceAll(v, "\r\n", `\n`)
	v = strings.ReplaceAll(v, "\n", `\n`)
	return v
}

// SanitizeFilename turns a contact name into a safe attachment filename.
func SanitizeFilename(name, ext string) string {
	base := reUnsafeFilename.ReplaceAllString(strings.TrimSpace(name), "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "contact"
	}
	return base + ext
}
