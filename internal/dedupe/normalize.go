package dedupe

import (
	"regexp"
	"strings"
)

var (
	reNonDigit    = regexp.MustCompile(`\D`)
	reWhitespace  = regexp.MustCompile(`\s+`)
	reLegalSuffix = regexp.MustCompile(`(?i)\b(inc\.?|corp\.?|llc|ltd\.?|limited|company|co\.?|group)\b`)
	rePunctuation = regexp.MustCompile(`[.,]`)
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePhone keeps only the last n digits so that "+1 (415) 555-0100"
// and "415.555.0100" compare equal.
func normalizePhone(phone string, lastDigits int) string {
	digits := reNonDigit.ReplaceAllString(phone, "")
	if len(digits) > lastDigits {
		digits = digits[len(digits)-lastDigits:]
	}
	return digits
}

func normalizeName(name string) string {
	return reWhitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), " ")
}

// normalizeCompany strips common legal-entity suffixes and punctuation so
// "Acme Corp." and "Acme" compare close.
func normalizeCompany(company string) string {
	s := strings.ToLower(company)
	s = reLegalSuffix.ReplaceAllString(s, "")
	s = rePunctuation.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return reWhitespace.ReplaceAllString(s, " ")
}
