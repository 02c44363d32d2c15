// Package extract turns raw OCR text from a photographed business card
// into typed contact fields, each with a heuristic confidence score.
//
// The heuristics are ordered: email and phone are claimed first from the
// full text, the website scan excludes the email's domain, and the
// line-oriented name/company passes skip lines already attributed to other
// fields. The extractor is pure; identical input yields identical output.
package extract

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// Config holds the extractor's tunable confidences and limits. These were
// chosen empirically; change them through config, not by editing the
// heuristics.
type Config struct {
	EmailConfidence           float32
	PhoneStrictConfidence     float32
	PhoneLooseConfidence      float32
	WebsiteConfidence         float32
	AddressConfidence         float32
	NameConfidence            float32
	NameFromEmailConfidence   float32
	CompanyKeywordConfidence  float32
	CompanyPositionConfidence float32

	// NameMaxLines bounds how deep the name heuristic looks into the card.
	NameMaxLines int
	// MinLooseDigits/MaxLooseDigits bound the phone digit-count fallback.
	MinLooseDigits int
	MaxLooseDigits int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		EmailConfidence:           0.98,
		PhoneStrictConfidence:     0.95,
		PhoneLooseConfidence:      0.75,
		WebsiteConfidence:         0.90,
		AddressConfidence:         0.70,
		NameConfidence:            0.80,
		NameFromEmailConfidence:   0.50,
		CompanyKeywordConfidence:  0.85,
		CompanyPositionConfidence: 0.60,
		NameMaxLines:              5,
		MinLooseDigits:            10,
		MaxLooseDigits:            15,
	}
}

// Extractor runs the field detection pipeline. The zero value is not
// usable; construct with NewExtractor.
type Extractor struct {
	cfg Config
}

// NewExtractor builds an Extractor, filling unset config fields with the
// defaults.
func NewExtractor(cfg Config) *Extractor {
	def := DefaultConfig()
	if cfg.EmailConfidence <= 0 {
		cfg.EmailConfidence = def.EmailConfidence
	}
	if cfg.PhoneStrictConfidence <= 0 {
		cfg.PhoneStrictConfidence = def.PhoneStrictConfidence
	}
	if cfg.PhoneLooseConfidence <= 0 {
		cfg.PhoneLooseConfidence = def.PhoneLooseConfidence
	}
	if cfg.WebsiteConfidence <= 0 {
		cfg.WebsiteConfidence = def.WebsiteConfidence
	}
	if cfg.AddressConfidence <= 0 {
		cfg.AddressConfidence = def.AddressConfidence
	}
	if cfg.NameConfidence <= 0 {
		cfg.NameConfidence = def.NameConfidence
	}
	if cfg.NameFromEmailConfidence <= 0 {
		cfg.NameFromEmailConfidence = def.NameFromEmailConfidence
	}
	if cfg.CompanyKeywordConfidence <= 0 {
		cfg.CompanyKeywordConfidence = def.CompanyKeywordConfidence
	}
	if cfg.CompanyPositionConfidence <= 0 {
		cfg.CompanyPositionConfidence = def.CompanyPositionConfidence
	}
	if cfg.NameMaxLines <= 0 {
		cfg.NameMaxLines = def.NameMaxLines
	}
	if cfg.MinLooseDigits <= 0 {
		cfg.MinLooseDigits = def.MinLooseDigits
	}
	if cfg.MaxLooseDigits <= 0 {
		cfg.MaxLooseDigits = def.MaxLooseDigits
	}
	return &Extractor{cfg: cfg}
}

// Extract runs the full pipeline with default configuration.
func Extract(rawText string) ExtractedContact {
	return NewExtractor(Config{}).Extract(rawText)
}

// Extract segments rawText into the six contact fields. It never fails:
// input with no recognizable signal yields all fields empty with
// confidence 0.
func (e *Extractor) Extract(rawText string) ExtractedContact {
	lines := splitLines(rawText)

	email := e.extractEmail(rawText)
	phone := e.extractPhone(rawText)
	website := e.extractWebsite(rawText, email.Value)
	address := e.extractAddress(lines)
	name := e.extractName(lines, email.Value, phone.Value)
	company := e.extractCompany(lines, name.Value)

	return ExtractedContact{
		Name:    name,
		Company: company,
		Phone:   phone,
		Email:   email,
		Address: address,
		Website: website,
	}
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func (e *Extractor) extractEmail(text string) ExtractedField {
	for _, match := range reEmail.FindAllString(text, -1) {
		parts := strings.Split(match, "@")
		if len(parts) != 2 || parts[0] == "" || !strings.Contains(parts[1], ".") {
			continue
		}
		return ExtractedField{
			Value:      strings.ToLower(match),
			Confidence: e.cfg.EmailConfidence,
			SourceText: match,
		}
	}
	return ExtractedField{}
}

func (e *Extractor) extractPhone(text string) ExtractedField {
	for _, match := range rePhone.FindAllString(text, -1) {
		// Strict pass: the first country under which the candidate
		// validates decides the formatting.
		for _, region := range countryOrder {
			num, err := phonenumbers.Parse(match, region)
			if err != nil {
				continue
			}
			if phonenumbers.IsValidNumber(num) {
				return ExtractedField{
					Value:      phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
					Confidence: e.cfg.PhoneStrictConfidence,
					SourceText: match,
				}
			}
		}

		// Loose fallback: digit count in a plausible range.
		digits := reNonDigit.ReplaceAllString(match, "")
		if len(digits) >= e.cfg.MinLooseDigits && len(digits) <= e.cfg.MaxLooseDigits {
			return ExtractedField{
				Value:      strings.TrimSpace(match),
				Confidence: e.cfg.PhoneLooseConfidence,
				SourceText: match,
			}
		}
	}
	return ExtractedField{}
}

func (e *Extractor) extractWebsite(text, excludeEmail string) ExtractedField {
	emailDomain := ""
	if excludeEmail != "" {
		if at := strings.Index(excludeEmail, "@"); at >= 0 {
			emailDomain = excludeEmail[at+1:]
		}
	}

	for _, match := range reWebsite.FindAllString(text, -1) {
		// Email fragments and the email's own bare domain are not
		// websites; a www-prefixed or pathed URL on the same domain is.
		if strings.Contains(match, "@") {
			continue
		}
		bare := strings.ToLower(match)
		bare = strings.TrimPrefix(bare, "http://")
		bare = strings.TrimPrefix(bare, "https://")
		bare = strings.TrimSuffix(bare, "/")
		if emailDomain != "" && bare == emailDomain {
			continue
		}
		if !validTLD(match) {
			continue
		}

		website := match
		if !strings.HasPrefix(website, "http") {
			website = "https://" + website
		}
		return ExtractedField{
			Value:      strings.ToLower(website),
			Confidence: e.cfg.WebsiteConfidence,
			SourceText: match,
		}
	}
	return ExtractedField{}
}

func validTLD(url string) bool {
	parts := strings.Split(url, ".")
	tld := strings.ToLower(parts[len(parts)-1])
	tld = reTrailingURL.ReplaceAllString(tld, "")
	if len(tld) < 2 || len(tld) > 6 {
		return false
	}
	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func (e *Extractor) extractAddress(lines []string) ExtractedField {
	var addressLines []string
	for _, line := range lines {
		switch {
		case reAddressKeywords.MatchString(line):
			addressLines = append(addressLines, line)
		case reZipCode.MatchString(line) || reUKPostcode.MatchString(line):
			addressLines = append(addressLines, line)
		case reCityState.MatchString(line):
			addressLines = append(addressLines, line)
		}
	}

	if len(addressLines) == 0 {
		return ExtractedField{}
	}
	return ExtractedField{
		Value:      strings.Join(addressLines, ", "),
		Confidence: e.cfg.AddressConfidence,
		SourceText: strings.Join(addressLines, "\n"),
	}
}

func (e *Extractor) extractName(lines []string, email, phone string) ExtractedField {
	phoneDigits := reNonDigit.ReplaceAllString(phone, "")
	if len(phoneDigits) > 6 {
		phoneDigits = phoneDigits[:6]
	}

	// The name is usually near the top, on a line no other heuristic has
	// claimed.
	limit := e.cfg.NameMaxLines
	if limit > len(lines) {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if reEmail.MatchString(line) {
			continue
		}
		if reWebsite.MatchString(line) {
			continue
		}
		if phoneDigits != "" && strings.Contains(line, phoneDigits) {
			continue
		}
		if reCompanyKeywords.MatchString(line) {
			continue
		}
		if reAddressKeywords.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		// A short line that is only a job title is not a name.
		if reTitleKeywords.MatchString(line) && len(words) <= 3 {
			continue
		}

		// A plausible name line has two to five words, mostly letters.
		if len(words) >= 2 && len(words) <= 5 && letterRatio(line) > 0.8 {
			return ExtractedField{
				Value:      line,
				Confidence: e.cfg.NameConfidence,
				SourceText: line,
			}
		}
	}

	// Fall back to the email local part: "jane.doe@" reads as "Jane Doe".
	if email != "" {
		local := email[:strings.Index(email, "@")]
		parts := strings.FieldsFunc(local, func(r rune) bool {
			return r == '.' || r == '_' || r == '-'
		})
		var nameParts []string
		for _, p := range parts {
			if len(p) > 1 {
				nameParts = append(nameParts, titleCase(p))
			}
		}
		if len(nameParts) >= 2 {
			return ExtractedField{
				Value:      strings.Join(nameParts, " "),
				Confidence: e.cfg.NameFromEmailConfidence,
				SourceText: email,
			}
		}
	}

	return ExtractedField{}
}

func (e *Extractor) extractCompany(lines []string, excludeName string) ExtractedField {
	// Keyword pass wins over position even when a positional line would
	// also qualify.
	for _, line := range lines {
		if line == excludeName {
			continue
		}
		if reCompanyKeywords.MatchString(line) {
			return ExtractedField{
				Value:      line,
				Confidence: e.cfg.CompanyKeywordConfidence,
				SourceText: line,
			}
		}
	}

	// Positional pass: the company is often printed right under the name.
	end := 4
	if end > len(lines) {
		end = len(lines)
	}
	if len(lines) > 1 {
		for _, line := range lines[1:end] {
			if line == excludeName {
				continue
			}
			if reEmail.MatchString(line) {
				continue
			}
			if reWebsite.MatchString(line) {
				continue
			}
			if reTitleKeywords.MatchString(line) {
				continue
			}
			words := strings.Fields(line)
			if len(words) >= 1 && len(words) <= 6 && hasUppercase(line) {
				return ExtractedField{
					Value:      line,
					Confidence: e.cfg.CompanyPositionConfidence,
					SourceText: line,
				}
			}
		}
	}

	return ExtractedField{}
}

// letterRatio is the share of letters and spaces among all characters.
func letterRatio(line string) float64 {
	total := 0
	letters := 0
	for _, r := range line {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == ' ' || r == '\t' {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}

func hasUppercase(line string) bool {
	for _, r := range line {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
