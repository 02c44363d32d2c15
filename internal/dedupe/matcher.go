// Package dedupe decides whether a candidate contact already exists in an
// address book, using exact normalized equality for email and phone and
// edit-distance similarity for name and company.
//
// Scoring is additive per field; an exact email match alone reaches the
// duplicate threshold, every other signal needs corroboration.
package dedupe

import (
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/cardvault/cardvault/internal/entity"
)

// Candidate is the partial contact being checked. Empty fields are simply
// not compared.
type Candidate struct {
	Name    string
	Company string
	Phone   string
	Email   string
}

// Result is the matcher's verdict. MatchedContact is the single
// highest-scoring existing contact, or nil when nothing scored above zero.
type Result struct {
	IsDuplicate    bool            `json:"is_duplicate"`
	MatchedContact *entity.Contact `json:"matched_contact,omitempty"`
	MatchScore     int             `json:"match_score"`
	MatchReasons   []string        `json:"match_reasons"`
}

// Config holds the matcher's points and thresholds. Empirically tuned;
// change through config, not by editing the scoring.
type Config struct {
	EmailPoints   int
	PhonePoints   int
	NamePoints    int
	CompanyPoints int

	NameThreshold      float64
	CompanyThreshold   float64
	DuplicateThreshold int

	// PhoneLastDigits is how many trailing digits phone equality compares.
	PhoneLastDigits int
}

// DefaultConfig returns the tuned defaults. The duplicate threshold
// deliberately equals the email points: an email collision is decisive on
// its own, nothing else is.
func DefaultConfig() Config {
	return Config{
		EmailPoints:        50,
		PhonePoints:        40,
		NamePoints:         35,
		CompanyPoints:      15,
		NameThreshold:      0.85,
		CompanyThreshold:   0.80,
		DuplicateThreshold: 50,
		PhoneLastDigits:    10,
	}
}

// Matcher scores candidates against existing contacts. Construct with
// NewMatcher; the zero value is not usable.
type Matcher struct {
	cfg Config
}

// NewMatcher builds a Matcher, filling unset config fields with defaults.
func NewMatcher(cfg Config) *Matcher {
	def := DefaultConfig()
	if cfg.EmailPoints <= 0 {
		cfg.EmailPoints = def.EmailPoints
	}
	if cfg.PhonePoints <= 0 {
		cfg.PhonePoints = def.PhonePoints
	}
	if cfg.NamePoints <= 0 {
		cfg.NamePoints = def.NamePoints
	}
	if cfg.CompanyPoints <= 0 {
		cfg.CompanyPoints = def.CompanyPoints
	}
	if cfg.NameThreshold <= 0 {
		cfg.NameThreshold = def.NameThreshold
	}
	if cfg.CompanyThreshold <= 0 {
		cfg.CompanyThreshold = def.CompanyThreshold
	}
	if cfg.DuplicateThreshold <= 0 {
		cfg.DuplicateThreshold = def.DuplicateThreshold
	}
	if cfg.PhoneLastDigits <= 0 {
		cfg.PhoneLastDigits = def.PhoneLastDigits
	}
	return &Matcher{cfg: cfg}
}

// FindDuplicate scores candidate against all existing contacts with
// default configuration.
func FindDuplicate(candidate Candidate, existing []*entity.Contact) Result {
	return NewMatcher(Config{}).FindDuplicate(candidate, existing)
}

// FindDuplicate returns the best-matching existing contact. The first
// contact to reach the highest score keeps it; later ties do not displace
// it. An empty existing list is "no duplicate", never an error.
func (m *Matcher) FindDuplicate(candidate Candidate, existing []*entity.Contact) Result {
	highestScore := 0
	var matched *entity.Contact
	var matchReasons []string

	for _, contact := range existing {
		score, reasons := m.score(candidate, contact)
		if score > highestScore {
			highestScore = score
			matched = contact
			matchReasons = reasons
		}
	}

	return Result{
		IsDuplicate:    highestScore >= m.cfg.DuplicateThreshold,
		MatchedContact: matched,
		MatchScore:     highestScore,
		MatchReasons:   matchReasons,
	}
}

func (m *Matcher) score(candidate Candidate, contact *entity.Contact) (int, []string) {
	score := 0
	var reasons []string

	if candidate.Email != "" && contact.Email != "" {
		if normalizeEmail(candidate.Email) == normalizeEmail(contact.Email) {
			score += m.cfg.EmailPoints
			reasons = append(reasons, "Same email address")
		}
	}

	if candidate.Phone != "" && contact.Phone != "" {
		a := normalizePhone(candidate.Phone, m.cfg.PhoneLastDigits)
		b := normalizePhone(contact.Phone, m.cfg.PhoneLastDigits)
		if a != "" && a == b {
			score += m.cfg.PhonePoints
			reasons = append(reasons, "Same phone number")
		}
	}

	if candidate.Name != "" && contact.Name != "" {
		sim := similarity(normalizeName(candidate.Name), normalizeName(contact.Name))
		if sim > m.cfg.NameThreshold {
			score += int(math.Round(float64(m.cfg.NamePoints) * sim))
			reasons = append(reasons, "Similar name")
		}
	}

	if candidate.Company != "" && contact.Company != "" {
		sim := similarity(normalizeCompany(candidate.Company), normalizeCompany(contact.Company))
		if sim > m.cfg.CompanyThreshold {
			score += int(math.Round(float64(m.cfg.CompanyPoints) * sim))
			reasons = append(reasons, "Same company")
		}
	}

	return score, reasons
}

// similarity is a normalized inverse edit distance in [0,1]:
// (maxLen - distance) / maxLen over runes. Strings empty after
// normalization never match.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}
