package dedupe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardvault/cardvault/internal/entity"
)

func contact(name, company, phone, email string) *entity.Contact {
	return &entity.Contact{
		ID:      uuid.New(),
		Name:    name,
		Company: company,
		Phone:   phone,
		Email:   email,
	}
}

func TestFindDuplicateEmptyAddressBook(t *testing.T) {
	result := FindDuplicate(Candidate{Name: "John Smith"}, nil)

	assert.False(t, result.IsDuplicate)
	assert.Nil(t, result.MatchedContact)
	assert.Equal(t, 0, result.MatchScore)
	assert.Empty(t, result.MatchReasons)
}

func TestFindDuplicateSameEmail(t *testing.T) {
	existing := []*entity.Contact{
		contact("Alice Wong", "Globex", "+44 20 7946 0999", "john@acme.com"),
	}

	result := FindDuplicate(Candidate{
		Name:  "Jon Smythe",
		Phone: "+1 212 555 0187",
		Email: "  John@Acme.COM ",
	}, existing)

	assert.True(t, result.IsDuplicate)
	assert.GreaterOrEqual(t, result.MatchScore, 50)
	require.NotNil(t, result.MatchedContact)
	assert.Equal(t, existing[0].ID, result.MatchedContact.ID)
	assert.Contains(t, result.MatchReasons, "Same email address")
}

func TestFindDuplicateSamePhoneLastTenDigits(t *testing.T) {
	existing := []*entity.Contact{
		contact("Alice Wong", "", "(415) 555-0100", ""),
	}

	result := FindDuplicate(Candidate{
		Name:  "Bob Jones",
		Phone: "+1 415.555.0100",
	}, existing)

	assert.False(t, result.IsDuplicate)
	assert.Equal(t, 40, result.MatchScore)
	assert.Contains(t, result.MatchReasons, "Same phone number")
}

func TestFindDuplicateSimilarNameBelowThreshold(t *testing.T) {
	existing := []*entity.Contact{
		contact("John Smyth", "Initech", "", ""),
		contact("Zelda Quux", "", "", ""),
	}

	// similarity 0.90 gives round(35*0.90) = 32 which is below the
	// duplicate threshold, but the candidate is still surfaced.
	result := FindDuplicate(Candidate{Name: "John Smith"}, existing)

	assert.False(t, result.IsDuplicate)
	assert.Equal(t, 32, result.MatchScore)
	require.NotNil(t, result.MatchedContact)
	assert.Equal(t, existing[0].ID, result.MatchedContact.ID)
	assert.Equal(t, []string{"Similar name"}, result.MatchReasons)
}

func TestFindDuplicateScoreIsMonotonic(t *testing.T) {
	emailOnly := []*entity.Contact{
		contact("Alice Wong", "", "", "john@acme.com"),
	}
	emailAndPhone := []*entity.Contact{
		contact("Alice Wong", "", "415 555 0100", "john@acme.com"),
	}

	candidate := Candidate{
		Name:  "John Smith",
		Phone: "415 555 0100",
		Email: "john@acme.com",
	}

	base := FindDuplicate(candidate, emailOnly)
	more := FindDuplicate(candidate, emailAndPhone)

	assert.True(t, base.IsDuplicate)
	assert.GreaterOrEqual(t, more.MatchScore, base.MatchScore)
}

func TestFindDuplicateFirstOfTiedScoresWins(t *testing.T) {
	first := contact("John Smith", "", "", "")
	second := contact("John Smith", "", "", "")

	result := FindDuplicate(Candidate{Name: "John Smith"},
		[]*entity.Contact{first, second})

	require.NotNil(t, result.MatchedContact)
	assert.Equal(t, first.ID, result.MatchedContact.ID)
}

func TestFindDuplicateSuffixOnlyCompanyNeverMatches(t *testing.T) {
	// "Inc." and "LLC" both normalize to the empty string; that must not
	// count as a company match.
	existing := []*entity.Contact{
		contact("Alice Wong", "LLC", "", ""),
	}

	result := FindDuplicate(Candidate{
		Name:    "Bob Jones",
		Company: "Inc.",
	}, existing)

	assert.False(t, result.IsDuplicate)
	assert.Equal(t, 0, result.MatchScore)
	assert.Empty(t, result.MatchReasons)
}

func TestNormalizeCompanyStripsLegalSuffixes(t *testing.T) {
	assert.Equal(t, normalizeCompany("Acme Corp Inc."), normalizeCompany("acme"))
	assert.Equal(t, "acme", normalizeCompany("Acme, Ltd."))
}

func TestNormalizePhoneKeepsLastTenDigits(t *testing.T) {
	assert.Equal(t, normalizePhone("+1 (415) 555-0100", 10), normalizePhone("415.555.0100", 10))
	assert.Equal(t, "", normalizePhone("no digits here", 10))
}

func TestNewMatcherFillsDefaults(t *testing.T) {
	m := NewMatcher(Config{DuplicateThreshold: 70})

	assert.Equal(t, 70, m.cfg.DuplicateThreshold)
	assert.Equal(t, 50, m.cfg.EmailPoints)
	assert.Equal(t, 0.85, m.cfg.NameThreshold)
}
