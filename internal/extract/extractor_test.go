package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNoRecognizablePattern(t *testing.T) {
	contact := Extract("qwertyuiop")

	assert.True(t, contact.Empty())
	for _, f := range []ExtractedField{
		contact.Name, contact.Company, contact.Phone,
		contact.Email, contact.Address, contact.Website,
	} {
		assert.Equal(t, "", f.Value)
		assert.Equal(t, float32(0), f.Confidence)
	}
}

func TestExtractIsPure(t *testing.T) {
	raw := "John Smith\nAcme Corp Inc\njohn@acme.com\n+1 415-555-0100\nwww.acme.com"

	first := Extract(raw)
	second := Extract(raw)

	assert.Equal(t, first, second)
}

func TestExtractBusinessCard(t *testing.T) {
	raw := "John Smith\nAcme Corp Inc\njohn@acme.com\n+1 415-555-0100\nwww.acme.com"

	contact := Extract(raw)

	assert.Equal(t, "John Smith", contact.Name.Value)
	assert.Equal(t, float32(0.80), contact.Name.Confidence)

	assert.Contains(t, contact.Company.Value, "Acme Corp Inc")
	assert.Equal(t, float32(0.85), contact.Company.Confidence)

	assert.Equal(t, "john@acme.com", contact.Email.Value)
	assert.Equal(t, float32(0.98), contact.Email.Confidence)

	// Validated against the country list and reformatted.
	assert.Equal(t, "+1 415-555-0100", contact.Phone.Value)
	assert.Equal(t, float32(0.95), contact.Phone.Confidence)

	assert.Equal(t, "https://www.acme.com", contact.Website.Value)
	assert.Equal(t, float32(0.90), contact.Website.Confidence)
}

func TestExtractWebsiteExcludesEmailDomain(t *testing.T) {
	contact := Extract("jane@example.com\nexample.com")

	assert.Equal(t, "jane@example.com", contact.Email.Value)
	assert.NotEqual(t, "https://example.com", contact.Website.Value)
	assert.Equal(t, "", contact.Website.Value)
}

func TestExtractWebsitePicksDifferentDomain(t *testing.T) {
	contact := Extract("jane@example.com\nother.org")

	assert.Equal(t, "https://other.org", contact.Website.Value)
	assert.Equal(t, float32(0.90), contact.Website.Confidence)
}

func TestExtractEmailNormalizesToLower(t *testing.T) {
	contact := Extract("Reach me: Jane.Doe@Example.COM")

	assert.Equal(t, "jane.doe@example.com", contact.Email.Value)
	assert.Equal(t, "Jane.Doe@Example.COM", contact.Email.SourceText)
}

func TestExtractPhoneLooseFallback(t *testing.T) {
	contact := Extract("ref 000 000 0000")

	// Not valid in any supported country, but ten digits is plausible.
	require.NotEmpty(t, contact.Phone.Value)
	assert.Equal(t, float32(0.75), contact.Phone.Confidence)
}

func TestExtractAddressLines(t *testing.T) {
	contact := Extract("Acme Corp\n123 Main Street\nSpringfield, IL 62704")

	assert.Equal(t, "123 Main Street, Springfield, IL 62704", contact.Address.Value)
	assert.Equal(t, float32(0.70), contact.Address.Confidence)
}

func TestExtractNameFallsBackToEmailPrefix(t *testing.T) {
	contact := Extract("CEO\njohn.smith@example.com")

	assert.Equal(t, "John Smith", contact.Name.Value)
	assert.Equal(t, float32(0.50), contact.Name.Confidence)
	assert.Equal(t, "john.smith@example.com", contact.Name.SourceText)
}

func TestExtractNameSkipsJobTitleLine(t *testing.T) {
	raw := "Chief Executive Officer\nJane Doe\nInitech LLC"

	contact := Extract(raw)

	assert.Equal(t, "Jane Doe", contact.Name.Value)
	assert.Contains(t, contact.Company.Value, "Initech")
}

func TestNewExtractorFillsDefaults(t *testing.T) {
	e := NewExtractor(Config{EmailConfidence: 0.5})

	assert.Equal(t, float32(0.5), e.cfg.EmailConfidence)
	assert.Equal(t, float32(0.95), e.cfg.PhoneStrictConfidence)
	assert.Equal(t, 5, e.cfg.NameMaxLines)
}
