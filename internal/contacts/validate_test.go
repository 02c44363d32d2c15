package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayloadAcceptsWellFormedBackup(t *testing.T) {
	payload := []byte(`[
		{"name": "John Smith", "email": "john@acme.com", "tags": ["client"]},
		{"name": "Jane Doe", "scan_source": "UPLOAD"}
	]`)

	doc, err := ValidatePayload(payload, BuildBackupSchema())
	require.NoError(t, err)
	assert.Len(t, doc, 2)
}

func TestValidatePayloadRejectsMissingName(t *testing.T) {
	payload := []byte(`[{"email": "john@acme.com"}]`)

	_, err := ValidatePayload(payload, BuildBackupSchema())
	assert.Error(t, err)
}

func TestValidatePayloadRejectsUnknownKeys(t *testing.T) {
	payload := []byte(`[{"name": "John Smith", "fax": "555"}]`)

	_, err := ValidatePayload(payload, BuildBackupSchema())
	assert.Error(t, err)
}

func TestValidatePayloadRejectsNonArray(t *testing.T) {
	payload := []byte(`{"name": "John Smith"}`)

	_, err := ValidatePayload(payload, BuildBackupSchema())
	assert.Error(t, err)
}

func TestValidatePayloadRejectsBadEmail(t *testing.T) {
	payload := []byte(`[{"name": "John Smith", "email": "not-an-email"}]`)

	_, err := ValidatePayload(payload, BuildBackupSchema())
	assert.Error(t, err)
}

func TestValidatePayloadRejectsMalformedJSON(t *testing.T) {
	_, err := ValidatePayload([]byte(`[{`), BuildBackupSchema())
	assert.Error(t, err)
}
