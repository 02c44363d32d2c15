package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeTag(t *testing.T) {
	tests := []struct {
		input string
		want  Tag
		ok    bool
	}{
		{"client", TagClient, true},
		{" Client ", TagClient, true},
		{"customer", TagClient, true},
		{"supplier", TagVendor, true},
		{"recruiter", TagHR, true},
		{"family", TagPersonal, true},
		{"other", TagOther, true},
		{"archnemesis", TagOther, false},
		{"", TagOther, false},
	}

	for _, tc := range tests {
		got, ok := CanonicalizeTag(tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
	}
}

func TestParseScanSource(t *testing.T) {
	got, ok := ParseScanSource("upload")
	assert.True(t, ok)
	assert.Equal(t, SourceUpload, got)

	got, ok = ParseScanSource("fax")
	assert.False(t, ok)
	assert.Equal(t, SourceManual, got)
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "txt", NormalizeExt(".TXT"))
	assert.Equal(t, "ocr", NormalizeExt("ocr"))
}
