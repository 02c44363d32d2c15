package constants

import "strings"

// ScanSource records how a contact entered the vault.
type ScanSource string

// Stable values (store these exact strings in DB).
const (
	SourceCamera ScanSource = "CAMERA"
	SourceUpload ScanSource = "UPLOAD"
	SourceManual ScanSource = "MANUAL"
)

var ScanSources = []ScanSource{SourceCamera, SourceUpload, SourceManual}

// ParseScanSource maps a loose string onto a canonical source; unknown
// values fall back to MANUAL.
func ParseScanSource(s string) (ScanSource, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(SourceCamera):
		return SourceCamera, true
	case string(SourceUpload):
		return SourceUpload, true
	case string(SourceManual):
		return SourceManual, true
	}
	return SourceManual, false
}

// AllowedIngestExtensions holds the file extensions accepted by the text
// drop-directory ingester.
var AllowedIngestExtensions = map[string]struct{}{
	"txt": {},
	"ocr": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
