package constants

import (
	"strings"
)

type Tag string

const (
	TagClient   Tag = "client"
	TagVendor   Tag = "vendor"
	TagHR       Tag = "hr"
	TagPersonal Tag = "personal"
	TagOther    Tag = "other"
)

var allTags = []Tag{
	TagClient,
	TagVendor,
	TagHR,
	TagPersonal,
	TagOther,
}

func TagsAsStringSlice() []string {
	result := make([]string, len(allTags))
	for i, t := range allTags {
		result[i] = string(t)
	}
	return result
}

func CanonicalizeTag(input string) (Tag, bool) {
	if input == "" {
		return TagOther, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Tag{
		"customer":  TagClient,
		"clients":   TagClient,
		"supplier":  TagVendor,
		"partner":   TagVendor,
		"recruiter": TagHR,
		"friend":    TagPersonal,
		"family":    TagPersonal,
	}

	if t, ok := synonyms[normalized]; ok {
		return t, true
	}

	for _, t := range allTags {
		if normalized == string(t) {
			return t, true
		}
	}

	return TagOther, false
}
