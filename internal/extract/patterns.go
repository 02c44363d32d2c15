package extract

import "regexp"

// Regular expression patterns for field detection. These mirror the shapes
// OCR output actually produces: emails and URLs may be glued to surrounding
// junk, phone numbers come in every punctuation style.
var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Loose on purpose: strict validation happens against the country list.
	rePhone = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{2,4}[-.\s]?\d{2,4}`)

	reWebsite = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:[a-z0-9][a-z0-9\-]*\.)+[a-z]{2,}(?:/\S*)?`)

	reCompanyKeywords = regexp.MustCompile(`(?i)(?:inc\.?|corp\.?|llc|ltd\.?|limited|company|co\.|group|solutions|technologies|services|consulting|enterprises?|international|global)`)

	reTitleKeywords = regexp.MustCompile(`(?i)(?:ceo|cto|cfo|coo|president|director|manager|vp|vice\s*president|founder|partner|associate|analyst|engineer|developer|consultant|executive|officer|head\s+of|chief)`)

	reAddressKeywords = regexp.MustCompile(`(?i)(?:street|st\.|avenue|ave\.|road|rd\.|boulevard|blvd\.|drive|dr\.|lane|ln\.|way|court|ct\.|suite|ste\.|floor|building|bldg)`)

	reZipCode    = regexp.MustCompile(`\b\d{5}(-\d{4})?\b`)
	reUKPostcode = regexp.MustCompile(`(?i)\b[A-Z]{1,2}\d{1,2}[A-Z]?\s*\d[A-Z]{2}\b`)
	reCityState  = regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`)

	reNonDigit    = regexp.MustCompile(`\D`)
	reTrailingURL = regexp.MustCompile(`/.*$`)
)

// countryOrder is the fixed validation order for phone parsing. Order
// matters: the first country under which a candidate validates decides the
// international formatting.
var countryOrder = []string{"US", "GB", "CA", "AU", "DE", "FR", "IN", "JP", "CN", "BR"}
