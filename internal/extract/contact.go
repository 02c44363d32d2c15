package extract

// ExtractedField is one detected value with a heuristic confidence.
// Confidence 0 means the field was not found and Value is empty.
type ExtractedField struct {
	Value      string  `json:"value"`
	Confidence float32 `json:"confidence"`
	SourceText string  `json:"source_text,omitempty"`
}

// ExtractedContact is the fixed-shape result of a card scan. All six
// fields are always present, even when empty.
type ExtractedContact struct {
	Name    ExtractedField `json:"name"`
	Company ExtractedField `json:"company"`
	Phone   ExtractedField `json:"phone"`
	Email   ExtractedField `json:"email"`
	Address ExtractedField `json:"address"`
	Website ExtractedField `json:"website"`
}

// Empty reports whether no field was detected at all.
func (c ExtractedContact) Empty() bool {
	return c.Name.Confidence == 0 &&
		c.Company.Confidence == 0 &&
		c.Phone.Confidence == 0 &&
		c.Email.Confidence == 0 &&
		c.Address.Confidence == 0 &&
		c.Website.Confidence == 0
}
