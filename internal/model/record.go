package model

// ErrorRecord is the content of a single rendered failure page.
type ErrorRecord struct {
	StopCode        string `json:"stop_code"`
	Description     string `json:"description"`
	TechnicalDetail string `json:"technical_detail"`
	ScanPrompt      string `json:"scan_prompt"`
	Percentage      int    `json:"percentage"`
}

// Override holds caller-supplied replacements for parts of an ErrorRecord.
// Percentage is kept raw; nil means the caller did not send it at all.
type Override struct {
	Description     string
	TechnicalDetail string
	Percentage      *string
}

// IsCustom reports whether the override carries custom text.
func (o Override) IsCustom() bool {
	return o.Description != "" || o.TechnicalDetail != ""
}
