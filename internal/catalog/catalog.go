package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStopCode is returned when an identifier does not name a catalog entry.
var ErrUnknownStopCode = errors.New("unknown stop code")

// Catalog is the immutable reference data pages are built from.
type Catalog struct {
	stopCodes        []string
	index            map[string]struct{}
	descriptions     map[string]string
	fallbackCode     string
	technicalDetails []string
	scanPrompts      []string
}

// Data is the raw content of a catalog before validation.
type Data struct {
	StopCodes        []string          `yaml:"stop_codes"`
	Descriptions     map[string]string `yaml:"descriptions"`
	FallbackCode     string            `yaml:"fallback_code"`
	TechnicalDetails []string          `yaml:"technical_details"`
	ScanPrompts      []string          `yaml:"scan_prompts"`
}

// New validates d and builds a Catalog from it. Stop codes are stored in their
// normalized form.
func New(d Data) (*Catalog, error) {
	if len(d.StopCodes) == 0 {
		return nil, fmt.Errorf("stop_codes cannot be empty")
	}
	if len(d.TechnicalDetails) == 0 {
		return nil, fmt.Errorf("technical_details cannot be empty")
	}
	if len(d.ScanPrompts) == 0 {
		return nil, fmt.Errorf("scan_prompts cannot be empty")
	}

	c := &Catalog{
		stopCodes:        make([]string, 0, len(d.StopCodes)),
		index:            make(map[string]struct{}, len(d.StopCodes)),
		descriptions:     make(map[string]string, len(d.Descriptions)),
		technicalDetails: append([]string(nil), d.TechnicalDetails...),
		scanPrompts:      append([]string(nil), d.ScanPrompts...),
	}

	for _, raw := range d.StopCodes {
		code := Normalize(raw)
		if code == "" {
			return nil, fmt.Errorf("stop code %q is blank", raw)
		}
		if _, exists := c.index[code]; exists {
			return nil, fmt.Errorf("duplicate stop code %q", code)
		}
		c.index[code] = struct{}{}
		c.stopCodes = append(c.stopCodes, code)
	}

	for raw, text := range d.Descriptions {
		code := Normalize(raw)
		if _, ok := c.index[code]; !ok {
			return nil, fmt.Errorf("description for unknown stop code %q", raw)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		c.descriptions[code] = text
	}

	c.fallbackCode = Normalize(d.FallbackCode)
	if c.descriptions[c.fallbackCode] == "" {
		return nil, fmt.Errorf("fallback_code %q must have a non-empty description", d.FallbackCode)
	}

	for i, s := range c.technicalDetails {
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("technical_details[%d] is blank", i)
		}
	}
	for i, s := range c.scanPrompts {
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("scan_prompts[%d] is blank", i)
		}
	}

	return c, nil
}

// Normalize upper-cases an identifier and treats '-' as '_'.
func Normalize(raw string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(raw)), "-", "_")
}

// StopCodes returns a copy of the identifiers in catalog order.
func (c *Catalog) StopCodes() []string {
	return append([]string(nil), c.stopCodes...)
}

// Len returns the number of stop codes.
func (c *Catalog) Len() int {
	return len(c.stopCodes)
}

// Lookup resolves a raw identifier to its catalog form.
func (c *Catalog) Lookup(raw string) (string, bool) {
	code := Normalize(raw)
	_, ok := c.index[code]
	return code, ok
}

// Description returns the text registered for code, or the fallback description.
func (c *Catalog) Description(code string) string {
	if d, ok := c.descriptions[code]; ok {
		return d
	}
	return c.descriptions[c.fallbackCode]
}

// FallbackCode returns the stop code whose description is used as the default.
func (c *Catalog) FallbackCode() string {
	return c.fallbackCode
}
