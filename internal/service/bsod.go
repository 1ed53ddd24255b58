package service

import (
	"github.com/blue-screen-of-app/internal/analytics"
	"github.com/blue-screen-of-app/internal/catalog"
	"github.com/blue-screen-of-app/internal/model"
	"github.com/blue-screen-of-app/internal/qr"
)

const (
	defaultLang = "en"
	maxLangLen  = 16
)

// BSODService builds failure pages and API records.
type BSODService struct {
	selector     *catalog.Selector
	codes        *qr.Generator
	analytics    *analytics.Aggregator
	defaultQRURL string
}

// NewBSODService creates a BSODService. A nil generator disables scannable codes.
func NewBSODService(selector *catalog.Selector, codes *qr.Generator, agg *analytics.Aggregator, defaultQRURL string) *BSODService {
	return &BSODService{
		selector:     selector,
		codes:        codes,
		analytics:    agg,
		defaultQRURL: defaultQRURL,
	}
}

// PageRequest carries the page query parameters.
type PageRequest struct {
	Style    string
	Code     string
	Override model.Override
	QRURL    string
	Lang     string
}

// Page is everything the presentation layer needs to render one page.
type Page struct {
	model.ErrorRecord
	Style  model.Style
	QRCode string // empty when the code is omitted
	Lang   string
}

// Page selects a record, applies overrides, attaches a scannable code and
// records the visit. Unknown stop codes fall back to a random record.
func (s *BSODService) Page(req PageRequest) Page {
	style := model.ParseStyle(req.Style)
	rec := ApplyOverrides(s.selector.Select(req.Code), req.Override)

	var code string
	if s.codes != nil {
		target := req.QRURL
		if target == "" {
			target = s.defaultQRURL
		}
		code, _ = s.codes.Encode(target)
	}

	s.analytics.TrackVisit(string(style), rec.StopCode, req.Override.IsCustom())

	return Page{
		ErrorRecord: rec,
		Style:       style,
		QRCode:      code,
		Lang:        normalizeLang(req.Lang),
	}
}

// RandomError returns a random record.
func (s *BSODService) RandomError() model.ErrorRecord {
	return s.selector.Random()
}

// ErrorByCode returns the record for code or a not-found error.
func (s *BSODService) ErrorByCode(code string) (model.ErrorRecord, error) {
	rec, err := s.selector.ByIdentifier(code)
	if err != nil {
		return model.ErrorRecord{}, NewNotFound("not_found", "Error code not found", err)
	}
	return rec, nil
}

// StopCodes lists every catalog identifier.
func (s *BSODService) StopCodes() []string {
	return s.selector.Catalog().StopCodes()
}

// RandomStyle picks one of the supported styles.
func (s *BSODService) RandomStyle() model.Style {
	return catalog.Pick(s.selector.Rand(), model.Styles())
}

func normalizeLang(raw string) string {
	if raw == "" || len(raw) > maxLangLen {
		return defaultLang
	}
	for _, r := range raw {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '-') {
			return defaultLang
		}
	}
	return raw
}
