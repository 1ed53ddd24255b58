package catalog

import (
	"math/rand/v2"

	"github.com/blue-screen-of-app/internal/model"
)

// Rand is the source of randomness used by a Selector.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Selector draws error records from a Catalog.
type Selector struct {
	catalog *Catalog
	rand    Rand
}

// NewSelector creates a Selector. A nil r uses the process-wide generator,
// which is safe for concurrent use.
func NewSelector(c *Catalog, r Rand) *Selector {
	if r == nil {
		r = globalRand{}
	}
	return &Selector{catalog: c, rand: r}
}

// Catalog returns the catalog the selector draws from.
func (s *Selector) Catalog() *Catalog {
	return s.catalog
}

// Random returns a record with every field drawn at random.
func (s *Selector) Random() model.ErrorRecord {
	return s.build(Pick(s.rand, s.catalog.stopCodes))
}

// ByIdentifier returns a record for the stop code named by raw. Only the stop
// code is fixed; the remaining fields are still drawn at random.
func (s *Selector) ByIdentifier(raw string) (model.ErrorRecord, error) {
	code, ok := s.catalog.Lookup(raw)
	if !ok {
		return model.ErrorRecord{}, ErrUnknownStopCode
	}
	return s.build(code), nil
}

// Select returns the record for raw when it names a catalog entry and a random
// record otherwise, including when raw is empty.
func (s *Selector) Select(raw string) model.ErrorRecord {
	if raw != "" {
		if rec, err := s.ByIdentifier(raw); err == nil {
			return rec
		}
	}
	return s.Random()
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// Rand returns the selector's randomness source.
func (s *Selector) Rand() Rand {
	return s.rand
}

func (s *Selector) build(code string) model.ErrorRecord {
	return model.ErrorRecord{
		StopCode:        code,
		Description:     s.catalog.Description(code),
		TechnicalDetail: Pick(s.rand, s.catalog.technicalDetails),
		ScanPrompt:      Pick(s.rand, s.catalog.scanPrompts),
		Percentage:      s.rand.IntN(101),
	}
}
