package catalog

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// sequenceRand replays fixed values, reduced modulo n.
type sequenceRand struct {
	values []int
	next   int
}

func (s *sequenceRand) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func TestRandomStaysInCatalog(t *testing.T) {
	c := Default()
	sel := NewSelector(c, rand.New(rand.NewPCG(1, 2)))

	for i := 0; i < 5000; i++ {
		rec := sel.Random()
		if rec.Percentage < 0 || rec.Percentage > 100 {
			t.Fatalf("percentage out of range: %d", rec.Percentage)
		}
		if _, ok := c.Lookup(rec.StopCode); !ok {
			t.Fatalf("stop code %q not in catalog", rec.StopCode)
		}
		if rec.Description == "" || rec.TechnicalDetail == "" || rec.ScanPrompt == "" {
			t.Fatalf("record has empty fields: %+v", rec)
		}
	}
}

func TestRandomUsesInjectedSource(t *testing.T) {
	c := Default()
	// stop code, technical detail, scan prompt, percentage
	sel := NewSelector(c, &sequenceRand{values: []int{9, 5, 1, 42}})

	rec := sel.Random()
	if rec.StopCode != "COFFEE_NOT_FOUND" {
		t.Fatalf("expected COFFEE_NOT_FOUND, got %q", rec.StopCode)
	}
	if rec.TechnicalDetail != "Memory dump: 0xC0FFEE" {
		t.Fatalf("unexpected technical detail %q", rec.TechnicalDetail)
	}
	if rec.ScanPrompt != "Scan for cat pictures" {
		t.Fatalf("unexpected scan prompt %q", rec.ScanPrompt)
	}
	if rec.Percentage != 42 {
		t.Fatalf("expected percentage 42, got %d", rec.Percentage)
	}
}

func TestRandomIsUniform(t *testing.T) {
	c := Default()
	sel := NewSelector(c, rand.New(rand.NewPCG(7, 11)))

	const perCode = 1000
	draws := perCode * c.Len()
	counts := make(map[string]int, c.Len())
	for i := 0; i < draws; i++ {
		counts[sel.Random().StopCode]++
	}

	if len(counts) != c.Len() {
		t.Fatalf("expected every stop code to be reachable, saw %d of %d", len(counts), c.Len())
	}
	for code, n := range counts {
		if n < perCode*7/10 || n > perCode*13/10 {
			t.Fatalf("stop code %s drawn %d times, expected about %d", code, n, perCode)
		}
	}
}

func TestByIdentifier(t *testing.T) {
	c := Default()
	sel := NewSelector(c, rand.New(rand.NewPCG(3, 4)))

	t.Run("normalizes case and separators", func(t *testing.T) {
		a, err := sel.ByIdentifier("critical-process-died")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		b, err := sel.ByIdentifier("CRITICAL_PROCESS_DIED")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if a.StopCode != b.StopCode || a.StopCode != "CRITICAL_PROCESS_DIED" {
			t.Fatalf("expected the same entry, got %q and %q", a.StopCode, b.StopCode)
		}
		if a.Description != c.Description("CRITICAL_PROCESS_DIED") {
			t.Fatalf("unexpected description %q", a.Description)
		}
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := sel.ByIdentifier("not-a-real-code")
		if !errors.Is(err, ErrUnknownStopCode) {
			t.Fatalf("expected ErrUnknownStopCode, got %v", err)
		}
	})

	t.Run("flavor fields stay random", func(t *testing.T) {
		seen := make(map[int]struct{})
		for i := 0; i < 200; i++ {
			rec, err := sel.ByIdentifier("coffee-not-found")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			seen[rec.Percentage] = struct{}{}
		}
		if len(seen) < 10 {
			t.Fatalf("expected varied percentages, got %d distinct values", len(seen))
		}
	})
}

func TestSelectFallsBackToRandom(t *testing.T) {
	c := Default()
	sel := NewSelector(c, rand.New(rand.NewPCG(5, 6)))

	for _, raw := range []string{"not-a-real-code", ""} {
		rec := sel.Select(raw)
		if _, ok := c.Lookup(rec.StopCode); !ok {
			t.Fatalf("Select(%q) returned stop code %q outside the catalog", raw, rec.StopCode)
		}
	}

	if rec := sel.Select("motivation-not-found"); rec.StopCode != "MOTIVATION_NOT_FOUND" {
		t.Fatalf("expected MOTIVATION_NOT_FOUND, got %q", rec.StopCode)
	}
}

func TestNilRandUsesGlobalSource(t *testing.T) {
	sel := NewSelector(Default(), nil)
	if _, ok := sel.Rand().(globalRand); !ok {
		t.Fatalf("expected global source, got %T", sel.Rand())
	}
	_ = sel.Random()
}
