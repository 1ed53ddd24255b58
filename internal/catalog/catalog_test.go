package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Len() != 26 {
		t.Fatalf("expected 26 stop codes, got %d", c.Len())
	}
	if c.FallbackCode() != "CRITICAL_PROCESS_DIED" {
		t.Fatalf("unexpected fallback code %q", c.FallbackCode())
	}
	if c.Description("SYSTEM_SERVICE_EXCEPTION") != c.Description("CRITICAL_PROCESS_DIED") {
		t.Fatal("expected codes without a description to use the fallback text")
	}
	if !strings.Contains(c.Description("COFFEE_NOT_FOUND"), "COFFEE.SYS") {
		t.Fatalf("unexpected description: %q", c.Description("COFFEE_NOT_FOUND"))
	}
}

func TestStopCodesReturnsCopy(t *testing.T) {
	c := Default()
	codes := c.StopCodes()
	codes[0] = "MUTATED"

	if c.StopCodes()[0] != "CRITICAL_PROCESS_DIED" {
		t.Fatal("StopCodes must not expose internal state")
	}
}

func TestLookupNormalizes(t *testing.T) {
	c := Default()

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"critical-process-died", "CRITICAL_PROCESS_DIED", true},
		{"CRITICAL_PROCESS_DIED", "CRITICAL_PROCESS_DIED", true},
		{"Coffee_Not-Found", "COFFEE_NOT_FOUND", true},
		{"  coffee-not-found ", "COFFEE_NOT_FOUND", true},
		{"not-a-real-code", "NOT_A_REAL_CODE", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := c.Lookup(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewValidation(t *testing.T) {
	valid := func() Data {
		return Data{
			StopCodes:        []string{"A_CODE", "b-code"},
			Descriptions:     map[string]string{"A_CODE": "a description"},
			FallbackCode:     "a-code",
			TechnicalDetails: []string{"detail"},
			ScanPrompts:      []string{"prompt"},
		}
	}

	t.Run("accepts valid data", func(t *testing.T) {
		c, err := New(valid())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := c.StopCodes(); got[1] != "B_CODE" {
			t.Fatalf("expected normalized stop code, got %q", got[1])
		}
		if c.Description("B_CODE") != "a description" {
			t.Fatalf("expected fallback description, got %q", c.Description("B_CODE"))
		}
	})

	cases := []struct {
		name   string
		mutate func(*Data)
		want   string
	}{
		{"empty stop codes", func(d *Data) { d.StopCodes = nil }, "stop_codes"},
		{"empty technical details", func(d *Data) { d.TechnicalDetails = nil }, "technical_details"},
		{"empty scan prompts", func(d *Data) { d.ScanPrompts = nil }, "scan_prompts"},
		{"duplicate stop code", func(d *Data) { d.StopCodes = []string{"A_CODE", "a-code"} }, "duplicate"},
		{"blank stop code", func(d *Data) { d.StopCodes = append(d.StopCodes, " ") }, "blank"},
		{"missing fallback", func(d *Data) { d.FallbackCode = "B_CODE" }, "fallback_code"},
		{"unknown description", func(d *Data) { d.Descriptions["C_CODE"] = "x" }, "unknown stop code"},
		{"blank technical detail", func(d *Data) { d.TechnicalDetails = []string{""} }, "technical_details[0]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid()
			tc.mutate(&d)
			_, err := New(d)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path uses built-in catalog", func(t *testing.T) {
		c, err := LoadFile("")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if c.Len() != Default().Len() {
			t.Fatalf("expected built-in catalog, got %d codes", c.Len())
		}
	})

	t.Run("reads YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		doc := `stop_codes:
  - TABS_VERSUS_SPACES
  - printer-on-fire
descriptions:
  TABS_VERSUS_SPACES: The holy war has reached your kernel.
fallback_code: TABS_VERSUS_SPACES
technical_details:
  - "Failed driver: INDENT.SYS"
scan_prompts:
  - Scan to pick a side
`
		if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
			t.Fatalf("write catalog: %v", err)
		}

		c, err := LoadFile(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := c.Lookup("printer-on-fire"); !ok {
			t.Fatal("expected PRINTER_ON_FIRE to be in the catalog")
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := Parse([]byte("stop_code: [A]\n"))
		if err == nil || !strings.Contains(err.Error(), "decode catalog") {
			t.Fatalf("expected decode error, got %v", err)
		}
	})

	t.Run("rejects invalid catalog", func(t *testing.T) {
		_, err := Parse([]byte("stop_codes: [A]\nfallback_code: A\ntechnical_details: [x]\nscan_prompts: [y]\n"))
		if err == nil || !strings.Contains(err.Error(), "invalid catalog") {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
