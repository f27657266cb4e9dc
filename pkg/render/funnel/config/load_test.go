package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/funnelchart/pkg/errors"
)

const sampleTOML = `
values = [1000, 600, 250]
labels = ["Visits", "Sign-ups", "Purchases"]
displayPercentageChange = true
pPrecision = 2
sectionColor = ["#0498b3", "#03748a"]
pSectionFontColor = "#333"
fontWeight = 600
maxFontSize = 18
labelWidthPercent = 25.5
`

const sampleJSON = `{
  "values": [1000, 600, 250],
  "labels": ["Visits", "Sign-ups", "Purchases"],
  "pPrecision": 2,
  "sectionColor": ["#0498b3", "#03748a"],
  "pSectionFontColor": "#333",
  "fontWeight": 600,
  "maxFontSize": 18,
  "labelWidthPercent": 25.5
}`

func TestDecode(t *testing.T) {
	for _, tt := range []struct {
		format string
		data   string
	}{
		{FormatTOML, sampleTOML},
		{FormatJSON, sampleJSON},
	} {
		t.Run(tt.format, func(t *testing.T) {
			s, err := Decode([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			cfg, err := Resolve(s)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}

			if len(cfg.Values) != 3 || cfg.Values[2] != 250 {
				t.Errorf("Values = %v", cfg.Values)
			}
			if cfg.Label(1) != "Sign-ups" {
				t.Errorf("Label(1) = %q", cfg.Label(1))
			}
			if cfg.PPrecision != 2 {
				t.Errorf("PPrecision = %d, want 2", cfg.PPrecision)
			}
			if cfg.SectionColor.At(1) != "#03748a" || cfg.SectionColor.At(2) != "#0498b3" {
				t.Errorf("SectionColor = %v", cfg.SectionColor)
			}
			if cfg.PSectionFontColor.At(9) != "#333" {
				t.Errorf("PSectionFontColor = %v", cfg.PSectionFontColor)
			}
			if cfg.FontWeight != "600" {
				t.Errorf("FontWeight = %q, want 600", cfg.FontWeight)
			}
			if cfg.MaxFontSize != 18 || cfg.LabelWidthPercent != 25.5 {
				t.Errorf("MaxFontSize = %v, LabelWidthPercent = %v", cfg.MaxFontSize, cfg.LabelWidthPercent)
			}
			if !cfg.DisplayPercentageChange {
				t.Error("DisplayPercentageChange should be true")
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte("values = ["), FormatTOML); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad toml error = %v", err)
	}
	if _, err := Decode([]byte("{"), FormatJSON); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad json error = %v", err)
	}
	if _, err := Decode([]byte("{}"), "yaml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown format error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signup.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(s.Values) != 3 {
		t.Errorf("Values = %v", s.Values)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := Load(filepath.Join(dir, "chart.yaml")); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("bad extension error = %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"a.toml": FormatTOML,
		"a.json": FormatJSON,
		"a.JSON": FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
