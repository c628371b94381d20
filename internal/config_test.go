package internal

import (
	"testing"
	"time"
)

func timeInZone(loc *time.Location) (string, int) {
	return time.Date(2020, 1, 1, 0, 0, 0, 0, loc).Zone()
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestDocumentConfig_Zone(t *testing.T) {
	cases := []struct {
		offset string
		want   int
	}{
		{"-0500", -5 * 60 * 60},
		{"+0000", 0},
		{"+0530", 5*60*60 + 30*60},
	}
	for _, tc := range cases {
		cfg := DocumentConfig{UTCOffset: tc.offset}
		zone, err := cfg.Zone()
		if err != nil {
			t.Fatalf("Zone(%q): %v", tc.offset, err)
		}
		_, secs := timeInZone(zone)
		if secs != tc.want {
			t.Errorf("Zone(%q) offset = %d, want %d", tc.offset, secs, tc.want)
		}
	}
}

func TestDocumentConfig_InvalidOffset(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Document.UTCOffset = "EST"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for malformed offset")
	}
	if _, err := cfg.Document.Zone(); err == nil {
		t.Error("expected Zone error for malformed offset")
	}
}

func TestDocumentConfig_RequiredFields(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Document.Name = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty document name")
	}
}

func TestCatalogConfig_Enabled(t *testing.T) {
	var c CatalogConfig
	if c.Enabled() {
		t.Error("empty path should disable the catalog")
	}
	c.Path = "run.db"
	if !c.Enabled() {
		t.Error("non-empty path should enable the catalog")
	}
}
