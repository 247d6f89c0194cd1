package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
version: "1.2"
format: json
color: never
archive: runs.db
fail_on: [D009, binops_infix_left]
`), "declcheck.yaml")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Format != FormatJSON || cfg.Color != ColorNever || cfg.Archive != "runs.db" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if len(cfg.FailOn) != 2 {
		t.Errorf("FailOn = %v", cfg.FailOn)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("version: 1.0.0\n"), "declcheck.yaml")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Format != FormatText || cfg.Color != ColorAuto || cfg.Archive != "" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bad yaml", "version: [", "parsing config"},
		{"missing version", "version: \"\"\nformat: text\n", "missing version"},
		{"bad version", "version: banana\n", "invalid version"},
		{"future version", "version: 2.0\n", "unsupported config version"},
		{"bad format", "version: 1.0\nformat: xml\n", "unknown format"},
		{"bad color", "version: 1.0\ncolor: sometimes\n", "unknown color mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.input), "declcheck.yaml")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(path, []byte("version: 1.0\nformat: yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("Format = %q", cfg.Format)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestFails(t *testing.T) {
	all := Default()
	if !all.Fails("D001", "invalid_index_in_element_ref") {
		t.Error("empty fail_on must fail on everything")
	}

	some := &Config{FailOn: []string{"d009", "binops_infix_left"}}
	tests := []struct {
		code, name string
		want       bool
	}{
		{"D009", "varname_element_count_mismatch", true},
		{"D007", "binops_infix_left", true},
		{"D001", "invalid_index_in_element_ref", false},
	}
	for _, tt := range tests {
		if got := some.Fails(tt.code, tt.name); got != tt.want {
			t.Errorf("Fails(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
