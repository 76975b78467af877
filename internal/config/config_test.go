package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Verbose {
		t.Error("Expected Verbose to be false")
	}

	if cfg.Input.AllowDecimal {
		t.Error("Expected AllowDecimal to be false")
	}

	if cfg.Compat.LegacyDivision {
		t.Error("Expected LegacyDivision to be false")
	}

	if !cfg.Output.BlankLineAfterResult() {
		t.Error("Expected a blank line after results by default")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Test loading with no config file (should return defaults)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := Default()
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("Config loaded without file mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "calc.yaml")

	configContent := `
verbose: true
input:
  allowDecimal: true
compat:
  legacyDivision: true
output:
  trailingBlankLine: false`

	if err := os.WriteFile(configFile, []byte(configContent), 0600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !cfg.Verbose {
		t.Error("Expected Verbose to be true")
	}

	if !cfg.Input.AllowDecimal {
		t.Error("Expected AllowDecimal to be true")
	}

	if !cfg.Compat.LegacyDivision {
		t.Error("Expected LegacyDivision to be true")
	}

	if cfg.Output.BlankLineAfterResult() {
		t.Error("Expected trailing blank line to be disabled")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "calc.yaml")

	if err := os.WriteFile(configFile, []byte("verbose: true\n"), 0600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := Default()
	expected.Verbose = true

	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	invalid := filepath.Join(tmpDir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("input: [not, a, map"), 0600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	typo := filepath.Join(tmpDir, "typo.yaml")
	if err := os.WriteFile(typo, []byte("compat:\n  legacyDivison: true\n"), 0600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	tests := []struct {
		name        string
		file        string
		errContains string
	}{
		{"missing file", filepath.Join(tmpDir, "missing.yaml"), "failed to read config file"},
		{"invalid yaml", invalid, "failed to parse YAML config file"},
		{"unknown field", typo, "legacyDivison"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.file)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Expected error to contain %q, got %v", tt.errContains, err)
			}
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configFile, nil, 0600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nested", DefaultFile)

	cfg := Default()
	cfg.Input.AllowDecimal = true

	if err := cfg.Save(configFile); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := Load(configFile)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}

	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("Saved config mismatch (-want +got):\n%s", diff)
	}
}
