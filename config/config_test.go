package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/c360studio/ontograph/export"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Extraction.MinTermLength != 3 {
		t.Errorf("expected min term length 3, got %d", cfg.Extraction.MinTermLength)
	}
	if cfg.Hierarchy.MaxDepth != 8 {
		t.Errorf("expected hierarchy max depth 8, got %d", cfg.Hierarchy.MaxDepth)
	}
	if cfg.Export.Format != export.FormatTurtle {
		t.Errorf("expected default format turtle, got %s", cfg.Export.Format)
	}
	if cfg.Export.Profile != export.ProfileSKOS {
		t.Errorf("expected default profile skos, got %s", cfg.Export.Profile)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero term length",
			modify:  func(c *Config) { c.Extraction.MinTermLength = 0 },
			wantErr: true,
		},
		{
			name:    "inverted specificity bands",
			modify:  func(c *Config) { c.Hierarchy.SpecificityLow = 0.9 },
			wantErr: true,
		},
		{
			name:    "unknown export format",
			modify:  func(c *Config) { c.Export.Format = "rdfxml" },
			wantErr: true,
		},
		{
			name:    "unknown export profile",
			modify:  func(c *Config) { c.Export.Profile = "full" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
extraction:
  min_term_length: 4
  min_strength: 0.4
hierarchy:
  max_depth: 6
validation:
  max_roots: 3
export:
  format: "jsonld"
  profile: "bfo"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Extraction.MinTermLength != 4 {
		t.Errorf("expected min term length 4, got %d", cfg.Extraction.MinTermLength)
	}
	if cfg.Extraction.MinStrength != 0.4 {
		t.Errorf("expected min strength 0.4, got %f", cfg.Extraction.MinStrength)
	}
	if cfg.Hierarchy.MaxDepth != 6 {
		t.Errorf("expected max depth 6, got %d", cfg.Hierarchy.MaxDepth)
	}
	if cfg.Validation.MaxRoots != 3 {
		t.Errorf("expected max roots 3, got %d", cfg.Validation.MaxRoots)
	}
	if cfg.Export.Format != export.FormatJSONLD {
		t.Errorf("expected format jsonld, got %s", cfg.Export.Format)
	}
	// Unset fields keep defaults.
	if cfg.Extraction.MaxPhraseWords != 3 {
		t.Errorf("expected max phrase words to remain 3, got %d", cfg.Extraction.MaxPhraseWords)
	}
}

func TestLoadFromFile_MissingFileMatchesNotExist(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	// The loader distinguishes a simply-absent file from a broken one, so
	// the wrapped error must still match fs.ErrNotExist.
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v should match fs.ErrNotExist", err)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{}
	override.Extraction.MinTermLength = 5
	override.Export.Profile = export.ProfileBFO

	base.Merge(override)

	if base.Extraction.MinTermLength != 5 {
		t.Errorf("expected min term length 5, got %d", base.Extraction.MinTermLength)
	}
	if base.Export.Profile != export.ProfileBFO {
		t.Errorf("expected profile bfo, got %s", base.Export.Profile)
	}
	// Fields the override left zero keep their base values.
	if base.Extraction.MaxPhraseWords != 3 {
		t.Errorf("expected max phrase words to remain 3, got %d", base.Extraction.MaxPhraseWords)
	}
	if base.Hierarchy.MaxDepth != 8 {
		t.Errorf("expected hierarchy max depth to remain 8, got %d", base.Hierarchy.MaxDepth)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Extraction.MinTermLength = 4

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Extraction.MinTermLength != 4 {
		t.Errorf("expected min term length 4, got %d", loaded.Extraction.MinTermLength)
	}
}
