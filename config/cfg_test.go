package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	d := cfg.Diagrams
	if d.BaseDir != filepath.Clean("docs/diagrams") {
		t.Errorf("BaseDir = %q", d.BaseDir)
	}
	want := []string{"saw-scout-wave", "saw-bootstrap", "saw-check", "saw-status"}
	if strings.Join(d.Names, ",") != strings.Join(want, ",") {
		t.Errorf("Names = %v, want %v", d.Names, want)
	}
	if d.Extension != ".drawio" {
		t.Errorf("Extension = %q, want .drawio", d.Extension)
	}
	if d.Suffix != "-dark" {
		t.Errorf("Suffix = %q, want -dark", d.Suffix)
	}
	// must survive template processing unexpanded
	if d.OutputNameTemplate != "{{ .Name }}{{ .Suffix }}" {
		t.Errorf("OutputNameTemplate = %q", d.OutputNameTemplate)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("file level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `version: 1
diagrams:
  base_dir: `+dir+`
  names: [one, two]
  suffix: _night
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Diagrams.BaseDir != dir {
		t.Errorf("BaseDir = %q, want %q", cfg.Diagrams.BaseDir, dir)
	}
	if len(cfg.Diagrams.Names) != 2 || cfg.Diagrams.Names[0] != "one" {
		t.Errorf("Names = %v, want [one two]", cfg.Diagrams.Names)
	}
	if cfg.Diagrams.Suffix != "_night" {
		t.Errorf("Suffix = %q, want _night", cfg.Diagrams.Suffix)
	}
	// not mentioned in file - defaults stay
	if cfg.Diagrams.Extension != ".drawio" {
		t.Errorf("Extension = %q, want .drawio", cfg.Diagrams.Extension)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `version: 1
diagrams:
  base_dir: x
  invalid indent
`)
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	path := writeConfig(t, `version: 1
palette:
  fill: {}
`)
	_, err := LoadConfiguration(path)
	if err == nil {
		t.Fatal("Expected error for unknown fields")
	}
	if !strings.Contains(err.Error(), "palette") {
		t.Errorf("error should name unknown field, got: %v", err)
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"version", "version: 2\n"},
		{"empty names", "version: 1\ndiagrams:\n  names: []\n"},
		{"blank name", "version: 1\ndiagrams:\n  names: [\"\"]\n"},
		{"extension without dot", "version: 1\ndiagrams:\n  extension: drawio\n"},
		{"console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "saw-scout-wave") {
		t.Error("Prepared configuration misses default diagram names")
	}
	if !strings.Contains(string(data), "{{ .Name }}{{ .Suffix }}") {
		t.Error("Output name template must not be expanded")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("dumped configuration is not valid yaml: %v", err)
	}
	if back.Diagrams.Extension != cfg.Diagrams.Extension || len(back.Diagrams.Names) != len(cfg.Diagrams.Names) {
		t.Errorf("dumped configuration differs: %+v", back.Diagrams)
	}
}
