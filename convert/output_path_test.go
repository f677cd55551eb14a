package convert

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"mxdark/config"
)

func TestBuildOutputPath(t *testing.T) {
	log := zaptest.NewLogger(t)
	dir := filepath.Join("docs", "diagrams")

	tests := []struct {
		name     string
		suffix   string
		template string
		want     string
	}{
		{"default template", "-dark", "{{ .Name }}{{ .Suffix }}", "saw-check-dark.drawio"},
		{"no template", "-dark", "", "saw-check-dark.drawio"},
		{"custom suffix", ".night", "{{ .Name }}{{ .Suffix }}", "saw-check.night.drawio"},
		{"sprig functions", "-dark", "{{ .Name | upper }}{{ .Suffix }}", "SAW-CHECK-dark.drawio"},
		{"prefix", "-dark", "dark-{{ .Name }}", "dark-saw-check.drawio"},
		{"broken template", "-dark", "{{ .Name", "saw-check-dark.drawio"},
		{"unknown value", "-dark", "{{ .Missing }}", "saw-check-dark.drawio"},
		{"empty expansion", "-dark", "{{ \"\" }}", "saw-check-dark.drawio"},
		{"separators removed", "-dark", "sub/{{ .Name }}", "subsaw-check.drawio"},
		{"reserved characters removed", "-dark", "{{ .Name }}:{{ .Suffix }}?", "saw-check-dark.drawio"},
		{"nothing usable left", "-dark", "../", "saw-check-dark.drawio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.DiagramsConfig{Suffix: tt.suffix, OutputNameTemplate: tt.template}
			got, err := buildOutputPath(dir, "saw-check", ".drawio", cfg, log)
			if err != nil {
				t.Fatalf("buildOutputPath() error = %v", err)
			}
			if want := filepath.Join(dir, tt.want); got != want {
				t.Errorf("buildOutputPath() = %q, want %q", got, want)
			}
		})
	}
}

func TestBuildOutputPath_BadName(t *testing.T) {
	log := zaptest.NewLogger(t)

	cfg := &config.DiagramsConfig{Suffix: "..", OutputNameTemplate: "{{ .Name }}{{ .Suffix }}"}
	if got, err := buildOutputPath("docs", "..", ".drawio", cfg, log); !errors.Is(err, config.ErrBadFileName) {
		t.Errorf("buildOutputPath() = %q, %v, want ErrBadFileName", got, err)
	}
}

func TestSplitDiagramPath(t *testing.T) {
	dir, name, ext := splitDiagramPath(filepath.Join("a", "b", "flow.v2.drawio"))
	if dir != filepath.Join("a", "b") || name != "flow.v2" || ext != ".drawio" {
		t.Errorf("splitDiagramPath() = %q, %q, %q", dir, name, ext)
	}

	dir, name, ext = splitDiagramPath("flow")
	if dir != "." || name != "flow" || ext != "" {
		t.Errorf("splitDiagramPath(flow) = %q, %q, %q", dir, name, ext)
	}
}
