package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"mxdark/config"
)

// buildOutputPath returns path of the dark diagram produced from diagram
// "name" with extension "ext" located in "dir". Output always stays in the
// same directory, name comes either from the default scheme (name + suffix)
// or from user-defined template. Template producing unusable name falls back
// to the default scheme.
func buildOutputPath(dir, name, ext string, cfg *config.DiagramsConfig, log *zap.Logger) (string, error) {
	defaultPath := func() (string, error) {
		n, err := config.CleanFileName(name + cfg.Suffix)
		if err != nil {
			return "", fmt.Errorf("unable to name output for diagram %q: %w", name, err)
		}
		return filepath.Join(dir, n+ext), nil
	}

	if cfg.OutputNameTemplate == "" {
		return defaultPath()
	}

	expanded, err := expandTemplate(config.OutputNameTemplateFieldName, cfg.OutputNameTemplate,
		Values{Name: name, Suffix: cfg.Suffix, Ext: ext})
	if err != nil {
		log.Warn("Unable to prepare output file name, using default", zap.String("diagram", name), zap.Error(err))
		return defaultPath()
	}
	expanded = strings.TrimSpace(expanded)
	if expanded == "" {
		return defaultPath()
	}
	n, err := config.CleanFileName(expanded)
	if err != nil {
		log.Warn("Output file name is not usable, using default", zap.String("diagram", name), zap.String("expanded", expanded), zap.Error(err))
		return defaultPath()
	}
	return filepath.Join(dir, n+ext), nil
}

// splitDiagramPath breaks path to diagram into directory, base name and
// extension.
func splitDiagramPath(path string) (dir, name, ext string) {
	dir, file := filepath.Split(path)
	ext = filepath.Ext(file)
	return filepath.Clean(dir), strings.TrimSuffix(file, ext), ext
}
