package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"mxdark/config"
	"mxdark/drawio"
	"mxdark/state"
)

// Run converts all configured diagrams one after another. First failure
// stops processing.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	if cmd.Args().Len() > 0 {
		return fmt.Errorf("unknown command or unexpected arguments: %v", cmd.Args().Slice())
	}

	d := &env.Cfg.Diagrams
	log.Info("Processing starting", zap.String("dir", d.BaseDir), zap.Strings("diagrams", d.Names))

	start := time.Now()
	if err := processDiagrams(ctx, d, env.Rpt, log); err != nil {
		return err
	}
	log.Info("Processing completed", zap.Int("count", len(d.Names)), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Single converts one diagram specified on the command line.
func Single(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input diagram has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	dir, name, ext := splitDiagramPath(src)

	dst := cmd.Args().Get(1)
	switch {
	case len(dst) == 0:
		if dst, err = buildOutputPath(dir, name, ext, &env.Cfg.Diagrams, log); err != nil {
			return err
		}
	default:
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
		if fi, er := os.Stat(dst); er == nil && fi.IsDir() {
			if dst, err = buildOutputPath(dst, name, ext, &env.Cfg.Diagrams, log); err != nil {
				return err
			}
		}
	}
	return processDiagram(ctx, src, dst, env.Rpt, log)
}

func processDiagrams(ctx context.Context, d *config.DiagramsConfig, rpt *config.Report, log *zap.Logger) error {
	for _, name := range d.Names {
		if err := ctx.Err(); err != nil {
			return err
		}
		src := filepath.Join(d.BaseDir, name+d.Extension)
		dst, err := buildOutputPath(d.BaseDir, name, d.Extension, d, log)
		if err != nil {
			return err
		}
		if err := processDiagram(ctx, src, dst, rpt, log); err != nil {
			return fmt.Errorf("unable to convert diagram %q: %w", name, err)
		}
	}
	return nil
}

func processDiagram(ctx context.Context, src, dst string, rpt *config.Report, log *zap.Logger) error {
	if sameFile(src, dst) {
		return fmt.Errorf("output would overwrite source diagram: %s", src)
	}

	rpt.Store("source/"+filepath.Base(src), src)

	log.Debug("Conversion starting", zap.String("from", src), zap.String("to", dst))
	st, err := drawio.TransformFile(ctx, src, dst, log.Named("drawio"))
	if err != nil {
		return err
	}
	log.Debug("Conversion completed", zap.Int("roots", st.Roots), zap.Int("styles", st.Styles), zap.Int("changed", st.Changed))

	rpt.Store("result/"+filepath.Base(dst), dst)
	return nil
}

func sameFile(a, b string) bool {
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	if err1 != nil || err2 != nil {
		return a == b
	}
	return aa == bb
}
