package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scadgen/pkg/buildinfo"
	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outputDir string // directory for .scad files; default is next to each model
	stdout    bool   // write to stdout instead of files
	noCache   bool   // bypass the cache entirely
	refresh   bool   // re-render and overwrite cached output
	stamp     bool   // prefix output with a generator comment
	highlight bool   // colorize stdout output
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <model.toml>...",
		Short: "Render model files to OpenSCAD source",
		Long: `Render model files to OpenSCAD source.

Each model.toml is written to model.scad next to it, or into --output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.outputDir == "" && c.config != nil {
				opts.outputDir = c.config.Render.OutputDir
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "output directory (default: next to each model)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "write OpenSCAD source to stdout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached output")
	cmd.Flags().BoolVar(&opts.stamp, "stamp", false, "add a generator comment to each file")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", false, "syntax-highlight --stdout output")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, inputs []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, opts.noCache, "")
	if err != nil {
		return err
	}
	defer runner.Close()

	if opts.outputDir != "" && !opts.stdout {
		if err := c.fs.MkdirAll(opts.outputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		prog := newProgress(logger)

		data, err := c.readModel(input)
		if err != nil {
			return err
		}
		result, err := runner.Execute(ctx, data, pipeline.Options{
			Source:  input,
			Formats: []string{pipeline.FormatSCAD},
			Refresh: opts.refresh,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}

		out := result.Artifacts[pipeline.FormatSCAD]
		if opts.stamp {
			out = stamp(out)
		}

		if opts.stdout {
			if opts.highlight {
				err = highlight(stdout, out)
			} else {
				_, err = stdout.Write(out)
			}
			if err != nil {
				return err
			}
			continue
		}

		path, err := outputPath(input, opts.outputDir, ".scad")
		if err != nil {
			return err
		}
		if err := afero.WriteFile(c.fs, path, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		prog.done("Rendered " + input)
		printSuccess("Rendered %s", input)
		printFile(path)
		printStats(result.Stats.NodeCount, result.CacheInfo.AllHit())
	}
	return nil
}

// readModel reads a model file, reporting a missing file with a coded error.
func (c *CLI) readModel(path string) ([]byte, error) {
	data, err := afero.ReadFile(c.fs, path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "model file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// outputPath derives the output file for input: its base name with ext,
// placed in dir or next to input when dir is empty.
func outputPath(input, dir, ext string) (string, error) {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ext
	if err := errors.ValidateOutputName(name); err != nil {
		return "", err
	}
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name), nil
}

// stamp prefixes OpenSCAD source with a generator comment.
func stamp(src []byte) []byte {
	header := "// Generated by " + buildinfo.Generator() + "\n\n"
	return append([]byte(header), src...)
}
