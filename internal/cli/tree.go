package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/pipeline"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	format   string // dot or svg
	output   string // output file; stdout when empty
	detailed bool   // add dimensions and comments to node labels
	noCache  bool
}

// treeCommand creates the tree command for drawing statement trees.
func (c *CLI) treeCommand() *cobra.Command {
	opts := treeOpts{format: pipeline.FormatDOT}

	cmd := &cobra.Command{
		Use:   "tree <model.toml>",
		Short: "Draw the statement tree of a model as DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTreeFormat(opts.format); err != nil {
				return err
			}
			return c.runTree(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show dimensions and comments")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func validateTreeFormat(format string) error {
	if format != pipeline.FormatDOT && format != pipeline.FormatSVG {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be dot or svg)", format)
	}
	return nil
}

func (c *CLI) runTree(ctx context.Context, stdout io.Writer, input string, opts treeOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache, "")
	if err != nil {
		return err
	}
	defer runner.Close()

	data, err := c.readModel(input)
	if err != nil {
		return err
	}
	result, err := runner.Execute(ctx, data, pipeline.Options{
		Source:   input,
		Formats:  []string{opts.format},
		Detailed: opts.detailed,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	out := result.Artifacts[opts.format]
	if opts.output == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := afero.WriteFile(c.fs, opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Drew %s", input)
	printFile(opts.output)
	return nil
}
