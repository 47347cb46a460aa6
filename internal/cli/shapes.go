package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scadgen/pkg/scad"
	"github.com/matzehuels/scadgen/pkg/shape"
)

// shapesCommand creates the shapes command listing the statement catalog.
func (c *CLI) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes [name]",
		Short: "List the statements a model can use",
		Long: `List the statements a model can use with their dimensions and parameters.

Required parameters are marked with *, positional ones are shown as <name> and
alternatives are separated by |.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := shape.Names()
			if len(args) == 1 {
				if len(shape.Variants(args[0])) == 0 {
					_, err := shape.Lookup(args[0], 0)
					return err
				}
				names = args
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), catalogTable(names))
			return err
		},
	}
}

// catalogRows returns one row per statement variant.
func catalogRows(names []string) [][]string {
	var rows [][]string
	for _, name := range names {
		for _, e := range shape.Variants(name) {
			dims := e.Dim.String()
			if e.Kind == shape.KindModifier {
				dims = e.Child.String() + " → " + dims
			}
			params := make([]string, len(e.Sig.Params))
			for i, p := range e.Sig.Params {
				params[i] = paramUsage(p)
			}
			rows = append(rows, []string{name, e.Kind.String(), dims, strings.Join(params, ", ")})
		}
	}
	return rows
}

func catalogTable(names []string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(colorCyan)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Statement", "Kind", "Dimension", "Parameters").
		Rows(catalogRows(names)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return nameStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}

// paramUsage formats a parameter as e.g. "r|d*" or "<v>*".
func paramUsage(p scad.ParamSpec) string {
	keys := p.Keys
	if len(keys) == 0 {
		keys = []string{p.Name}
	}
	var shown []string
	for _, k := range keys {
		if k == "" {
			k = "<" + p.Name + ">"
		}
		if !slices.Contains(shown, k) {
			shown = append(shown, k)
		}
	}
	s := strings.Join(shown, "|")
	if p.Required {
		s += "*"
	}
	return s
}
