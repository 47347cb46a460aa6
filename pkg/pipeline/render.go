package pipeline

import (
	"context"

	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/model"
	"github.com/matzehuels/scadgen/pkg/render/treeviz"
)

// RenderFormat renders m without caching or hooks.
func RenderFormat(ctx context.Context, m *model.Model, format string, detailed bool) ([]byte, error) {
	switch format {
	case FormatSCAD:
		return []byte(m.String()), nil
	case FormatDOT:
		return []byte(treeviz.ToDOT(m.Objects, treeviz.Options{Detailed: detailed})), nil
	case FormatSVG:
		dot := treeviz.ToDOT(m.Objects, treeviz.Options{Detailed: detailed})
		svg, err := treeviz.RenderSVG(ctx, dot)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	}
	return nil, ValidateFormat(format)
}
