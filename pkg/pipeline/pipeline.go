// Package pipeline turns model files into output artifacts.
//
// The CLI and the HTTP server both run the same load → build → render
// sequence through a [Runner], which adds caching, logging and
// observability hooks around the core packages:
//
//  1. Load: decode the TOML model and build dimension-checked trees ([model])
//  2. Render: produce each requested format (OpenSCAD text, DOT, SVG)
//
// Artifacts are cached by the hash of the model source, so an unchanged model
// skips both stages.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, data, pipeline.Options{
//	    Source:  "bracket.toml",
//	    Formats: []string{pipeline.FormatSCAD},
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("bracket.scad", result.Artifacts[pipeline.FormatSCAD], 0644)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/model"
)

// Output formats.
const (
	FormatSCAD = "scad"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatSCAD, FormatDOT, FormatSVG}

// Options configures one pipeline run.
type Options struct {
	// Source names the model in logs and hooks, e.g. its path.
	Source string `json:"source,omitempty"`
	// Formats to produce. Defaults to scad.
	Formats []string `json:"formats,omitempty"`
	// Detailed adds dimension tags and comments to tree diagrams.
	Detailed bool `json:"detailed,omitempty"`
	// Refresh ignores cached artifacts but still stores new ones.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ModelHash is the content hash of the model source.
	ModelHash string

	// Model is the decoded model. It is nil when every artifact came from
	// the cache.
	Model *model.Model

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which formats were served from the cache.
type CacheInfo struct {
	Hits map[string]bool
}

// AllHit reports whether every artifact came from the cache.
func (c CacheInfo) AllHit() bool {
	if len(c.Hits) == 0 {
		return false
	}
	for _, hit := range c.Hits {
		if !hit {
			return false
		}
	}
	return true
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// Duplicate formats are dropped.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSCAD}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)
	if o.Source == "" {
		o.Source = "<input>"
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

func dedupe(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if !slices.Contains(out, x) {
			out = append(out, x)
		}
	}
	return out
}
