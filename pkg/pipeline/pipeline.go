// Package pipeline provides the core diagram pipeline for slidegeom.
//
// This package implements the complete build → route → validate →
// render flow that can be used by CLI and API components. By
// centralizing this logic, we ensure consistent behavior across all
// entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: select a layout variant, compute geometry, route
//     connectors, and validate the result
//  2. Render: generate output artifacts in various formats
//     (JSON, SVG, PNG, PDF, DOT)
//
// Each stage can be run independently or as part of the complete
// pipeline. Builds are pure: the same request always produces the
// same geometry, which makes both stages safely cacheable.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Formats: []string{"svg"}}
//	run, err := runner.Execute(ctx, req, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := run.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/slidegeom/slidegeom/pkg/diagram"
)

const (
	// DefaultScale is the default pixels-per-canvas-unit factor for
	// SVG output.
	DefaultScale = 80.0

	// DefaultPNGScale is the default PNG resolution multiplier.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatJSON   = "json"
	FormatSVG    = "svg"
	FormatPNG    = "png"
	FormatPDF    = "pdf"
	FormatDOT    = "dot"
	FormatDOTSVG = "dotsvg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:   true,
	FormatSVG:    true,
	FormatPNG:    true,
	FormatPDF:    true,
	FormatDOT:    true,
	FormatDOTSVG: true,
}

// Options contains all configuration for the diagram pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	PNGScale   float64  `json:"png_scale,omitempty"`
	Background string   `json:"background,omitempty"`
	Detailed   bool     `json:"detailed,omitempty"` // verbose DOT node labels
	Refresh    bool     `json:"refresh,omitempty"`  // bypass cache reads

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Run contains the outputs of a pipeline execution.
type Run struct {
	// Result is the built diagram: shapes, connectors, metadata, and
	// the validation report.
	Result *diagram.Result

	// RequestHash is the content hash of the canonical request.
	RequestHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ShapeCount     int
	ConnectorCount int
	BuildTime      time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	BuildHit  bool // whether the built diagram came from cache
	RenderHit bool // whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, svg, png, pdf, dot, dotsvg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
