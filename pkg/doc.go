// Package pkg provides the core libraries for slidegeom diagram layout.
//
// # Overview
//
// Slidegeom turns classified slide content into exact diagram geometry:
// positioned shapes, routed connectors, and per-element styling that a
// downstream renderer can draw without further decisions. The pkg
// directory is organized into four main areas:
//
//  1. [diagram] - Domain types (requests, shapes, connectors, features)
//  2. [layout], [route], [styles], [validate] - Geometry computation
//  3. [render] - Output formats (SVG, PDF, PNG, DOT)
//  4. [pipeline] - Orchestration (build → route → validate → render)
//
// # Architecture
//
// The typical data flow through slidegeom:
//
//	Classified Content (JSON/TOML/YAML)
//	         ↓
//	    [layout] package (variant selection + shape placement)
//	         ↓
//	    [route] package (connector anchoring and routing)
//	         ↓
//	    [validate] package (constraint checks)
//	         ↓
//	    SVG/PDF/PNG/DOT output
//
// # Quick Start
//
// Build a diagram and render it to SVG:
//
//	import (
//	    "github.com/slidegeom/slidegeom/pkg/diagram"
//	    "github.com/slidegeom/slidegeom/pkg/pipeline"
//	    "github.com/slidegeom/slidegeom/pkg/render"
//	)
//
//	req := &diagram.Request{
//	    Type:   diagram.TypeTable,
//	    Canvas: diagram.Canvas{Width: 12, Height: 6},
//	    Table: &diagram.TableContent{
//	        Headers: []string{"Feature", "Plan A", "Plan B"},
//	        Rows:    [][]string{{"Price", "$10", "$20"}},
//	    },
//	}
//
//	res, _ := pipeline.Build(req)
//	svg := render.RenderSVG(res, req.Canvas)
//
// # Main Packages
//
// ## Domain Types
//
// [diagram] - The request/result vocabulary: seven diagram types with
// their content payloads, plus shapes, connectors, validation reports,
// and structural feature extraction.
//
// [geom] - Rectangle and point primitives, side anchoring, color
// interpolation, and adaptive font sizing.
//
// ## Geometry Computation
//
// [layout] - Variant selection and shape placement. Each diagram type
// has a fixed menu of layout variants picked by deterministic rules
// over the content's structural features.
//
// [route] - Connector routing between placed shapes: anchor points,
// straight/elbow/curve paths, and arrowhead orientation.
//
// [styles] - The deterministic styling catalog: per-type palettes,
// fonts, character limits, and gradient stops.
//
// [validate] - Post-layout constraint checks (element counts, text
// capacity, minimum font size, connectivity).
//
// ## Rendering
//
// [render] - SVG output plus PDF/PNG conversion via rsvg-convert.
//
// [render/dot] - Graphviz DOT export of the connector graph.
//
// ## Infrastructure
//
// [pipeline] - Complete build and render pipeline used by CLI and API.
// Ensures consistent behavior across all entry points.
//
// [cache] - Build and artifact caching with file, Redis, and null
// backends.
//
// [errors] - Coded errors shared across all packages.
//
// [observability] - Optional hooks for metrics and tracing backends.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/layout/...       # Specific package
//
// [diagram]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/diagram
// [geom]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/geom
// [layout]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/layout
// [route]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/route
// [styles]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/styles
// [validate]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/validate
// [render]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/render
// [render/dot]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/render/dot
// [pipeline]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/cache
// [errors]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/errors
// [observability]: https://pkg.go.dev/github.com/slidegeom/slidegeom/pkg/observability
package pkg
