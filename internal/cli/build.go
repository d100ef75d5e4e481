package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/pipeline"
)

// =============================================================================
// Build Command
// =============================================================================

// buildOpts holds flag values for the build command.
type buildOpts struct {
	formats     string
	output      string
	scale       float64
	pngScale    float64
	background  string
	variant     string
	detailed    bool
	interactive bool
	noCache     bool
	refresh     bool
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	opts := &buildOpts{}

	cmd := &cobra.Command{
		Use:   "build <request-file>",
		Short: "Lay out a diagram request and write rendered artifacts",
		Long: `Build reads a diagram request from a JSON, TOML, or YAML file, selects a
layout variant, computes exact shape geometry with routed connectors, and
writes the rendered artifacts next to the request file (or under --output).

Formats: json, svg, png, pdf, dot, dotsvg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "comma-separated output formats (default svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path base (default: request file name)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "pixels per canvas unit")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", pipeline.DefaultPNGScale, "supersampling factor for PNG output")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color (default white)")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "force a specific layout variant")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "verbose DOT node labels")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the layout variant interactively")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the build and artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "rebuild even if a cached result exists")

	return cmd
}

// runBuild executes the build command.
func (c *CLI) runBuild(ctx context.Context, input string, opts *buildOpts) error {
	req, err := loadRequest(input)
	if err != nil {
		return err
	}

	if opts.variant != "" {
		req.Variant = diagram.Variant(opts.variant)
	}
	if opts.interactive {
		variant, ok, err := pickVariant(req.Type)
		if err != nil {
			return err
		}
		if !ok {
			printInfo("Cancelled")
			return nil
		}
		req.Variant = variant
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipelineOpts := pipeline.Options{
		Formats:    parseFormats(opts.formats),
		Scale:      opts.scale,
		PNGScale:   opts.pngScale,
		Background: opts.background,
		Detailed:   opts.detailed,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	}
	if err := pipeline.ValidateFormats(pipelineOpts.Formats); err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Building diagram...")
	spinner.Start()

	run, err := runner.Execute(ctx, req, pipelineOpts)
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	if spinner.Cancelled() {
		return ctx.Err()
	}
	spinner.StopWithSuccess(fmt.Sprintf("Built %s diagram (%s)", run.Result.Metadata.Type, run.Result.Metadata.Variant))

	printStats(run.Result.Metadata.ShapeCount, run.Result.Metadata.ConnectorCount, run.CacheInfo.BuildHit)
	reportValidation(run.Result)

	paths, err := writeArtifacts(run.Artifacts, basePath(opts.output, input))
	if err != nil {
		return err
	}
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// reportValidation prints the validation outcome, listing violations
// when the diagram failed its constraint checks.
func reportValidation(res *diagram.Result) {
	if res.Validation.Status == diagram.StatusPass {
		return
	}
	printWarning("Validation failed with %d violation(s)", len(res.Validation.Violations))
	for _, v := range res.Validation.Violations {
		if v.ElementID != "" {
			printDetail("%s [%s]: %s", v.Code, v.ElementID, v.Message)
		} else {
			printDetail("%s: %s", v.Code, v.Message)
		}
	}
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactExtensions maps pipeline formats to output file extensions.
var artifactExtensions = map[string]string{
	pipeline.FormatJSON:   ".json",
	pipeline.FormatSVG:    ".svg",
	pipeline.FormatPNG:    ".png",
	pipeline.FormatPDF:    ".pdf",
	pipeline.FormatDOT:    ".dot",
	pipeline.FormatDOTSVG: ".dot.svg",
}

// basePath derives the output base path from the --output flag or the
// input file name with its extension stripped.
func basePath(output, input string) string {
	if output != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// artifactOrder fixes the order artifacts are written and reported in.
var artifactOrder = []string{
	pipeline.FormatJSON,
	pipeline.FormatSVG,
	pipeline.FormatPNG,
	pipeline.FormatPDF,
	pipeline.FormatDOT,
	pipeline.FormatDOTSVG,
}

// writeArtifacts writes each rendered artifact to base + extension and
// returns the written paths in format order.
func writeArtifacts(artifacts map[string][]byte, base string) ([]string, error) {
	paths := make([]string, 0, len(artifacts))
	for _, format := range artifactOrder {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := base + artifactExtensions[format]
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
