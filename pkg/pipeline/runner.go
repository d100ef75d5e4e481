package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/slidegeom/slidegeom/pkg/cache"
	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, req *diagram.Request, opts Options) (*Run, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	run := &Run{Artifacts: make(map[string][]byte)}

	buildStart := time.Now()
	res, buildHit, err := r.BuildWithCacheInfo(ctx, req, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	run.Result = res
	run.Stats.BuildTime = time.Since(buildStart)
	run.Stats.ShapeCount = len(res.Shapes)
	run.Stats.ConnectorCount = len(res.Connectors)
	run.CacheInfo.BuildHit = buildHit

	if data, err := diagram.MarshalRequest(req); err == nil {
		run.RequestHash = cache.Hash(data)
	}

	r.Logger.Info("built diagram",
		"type", req.Type,
		"variant", res.Metadata.Variant,
		"shapes", len(res.Shapes),
		"connectors", len(res.Connectors),
		"status", res.Validation.Status,
		"duration", run.Stats.BuildTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res, req.Canvas, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	run.Artifacts = artifacts
	run.Stats.RenderTime = time.Since(renderStart)
	run.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", run.Stats.RenderTime)

	return run, nil
}

// BuildWithCacheInfo builds geometry with caching and reports whether
// the cache served it.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, req *diagram.Request, opts Options) (*diagram.Result, bool, error) {
	r.applyLogger(&opts)

	data, err := diagram.MarshalRequest(req)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.ResultKey(cache.Hash(data))

	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			res, err := diagram.UnmarshalResult(cached)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "result")
				return res, true, nil
			}
			// Corrupt entry: fall through and recompute.
		}
	}
	observability.Cache().OnCacheMiss(ctx, "result")

	observability.Pipeline().OnBuildStart(ctx, string(req.Type))
	start := time.Now()
	res, err := Build(req)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, string(req.Type), "", 0, time.Since(start), err)
		return nil, false, err
	}
	observability.Pipeline().OnBuildComplete(ctx, string(req.Type), string(res.Metadata.Variant), len(res.Shapes), time.Since(start), nil)

	if encoded, err := diagram.MarshalResult(res); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, encoded, cache.ResultTTL)
		observability.Cache().OnCacheSet(ctx, "result", len(encoded))
	}

	return res, false, nil
}

// BuildDiagram is a convenience wrapper that discards the cache hit info.
func (r *Runner) BuildDiagram(ctx context.Context, req *diagram.Request, opts Options) (*diagram.Result, error) {
	res, _, err := r.BuildWithCacheInfo(ctx, req, opts)
	return res, err
}

// RenderWithCacheInfo renders artifacts with caching and reports
// whether every format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res *diagram.Result, canvas diagram.Canvas, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	artifactKey := func(format string) string {
		return r.Keyer.ArtifactKey(res.Metadata.DiagramID, format, opts.Scale)
	}

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		allCached := true
		for _, format := range opts.Formats {
			if data, hit, err := r.Cache.Get(ctx, artifactKey(format)); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(res, canvas, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		_ = r.Cache.Set(ctx, artifactKey(format), data, cache.ArtifactTTL)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// RenderArtifacts is a convenience wrapper that discards the cache hit info.
func (r *Runner) RenderArtifacts(ctx context.Context, res *diagram.Result, canvas diagram.Canvas, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, res, canvas, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
