package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	NoopPipelineHooks
	builds  int
	renders int
}

func (r *recordingPipelineHooks) OnBuildComplete(_ context.Context, _, _ string, _ int, _ time.Duration, _ error) {
	r.builds++
}

func (r *recordingPipelineHooks) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, _ error) {
	r.renders++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits, misses, sets int
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, string)      { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(context.Context, string)     { r.misses++ }
func (r *recordingCacheHooks) OnCacheSet(context.Context, string, int) { r.sets++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	// No-op hooks must not panic.
	ctx := context.Background()
	Pipeline().OnBuildStart(ctx, "table")
	Pipeline().OnBuildComplete(ctx, "table", "standard", 18, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "result")
	API().OnResponse(ctx, "POST", "/v1/diagrams", 200, time.Millisecond)
}

func TestSetPipelineHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnBuildComplete(ctx, "flowchart", "snake", 17, time.Millisecond, nil)
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)

	if rec.builds != 1 {
		t.Errorf("builds = %d, want 1", rec.builds)
	}
	if rec.renders != 1 {
		t.Errorf("renders = %d, want 1", rec.renders)
	}
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "result")
	Cache().OnCacheSet(ctx, "result", 128)
	Cache().OnCacheHit(ctx, "result")

	if rec.hits != 1 || rec.misses != 1 || rec.sets != 1 {
		t.Errorf("hits/misses/sets = %d/%d/%d, want 1/1/1", rec.hits, rec.misses, rec.sets)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)
	SetCacheHooks(nil)

	Cache().OnCacheHit(context.Background(), "artifact")
	if rec.hits != 1 {
		t.Error("nil registration should not replace existing hooks")
	}
}

func TestReset(t *testing.T) {
	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)
	Reset()

	Pipeline().OnBuildComplete(context.Background(), "timeline", "horizontal_bar", 20, time.Millisecond, nil)
	if rec.builds != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
