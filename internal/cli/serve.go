package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/slidegeom/slidegeom/internal/api"
	"github.com/slidegeom/slidegeom/pkg/cache"
	"github.com/slidegeom/slidegeom/pkg/pipeline"
)

// serveShutdownTimeout bounds how long in-flight requests get to
// finish during graceful shutdown.
const serveShutdownTimeout = 5 * time.Second

// serveOpts holds flag values for the serve command.
type serveOpts struct {
	addr     string
	redisURL string
	noCache  bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := &serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for diagram building and rendering",
		Long: `Serve starts an HTTP server exposing the layout engine. POST /v1/diagrams
builds a diagram and returns its geometry as JSON; POST /v1/diagrams/render
returns a rendered artifact in the requested format.

By default results are cached on disk under the XDG cache directory. Pass
--redis to share the cache between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "redis URL for a shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the build and artifact cache")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	store, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           api.NewServer(runner, c.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// serveCache builds the cache backend for the serve command.
func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.redisURL != "" {
		store, err := cache.NewRedisCacheFromURL(ctx, opts.redisURL)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache", "url", opts.redisURL)
		return store, nil
	}
	return newCache(opts.noCache)
}
