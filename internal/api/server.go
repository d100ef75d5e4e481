// Package api exposes the diagram pipeline over HTTP. It is a thin
// facade: requests carry the same JSON encoding the CLI reads from
// disk, and responses are either the built geometry or one rendered
// artifact.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
	"github.com/slidegeom/slidegeom/pkg/observability"
	"github.com/slidegeom/slidegeom/pkg/pipeline"
)

// maxBodyBytes caps request payloads at 1 MiB.
const maxBodyBytes = 1 << 20

// Server handles diagram build and render requests.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// NewServer creates a server around the given runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/diagrams", s.handleBuild)
		r.Post("/diagrams/render", s.handleRender)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleBuild builds geometry for a diagram request and returns the
// full result: shapes, connectors, metadata, and validation report.
// Soft violations come back inside the report with HTTP 200; only
// structurally invalid requests get an error status.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	res, err := s.runner.BuildDiagram(r.Context(), req, pipeline.Options{Logger: s.logger})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleRender builds the diagram and returns a single rendered
// artifact chosen by the format query parameter (default svg).
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unsupported format"))
		return
	}

	opts := pipeline.Options{Formats: []string{format}, Logger: s.logger}
	run, err := s.runner.Execute(r.Context(), req, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("X-Diagram-Id", run.Result.Metadata.DiagramID)
	w.Header().Set("X-Validation-Status", string(run.Result.Validation.Status))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(run.Artifacts[format])
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*diagram.Request, bool) {
	defer r.Body.Close()

	buf, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidRequest, err, "read request body"))
		return nil, false
	}
	req, err := diagram.UnmarshalRequest(buf)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	if req.Canvas.Width <= 0 || req.Canvas.Height <= 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidRequest, "canvas dimensions must be positive"))
		return nil, false
	}
	return req, true
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps engine error codes to HTTP statuses: content
// problems are 422, malformed requests 400, everything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidRequest, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeUnknownDiagramType, errors.ErrCodeInvalidContent,
		errors.ErrCodeNoVariantFits, errors.ErrCodeElementCountExceeded,
		errors.ErrCodeNoKeyDifferentiator:
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatJSON:
		return "application/json"
	case pipeline.FormatSVG, pipeline.FormatDOTSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatPDF:
		return "application/pdf"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz"
	}
	return "application/octet-stream"
}

// logRequests logs method, path, status, and duration for every
// request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.API().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		observability.API().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}
