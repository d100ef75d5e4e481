package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/pipeline"
)

func testServer() *Server {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewServer(pipeline.NewRunner(nil, nil, logger), logger)
}

const tableBody = `{
	"type": "table",
	"canvas": {"width": 12, "height": 6},
	"table": {
		"headers": ["Feature", "A", "B"],
		"rows": [
			["Speed", "fast", "slow"],
			["Cost", "low", "high"]
		]
	}
}`

func TestHealthz(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestBuildEndpoint(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/diagrams", strings.NewReader(tableBody)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}

	var res diagram.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Shapes) != 9 {
		t.Errorf("shape count = %d, want 9 (3 rows x 3 cols)", len(res.Shapes))
	}
	if res.Validation.Status != diagram.StatusPass {
		t.Errorf("validation = %s, want PASS", res.Validation.Status)
	}
	if res.Metadata.DiagramID == "" {
		t.Error("missing diagram id")
	}
}

func TestRenderEndpointSVG(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/diagrams/render?format=svg", strings.NewReader(tableBody)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if rec.Header().Get("X-Diagram-Id") == "" {
		t.Error("missing X-Diagram-Id header")
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("<svg")) {
		t.Error("body is not SVG")
	}
}

func TestRenderEndpointRejectsBadFormat(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/diagrams/render?format=gif", strings.NewReader(tableBody)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBuildEndpointErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"type": `, http.StatusBadRequest},
		{"unknown type", `{"type": "venn", "canvas": {"width": 12, "height": 6}}`, http.StatusUnprocessableEntity},
		{"missing content", `{"type": "table", "canvas": {"width": 12, "height": 6}}`, http.StatusUnprocessableEntity},
		{"zero canvas", `{"type": "table", "canvas": {"width": 0, "height": 0}, "table": {"headers": ["A"], "rows": [["x"]]}}`, http.StatusBadRequest},
		{
			"too many steps",
			`{"type": "flowchart", "canvas": {"width": 12, "height": 6}, "flowchart": {"start_label": "s", "end_label": "e", "steps": [
				{"header":"1"},{"header":"2"},{"header":"3"},{"header":"4"},{"header":"5"},{"header":"6"},{"header":"7"},{"header":"8"}
			]}}`,
			http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testServer()
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/diagrams", strings.NewReader(tt.body)))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.want, rec.Body)
			}
			var er errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
				t.Fatalf("error body not JSON: %v", err)
			}
			if er.Code == "" {
				t.Error("error body missing code")
			}
		})
	}
}
