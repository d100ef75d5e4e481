package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
)

func writeRequestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadRequestJSON(t *testing.T) {
	path := writeRequestFile(t, "table.json", `{
		"type": "table",
		"canvas": {"width": 12, "height": 6},
		"table": {"headers": ["A", "B"], "rows": [["1", "2"]]}
	}`)

	req, err := loadRequest(path)
	if err != nil {
		t.Fatalf("loadRequest() error: %v", err)
	}
	if req.Type != diagram.TypeTable {
		t.Errorf("Type = %q, want %q", req.Type, diagram.TypeTable)
	}
	if req.Table == nil || len(req.Table.Headers) != 2 {
		t.Errorf("Table content not decoded: %+v", req.Table)
	}
}

func TestLoadRequestYAML(t *testing.T) {
	path := writeRequestFile(t, "flow.yaml", `
type: flowchart
canvas:
  width: 12
  height: 6
flowchart:
  start_label: Start
  end_label: End
  steps:
    - header: Gather
    - header: Review
`)

	req, err := loadRequest(path)
	if err != nil {
		t.Fatalf("loadRequest() error: %v", err)
	}
	if req.Type != diagram.TypeFlowchart {
		t.Errorf("Type = %q, want %q", req.Type, diagram.TypeFlowchart)
	}
	if req.Flowchart == nil || len(req.Flowchart.Steps) != 2 {
		t.Fatalf("Flowchart content not decoded: %+v", req.Flowchart)
	}
	if req.Flowchart.Steps[0].Header != "Gather" {
		t.Errorf("Steps[0].Header = %q, want %q", req.Flowchart.Steps[0].Header, "Gather")
	}
	if req.Canvas.Width != 12 || req.Canvas.Height != 6 {
		t.Errorf("Canvas = %+v, want 12x6", req.Canvas)
	}
}

func TestLoadRequestTOML(t *testing.T) {
	path := writeRequestFile(t, "table.toml", `
type = "table"

[canvas]
width = 12.0
height = 6.0

[table]
headers = ["A", "B"]
rows = [["1", "2"], ["3", "4"]]
`)

	req, err := loadRequest(path)
	if err != nil {
		t.Fatalf("loadRequest() error: %v", err)
	}
	if req.Type != diagram.TypeTable {
		t.Errorf("Type = %q, want %q", req.Type, diagram.TypeTable)
	}
	if req.Table == nil || len(req.Table.Rows) != 2 {
		t.Errorf("Table content not decoded: %+v", req.Table)
	}
}

func TestLoadRequestMissingFile(t *testing.T) {
	_, err := loadRequest(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestLoadRequestUnsupportedExtension(t *testing.T) {
	path := writeRequestFile(t, "table.xml", "<table/>")
	_, err := loadRequest(path)
	if !errors.Is(err, errors.ErrCodeInvalidRequest) {
		t.Errorf("error code = %v, want INVALID_REQUEST", errors.GetCode(err))
	}
}

func TestLoadRequestMalformedJSON(t *testing.T) {
	path := writeRequestFile(t, "bad.json", "{not json")
	if _, err := loadRequest(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
