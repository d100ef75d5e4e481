package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/slidegeom/slidegeom/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty defaults to svg",
			input: "",
			want:  []string{"svg"},
		},
		{
			name:  "single format",
			input: "png",
			want:  []string{"png"},
		},
		{
			name:  "multiple formats",
			input: "json,svg,pdf",
			want:  []string{"json", "svg", "pdf"},
		},
		{
			name:  "whitespace trimmed",
			input: "json, svg",
			want:  []string{"json", "svg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{
			name:  "derives from input",
			input: "requests/table.json",
			want:  "requests/table",
		},
		{
			name:   "output flag wins",
			output: "out/diagram.svg",
			input:  "requests/table.json",
			want:   "out/diagram",
		},
		{
			name:   "output without extension",
			output: "out/diagram",
			input:  "requests/table.json",
			want:   "out/diagram",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestArtifactExtensionsCoverFormats(t *testing.T) {
	for format := range pipeline.ValidFormats {
		if _, ok := artifactExtensions[format]; !ok {
			t.Errorf("no output extension for format %q", format)
		}
	}
	for _, format := range artifactOrder {
		if !pipeline.ValidFormats[format] {
			t.Errorf("artifactOrder contains unknown format %q", format)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "diagram")

	artifacts := map[string][]byte{
		pipeline.FormatSVG:  []byte("<svg/>"),
		pipeline.FormatJSON: []byte("{}"),
	}

	paths, err := writeArtifacts(artifacts, base)
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	// JSON sorts before SVG in the fixed format order.
	want := []string{base + ".json", base + ".svg"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("writeArtifacts() paths = %v, want %v", paths, want)
	}

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}
