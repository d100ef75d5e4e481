package render

import (
	"bytes"
	"fmt"
	"os/exec"
)

// ToPDF converts a rendered SVG to PDF via rsvg-convert. librsvg must
// be installed: brew install librsvg (macOS), apt install librsvg2-bin
// (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// ToPNG converts a rendered SVG to PNG via rsvg-convert. scale
// supersamples the raster output; 2.0 doubles the pixel dimensions.
// Requires librsvg like ToPDF.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert pipes svg through the rsvg-convert binary, producing
// the requested output format on stdout.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	cmd := exec.Command("rsvg-convert", append([]string{"-f", format}, extraArgs...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, stderr.String())
	}
	return stdout.Bytes(), nil
}
