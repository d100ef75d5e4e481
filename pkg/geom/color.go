package geom

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// InterpolateColor linearly interpolates across two or more ordered
// color stops. t is clamped to [0, 1]; t=0 returns the first stop and
// t=1 the last. Interpolation is per-channel in RGB space.
//
// Stops are hex strings ("#rrggbb") owned by the style catalog; a
// malformed stop degrades to black rather than failing the build.
func InterpolateColor(stops []string, t float64) string {
	switch len(stops) {
	case 0:
		return "#000000"
	case 1:
		return normalizeHex(stops[0])
	}

	t = Clamp(t, 0, 1)

	// Map t onto the segment between two adjacent stops.
	scaled := t * float64(len(stops)-1)
	i := int(math.Floor(scaled))
	if i >= len(stops)-1 {
		i = len(stops) - 2
	}
	local := scaled - float64(i)

	from := parseHex(stops[i])
	to := parseHex(stops[i+1])
	return from.BlendRgb(to, local).Hex()
}

// LightenColor blends a color toward white by the given factor.
// factor=0 returns the color unchanged, factor=1 returns white.
func LightenColor(hex string, factor float64) string {
	factor = Clamp(factor, 0, 1)
	white := colorful.Color{R: 1, G: 1, B: 1}
	return parseHex(hex).BlendRgb(white, factor).Hex()
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func parseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func normalizeHex(s string) string {
	return parseHex(s).Hex()
}
