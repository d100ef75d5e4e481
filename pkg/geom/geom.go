// Package geom provides the geometric primitives used by the layout
// builders and the connector router: points, rectangles, anchor-point
// resolution, and angle/distance math.
//
// All coordinates are in caller-chosen canvas units. The y axis grows
// downward, matching the slide coordinate space the geometry is
// ultimately painted into.
package geom

import "math"

// Point represents a 2D coordinate on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Side identifies a canonical attachment location on a rectangle.
type Side string

// Anchor sides. Center resolves to the centroid rather than an edge.
const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideCenter Side = "center"
)

// Opposite returns the side facing s. Center is its own opposite.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return s
	}
}

// Rect is an axis-aligned rectangle described by its top-left corner
// and size.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center returns the centroid of the rectangle.
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Anchor returns the midpoint of the requested side, or the centroid
// for SideCenter.
func (r Rect) Anchor(side Side) Point {
	switch side {
	case SideTop:
		return Point{X: r.CenterX(), Y: r.Y}
	case SideBottom:
		return Point{X: r.CenterX(), Y: r.Bottom()}
	case SideLeft:
		return Point{X: r.X, Y: r.CenterY()}
	case SideRight:
		return Point{X: r.Right(), Y: r.CenterY()}
	default:
		return r.Center()
	}
}

// AngleBetween returns the angle of the vector from p1 to p2 in
// degrees, in the half-open range (-180, 180]. Coincident points yield
// 0; callers that care about degenerate connectors must check for that
// case themselves (see pkg/route).
func AngleBetween(p1, p2 Point) float64 {
	if p1 == p2 {
		return 0
	}
	deg := math.Atan2(p2.Y-p1.Y, p2.X-p1.X) * 180 / math.Pi
	// atan2 returns -180 for an exactly-opposite vector with a negative
	// zero y component; fold it into the (-180, 180] contract.
	if deg == -180 {
		return 180
	}
	return deg
}

// DistanceBetween returns the Euclidean distance between p1 and p2.
func DistanceBetween(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// Midpoint returns the point halfway between p1 and p2.
func Midpoint(p1, p2 Point) Point {
	return Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}
