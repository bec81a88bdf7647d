// Package overlay turns raw pointer coordinates into a frame-relative
// placement for the caption overlay.
package overlay

// pointer or pixel position inside the video container
type Point struct {
	X float64
	Y float64
}

// Anchor is the overlay reference point in percentage space: X is the
// horizontal center as a percent of container width, Y is the distance from
// the bottom edge as a percent of container height. Percent coordinates
// keep the placement valid across rendered video sizes.
type Anchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// overlay box size in pixels
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// rendered video container dimensions in pixels
type Container struct {
	Width  float64
	Height float64
}

// Placement is the position/size payload handed to the rendering or burn
// layer alongside the edited subtitle text.
type Placement struct {
	Anchor Anchor `json:"anchor"`
	Size   Size   `json:"size"`
}

// anchorToPixel converts a percent-space anchor into container pixel space.
// Y counts from the bottom edge, pixel space counts from the top.
func anchorToPixel(a Anchor, c Container) Point {
	return Point{
		X: a.X / 100 * c.Width,
		Y: (100 - a.Y) / 100 * c.Height,
	}
}

// pixelToAnchor converts a pixel position back into percent space.
func pixelToAnchor(p Point, c Container) Anchor {
	return Anchor{
		X: p.X / c.Width * 100,
		Y: 100 - p.Y/c.Height*100,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
