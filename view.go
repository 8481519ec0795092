package gesture

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// identityAffine is the identity affine matrix [a, b, c, d, tx, ty].
var identityAffine = affine{1, 0, 0, 1, 0, 0}

// View maps screen coordinates into the coordinate space of a surface: a
// board that is scrolled to (X, Y), zoomed and rotated, and shown inside
// Viewport. Gestures then measure distances in surface units, so a pan
// threshold means the same thing at every zoom level.
//
// Mutating fields directly requires MarkDirty.
type View struct {
	// X and Y are the surface position shown at the viewport center.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in).
	Zoom float64
	// Rotation is the view rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen rectangle the surface occupies. Presses
	// outside it are not samples of this surface.
	Viewport Rect

	matrix    affine // surface to screen
	invMatrix affine // screen to surface
	dirty     bool
}

// NewView creates a view over viewport with zoom 1, centered on the middle
// of the viewport so that surface and screen coordinates coincide.
func NewView(viewport Rect) *View {
	return &View{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// MarkDirty forces the matrices to be recomputed on next use.
func (v *View) MarkDirty() {
	v.dirty = true
}

// SetPosition sets the surface point shown at the viewport center.
func (v *View) SetPosition(x, y float64) {
	v.X, v.Y = x, y
	v.dirty = true
}

// SetZoom sets the zoom factor. Non-positive values are ignored.
func (v *View) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	v.Zoom = z
	v.dirty = true
}

// SetRotation sets the rotation in radians.
func (v *View) SetRotation(r float64) {
	v.Rotation = r
	v.dirty = true
}

// computeMatrix recomputes the cached matrices if dirty.
//
//	matrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
//
// where cx, cy is the viewport center.
func (v *View) computeMatrix() {
	if !v.dirty {
		return
	}
	v.dirty = false

	cx := v.Viewport.X + v.Viewport.Width/2
	cy := v.Viewport.Y + v.Viewport.Height/2
	sin, cos := math.Sincos(-v.Rotation)
	z := v.Zoom

	v.matrix = affine{
		z * cos, z * sin,
		-z * sin, z * cos,
		cx + z*(-cos*v.X+sin*v.Y),
		cy + z*(-sin*v.X-cos*v.Y),
	}
	v.invMatrix = v.matrix.inverse()
}

// SurfaceToScreen converts surface coordinates to screen coordinates.
func (v *View) SurfaceToScreen(x, y float64) (sx, sy float64) {
	v.computeMatrix()
	return v.matrix.apply(x, y)
}

// ScreenToSurface converts screen coordinates to surface coordinates.
func (v *View) ScreenToSurface(sx, sy float64) (x, y float64) {
	v.computeMatrix()
	return v.invMatrix.apply(sx, sy)
}

// affine maps points from one 2D space to another:
//
//	x' = m[0]*x + m[2]*y + m[4]
//	y' = m[1]*x + m[3]*y + m[5]
type affine [6]float64

// apply maps (x, y), e.g. a surface point to its screen pixel.
func (m affine) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// inverse returns the mapping back, screen to surface for a view matrix.
// A view collapsed to a line or point (zero determinant) has no inverse;
// identity is returned so samples pass through unmapped.
func (m affine) inverse() affine {
	det := m[0]*m[3] - m[2]*m[1]
	if math.Abs(det) < 1e-12 {
		return identityAffine
	}
	a, b := m[3]/det, -m[1]/det
	c, d := -m[2]/det, m[0]/det
	return affine{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}
