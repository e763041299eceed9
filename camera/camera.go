// Package camera maps canvas space onto a screen viewport with pan and zoom.
package camera

// Camera controls the viewport into the dot canvas.
// The canvas is fitted to the viewport at zoom 1 and never wraps.
type Camera struct {
	// Position is the camera center in canvas coordinates
	X, Y float32

	// Zoom level on top of the fit scale (1.0 = whole canvas visible)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Canvas dimensions in scene units
	CanvasW, CanvasH float32

	// Zoom constraints
	MinZoom, MaxZoom float32

	// fit is pixels per canvas unit at zoom 1
	fit float32
}

// New creates a camera that shows the whole canvas centered in the viewport.
func New(viewportW, viewportH, canvasW, canvasH float32) *Camera {
	c := &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		CanvasW:   canvasW,
		CanvasH:   canvasH,
		MinZoom:   1.0,
		MaxZoom:   64.0,
	}
	c.refit()
	c.X = canvasW / 2
	c.Y = canvasH / 2
	return c
}

// refit recomputes the scale that fits the whole canvas in the viewport.
func (c *Camera) refit() {
	fx := c.ViewportW / c.CanvasW
	fy := c.ViewportH / c.CanvasH
	c.fit = min(fx, fy)
}

// Scale returns screen pixels per canvas unit at the current zoom.
func (c *Camera) Scale() float32 {
	return c.fit * c.Zoom
}

// WorldToScreen converts canvas coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	s := c.Scale()
	sx = c.ViewportW/2 + (wx-c.X)*s
	sy = c.ViewportH/2 + (wy-c.Y)*s
	return sx, sy
}

// ScreenToWorld converts screen coordinates to canvas coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	s := c.Scale()
	wx = c.X + (sx-c.ViewportW/2)/s
	wy = c.Y + (sy-c.ViewportH/2)/s
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	s := c.Scale()
	halfW := c.ViewportW/(2*s) + radius
	halfH := c.ViewportH/(2*s) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Resize updates viewport dimensions, keeping the camera center.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.refit()
}

// Pan moves the view by a screen-pixel drag. Dragging right moves the
// content right. The center stays on the canvas.
func (c *Camera) Pan(dx, dy float32) {
	s := c.Scale()
	c.X = clamp(c.X-dx/s, 0, c.CanvasW)
	c.Y = clamp(c.Y-dy/s, 0, c.CanvasH)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomAt multiplies the zoom by factor, keeping the canvas point under the
// screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(factor, sx, sy float32) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.SetZoom(c.Zoom * factor)
	s := c.Scale()
	c.X = clamp(wx-(sx-c.ViewportW/2)/s, 0, c.CanvasW)
	c.Y = clamp(wy-(sy-c.ViewportH/2)/s, 0, c.CanvasH)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.X = c.CanvasW / 2
	c.Y = c.CanvasH / 2
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the canvas-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	s := c.Scale()
	halfW := c.ViewportW / (2 * s)
	halfH := c.ViewportH / (2 * s)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
