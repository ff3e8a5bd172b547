package mipmap

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/buzztimer/mipmap/utils"
)

// ShapeType identifies one of the primitives a Canvas knows how to draw.
type ShapeType string

const (
	Circle ShapeType = "circle"
	Line   ShapeType = "line"
)

// Canvas is a square raster surface the icon is drawn onto.
// It embeds *image.NRGBA, so it can be passed directly to any image encoder.
type Canvas struct {
	*image.NRGBA
}

// NewCanvas allocates a size×size canvas filled with the bg color.
func NewCanvas(size int, bg color.NRGBA) *Canvas {
	c := &Canvas{NRGBA: image.NewNRGBA(image.Rect(0, 0, size, size))}
	c.Fill(bg)
	return c
}

// Size returns the side length of the canvas in pixels.
func (c *Canvas) Size() int {
	return c.Bounds().Dx()
}

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.NRGBA) {
	draw.Draw(c.NRGBA, c.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// DrawShape draws a filled circle or a line depending on the shape type.
// For a circle (x0, y0) is the center and size the radius, for a line
// the segment runs from (x0, y0) to (x1, y1) and size is its width.
func (c *Canvas) DrawShape(shape ShapeType, x0, y0, x1, y1, size int, col color.NRGBA) {
	switch shape {
	case Circle:
		c.FillEllipse(x0-size, y0-size, x0+size, y0+size, col)
	case Line:
		c.DrawLine(x0, y0, x1, y1, size, col)
	}
}

// FillEllipse fills the ellipse inscribed in the inclusive bounding box
// [x0, x1] × [y0, y1]. Pixels falling outside the canvas are clipped.
func (c *Canvas) FillEllipse(x0, y0, x1, y1 int, col color.NRGBA) {
	a, b := x1-x0, y1-y0
	if a < 0 || b < 0 {
		return
	}
	for _, s := range ellipseSpans(a, b) {
		// Spans are kept in doubled coordinates relative to the box center.
		left := x0 + (a-s.x)/2
		right := x0 + (a+s.x)/2
		c.hline(left, y0+(b-s.y)/2, right, col)
		if s.y != 0 {
			c.hline(left, y0+(b+s.y)/2, right, col)
		}
	}
}

// DrawLine draws a line of the given width between two points.
// Lines wider than one pixel are offset into a quadrilateral which is filled
// with inclusive scanlines. An even width puts the extra pixel on one side.
func (c *Canvas) DrawLine(x0, y0, x1, y1, width int, col color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	if dx == 0 && dy == 0 {
		c.set(x0, y0, col)
		return
	}
	if width <= 1 {
		c.bresenham(x0, y0, x1, y1, col)
		return
	}

	hyp := math.Hypot(float64(dx), float64(dy))
	half := float64(width-1) / 2
	ratioMax := float64(roundUp(half)) / hyp
	ratioMin := float64(roundDown(half)) / hyp

	dxMin := roundDown(ratioMin * float64(dy))
	dxMax := roundDown(ratioMax * float64(dy))
	dyMin := roundDown(ratioMin * float64(dx))
	dyMax := roundDown(ratioMax * float64(dx))

	c.fillPolygon([]image.Point{
		{X: x0 - dxMin, Y: y0 + dyMax},
		{X: x1 - dxMin, Y: y1 + dyMax},
		{X: x1 + dxMax, Y: y1 - dyMin},
		{X: x0 + dxMax, Y: y0 - dyMin},
	}, col)
}

// fillPolygon fills a convex polygon. Every scanline between the lowest and
// highest vertex is filled from the leftmost to the rightmost edge crossing,
// both ends included.
func (c *Canvas) fillPolygon(pts []image.Point, col color.NRGBA) {
	if len(pts) == 0 {
		return
	}
	ymin, ymax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		ymin = utils.Min(ymin, p.Y)
		ymax = utils.Max(ymax, p.Y)
	}

	for y := ymin; y <= ymax; y++ {
		left, right := math.Inf(1), math.Inf(-1)
		for i := range pts {
			p, q := pts[i], pts[(i+1)%len(pts)]
			if p.Y == q.Y {
				if p.Y == y {
					left = math.Min(left, float64(utils.Min(p.X, q.X)))
					right = math.Max(right, float64(utils.Max(p.X, q.X)))
				}
				continue
			}
			if y < utils.Min(p.Y, q.Y) || y > utils.Max(p.Y, q.Y) {
				continue
			}
			x := float64(p.X) + float64(y-p.Y)*float64(q.X-p.X)/float64(q.Y-p.Y)
			left = math.Min(left, x)
			right = math.Max(right, x)
		}
		if left > right {
			continue
		}
		c.hline(int(math.Round(left)), y, int(math.Round(right)), col)
	}
}

// bresenham draws a one pixel wide line.
func (c *Canvas) bresenham(x0, y0, x1, y1 int, col color.NRGBA) {
	dx, dy := utils.Abs(x1-x0), -utils.Abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// hline fills the inclusive span [x0, x1] on row y, clipped to the canvas.
func (c *Canvas) hline(x0, y, x1 int, col color.NRGBA) {
	b := c.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = utils.Max(x0, b.Min.X)
	x1 = utils.Min(x1, b.Max.X-1)
	for x := x0; x <= x1; x++ {
		c.SetNRGBA(x, y, col)
	}
}

// set writes a single pixel. Out of bounds coordinates are ignored by SetNRGBA.
func (c *Canvas) set(x, y int, col color.NRGBA) {
	c.SetNRGBA(x, y, col)
}

// roundUp rounds half away from zero.
func roundUp(f float64) int {
	if f >= 0 {
		return int(math.Floor(f + 0.5))
	}
	return -int(math.Floor(math.Abs(f) + 0.5))
}

// roundDown rounds half toward zero.
func roundDown(f float64) int {
	if f >= 0 {
		return int(math.Ceil(f - 0.5))
	}
	return -int(math.Ceil(math.Abs(f) - 0.5))
}
