package mipmap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/buzztimer/mipmap/utils"
)

// Colors used by every icon render.
var (
	// Accent is the app's primary purple (#A64DFF).
	Accent = color.NRGBA{R: 0xA6, G: 0x4D, B: 0xFF, A: 0xFF}
	White  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Metrics holds the clock geometry derived from a canvas size.
type Metrics struct {
	Center       int
	ClockRadius  int
	HandWidth    int
	DotRadius    int
	HourLength   int
	MinuteLength int
}

// NewMetrics computes the clock geometry for a size×size icon.
func NewMetrics(size int) Metrics {
	m := Metrics{
		Center:      size / 2,
		ClockRadius: int(float64(size) * 0.3),
		HandWidth:   utils.Max(2, size/24),
		DotRadius:   utils.Max(2, size/16),
	}
	m.HourLength = int(math.Round(float64(m.ClockRadius) * 0.5))
	m.MinuteLength = int(math.Round(float64(m.ClockRadius) * 0.7))

	return m
}

// Render draws the clock icon onto a new size×size canvas: a white clock face
// on an accent background, an hour hand pointing to twelve, a minute hand
// pointing to three and an accent pivot dot on top of both hands.
//
// The output depends on size only. A non-positive size is a programming error.
func Render(size int) *Canvas {
	if size <= 0 {
		panic(fmt.Sprintf("mipmap: invalid icon size %d", size))
	}
	var (
		m  = NewMetrics(size)
		cx = m.Center
		cy = m.Center
	)

	c := NewCanvas(size, Accent)

	c.DrawShape(Circle, cx, cy, 0, 0, m.ClockRadius, White)
	c.DrawShape(Line, cx, cy, cx, cy-m.HourLength, m.HandWidth, Accent)
	c.DrawShape(Line, cx, cy, cx+m.MinuteLength, cy, m.HandWidth, Accent)
	c.DrawShape(Circle, cx, cy, 0, 0, m.DotRadius, Accent)

	return c
}
