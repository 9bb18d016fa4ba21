package main

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Surface is what a frame is drawn onto.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(c color.RGBA, x, y, size float64)
}

// rasterSurface draws into an in-memory image of the canvas.
type rasterSurface struct {
	dc *gg.Context
}

func newRasterSurface(width, height int) *rasterSurface {
	return &rasterSurface{dc: gg.NewContext(width, height)}
}

func (r *rasterSurface) Clear(c color.RGBA) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

// FillRect snaps the rectangle to whole pixels so its edges are never
// blended with what is underneath.
func (r *rasterSurface) FillRect(c color.RGBA, x, y, size float64) {
	x0, y0 := math.Round(x), math.Round(y)
	x1, y1 := math.Round(x+size), math.Round(y+size)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	r.dc.SetColor(c)
	r.dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	r.dc.Fill()
}

func (r *rasterSurface) Frame() image.Image {
	return r.dc.Image()
}

func (r *rasterSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.dc.Width(), r.dc.Height())
}
