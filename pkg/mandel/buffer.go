package mandel

import (
	"image"
	"image/color"
)

// PixelBuffer is a fixed size grid of colors, stored row-major.
// Access outside the grid is ignored by Set and reads as zero from At.
type PixelBuffer struct {
	w, h int
	pix  []color.RGBA
}

func NewPixelBuffer(w, h int) *PixelBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &PixelBuffer{w: w, h: h, pix: make([]color.RGBA, w*h)}
}

func (b *PixelBuffer) Width() int  { return b.w }
func (b *PixelBuffer) Height() int { return b.h }

func (b *PixelBuffer) inside(x, y int) bool {
	return 0 <= x && x < b.w && 0 <= y && y < b.h
}

func (b *PixelBuffer) Set(x, y int, c color.RGBA) {
	if !b.inside(x, y) {
		return
	}
	b.pix[y*b.w+x] = c
}

func (b *PixelBuffer) Get(x, y int) color.RGBA {
	if !b.inside(x, y) {
		return color.RGBA{}
	}
	return b.pix[y*b.w+x]
}

// image.Image, so a buffer can be handed to image/png and friends

func (b *PixelBuffer) ColorModel() color.Model { return color.RGBAModel }
func (b *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }
func (b *PixelBuffer) At(x, y int) color.Color { return b.Get(x, y) }
