package main

import (
	"encoding/binary"
	"fmt"

	"github.com/joshvictor1024/mandelzoom/pkg/mandel"
	"github.com/veandco/go-sdl2/sdl"
)

const bytesPerPixel = 4

// canvas writes pixel buffers onto the window surface
type canvas struct {
	window  *sdl.Window
	surface *sdl.Surface
}

func newCanvas(w *sdl.Window) (*canvas, error) {
	s, err := w.GetSurface()
	if err != nil {
		return nil, fmt.Errorf("window surface: %w", err)
	}
	if s.Format.BytesPerPixel != bytesPerPixel {
		return nil, fmt.Errorf("window surface: %d bytes per pixel, want %d", s.Format.BytesPerPixel, bytesPerPixel)
	}
	return &canvas{window: w, surface: s}, nil
}

// Blit copies buf into the surface, clipped to the smaller of the two.
// Rows are pitch bytes apart, which may be more than width*4.
func (c *canvas) Blit(buf *mandel.PixelBuffer) error {
	s := c.surface
	if s.MustLock() {
		if err := s.Lock(); err != nil {
			return fmt.Errorf("lock surface: %w", err)
		}
		defer s.Unlock()
	}

	w := min(buf.Width(), int(s.W))
	h := min(buf.Height(), int(s.H))
	pitch := int(s.Pitch)
	pixels := s.Pixels()
	for py := 0; py < h; py += 1 {
		row := pixels[py*pitch:]
		for px := 0; px < w; px += 1 {
			col := buf.Get(px, py)
			v := sdl.MapRGB(s.Format, col.R, col.G, col.B)
			binary.NativeEndian.PutUint32(row[px*bytesPerPixel:], v)
		}
	}
	return nil
}

func (c *canvas) Present() error {
	if err := c.window.UpdateSurface(); err != nil {
		return fmt.Errorf("update surface: %w", err)
	}
	return nil
}
