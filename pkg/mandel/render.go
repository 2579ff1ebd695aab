package mandel

import (
	"image/color"
	"log/slog"
	"time"
)

const (
	shadeInSet   uint8 = 0
	shadeEscaped uint8 = 255
)

// Shade classifies an iteration count: black when the point never escaped,
// white otherwise. The count itself is not used beyond that.
func Shade(n, maxIter int) uint8 {
	if n == maxIter {
		return shadeInSet
	}
	return shadeEscaped
}

func gray(shade uint8) color.RGBA {
	return color.RGBA{R: shade, G: shade, B: shade, A: 255}
}

type Renderer struct {
	maxIter int
}

func NewRenderer(cfg Config) *Renderer {
	return &Renderer{maxIter: cfg.MaxIter}
}

// Render overwrites every pixel of buf with the shade of its point in vp.
// The pixel mapping uses the buffer's own size.
func (r *Renderer) Render(buf *PixelBuffer, vp Viewport) {
	start := time.Now()
	w, h := buf.Width(), buf.Height()
	for py := 0; py < h; py += 1 {
		for px := 0; px < w; px += 1 {
			c := vp.PixelToPoint(px, py, w, h).Complex()
			buf.Set(px, py, gray(Shade(Iterate(c, r.maxIter), r.maxIter)))
		}
	}
	Logger().Debug("render done",
		slog.Int("width", w),
		slog.Int("height", h),
		slog.String("viewport", vp.String()),
		slog.Duration("took", time.Since(start)),
	)
}
