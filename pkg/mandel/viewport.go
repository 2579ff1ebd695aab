package mandel

import (
	"errors"
	"fmt"

	"github.com/joshvictor1024/mandelzoom/pkg/types"
)

var ErrInvalidViewport = errors.New("mandel: viewport bounds must satisfy min < max")

// Viewport is the rectangle of the complex plane mapped onto the pixel buffer.
type Viewport struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// DefaultViewport frames the whole set.
func DefaultViewport() Viewport {
	return Viewport{Xmin: -2, Xmax: 1, Ymin: -1.2, Ymax: 1.2}
}

func (v Viewport) Width() float64  { return v.Xmax - v.Xmin }
func (v Viewport) Height() float64 { return v.Ymax - v.Ymin }

func (v Viewport) Validate() error {
	// negated so NaN bounds fail too
	if !(v.Xmin < v.Xmax) || !(v.Ymin < v.Ymax) {
		return fmt.Errorf("%w: x [%g, %g] y [%g, %g]", ErrInvalidViewport, v.Xmin, v.Xmax, v.Ymin, v.Ymax)
	}
	return nil
}

// PixelToPoint maps pixel (px, py) of a w×h surface into the viewport.
// Pixel 0 lands on the min bound and pixel w-1 (h-1) on the max bound.
func (v Viewport) PixelToPoint(px, py, w, h int) types.Pointf64 {
	tx := float64(px) / float64(w-1)
	ty := float64(py) / float64(h-1)
	return types.Pointf64{
		X: v.Xmin + v.Width()*tx,
		Y: v.Ymin + v.Height()*ty,
	}
}

// Zoom scales the viewport by factor and recentres it on center.
func (v Viewport) Zoom(center types.Pointf64, factor float64) Viewport {
	w := v.Width() * factor
	h := v.Height() * factor
	return Viewport{
		Xmin: center.X - w/2,
		Xmax: center.X + w/2,
		Ymin: center.Y - h/2,
		Ymax: center.Y + h/2,
	}
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", v.Xmin, v.Xmax, v.Ymin, v.Ymax)
}
