package mandel

import (
	"log/slog"

	"github.com/joshvictor1024/mandelzoom/pkg/types"
)

type Button int

const (
	ButtonOther Button = iota
	ButtonPrimary
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	default:
		return "other"
	}
}

// ZoomFactor returns the viewport scale for b, and false for buttons that do
// not zoom.
func ZoomFactor(b Button) (float64, bool) {
	switch b {
	case ButtonPrimary:
		return 0.5, true
	case ButtonSecondary:
		return 2, true
	}
	return 1, false
}

// OnClick returns the viewport after a click at pixel p. The new viewport is
// centred on the clicked point. For a button that does not zoom, vp comes back
// unchanged along with false, and the caller should not re-render.
func OnClick(p types.Pointi, b Button, vp Viewport, cfg Config) (Viewport, bool) {
	factor, ok := ZoomFactor(b)
	if !ok {
		return vp, false
	}
	center := vp.PixelToPoint(p.X, p.Y, cfg.Width, cfg.Height)
	next := vp.Zoom(center, factor)
	Logger().Debug("zoom",
		slog.String("button", b.String()),
		slog.Int("px", p.X),
		slog.Int("py", p.Y),
		slog.Float64("factor", factor),
		slog.String("viewport", next.String()),
	)
	return next, true
}
