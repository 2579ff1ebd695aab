// Package viewer ties the viewport, pixel buffer and renderer to a display
// target and drives them from input events.
package viewer

import (
	"fmt"
	"time"

	"github.com/joshvictor1024/mandelzoom/pkg/mandel"
	"github.com/joshvictor1024/mandelzoom/pkg/types"
)

// Target is where finished frames go.
type Target interface {
	Blit(buf *mandel.PixelBuffer) error
	Present() error
}

type Config struct {
	Title     string
	Render    mandel.Config
	Start     mandel.Viewport
	IdleDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Title:     "Mandelbrot Set",
		Render:    mandel.DefaultConfig(),
		Start:     mandel.DefaultViewport(),
		IdleDelay: 10 * time.Millisecond,
	}
}

func (c Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return err
	}
	return c.Start.Validate()
}

// Scene owns the current viewport and the pixel buffer.
type Scene struct {
	cfg      mandel.Config
	viewport mandel.Viewport
	buffer   *mandel.PixelBuffer
	renderer *mandel.Renderer
	target   Target
}

func NewScene(cfg Config, t Target) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}
	return &Scene{
		cfg:      cfg.Render,
		viewport: cfg.Start,
		buffer:   mandel.NewPixelBuffer(cfg.Render.Width, cfg.Render.Height),
		renderer: mandel.NewRenderer(cfg.Render),
		target:   t,
	}, nil
}

func (s *Scene) Viewport() mandel.Viewport   { return s.viewport }
func (s *Scene) Buffer() *mandel.PixelBuffer { return s.buffer }

// Draw renders the whole buffer and pushes it to the target.
func (s *Scene) Draw() error {
	s.renderer.Render(s.buffer, s.viewport)
	if err := s.target.Blit(s.buffer); err != nil {
		return fmt.Errorf("viewer: blit: %w", err)
	}
	if err := s.target.Present(); err != nil {
		return fmt.Errorf("viewer: present: %w", err)
	}
	return nil
}

// Click applies a button press at pixel p. It redraws and returns true only
// when the button zooms.
func (s *Scene) Click(p types.Pointi, b mandel.Button) (bool, error) {
	next, ok := mandel.OnClick(p, b, s.viewport, s.cfg)
	if !ok {
		return false, nil
	}
	s.viewport = next
	return true, s.Draw()
}
