package mandel

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize       = errors.New("mandel: width and height must be greater than 1")
	ErrInvalidIterations = errors.New("mandel: max iterations must not be negative")
)

// Config holds the render resolution and the iteration cap.
type Config struct {
	Width   int
	Height  int
	MaxIter int
}

func DefaultConfig() Config {
	return Config{
		Width:   800,
		Height:  600,
		MaxIter: 100,
	}
}

// Validate reports whether c can drive a render. Width and height of 1 would
// make the pixel mapping divide by zero.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.MaxIter < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, c.MaxIter)
	}
	return nil
}
