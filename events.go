package main

import (
	"github.com/joshvictor1024/mandelzoom/pkg/input"
	"github.com/joshvictor1024/mandelzoom/pkg/mandel"
	"github.com/joshvictor1024/mandelzoom/pkg/types"
	"github.com/veandco/go-sdl2/sdl"
)

// sdlEvents drains the SDL event queue, skipping events the viewer has no use for
type sdlEvents struct{}

func (sdlEvents) Poll() (input.Event, bool) {
	for {
		// PollEvent must be on the same thread that did INIT_VIDEO
		e := sdl.PollEvent()
		if e == nil {
			return nil, false
		}
		if ie, ok := translate(e); ok {
			return ie, true
		}
	}
}

func translate(e sdl.Event) (input.Event, bool) {
	switch t := e.(type) {
	case *sdl.QuitEvent:
		return input.Quit{}, true
	case *sdl.MouseButtonEvent:
		if t.Type != sdl.MOUSEBUTTONDOWN {
			return nil, false
		}
		return input.Click{
			Pos:    types.Pointi{X: int(t.X), Y: int(t.Y)},
			Button: button(t.Button),
		}, true
	}
	return nil, false
}

func button(b uint8) mandel.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return mandel.ButtonPrimary
	case sdl.BUTTON_RIGHT:
		return mandel.ButtonSecondary
	}
	return mandel.ButtonOther
}
