// Package input holds the window-independent events the viewer reacts to.
package input

import (
	"github.com/joshvictor1024/mandelzoom/pkg/mandel"
	"github.com/joshvictor1024/mandelzoom/pkg/types"
)

type Event interface {
	event()
}

// Quit asks the loop to stop.
type Quit struct{}

// Click is a mouse button press at a pixel of the window.
type Click struct {
	Pos    types.Pointi
	Button mandel.Button
}

func (Quit) event()  {}
func (Click) event() {}

// Source yields pending events. Poll returns false once nothing is queued.
type Source interface {
	Poll() (Event, bool)
}

// Script replays a fixed list of events, then reports an empty queue.
type Script struct {
	q *types.Queue[Event]
}

func NewScript(events ...Event) *Script {
	return &Script{q: types.NewQueue(events...)}
}

func (s *Script) Push(e Event) {
	s.q.Push(e)
}

func (s *Script) Len() int {
	return s.q.Len()
}

func (s *Script) Poll() (Event, bool) {
	return s.q.Pop()
}
