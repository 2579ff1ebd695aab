package viewer

import (
	"context"
	"log/slog"

	"github.com/joshvictor1024/mandelzoom/pkg/input"
	"github.com/joshvictor1024/mandelzoom/pkg/mandel"
)

// Run draws the first frame, then handles events from src until a Quit event
// arrives or ctx is done. idle is called each time the queue runs dry.
// A render in progress always finishes before the next event is looked at.
func Run(ctx context.Context, s *Scene, src input.Source, idle func()) error {
	log := mandel.Logger()
	if err := s.Draw(); err != nil {
		return err
	}
	log.Info("viewer started", slog.String("viewport", s.Viewport().String()))

	for {
		for {
			e, ok := src.Poll()
			if !ok {
				break
			}
			switch t := e.(type) {
			case input.Quit:
				log.Info("quit event")
				return nil
			case input.Click:
				if _, err := s.Click(t.Pos, t.Button); err != nil {
					return err
				}
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if idle != nil {
			idle()
		}
	}
}
