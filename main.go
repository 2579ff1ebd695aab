package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/joshvictor1024/mandelzoom/pkg/mandel"
	"github.com/joshvictor1024/mandelzoom/pkg/viewer"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL video and event polling must stay on the main thread
	runtime.LockOSThread()
}

func sdlInit(cfg viewer.Config) (*sdl.Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Render.Width), int32(cfg.Render.Height), sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	return window, nil
}

func sdlClose(window *sdl.Window) {
	window.Destroy()
	sdl.Quit()
}

func run(log *slog.Logger) error {
	cfg := viewer.DefaultConfig()

	// start SDL
	window, err := sdlInit(cfg)
	if err != nil {
		return err
	}
	defer sdlClose(window)

	c, err := newCanvas(window)
	if err != nil {
		return err
	}
	s, err := viewer.NewScene(cfg, c)
	if err != nil {
		return err
	}

	delay := uint32(cfg.IdleDelay.Milliseconds())
	log.Info("window open",
		slog.String("title", cfg.Title),
		slog.Int("width", cfg.Render.Width),
		slog.Int("height", cfg.Render.Height),
		slog.Int("max_iter", cfg.Render.MaxIter),
	)
	return viewer.Run(context.Background(), s, sdlEvents{}, func() { sdl.Delay(delay) })
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	mandel.SetLogger(log)

	if err := run(log); err != nil {
		log.Error("mandelbrot viewer failed", slog.Any("err", err))
		os.Exit(1)
	}
}
