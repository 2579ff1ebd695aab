package mandel

import (
	"testing"

	"github.com/joshvictor1024/mandelzoom/pkg/types"
)

func TestZoomFactor(t *testing.T) {
	tests := []struct {
		b      Button
		factor float64
		ok     bool
	}{
		{ButtonPrimary, 0.5, true},
		{ButtonSecondary, 2, true},
		{ButtonOther, 1, false},
		{Button(42), 1, false},
	}
	for _, tt := range tests {
		f, ok := ZoomFactor(tt.b)
		if f != tt.factor || ok != tt.ok {
			t.Errorf("ZoomFactor(%v) = %g, %v, want %g, %v", tt.b, f, ok, tt.factor, tt.ok)
		}
	}
}

func TestOnClickPrimaryHalves(t *testing.T) {
	cfg := Config{Width: 301, Height: 241, MaxIter: 100}
	vp := DefaultViewport()
	// pixel (250, 60) is (0.5, -0.6)
	got, ok := OnClick(types.Pointi{X: 250, Y: 60}, ButtonPrimary, vp, cfg)
	if !ok {
		t.Fatal("OnClick(primary) not accepted")
	}
	want := Viewport{Xmin: -0.25, Xmax: 1.25, Ymin: -1.2, Ymax: 0}
	if !nearViewport(got, want) {
		t.Errorf("OnClick(primary) = %v, want %v", got, want)
	}
}

func TestOnClickSecondaryDoubles(t *testing.T) {
	cfg := Config{Width: 301, Height: 241, MaxIter: 100}
	vp := DefaultViewport()
	got, ok := OnClick(types.Pointi{X: 0, Y: 0}, ButtonSecondary, vp, cfg)
	if !ok {
		t.Fatal("OnClick(secondary) not accepted")
	}
	want := Viewport{Xmin: -5, Xmax: 1, Ymin: -3.6, Ymax: 1.2}
	if !nearViewport(got, want) {
		t.Errorf("OnClick(secondary) = %v, want %v", got, want)
	}
}

func TestOnClickOtherButton(t *testing.T) {
	cfg := DefaultConfig()
	vp := DefaultViewport()
	got, ok := OnClick(types.Pointi{X: 123, Y: 45}, ButtonOther, vp, cfg)
	if ok {
		t.Error("OnClick(other) accepted, want ignored")
	}
	if got != vp {
		t.Errorf("OnClick(other) = %v, want %v unchanged", got, vp)
	}
}

func TestOnClickRoundTrip(t *testing.T) {
	// odd sizes give an exact centre pixel, which maps to the same point before
	// and after the first zoom
	cfg := Config{Width: 801, Height: 601, MaxIter: 100}
	center := types.Pointi{X: 400, Y: 300}
	for _, vp := range []Viewport{
		DefaultViewport(),
		{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},
	} {
		in, _ := OnClick(center, ButtonPrimary, vp, cfg)
		out, _ := OnClick(center, ButtonSecondary, in, cfg)
		if !nearViewport(out, vp) {
			t.Errorf("zoom in/out from %v gave %v", vp, out)
		}
		out, _ = OnClick(center, ButtonSecondary, vp, cfg)
		in, _ = OnClick(center, ButtonPrimary, out, cfg)
		if !nearViewport(in, vp) {
			t.Errorf("zoom out/in from %v gave %v", vp, in)
		}
	}
}

func TestOnClickKeepsOrdering(t *testing.T) {
	cfg := DefaultConfig()
	vp := DefaultViewport()
	clicks := []Button{ButtonPrimary, ButtonPrimary, ButtonSecondary, ButtonPrimary}
	for i, b := range clicks {
		vp, _ = OnClick(types.Pointi{X: 799, Y: 599}, b, vp, cfg)
		if err := vp.Validate(); err != nil {
			t.Fatalf("after click %d: %v", i, err)
		}
	}
}
