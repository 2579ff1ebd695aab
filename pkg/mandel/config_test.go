package mandel

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		cfg  Config
		want error
	}{
		{DefaultConfig(), nil},
		{Config{Width: 2, Height: 2, MaxIter: 0}, nil},
		{Config{Width: 1, Height: 600, MaxIter: 100}, ErrInvalidSize},
		{Config{Width: 800, Height: 0, MaxIter: 100}, ErrInvalidSize},
		{Config{Width: 800, Height: 600, MaxIter: -1}, ErrInvalidIterations},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if tt.want == nil && err != nil {
			t.Errorf("%+v.Validate() = %v, want nil", tt.cfg, err)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("%+v.Validate() = %v, want %v", tt.cfg, err, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 800 || cfg.Height != 600 || cfg.MaxIter != 100 {
		t.Errorf("DefaultConfig() = %+v, want 800x600 with 100 iterations", cfg)
	}
}
