package ember

import (
	"math"
	"testing"
)

func TestViewport_IdentityBeforeLayout(t *testing.T) {
	v := NewViewport(640, 360)
	x, y := v.ScreenToGame(100, 50)
	if x != 100 || y != 50 {
		t.Errorf("ScreenToGame(100, 50) = (%v, %v), want identity", x, y)
	}
	if v.Scale() != 1 {
		t.Errorf("Scale() = %v, want 1", v.Scale())
	}
}

func TestViewport_LetterboxTransform(t *testing.T) {
	tests := []struct {
		name             string
		screenW, screenH int
		wantScale        float64
		wantOffX         float64
		wantOffY         float64
	}{
		{"exact 2x", 1280, 720, 2, 0, 0},
		{"wide window: pillarbox", 1920, 720, 2, 320, 0},
		{"tall window: letterbox", 1280, 1080, 2, 0, 180},
		{"downscale", 320, 180, 0.5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(640, 360)
			v.SetScreenSize(tt.screenW, tt.screenH)
			if v.Scale() != tt.wantScale {
				t.Errorf("Scale() = %v, want %v", v.Scale(), tt.wantScale)
			}
			sx, sy := v.GameToScreen(0, 0)
			if sx != tt.wantOffX || sy != tt.wantOffY {
				t.Errorf("GameToScreen(0, 0) = (%v, %v), want (%v, %v)", sx, sy, tt.wantOffX, tt.wantOffY)
			}
		})
	}
}

func TestViewport_RoundTrip(t *testing.T) {
	v := NewViewport(640, 360)
	v.SetScreenSize(1000, 700)

	points := [][2]float64{{0, 0}, {320, 180}, {640, 360}, {13.5, 77.25}}
	for _, p := range points {
		sx, sy := v.GameToScreen(p[0], p[1])
		x, y := v.ScreenToGame(sx, sy)
		if math.Abs(x-p[0]) > 1e-9 || math.Abs(y-p[1]) > 1e-9 {
			t.Errorf("round trip (%v, %v) -> (%v, %v)", p[0], p[1], x, y)
		}
	}
}

func TestViewport_LetterboxBarsMissGamePlane(t *testing.T) {
	v := NewViewport(640, 360)
	v.SetScreenSize(1920, 720) // pillarbox bars on the left and right

	x, _ := v.ScreenToGame(10, 360) // inside the left bar
	if x >= 0 {
		t.Errorf("ScreenToGame inside the bar gave x = %v, want negative", x)
	}
	x, _ = v.ScreenToGame(1910, 360) // inside the right bar
	if x <= 640 {
		t.Errorf("ScreenToGame inside the bar gave x = %v, want > 640", x)
	}
}

func TestViewport_DegenerateSizes(t *testing.T) {
	v := NewViewport(640, 360)
	v.SetScreenSize(0, 0)
	if v.Scale() != 1 {
		t.Errorf("Scale() = %v, want identity fallback", v.Scale())
	}
}
