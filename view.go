package ember

// Viewport is a pure screen↔game coordinate transform: the fixed-size game
// plane is scaled uniformly to fit the window and centered, with letterbox
// bars on the longer axis. All hit testing happens in game coordinates, so
// device events pass through ScreenToGame before reaching the Registry.
type Viewport struct {
	GameWidth  float64
	GameHeight float64

	screenW float64
	screenH float64
	scale   float64
	offsetX float64
	offsetY float64
}

// NewViewport creates a viewport for the given game-plane size. The transform
// is the identity until SetScreenSize is called with a real window size.
func NewViewport(gameWidth, gameHeight float64) *Viewport {
	return &Viewport{GameWidth: gameWidth, GameHeight: gameHeight, scale: 1}
}

// SetScreenSize recomputes the transform for a window of the given pixel
// size. Called from the game's Layout.
func (v *Viewport) SetScreenSize(width, height int) {
	v.screenW = float64(width)
	v.screenH = float64(height)
	if v.screenW <= 0 || v.screenH <= 0 || v.GameWidth <= 0 || v.GameHeight <= 0 {
		v.scale, v.offsetX, v.offsetY = 1, 0, 0
		return
	}
	sx := v.screenW / v.GameWidth
	sy := v.screenH / v.GameHeight
	v.scale = sx
	if sy < sx {
		v.scale = sy
	}
	v.offsetX = (v.screenW - v.GameWidth*v.scale) / 2
	v.offsetY = (v.screenH - v.GameHeight*v.scale) / 2
}

// ScreenToGame converts window coordinates to game coordinates. Points inside
// the letterbox bars map outside the [0, GameWidth)×[0, GameHeight) range;
// they simply miss every widget.
func (v *Viewport) ScreenToGame(sx, sy float64) (x, y float64) {
	return (sx - v.offsetX) / v.scale, (sy - v.offsetY) / v.scale
}

// GameToScreen converts game coordinates to window coordinates.
func (v *Viewport) GameToScreen(x, y float64) (sx, sy float64) {
	return x*v.scale + v.offsetX, y*v.scale + v.offsetY
}

// Scale returns the current game-to-screen scale factor.
func (v *Viewport) Scale() float64 {
	return v.scale
}
