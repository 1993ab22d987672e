// Package ember is a scene-and-entity runtime for 2D games built on
// [Ebitengine].
//
// Ember coordinates input devices, a focus-driven UI layer, a minimal
// entity-component-system for gameplay objects, and a scene lifecycle that
// switches between screens. Its core is input arbitration: deciding, frame by
// frame, which device category (keyboard, mouse, gamepad, touch) owns the UI,
// and routing events to either the pointer path (hover/press/click) or the
// directional path (focus traversal over a widget graph) accordingly.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	rt := ember.NewRuntime(ember.RuntimeConfig{GameWidth: 640, GameHeight: 360})
//	// ... register scenes, set the first one ...
//	ember.Run(rt, ember.RunConfig{Title: "My Game", Width: 960, Height: 540})
//
// For full control, implement [ebiten.Game] yourself and call
// [Runtime.Update] and [Runtime.Draw] directly.
//
// # Widgets and focus
//
// Every UI element is a [Widget], created with a typed constructor
// ([NewButton], [NewText], [NewImage], [NewPanel]) and registered with the
// runtime's [Registry]. Widgets link into a directional focus graph via their
// Up/Down/Left/Right neighbor references; [LinkVertical] and [LinkHorizontal]
// wire common layouts:
//
//	play := ember.NewButton("play", "Play", ember.Rect{X: 100, Y: 80, Width: 120, Height: 32})
//	play.OnClick = func() { rt.Director().SetScene("game") }
//	quit := ember.NewButton("quit", "Quit", ember.Rect{X: 100, Y: 120, Width: 120, Height: 32})
//	ember.LinkVertical(play, quit)
//	rt.UI().Add(play)
//	rt.UI().Add(quit)
//
// While a pointer class (mouse, touch) owns input, widgets respond to hover
// and clicks; while a directional class (keyboard, gamepad) owns input, a
// single focused widget is moved along the neighbor links and activated with
// the confirm key or button. The [Arbitrator] switches between the two with
// timeout and cooldown hysteresis so the UI never flickers when two devices
// speak at once.
//
// # Scenes and entities
//
// Screens are [Scene] implementations registered with the [Director] by name.
// Each scene owns its widgets and, if it has gameplay, a [World] of entities
// with typed components and per-frame systems.
//
// # Key features
//
// Ember includes scripted input playback for automated tests
// ([LoadScript]), synthetic event injection, widget highlight tweens (via
// [gween]), TOML configuration (ember/config), JSON profile persistence
// (ember/profile), and ECS integration (via [Donburi] adapter in ember/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package ember
