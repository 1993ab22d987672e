package ember

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// testScene records lifecycle calls and optionally fails them.
type testScene struct {
	name     string
	enterErr error
	exitErr  error
	log      *[]string

	widgets []*Widget
	rt      *Runtime
}

func (s *testScene) Enter(rt *Runtime) error {
	*s.log = append(*s.log, s.name+".enter")
	s.rt = rt
	for _, w := range s.widgets {
		rt.UI().Add(w)
	}
	return s.enterErr
}

func (s *testScene) Exit() error {
	*s.log = append(*s.log, s.name+".exit")
	if s.exitErr != nil {
		return s.exitErr
	}
	for _, w := range s.widgets {
		s.rt.UI().Remove(w)
	}
	return nil
}

func (s *testScene) Update(dt float64) {
	*s.log = append(*s.log, s.name+".update")
}

func (s *testScene) Draw(screen *ebiten.Image) {}

func registerScene(d *Director, log *[]string, name string, widgets ...*Widget) {
	d.Register(name, func() Scene {
		return &testScene{name: name, log: log, widgets: widgets}
	})
}

func TestDirector_SetScene(t *testing.T) {
	rt := NewRuntime(RuntimeConfig{})
	d := rt.Director()
	var log []string
	registerScene(d, &log, "menu")
	registerScene(d, &log, "game")

	if err := d.SetScene("menu"); err != nil {
		t.Fatalf("SetScene(menu) = %v", err)
	}
	if d.Current() != "menu" {
		t.Errorf("Current() = %q, want menu", d.Current())
	}

	if err := d.SetScene("game"); err != nil {
		t.Fatalf("SetScene(game) = %v", err)
	}
	want := []string{"menu.enter", "menu.exit", "game.enter"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestDirector_UnknownSceneFails(t *testing.T) {
	rt := NewRuntime(RuntimeConfig{})
	d := rt.Director()
	var log []string
	registerScene(d, &log, "menu")
	if err := d.SetScene("menu"); err != nil {
		t.Fatal(err)
	}

	err := d.SetScene("nope")
	if !errors.Is(err, ErrSceneNotFound) {
		t.Errorf("SetScene(nope) = %v, want ErrSceneNotFound", err)
	}
	if d.Current() != "menu" {
		t.Errorf("Current() = %q, want menu (current scene untouched on failure)", d.Current())
	}
}

func TestDirector_ExitFailureProceeds(t *testing.T) {
	rt := NewRuntime(RuntimeConfig{})
	d := rt.Director()
	var log []string
	d.Register("broken", func() Scene {
		return &testScene{name: "broken", log: &log, exitErr: errors.New("boom")}
	})
	registerScene(d, &log, "next")

	if err := d.SetScene("broken"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetScene("next"); err != nil {
		t.Errorf("SetScene(next) = %v, want nil despite Exit failure", err)
	}
	if d.Current() != "next" {
		t.Errorf("Current() = %q, want next", d.Current())
	}
}

func TestDirector_SweepsLeakedWidgets(t *testing.T) {
	rt := NewRuntime(RuntimeConfig{})
	d := rt.Director()
	var log []string
	leaked := NewButton("leaked", "x", Rect{Width: 100, Height: 40})

	// The sloppy scene registers a widget and fails its Exit, leaving the
	// widget behind. The director sweeps the registry anyway.
	d.Register("sloppy", func() Scene {
		return &testScene{name: "sloppy", log: &log, exitErr: errors.New("boom"), widgets: []*Widget{leaked}}
	})
	registerScene(d, &log, "clean")

	if err := d.SetScene("sloppy"); err != nil {
		t.Fatal(err)
	}
	if len(rt.UI().Widgets()) != 1 {
		t.Fatalf("setup failed: %d widgets", len(rt.UI().Widgets()))
	}
	if err := d.SetScene("clean"); err != nil {
		t.Fatal(err)
	}
	if len(rt.UI().Widgets()) != 0 {
		t.Errorf("%d widgets survived the transition, want 0", len(rt.UI().Widgets()))
	}
}

func TestDirector_EnterFailureSceneStaysCurrent(t *testing.T) {
	rt := NewRuntime(RuntimeConfig{})
	d := rt.Director()
	var log []string
	d.Register("half", func() Scene {
		return &testScene{name: "half", log: &log, enterErr: errors.New("load failed")}
	})

	err := d.SetScene("half")
	if err == nil {
		t.Fatal("SetScene(half) = nil, want error")
	}
	if d.Current() != "half" {
		t.Errorf("Current() = %q, want half (no rollback target exists)", d.Current())
	}
}

func TestDirector_UpdateDelegatesToCurrentOnly(t *testing.T) {
	rt := NewRuntime(RuntimeConfig{})
	d := rt.Director()
	var log []string

	d.Update(0.016) // no current scene: no-op

	registerScene(d, &log, "menu")
	if err := d.SetScene("menu"); err != nil {
		t.Fatal(err)
	}
	d.Update(0.016)

	want := []string{"menu.enter", "menu.update"}
	if len(log) != len(want) || log[1] != "menu.update" {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestDirector_RegisterReplacesFactory(t *testing.T) {
	rt := NewRuntime(RuntimeConfig{})
	d := rt.Director()
	var log []string
	registerScene(d, &log, "old")
	d.Register("old", func() Scene {
		return &testScene{name: "new", log: &log}
	})

	if err := d.SetScene("old"); err != nil {
		t.Fatal(err)
	}
	if len(log) != 1 || log[0] != "new.enter" {
		t.Errorf("log = %v, want [new.enter]", log)
	}
}
