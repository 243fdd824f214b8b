package primitives

import "testing"

func TestMachineBuilder(t *testing.T) {
	cfg, err := NewMachineBuilder("player", "stopped").
		State("stopped").OnIf("play", "playing", `track != ""`).
		State("playing").On("pause", "paused").On("stop", "stopped").
		State("paused").On("play", "playing").On("stop", "stopped").
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(cfg.States) != 3 {
		t.Errorf("expected 3 states, got %v", cfg.States)
	}
	tr, ok := cfg.FindTransition("stopped", "play")
	if !ok || tr.Guard == "" {
		t.Errorf("expected guarded play transition, got %+v", tr)
	}
}

func TestMachineBuilder_Terminal(t *testing.T) {
	cfg := NewMachineBuilder("door", "open").
		State("open").On("lock", "locked").
		Terminal("locked").
		MustBuild()
	if !cfg.IsTerminal("locked") {
		t.Error("expected locked to be terminal")
	}
}

func TestMachineBuilder_InvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustBuild to panic on a dead-end state")
		}
	}()
	NewMachineBuilder("broken", "a").State("a").On("go", "b").MustBuild()
}
