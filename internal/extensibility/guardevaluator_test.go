package extensibility

import (
	"testing"

	"github.com/google/cel-go/cel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/comalice/drills/internal/primitives"
)

func TestFuncGuardEvaluator(t *testing.T) {
	e := NewFuncGuardEvaluator(map[string]GuardFunc{
		"has_track": func(ctx *primitives.Context, _ primitives.Event) bool {
			v, ok := ctx.Get("track")
			return ok && v != ""
		},
	})
	ctx := primitives.NewContext()

	if pass, err := e.Eval(ctx, "has_track", primitives.NewEvent("play", nil)); err != nil || pass {
		t.Errorf("expected guard to fail without track, got %v %v", pass, err)
	}
	ctx.Set("track", "Mockingbird")
	if pass, _ := e.Eval(ctx, "has_track", primitives.NewEvent("play", nil)); !pass {
		t.Error("expected guard to pass with track")
	}
	if pass, _ := e.Eval(ctx, "unknown", primitives.NewEvent("play", nil)); pass {
		t.Error("unregistered guards must fail closed")
	}
}

func TestCELGuardEvaluator(t *testing.T) {
	e, err := NewCELGuardEvaluator(map[string]*cel.Type{
		"track":  cel.StringType,
		"volume": cel.IntType,
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx := primitives.NewContext()
	ctx.Set("track", "")
	ctx.Set("volume", int64(3))

	play := primitives.NewEvent("play", nil)
	if pass, err := e.Eval(ctx, `track != ""`, play); err != nil || pass {
		t.Errorf("expected empty track to fail, got %v %v", pass, err)
	}
	ctx.Set("track", "Till I Collapse")
	if pass, err := e.Eval(ctx, `track != "" && volume > 0`, play); err != nil || !pass {
		t.Errorf("expected guard to pass, got %v %v", pass, err)
	}
	if pass, err := e.Eval(ctx, `event == "play"`, play); err != nil || !pass {
		t.Errorf("expected event variable to be bound, got %v %v", pass, err)
	}
	if len(e.programs) != 3 {
		t.Errorf("expected 3 cached programs, got %d", len(e.programs))
	}
}

func TestCELGuardEvaluator_Errors(t *testing.T) {
	e, err := NewCELGuardEvaluator(map[string]*cel.Type{"track": cel.StringType})
	if err != nil {
		t.Fatal(err)
	}
	ctx := primitives.NewContext()
	ctx.Set("track", "x")

	if _, err := e.Eval(ctx, `track !=`, primitives.Event{}); err == nil {
		t.Error("expected compile error")
	}
	if _, err := e.Eval(ctx, `track`, primitives.Event{}); err == nil {
		t.Error("expected non-bool result error")
	}
	if _, err := e.Eval(ctx, `missing == 1`, primitives.Event{}); err == nil {
		t.Error("expected undeclared variable error")
	}
}

func TestLoggingGuardEvaluator(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	inner := NewFuncGuardEvaluator(map[string]GuardFunc{
		"always": func(*primitives.Context, primitives.Event) bool { return true },
	})
	e := NewLoggingGuardEvaluator(inner, zap.New(obs))

	pass, err := e.Eval(primitives.NewContext(), "always", primitives.NewEvent("go", nil))
	if err != nil || !pass {
		t.Fatalf("expected pass, got %v %v", pass, err)
	}
	entries := logs.FilterMessage("guard evaluated").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["guard"] != "always" {
		t.Errorf("unexpected log fields: %v", entries[0].ContextMap())
	}
}
