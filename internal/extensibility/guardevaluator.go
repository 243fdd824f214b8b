// Package extensibility provides pluggable guard evaluators and event
// sources for core.Machine.
package extensibility

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/cel-go/cel"
	"go.uber.org/zap"

	"github.com/comalice/drills/internal/core"
	"github.com/comalice/drills/internal/primitives"
)

var (
	_ core.GuardEvaluator = (*FuncGuardEvaluator)(nil)
	_ core.GuardEvaluator = (*CELGuardEvaluator)(nil)
	_ core.GuardEvaluator = (*LoggingGuardEvaluator)(nil)
)

// GuardFunc is a named Go guard.
type GuardFunc func(ctx *primitives.Context, event primitives.Event) bool

// FuncGuardEvaluator resolves guard strings to registered Go functions.
// Unregistered guards fail closed.
type FuncGuardEvaluator struct {
	guards map[string]GuardFunc
}

// NewFuncGuardEvaluator creates an evaluator from a name -> func table.
func NewFuncGuardEvaluator(guards map[string]GuardFunc) *FuncGuardEvaluator {
	g := make(map[string]GuardFunc, len(guards))
	for k, v := range guards {
		g[k] = v
	}
	return &FuncGuardEvaluator{guards: g}
}

// Eval runs the guard registered under name.
func (e *FuncGuardEvaluator) Eval(ctx *primitives.Context, name string, event primitives.Event) (bool, error) {
	fn, ok := e.guards[name]
	if !ok {
		return false, nil
	}
	return fn(ctx, event), nil
}

// CELGuardEvaluator evaluates guards written in CEL against the machine
// context. The event type is available as `event`. Compiled programs are
// cached per expression.
type CELGuardEvaluator struct {
	env      *cel.Env
	mu       sync.Mutex
	programs map[string]cel.Program
}

// NewCELGuardEvaluator declares vars (context keys and their CEL types) and
// builds the environment.
func NewCELGuardEvaluator(vars map[string]*cel.Type) (*CELGuardEvaluator, error) {
	opts := []cel.EnvOption{cel.Variable("event", cel.StringType)}
	for name, typ := range vars {
		opts = append(opts, cel.Variable(name, typ))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	return &CELGuardEvaluator{
		env:      env,
		programs: make(map[string]cel.Program),
	}, nil
}

func (e *CELGuardEvaluator) program(expr string) (cel.Program, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if prg, ok := e.programs[expr]; ok {
		return prg, nil
	}
	ast, iss := e.env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, iss.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expr, err)
	}
	e.programs[expr] = prg
	return prg, nil
}

// Eval compiles (once) and evaluates expr. Non-boolean results are errors.
func (e *CELGuardEvaluator) Eval(ctx *primitives.Context, expr string, event primitives.Event) (bool, error) {
	prg, err := e.program(expr)
	if err != nil {
		return false, err
	}

	vars := ctx.Snapshot()
	vars["event"] = event.Type
	out, _, err := prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", expr, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("eval %q: result %v is not a bool", expr, out.Value())
	}
	return b, nil
}

// LoggingGuardEvaluator wraps a GuardEvaluator and logs every decision.
type LoggingGuardEvaluator struct {
	inner  core.GuardEvaluator
	logger *zap.Logger
}

// NewLoggingGuardEvaluator creates a new LoggingGuardEvaluator wrapping inner.
func NewLoggingGuardEvaluator(inner core.GuardEvaluator, logger *zap.Logger) *LoggingGuardEvaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingGuardEvaluator{inner: inner, logger: logger}
}

// Eval delegates to the inner evaluator.
func (e *LoggingGuardEvaluator) Eval(ctx *primitives.Context, guard string, event primitives.Event) (bool, error) {
	start := time.Now()
	pass, err := e.inner.Eval(ctx, guard, event)
	e.logger.Debug("guard evaluated",
		zap.String("guard", guard),
		zap.String("event", event.Type),
		zap.Bool("pass", pass),
		zap.Duration("took", time.Since(start)),
		zap.Error(err),
	)
	return pass, err
}
