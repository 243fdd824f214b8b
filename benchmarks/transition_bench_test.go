package benchmarks

import (
	"context"
	"testing"

	"github.com/google/cel-go/cel"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/comalice/drills"
	"github.com/comalice/drills/internal/core"
	"github.com/comalice/drills/internal/extensibility"
	"github.com/comalice/drills/internal/primitives"
)

func BenchmarkSequenceNext(b *testing.B) {
	seq := drills.MustSequence("a", "b", "c", "d", "e", "f", "g", "h")
	s := seq.Initial()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s = seq.Next(s)
		if seq.IsTerminal(s) {
			s = seq.Initial()
		}
	}
}

func BenchmarkRingTransition(b *testing.B) {
	for _, n := range []int{2, 16, 256} {
		b.Run(GenRing(n).ID, func(b *testing.B) {
			m, err := core.NewMachine(GenRing(n))
			if err != nil {
				b.Fatal(err)
			}
			ctx := context.Background()
			e := primitives.NewEvent("tick", nil)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := m.Fire(ctx, e); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTerminalNoop(b *testing.B) {
	cfg := GenLinear(2)
	m, err := core.NewMachine(cfg)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	e := primitives.NewEvent("tick", nil)
	if err := m.Fire(ctx, e); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Fire(ctx, e)
	}
}

func BenchmarkCELGuardedTransition(b *testing.B) {
	cfg := primitives.NewMachineBuilder("gate", "closed").
		State("closed").OnIf("toggle", "open", "count >= 0").
		State("open").OnIf("toggle", "closed", "count >= 0").
		MustBuild()
	guards, err := extensibility.NewCELGuardEvaluator(map[string]*cel.Type{"count": cel.IntType})
	if err != nil {
		b.Fatal(err)
	}
	m, err := core.NewMachine(cfg, core.WithGuardEvaluator(guards))
	if err != nil {
		b.Fatal(err)
	}
	m.Ctx().Set("count", int64(1))
	ctx := context.Background()
	e := primitives.NewEvent("toggle", nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Fire(ctx, e); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransitionWithMetrics(b *testing.B) {
	metrics, err := core.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		b.Fatal(err)
	}
	m, err := core.NewMachine(GenRing(4), core.WithMetrics(metrics))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	e := primitives.NewEvent("tick", nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Fire(ctx, e); err != nil {
			b.Fatal(err)
		}
	}
}
