// Command demo drives an order through its lifecycle with the full runtime
// wired in: snapshot persistence, transition publishing, history, metrics
// and a DOT rendering of the final state.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/comalice/drills/internal/core"
	"github.com/comalice/drills/internal/extensibility"
	"github.com/comalice/drills/internal/production"
	"github.com/comalice/drills/internal/settings"
	"github.com/comalice/drills/order"
)

const (
	keyDir      = "dir"
	keyFormat   = "format"
	keyInterval = "interval"
)

func main() {
	v, err := settings.New(map[string]any{
		keyDir:      os.TempDir(),
		keyFormat:   "json",
		keyInterval: "500ms",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := settings.Logger(v.GetString(settings.KeyLogLevel))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, v, os.Stdout, logger); err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}

func newPersister(format, dir string) (core.Persister, error) {
	switch format {
	case "json":
		return production.NewJSONPersister(dir)
	case "yaml", "yml":
		return production.NewYAMLPersister(dir)
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
}

func run(ctx context.Context, v *viper.Viper, out io.Writer, logger *zap.Logger) error {
	persister, err := newPersister(v.GetString(keyFormat), v.GetString(keyDir))
	if err != nil {
		return err
	}
	interval := v.GetDuration(keyInterval)
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	reg := prometheus.NewRegistry()
	metrics, err := core.NewMetrics(reg)
	if err != nil {
		return err
	}
	published := make(chan production.PublishedEvent, 16)
	publisher := production.NewChannelPublisher(published)
	defer publisher.Close()
	history := production.NewMemoryRegistry(0)

	o := order.New()
	tracker, err := order.NewTracker(o,
		core.WithLogger(logger),
		core.WithPersister(persister),
		core.WithPublisher(publisher),
		core.WithRegistry(history),
		core.WithVisualizer(&production.DefaultVisualizer{}),
		core.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "order %s: %s\n", o.ID, o.Status)

	ticks := extensibility.NewTimerEventSource(order.EventAdvance, interval, order.Lifecycle.Len()-1)
	defer ticks.Stop()

	events := ticks.Events()
	for !o.Status.IsTerminal() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-events:
			if !ok {
				return fmt.Errorf("ticker closed with order in %s", o.Status)
			}
			if _, err := tracker.Advance(ctx); err != nil {
				return err
			}
		}
		for drained := false; !drained; {
			select {
			case pe := <-published:
				fmt.Fprintf(out, "  %s (%s)\n", pe.Metadata.Transition(), pe.Event.Type)
			default:
				drained = true
			}
		}
	}

	// A second tracker on the same order resumes from the persisted snapshot.
	copyOf := &order.Order{ID: o.ID, Status: order.Lifecycle.Initial()}
	resumed, err := order.NewTracker(copyOf, core.WithPersister(persister), core.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := resumed.Resume(ctx); err != nil {
		return err
	}
	fmt.Fprintf(out, "resumed from %s snapshot: %s\n", v.GetString(keyFormat), copyOf.Status)

	snaps, err := history.History(ctx, o.ID.String())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "history: %d snapshots, %d dropped publishes\n", len(snaps), publisher.Dropped())
	fmt.Fprintln(out, tracker.Machine().Visualize())
	return nil
}
