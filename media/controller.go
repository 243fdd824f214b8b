package media

import (
	"context"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/comalice/drills/internal/core"
	"github.com/comalice/drills/internal/extensibility"
	"github.com/comalice/drills/internal/primitives"
)

const (
	EventPlay  = "play"
	EventPause = "pause"
	EventStop  = "stop"

	trackKey = "track"
)

// Definition returns the player machine. Starting playback from Stopped
// requires a track; resuming from Paused keeps the current one.
func Definition() primitives.MachineConfig {
	return primitives.NewMachineBuilder("media-player", Stopped.String()).
		State(Stopped.String()).OnIf(EventPlay, Playing.String(), `track != ""`).
		State(Playing.String()).On(EventPause, Paused.String()).On(EventStop, Stopped.String()).
		State(Paused.String()).On(EventPlay, Playing.String()).On(EventStop, Stopped.String()).
		MustBuild()
}

// Controller drives a Player through core.Machine.
type Controller struct {
	mu      sync.Mutex
	machine *core.Machine
}

// NewController builds a stopped player. Extra options are passed to the
// underlying machine; the CEL guard evaluator is always installed.
func NewController(opts ...core.Option) (*Controller, error) {
	guards, err := extensibility.NewCELGuardEvaluator(map[string]*cel.Type{
		trackKey: cel.StringType,
	})
	if err != nil {
		return nil, err
	}
	opts = append(opts, core.WithGuardEvaluator(guards))
	m, err := core.NewMachine(Definition(), opts...)
	if err != nil {
		return nil, err
	}
	m.Ctx().Set(trackKey, "")
	return &Controller{machine: m}, nil
}

// Play starts track from Stopped, or resumes the paused track when track
// is empty. A different non-empty track while paused replaces it.
func (c *Controller) Play(ctx context.Context, track string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, _ := c.machine.Ctx().Get(trackKey)
	if track != "" {
		c.machine.Ctx().Set(trackKey, track)
	}
	if err := c.machine.Fire(ctx, primitives.NewEvent(EventPlay, track)); err != nil {
		c.machine.Ctx().Set(trackKey, prev)
		return err
	}
	return nil
}

// Pause holds the current track.
func (c *Controller) Pause(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Fire(ctx, primitives.NewEvent(EventPause, nil))
}

// Stop ends playback and forgets the track.
func (c *Controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.machine.Fire(ctx, primitives.NewEvent(EventStop, nil)); err != nil {
		return err
	}
	c.machine.Ctx().Set(trackKey, "")
	return nil
}

// Player returns the current player value.
func (c *Controller) Player() Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := Player{State: State(c.machine.Current())}
	if p.State != Stopped {
		v, _ := c.machine.Ctx().Get(trackKey)
		p.Track, _ = v.(string)
	}
	return p
}

// Describe returns the status line of the current player.
func (c *Controller) Describe() string {
	return Describe(c.Player())
}
