package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/drills/internal/core"
)

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Playing Till I Collapse", Describe(Player{State: Playing, Track: "Till I Collapse"}))
	assert.Equal(t, "Paused Mockingbird", Describe(Player{State: Paused, Track: "Mockingbird"}))
	assert.Equal(t, "Nothing to play", Describe(Player{State: Stopped}))
	assert.Equal(t, "Nothing to play", Player{State: Stopped, Track: "ignored"}.String())
}

func TestDefinitionIsValid(t *testing.T) {
	cfg := Definition()
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Terminal)
}

func TestControllerLifecycle(t *testing.T) {
	ctx := context.Background()
	c, err := NewController()
	require.NoError(t, err)
	assert.Equal(t, "Nothing to play", c.Describe())

	require.NoError(t, c.Play(ctx, "Till I Collapse"))
	assert.Equal(t, "Playing Till I Collapse", c.Describe())

	require.NoError(t, c.Pause(ctx))
	assert.Equal(t, "Paused Till I Collapse", c.Describe())

	require.NoError(t, c.Play(ctx, ""))
	assert.Equal(t, Player{State: Playing, Track: "Till I Collapse"}, c.Player())

	require.NoError(t, c.Stop(ctx))
	assert.Equal(t, Player{State: Stopped}, c.Player())
}

func TestControllerRejectsPlayWithoutTrack(t *testing.T) {
	c, err := NewController()
	require.NoError(t, err)

	err = c.Play(context.Background(), "")
	assert.True(t, errors.Is(err, core.ErrRejected), "got %v", err)
	assert.Equal(t, Stopped, c.Player().State)
}

func TestControllerRejectsInvalidEvents(t *testing.T) {
	ctx := context.Background()
	c, err := NewController()
	require.NoError(t, err)

	assert.ErrorIs(t, c.Pause(ctx), core.ErrRejected)
	assert.ErrorIs(t, c.Stop(ctx), core.ErrRejected)

	require.NoError(t, c.Play(ctx, "Mockingbird"))
	err = c.Play(ctx, "Lose Yourself")
	assert.ErrorIs(t, err, core.ErrRejected)
	assert.Equal(t, "Playing Mockingbird", c.Describe(), "rejected play must not swap the track")
}

func TestControllerPlayNewTrackWhilePaused(t *testing.T) {
	ctx := context.Background()
	c, err := NewController()
	require.NoError(t, err)

	require.NoError(t, c.Play(ctx, "Mockingbird"))
	require.NoError(t, c.Pause(ctx))
	require.NoError(t, c.Play(ctx, "Lose Yourself"))
	assert.Equal(t, "Playing Lose Yourself", c.Describe())
}
