package systems

import (
	"testing"

	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortalStaysClosedWhileEnemiesRemain(t *testing.T) {
	e := newTestECS(t)
	portal := factory.CreatePortal(e, 0, 0)
	factory.CreateGoblin(e, 100, 100)
	setDelta(e, 0.1)

	UpdatePortals(e)

	assert.False(t, components.Portal.Get(portal).Opened)
	assert.False(t, worldState(e.World).ExitOpened)
	assert.False(t, components.HitState.Get(portal).Has(components.ChannelPortal))
}

func TestPortalOpensAndGrows(t *testing.T) {
	e := newTestECS(t)
	portal := factory.CreatePortal(e, 0, 0)
	setDelta(e, 0.1)

	UpdatePortals(e)
	require.True(t, components.Portal.Get(portal).Opened)
	assert.True(t, worldState(e.World).ExitOpened)
	assert.True(t, components.Animation.Get(portal).Looping())

	box, ok := components.HitState.Get(portal).Get(components.ChannelPortal)
	require.True(t, ok)
	assert.Greater(t, box.Width, 0.0)
	assert.Less(t, box.Width, cfg.Level.PortalSize)

	setDelta(e, cfg.Level.PortalOpenTime)
	UpdatePortals(e)
	box, _ = components.HitState.Get(portal).Get(components.ChannelPortal)
	assert.InDelta(t, cfg.Level.PortalSize, box.Width, 1e-4)
	assert.Nil(t, components.Portal.Get(portal).Grow)
}

func TestExitNeedsPlayerOnOpenPortal(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePortal(e, 0, 0)
	player := factory.CreatePlayer(e, 0, 0, components.NewPlayerState(8))
	exit := NewExitSystem()

	exit.Update(e)
	assert.False(t, worldState(e.World).StandingOnExit, "closed")

	setDelta(e, cfg.Level.PortalOpenTime)
	UpdatePortals(e)
	exit.Update(e)
	assert.True(t, worldState(e.World).StandingOnExit)

	components.Transform.Get(player).X = 100
	exit.Update(e)
	assert.False(t, worldState(e.World).StandingOnExit, "reset every tick")
}
