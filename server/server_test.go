package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/host"
	"github.com/automoto/heartkeep/scenes"
	"github.com/automoto/heartkeep/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exitRoom(name string) *leveldata.Level {
	return &leveldata.Level{
		Name:   name,
		Width:  64,
		Height: 64,
		Player: leveldata.Point{X: 32, Y: 32},
		Portal: &leveldata.Point{X: 32, Y: 32},
	}
}

func newGame(t *testing.T, levels ...*leveldata.Level) *Game {
	t.Helper()
	g, err := NewGame(levels, components.NewPlayerState(8), scenes.DungeonOptions{Seed: 1}, nil, host.NewFixedClock(60))
	require.NoError(t, err)
	return g
}

func TestNewGameNeedsLevels(t *testing.T) {
	_, err := NewGame(nil, components.NewPlayerState(8), scenes.DungeonOptions{}, nil, host.NewFixedClock(60))
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestGameAdvancesThroughLevels(t *testing.T) {
	g := newGame(t, exitRoom("one"), exitRoom("two"))

	assert.True(t, g.Tick())
	assert.Equal(t, "two", g.Scene().Level().Name)
	assert.False(t, g.Tick())
	assert.False(t, g.Tick(), "finished games stay finished")

	s := g.Summary()
	assert.True(t, s.Won)
	assert.False(t, s.GameOver)
	assert.Equal(t, 2, s.LevelsCleared)
	assert.Equal(t, 2, s.Ticks)
}

func TestGameOverEndsRun(t *testing.T) {
	g, err := NewGame([]*leveldata.Level{exitRoom("one"), exitRoom("two")},
		components.PlayerState{Health: 0, MaxHealth: 8}, scenes.DungeonOptions{}, nil, host.NewFixedClock(60))
	require.NoError(t, err)

	assert.False(t, g.Tick())
	s := g.Summary()
	assert.True(t, s.GameOver)
	assert.False(t, s.Won)
	assert.Equal(t, 0, s.LevelsCleared)
}

func TestRunFastStopsAtMaxTicks(t *testing.T) {
	g := newGame(t, leveldata.DefaultLevel())
	loop := NewGameLoop(g, 60).WithMaxTicks(30)
	loop.RunFast()

	assert.Equal(t, 30, g.Summary().Ticks)
	assert.False(t, loop.Running())
}

func TestRunStops(t *testing.T) {
	g := newGame(t, leveldata.DefaultLevel())
	loop := NewGameLoop(g, 1000)

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.Positive(t, g.Summary().Ticks)
}

func TestReloadAppliesConfig(t *testing.T) {
	t.Cleanup(cfg.Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  goblin_chase_speed: 90\n"), 0o644))

	loop := NewGameLoop(newGame(t, exitRoom("one")), 60)
	loop.configPath = path
	loop.reload()
	assert.Equal(t, 90.0, cfg.Enemy.GoblinChaseSpeed)

	require.NoError(t, os.WriteFile(path, []byte("config:\n  tick_rate: -1\n"), 0o644))
	loop.reload()
	assert.Equal(t, 90.0, cfg.Enemy.GoblinChaseSpeed, "bad files keep the current values")
}
