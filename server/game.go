package server

import (
	"errors"
	"log"

	"github.com/automoto/heartkeep/components"
	"github.com/automoto/heartkeep/host"
	"github.com/automoto/heartkeep/scenes"
	"github.com/automoto/heartkeep/shared/leveldata"
)

var ErrNoLevels = errors.New("server: no levels to play")

// Summary describes how a run went.
type Summary struct {
	Ticks         int
	LevelsCleared int
	Won           bool
	GameOver      bool
	State         components.PlayerState
}

// Game plays levels in order, threading the PlayerState from each cleared
// level into the next.
type Game struct {
	levels []*leveldata.Level
	index  int
	scene  *scenes.DungeonScene
	opts   scenes.DungeonOptions
	input  host.Input
	clock  host.Clock

	state    components.PlayerState
	ticks    int
	finished bool
	won      bool
}

func NewGame(levels []*leveldata.Level, state components.PlayerState, opts scenes.DungeonOptions, in host.Input, clock host.Clock) (*Game, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	g := &Game{
		levels: levels,
		opts:   opts,
		input:  in,
		clock:  clock,
		state:  state,
	}
	g.enter(0)
	return g, nil
}

func (g *Game) enter(index int) {
	g.index = index
	opts := g.opts
	opts.Seed += int64(index)
	g.scene = scenes.NewDungeonScene(g.levels[index], g.state, opts)
	log.Printf("Entering level %q (%d/%d) with %d/%d health",
		g.levels[index].Name, index+1, len(g.levels), g.state.Health, g.state.MaxHealth)
}

// Tick advances the current level by one step and handles level
// transitions. It reports false once the run is over.
func (g *Game) Tick() bool {
	if g.finished {
		return false
	}
	g.scene.Update(g.clock, g.input)
	g.ticks++

	switch {
	case g.scene.GameOver():
		log.Printf("Game over in level %q after %d ticks", g.scene.Level().Name, g.ticks)
		g.state = g.scene.NextState()
		g.finished = true
	case g.scene.LevelComplete():
		g.state = g.scene.NextState()
		log.Printf("Level %q complete, %d/%d health", g.scene.Level().Name, g.state.Health, g.state.MaxHealth)
		if g.index+1 >= len(g.levels) {
			g.finished = true
			g.won = true
			return false
		}
		g.enter(g.index + 1)
	}
	return !g.finished
}

func (g *Game) Scene() *scenes.DungeonScene {
	return g.scene
}

func (g *Game) Summary() Summary {
	cleared := g.state.Levels
	if !g.won && g.scene.GameOver() {
		// NextState counts the level that was being played
		cleared--
	}
	return Summary{
		Ticks:         g.ticks,
		LevelsCleared: cleared,
		Won:           g.won,
		GameOver:      g.finished && !g.won,
		State:         g.state,
	}
}
