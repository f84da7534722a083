package server

import (
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/systems"
)

type GameLoop struct {
	game     *Game
	tickRate int
	maxTicks int
	running  bool
	stopChan chan struct{}
	stopOnce sync.Once

	watcher    *cfg.Watcher
	configPath string
}

func NewGameLoop(game *Game, tickRate int) *GameLoop {
	return &GameLoop{
		game:     game,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// WithMaxTicks stops the loop after n ticks. Zero means no limit.
func (g *GameLoop) WithMaxTicks(n int) *GameLoop {
	g.maxTicks = n
	return g
}

// WithWatcher reloads the config at path whenever w reports a change.
// Reloads happen between ticks, never during one.
func (g *GameLoop) WithWatcher(w *cfg.Watcher, path string) *GameLoop {
	g.watcher = w
	g.configPath = path
	return g
}

// Run ticks at the configured rate until the game ends, the tick limit is
// reached or Stop is called.
func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	events, errs := g.watchChannels()
	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("Game loop stopped")
			return
		case _, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			g.reload()
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Printf("Config watch error: %v", err)
		case <-ticker.C:
			if !g.tick() {
				g.running = false
				log.Println("Game loop finished")
				return
			}
		}
	}
}

// RunFast ticks back to back without waiting on the clock. Pending config
// reloads are still applied between ticks.
func (g *GameLoop) RunFast() {
	g.running = true
	defer func() { g.running = false }()

	events, errs := g.watchChannels()
	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case _, ok := <-events:
			if ok {
				g.reload()
			} else {
				events = nil
			}
			continue
		case err, ok := <-errs:
			if ok {
				log.Printf("Config watch error: %v", err)
			} else {
				errs = nil
			}
			continue
		default:
		}
		if !g.tick() {
			return
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) Running() bool {
	return g.running
}

func (g *GameLoop) watchChannels() (<-chan string, <-chan error) {
	if g.watcher == nil {
		return nil, nil
	}
	return g.watcher.Events, g.watcher.Errors
}

func (g *GameLoop) reload() {
	if err := cfg.Load(g.configPath); err != nil {
		log.Printf("Config reload failed, keeping current values: %v", err)
		return
	}
	log.Printf("Config reloaded from %s", g.configPath)
}

func (g *GameLoop) tick() bool {
	more := g.game.Tick()
	ticks := g.game.ticks
	if every := cfg.Debug.LogEvery; every > 0 && ticks%every == 0 {
		ws := g.game.Scene().WorldState()
		log.Printf("tick %d: level %q, %d enemies left, exit open %v",
			ticks, g.game.Scene().Level().Name, ws.EnemiesRemaining, ws.ExitOpened)
		if cfg.Debug.Hitboxes {
			for _, o := range systems.DebugHitboxes(g.game.Scene().ECS().World) {
				log.Printf("  %v", o)
			}
		}
	}
	if g.maxTicks > 0 && ticks >= g.maxTicks {
		return false
	}
	return more
}
