package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/host"
	"github.com/automoto/heartkeep/scenes"
	"github.com/automoto/heartkeep/server"
	"github.com/automoto/heartkeep/shared/leveldata"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (optional)")
	levelsDir := flag.String("levels", "", "Directory of .tmx levels (empty = built-in level)")
	ticks := flag.Int("ticks", 0, "Stop after this many ticks (0 = until the run ends)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = use config)")
	seed := flag.Int64("seed", 0, "Random seed (0 = use config)")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	fast := flag.Bool("fast", false, "Tick as fast as possible instead of in real time")
	autopilot := flag.Bool("autopilot", true, "Let the bot play the player")
	hitboxes := flag.Bool("hitboxes", false, "Log every hitbox with each status line")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Printf("Loaded config from %s", *configPath)
	}
	if *hitboxes {
		cfg.Debug.Hitboxes = true
	}
	if *tickRate <= 0 {
		*tickRate = cfg.C.TickRate
	}
	if *seed == 0 {
		*seed = cfg.C.Seed
	}

	levels := []*leveldata.Level{leveldata.DefaultLevel()}
	if *levelsDir != "" {
		loaded, err := leveldata.LoadAllLevels(os.DirFS(*levelsDir), ".")
		if err != nil {
			log.Fatalf("Failed to load levels: %v", err)
		}
		levels = loaded
	}

	in := host.NewCenteredInput(cfg.AxisLeftRight, cfg.AxisUpDown)
	game, err := server.NewGame(levels, components.NewPlayerState(cfg.Player.Health),
		scenes.DungeonOptions{Seed: *seed, Autopilot: *autopilot}, in, host.NewFixedClock(*tickRate))
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	loop := server.NewGameLoop(game, *tickRate).WithMaxTicks(*ticks)
	if *watch {
		w, err := cfg.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer w.Close()
		loop.WithWatcher(w, *configPath)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Starting heartkeep with %d level(s) (tick rate: %d/s, seed: %d)", len(levels), *tickRate, *seed)
	if *fast {
		loop.RunFast()
	} else {
		loop.Run()
	}

	s := game.Summary()
	log.Printf("Run ended after %d ticks: %d level(s) cleared, won=%v, game over=%v, health %d/%d, upgrades %v",
		s.Ticks, s.LevelsCleared, s.Won, s.GameOver, s.State.Health, s.State.MaxHealth, s.State.Upgrades)
}
