package scenes

import (
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/host"
	"github.com/automoto/heartkeep/shared/leveldata"
	"github.com/automoto/heartkeep/systems"
	"github.com/automoto/heartkeep/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DungeonOptions tune how a DungeonScene is built.
type DungeonOptions struct {
	Seed int64
	// Autopilot lets the bot system drive the player instead of the host input.
	Autopilot bool
}

// DungeonScene runs one level of the simulation.
type DungeonScene struct {
	ecs     *ecs.ECS
	level   *leveldata.Level
	state   components.PlayerState
	session *donburi.Entry
	player  donburi.Entity

	// last player snapshot, kept so NextState works after the player is gone
	lastHealth components.HealthData
	lastPlayer components.PlayerData
}

// NewDungeonScene builds the world for level with the player carrying state.
func NewDungeonScene(level *leveldata.Level, state components.PlayerState, opts DungeonOptions) *DungeonScene {
	ds := &DungeonScene{level: level, state: state}
	ds.configure(opts)
	return ds
}

func (ds *DungeonScene) configure(opts DungeonOptions) {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Intent
	ecs.AddSystem(systems.UpdateBots) // Must run before the player intent systems
	ecs.AddSystem(systems.UpdatePlayerMovement)
	// Attack boxes from swings that ended or were interrupted last tick are
	// cleared here, so a box still set when this tick's scans run lands once more.
	ecs.AddSystem(systems.UpdatePlayerAttack)
	ecs.AddSystem(systems.UpdateMeleeEnemies)
	ecs.AddSystem(systems.UpdateChaseAndWander)

	// Animation, then facing so this tick's boxes are scanned rotated
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateFacing)

	// Channel scans and their responses
	ecs.AddSystem(systems.NewSightSystem().Update)
	ecs.AddSystem(systems.NewAimingSystem().Update)
	ecs.AddSystem(systems.NewPlayerAttackSystem().Update)
	ecs.AddSystem(systems.NewEnemyAttackSystem().Update)
	ecs.AddSystem(systems.NewPurchaseSystem().Update)
	ecs.AddSystem(systems.UpdatePortals)
	ecs.AddSystem(systems.NewExitSystem().Update)
	ecs.AddSystem(systems.UpdateDeaths)

	// Movement
	ecs.AddSystem(systems.UpdateVelocity)
	ecs.AddSystem(systems.UpdateRestitution)
	ecs.AddSystem(systems.UpdateAttachments)

	ds.ecs = ecs
	ds.session = factory.CreateSession(ecs, opts.Seed)
	player := factory.SpawnLevel(ecs, ds.level, ds.state)
	if opts.Autopilot {
		player.AddComponent(components.Bot)
	}
	ds.player = player.Entity()
	ds.snapshot()
}

// Update advances the simulation by one tick. A finished level no longer
// changes.
func (ds *DungeonScene) Update(clock host.Clock, in host.Input) {
	if ds.LevelComplete() || ds.GameOver() {
		return
	}

	dt := clock.DeltaSeconds()
	c := components.Clock.Get(ds.session)
	c.Delta = dt
	c.Elapsed += dt
	c.Ticks++

	copyInput(components.Input.Get(ds.session), in)

	ds.ecs.Update()
	ds.snapshot()
}

func copyInput(dst *components.InputData, in host.Input) {
	clear(dst.Actions)
	clear(dst.Axes)
	if in == nil {
		return
	}
	for _, action := range []string{cfg.ActionAttack, cfg.ActionInteract} {
		dst.Actions[action] = in.ActionDown(action)
	}
	for _, axis := range []string{cfg.AxisLeftRight, cfg.AxisUpDown} {
		if v, ok := in.Axis(axis); ok {
			dst.Axes[axis] = v
		}
	}
}

func (ds *DungeonScene) snapshot() {
	if p, ok := ds.Player(); ok {
		ds.lastHealth = *components.Health.Get(p)
		ds.lastPlayer = *components.Player.Get(p)
	}
}

func (ds *DungeonScene) ECS() *ecs.ECS {
	return ds.ecs
}

func (ds *DungeonScene) Level() *leveldata.Level {
	return ds.level
}

// Player returns the player entry while the player is alive.
func (ds *DungeonScene) Player() (*donburi.Entry, bool) {
	if !ds.ecs.World.Valid(ds.player) {
		return nil, false
	}
	return ds.ecs.World.Entry(ds.player), true
}

func (ds *DungeonScene) WorldState() components.WorldStateData {
	return *components.WorldState.Get(ds.session)
}

func (ds *DungeonScene) Clock() components.ClockData {
	return *components.Clock.Get(ds.session)
}

// LevelComplete reports whether the player is standing in the open exit.
func (ds *DungeonScene) LevelComplete() bool {
	ws := components.WorldState.Get(ds.session)
	return ws.ExitOpened && ws.StandingOnExit
}

func (ds *DungeonScene) GameOver() bool {
	return components.WorldState.Get(ds.session).GameOver
}

// NextState is the PlayerState to carry into the following level. A player
// wearing the HeartBracelet heals one heart, up to their max.
func (ds *DungeonScene) NextState() components.PlayerState {
	health := ds.lastHealth
	player := ds.lastPlayer
	left := health.Left
	if player.Healthy {
		left = min(left+player.HeartSize(), health.Max)
	}
	return ds.state.Advance(health.Max, left, player.Upgrades())
}
