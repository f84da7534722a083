package config

// CombatConfig contains damage and knockback tuning
type CombatConfig struct {
	KnockbackSpeed    float64 `yaml:"knockback_speed"`
	KnockbackDistance float64 `yaml:"knockback_distance"`
	KnockbackStop     float64 `yaml:"knockback_stop"` // seconds of full stop after the push

	PlayerAttackDamage int     `yaml:"player_attack_damage"`
	MeleeInvuln        float64 `yaml:"melee_invuln"` // seconds of immunity after an enemy hit

	// RespectInvulnerability skips the whole hit response while a target's
	// invuln timer is above zero.
	RespectInvulnerability bool `yaml:"respect_invulnerability"`
}

// EnemyConfig contains aggro and goblin tuning
type EnemyConfig struct {
	ChaseMinDistance float64 `yaml:"chase_min_distance"`
	WanderPauseMin   float64 `yaml:"wander_pause_min"`
	WanderPauseMax   float64 `yaml:"wander_pause_max"`
	IdleCooldownMin  float64 `yaml:"idle_cooldown_min"`
	IdleCooldownMax  float64 `yaml:"idle_cooldown_max"`

	GoblinWanderSpeed float64 `yaml:"goblin_wander_speed"`
	GoblinChaseSpeed  float64 `yaml:"goblin_chase_speed"`
	GoblinHealth      int     `yaml:"goblin_health"`
	GoblinDamage      int     `yaml:"goblin_damage"`
	GoblinSize        float64 `yaml:"goblin_size"`
}

// PlayerConfig contains player movement and spawn values
type PlayerConfig struct {
	WalkAccel   float64 `yaml:"walk_accel"`
	WalkSpeed   float64 `yaml:"walk_speed"`
	DecelFactor float64 `yaml:"decel_factor"`
	Size        float64 `yaml:"size"`
	SpawnInvuln float64 `yaml:"spawn_invuln"`
	Health      int     `yaml:"health"`
}

// PhysicsConfig contains restitution broadphase values
type PhysicsConfig struct {
	CellSize int     `yaml:"cell_size"`
	Margin   float64 `yaml:"margin"` // padding so touching boxes share a cell
}

// LevelConfig contains level layout values
type LevelConfig struct {
	TileSize       float64 `yaml:"tile_size"`
	PortalOpenTime float64 `yaml:"portal_open_time"`
	PortalSize     float64 `yaml:"portal_size"`
	ChestHealth    int     `yaml:"chest_health"`
	ChestSize      float64 `yaml:"chest_size"`
}

// AnimationConfig contains shared frame durations in seconds
type AnimationConfig struct {
	WalkFrame float64 `yaml:"walk_frame"`
	IdleFrame float64 `yaml:"idle_frame"`
	SpinFrame float64 `yaml:"spin_frame"`
}

// BotConfig contains autopilot tuning
type BotConfig struct {
	DecisionMin    float64 `yaml:"decision_min"` // seconds between target choices
	DecisionMax    float64 `yaml:"decision_max"`
	StopDistance   float64 `yaml:"stop_distance"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
}

// DebugConfig contains options for the headless runner
type DebugConfig struct {
	LogEvery int  `yaml:"log_every"` // ticks between status lines, 0 disables
	Hitboxes bool `yaml:"hitboxes"`  // dump every channel box with each status line
}

// Config holds general simulation configuration
type Config struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"`
}

// Global configuration instances
var C *Config
var Combat CombatConfig
var Enemy EnemyConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Level LevelConfig
var Animation AnimationConfig
var Bot BotConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Settings is every tunable in one document, as read from a YAML file.
type Settings struct {
	Config    Config          `yaml:"config"`
	Combat    CombatConfig    `yaml:"combat"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Level     LevelConfig     `yaml:"level"`
	Animation AnimationConfig `yaml:"animation"`
	Bot       BotConfig       `yaml:"bot"`
	Debug     DebugConfig     `yaml:"debug"`
}

// Reset restores every global to its built-in default.
func Reset() {
	Install(Defaults())
}

// Install replaces the globals with s.
func Install(s Settings) {
	c := s.Config
	C = &c
	Combat = s.Combat
	Enemy = s.Enemy
	Player = s.Player
	Physics = s.Physics
	Level = s.Level
	Animation = s.Animation
	Bot = s.Bot
	Debug = s.Debug
}

// Defaults returns the built-in tuning.
func Defaults() Settings {
	var s Settings

	s.Config = Config{
		TickRate: 60,
		Seed:     1,
	}

	s.Combat = CombatConfig{
		KnockbackSpeed:    100,
		KnockbackDistance: 15,
		KnockbackStop:     0.05,

		PlayerAttackDamage: 1,
		MeleeInvuln:        1.0,

		RespectInvulnerability: true,
	}

	s.Enemy = EnemyConfig{
		ChaseMinDistance: 12,
		WanderPauseMin:   2,
		WanderPauseMax:   5,
		IdleCooldownMin:  1,
		IdleCooldownMax:  3,

		GoblinWanderSpeed: 50,
		GoblinChaseSpeed:  75,
		GoblinHealth:      2,
		GoblinDamage:      1,
		GoblinSize:        6,
	}

	s.Player = PlayerConfig{
		WalkAccel:   400,
		WalkSpeed:   100,
		DecelFactor: 3,
		Size:        4,
		SpawnInvuln: 2.0,
		Health:      8,
	}

	s.Physics = PhysicsConfig{
		CellSize: 32,
		Margin:   2,
	}

	s.Level = LevelConfig{
		TileSize:       16,
		PortalOpenTime: 0.75,
		PortalSize:     16,
		ChestHealth:    2,
		ChestSize:      8,
	}

	s.Animation = AnimationConfig{
		WalkFrame: 0.1,
		IdleFrame: 1.0,
		SpinFrame: 0.1,
	}

	s.Bot = BotConfig{
		DecisionMin:    0.25,
		DecisionMax:    0.75,
		StopDistance:   10,
		AttackRange:    18,
		AttackCooldown: 0.6,
	}

	s.Debug = DebugConfig{
		LogEvery: 60,
	}

	return s
}
