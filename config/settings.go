package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNoConfigPath = errors.New("config: no path given")

// Load reads a YAML settings file and installs it over the defaults.
// Sections and keys missing from the file keep their default values.
func Load(path string) error {
	if path == "" {
		return ErrNoConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	Install(s)
	return nil
}

// Parse decodes a YAML settings document on top of Defaults.
func Parse(data []byte) (Settings, error) {
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	switch {
	case s.Config.TickRate <= 0:
		return fmt.Errorf("tick_rate must be positive, got %d", s.Config.TickRate)
	case s.Physics.CellSize <= 0:
		return fmt.Errorf("physics.cell_size must be positive, got %d", s.Physics.CellSize)
	case s.Physics.Margin < 0:
		return fmt.Errorf("physics.margin must not be negative, got %v", s.Physics.Margin)
	case s.Combat.KnockbackSpeed <= 0:
		return fmt.Errorf("combat.knockback_speed must be positive, got %v", s.Combat.KnockbackSpeed)
	case s.Enemy.WanderPauseMin > s.Enemy.WanderPauseMax:
		return fmt.Errorf("enemy.wander_pause_min %v exceeds max %v", s.Enemy.WanderPauseMin, s.Enemy.WanderPauseMax)
	case s.Enemy.IdleCooldownMin > s.Enemy.IdleCooldownMax:
		return fmt.Errorf("enemy.idle_cooldown_min %v exceeds max %v", s.Enemy.IdleCooldownMin, s.Enemy.IdleCooldownMax)
	case s.Level.PortalOpenTime <= 0:
		return fmt.Errorf("level.portal_open_time must be positive, got %v", s.Level.PortalOpenTime)
	case s.Bot.DecisionMin > s.Bot.DecisionMax:
		return fmt.Errorf("bot.decision_min %v exceeds max %v", s.Bot.DecisionMin, s.Bot.DecisionMax)
	case s.Animation.WalkFrame <= 0 || s.Animation.IdleFrame <= 0 || s.Animation.SpinFrame <= 0:
		return errors.New("animation frame durations must be positive")
	}
	return nil
}
