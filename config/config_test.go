package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	s, err := Parse([]byte(`
combat:
  knockback_distance: 30
  respect_invulnerability: false
enemy:
  goblin_health: 5
`))
	require.NoError(t, err)

	def := Defaults()
	assert.Equal(t, 30.0, s.Combat.KnockbackDistance)
	assert.False(t, s.Combat.RespectInvulnerability)
	assert.Equal(t, def.Combat.KnockbackSpeed, s.Combat.KnockbackSpeed)
	assert.Equal(t, 5, s.Enemy.GoblinHealth)
	assert.Equal(t, def.Enemy.GoblinChaseSpeed, s.Enemy.GoblinChaseSpeed)
	assert.Equal(t, def.Player, s.Player)
}

func TestParseRejectsBadValues(t *testing.T) {
	_, err := Parse([]byte("config:\n  tick_rate: 0\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("enemy:\n  wander_pause_min: 9\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("physics:\n  margin: -1\n"))
	assert.ErrorContains(t, err, "physics.margin")

	_, err = Parse([]byte("physics:\n  margin: 0\n"))
	assert.NoError(t, err)

	_, err = Parse([]byte("combat: [1, 2"))
	assert.Error(t, err)
}

func TestLoadInstallsGlobals(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  walk_speed: 150\nconfig:\n  seed: 42\n"), 0o644))

	require.NoError(t, Load(path))
	assert.Equal(t, 150.0, Player.WalkSpeed)
	assert.Equal(t, int64(42), C.Seed)
	assert.Equal(t, 400.0, Player.WalkAccel)

	Reset()
	assert.Equal(t, 100.0, Player.WalkSpeed)
}

func TestLoadErrors(t *testing.T) {
	assert.ErrorIs(t, Load(""), ErrNoConfigPath)
	assert.ErrorIs(t, Load(filepath.Join(t.TempDir(), "missing.yaml")), os.ErrNotExist)
}
