package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	assert.InDelta(t, 0.02, Default().World.DT(), 1e-12)
}

func TestSpeedAtIsStepFunction(t *testing.T) {
	d := Difficulty{BaseSpeed: 100, SpeedIncrement: 10, IncreaseInterval: 10}

	tests := []struct {
		name     string
		elapsed  float64
		expected float64
	}{
		{"start", 0, 100},
		{"mid first interval", 5, 100},
		{"just before boundary", 9.999, 100},
		{"at boundary", 10, 110},
		{"just after boundary", 10.001, 110},
		{"second boundary", 20, 120},
		{"long run", 95.5, 190},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, d.SpeedAt(tc.elapsed))
		})
	}
}

func TestSpeedAtFixedPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyFixed)
	assert.Equal(t, cfg.Difficulty.BaseSpeed, cfg.Difficulty.SpeedAt(1000))
}

func TestTrexHeightFor(t *testing.T) {
	d := Default().Dimensions
	assert.Equal(t, 40.0, d.TrexHeightFor(false))
	assert.Equal(t, 20.0, d.TrexHeightFor(true))
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte("physics:\n  gravity: 800\nworld:\n  tick_interval: 10ms\n")
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.Physics.Gravity)
	assert.Equal(t, 10*time.Millisecond, cfg.World.TickInterval)
	// Untouched fields keep their defaults
	assert.Equal(t, Default().Physics.JumpImpulse, cfg.Physics.JumpImpulse)
	assert.Equal(t, Default().Dimensions, cfg.Dimensions)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative gravity", "physics:\n  gravity: -1\n"},
		{"inverted gaps", "spawn:\n  min_gap: 3\n  max_gap: 1\n"},
		{"zero interval", "difficulty:\n  increase_interval: 0\n"},
		{"duck taller than stand", "dimensions:\n  trex_duck_height: 50\n"},
		{"zero tick", "world:\n  tick_interval: 0s\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("physics: [unterminated"))
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty:\n  base_speed: 150\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 150.0, cfg.Difficulty.BaseSpeed)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick_interval: 20ms")

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(s)
		require.NoError(t, err, s)
		assert.Equal(t, DifficultyPreset(s), p)
	}

	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestApplyPresetKeepsValidConfig(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := Default()
		ApplyPreset(&cfg, p)
		assert.NoError(t, cfg.Validate(), p)
		assert.Equal(t, Default().Difficulty.BaseSpeed, cfg.Difficulty.BaseSpeed, p)
	}
}
