package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, "0", cfg.Camera.Source)
	assert.Equal(t, 30, cfg.Motion.FPS)
	assert.InDelta(t, 0.5, cfg.Motion.BlendAlpha, 1e-9)
	require.NotNil(t, cfg.Motion.DelayFrames)
	assert.Equal(t, 5, *cfg.Motion.DelayFrames)
	assert.True(t, cfg.Display.ShowPreview)
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	cfg := DefaultConfig()
	cfg.Camera.Source = "clip.mp4"
	*cfg.Motion.DelayFrames = 12
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "clip.mp4", got.Camera.Source)
	require.NotNil(t, got.Motion.DelayFrames)
	assert.Equal(t, 12, *got.Motion.DelayFrames)
}

func TestLoad_InvalidJSONKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	cfg, err := Load(path)
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 30, cfg.Motion.FPS)
}

func TestValidate_ClampsOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Motion.BlendAlpha = 1.5
	cfg.Motion.FPS = -10
	neg := -4
	cfg.Motion.DelayFrames = &neg
	cfg.Camera.Width = -640
	cfg.Camera.Source = ""
	require.NoError(t, cfg.Validate())

	assert.InDelta(t, 0.5, cfg.Motion.BlendAlpha, 1e-9)
	assert.Equal(t, 30, cfg.Motion.FPS)
	assert.Equal(t, 0, *cfg.Motion.DelayFrames)
	assert.Equal(t, 0, cfg.Camera.Width)
	assert.Equal(t, "0", cfg.Camera.Source)
}

func TestInitialDelayFrames_Precedence(t *testing.T) {
	cfg := DefaultConfig()

	// Explicit frames win.
	*cfg.Motion.DelayFrames = 42
	secs := 2.0
	cfg.Motion.DelaySeconds = &secs
	assert.Equal(t, 42, cfg.InitialDelayFrames(30))

	// Seconds convert via fps when frames are unset.
	cfg.Motion.DelayFrames = nil
	assert.Equal(t, 60, cfg.InitialDelayFrames(30))
	assert.Equal(t, 120, cfg.InitialDelayFrames(60))

	// Neither set: five frame default.
	cfg.Motion.DelaySeconds = nil
	assert.Equal(t, 5, cfg.InitialDelayFrames(30))
}
