package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second, cfg.Playback.MoveInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Playback.TweenDuration)
	assert.Len(t, cfg.PlaybackOptions(), 5)
}

// TestLoadCreatesDefault verifies first-run creation of a nested path.
func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "config file was not created")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk Config
	require.NoError(t, yaml.Unmarshal(data, &onDisk))
	assert.Equal(t, "http://localhost:8080", onDisk.API.BaseURL)
	assert.Equal(t, time.Second, onDisk.Playback.MoveInterval)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  base_url: http://cube.local:9000
playback:
  move_interval: 250ms
  easing: ease_in_out
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://cube.local:9000", cfg.API.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.MoveInterval)
	assert.Equal(t, "ease_in_out", cfg.Playback.Easing)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "front", cfg.Viewer.Camera)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad url":      "api:\n  base_url: not a url\n",
		"bad camera":   "viewer:\n  camera: sideways\n",
		"bad easing":   "playback:\n  easing: bounce\n",
		"bad scramble": "mock_server:\n  scramble: R U X\n",
		"zero tween":   "playback:\n  tween_duration: 0s\n",
		"bad yaml":     "api: [\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestEmptyScrambleIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MockServer.Scramble = ""
	assert.NoError(t, cfg.Validate())
}

func TestNotationTagRegistered(t *testing.T) {
	assert.NoError(t, configValidate.Var("R U R' U'", "notation"))
	assert.Error(t, configValidate.Var("R X2", "notation"))
}
