package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.Video.Fullscreen)
	assert.Equal(t, 60, cfg.Video.TargetFPS)
	assert.Equal(t, []string{"/mnt/mmc/ROMS", "/mnt/sdcard/ROMS"}, cfg.ROMs.MountRoots)
	assert.Equal(t, []string{".gba", ".gbc", ".gb"}, cfg.ROMs.Extensions)
	assert.Equal(t, "/opt/java/bin/java", cfg.Randomizer.JavaBin)
	assert.Equal(t, "4608M", cfg.Randomizer.JavaHeap)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "randomizer-app.yaml")
	data := `
roms:
  mount_roots: ["/tmp/roms"]
randomizer:
  java_heap: 2048M
input:
  repeat_delay_ms: 500
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/tmp/roms"}, cfg.ROMs.MountRoots)
	assert.Equal(t, "2048M", cfg.Randomizer.JavaHeap)
	assert.Equal(t, 500, cfg.Input.RepeatDelayMS)
	// Untouched sections keep their defaults.
	assert.Equal(t, []string{".gba", ".gbc", ".gb"}, cfg.ROMs.Extensions)
	assert.Equal(t, "3rd-party/PokeRandoZX.jar", cfg.Randomizer.Jar)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero fps", "video:\n  target_fps: -1\n"},
		{"extension without dot", "roms:\n  extensions: [gba]\n"},
		{"malformed yaml", "roms: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestResolvePathKeepsAbsolute(t *testing.T) {
	assert.Equal(t, "/opt/java/bin/java", ResolvePath("/opt/java/bin/java"))
}
