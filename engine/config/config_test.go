package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "scena", cfg.ApplicationName)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMergesOntoDefaults(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), `
application_name = "demo"
max_camera_count = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ApplicationName)
	assert.Equal(t, uint32(2), cfg.MaxCameraCount)
	// Everything not mentioned keeps its default.
	assert.Equal(t, Default().MaxRigidMeshCount, cfg.MaxRigidMeshCount)
	assert.Equal(t, Default().ResourceEventQueueSize, cfg.ResourceEventQueueSize)
}

func TestLoadRejectsZeroCapacities(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), `max_camera_count = 0`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "max_camera_count")
}

func TestLoadRejectsBrokenToml(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), `max_camera_count = "many"`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadClampsQueueSize(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), `resource_event_queue_size = 1000000`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1<<16, cfg.ResourceEventQueueSize)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `application_name = "before"`)

	var reloads atomic.Int32
	var lastName atomic.Value
	watcher, err := NewWatcher(path, func(cfg *Config) {
		lastName.Store(cfg.ApplicationName)
		reloads.Add(1)
	})
	require.NoError(t, err)
	defer watcher.Close()

	writeConfigFile(t, dir, `application_name = "after"`)

	require.Eventually(t, func() bool {
		return reloads.Load() > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "after", lastName.Load())
}

func TestWatcherKeepsLastGoodConfigOnBrokenWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `application_name = "good"`)

	var reloads atomic.Int32
	watcher, err := NewWatcher(path, func(*Config) {
		reloads.Add(1)
	})
	require.NoError(t, err)
	defer watcher.Close()

	// A write that fails validation must not reach the callback.
	writeConfigFile(t, dir, `max_camera_count = 0`)

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), reloads.Load())
}
