package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/scena/engine/math"
)

// Config sizes the renderer: how many entities of each kind the backend
// allocates GPU-resident array slots for, plus application-level knobs.
type Config struct {
	ApplicationName string `toml:"application_name"`
	LogLevel        string `toml:"log_level"`

	MaxCameraCount               uint32 `toml:"max_camera_count"`
	MaxCameraInstanceCount       uint32 `toml:"max_camera_instance_count"`
	MaxMeshAttributesCount       uint32 `toml:"max_mesh_attributes_count"`
	MaxPointCloudAttributesCount uint32 `toml:"max_point_cloud_attributes_count"`
	MaxInanimateMeshCount        uint32 `toml:"max_inanimate_mesh_count"`
	MaxRigidMeshCount            uint32 `toml:"max_rigid_mesh_count"`
	MaxPointCloudCount           uint32 `toml:"max_point_cloud_count"`
	MaxRigidMeshInstanceCount    uint32 `toml:"max_rigid_mesh_instance_count"`
	MaxPointCloudInstanceCount   uint32 `toml:"max_point_cloud_instance_count"`

	// ResourceEventQueueSize is the buffer of the channel the resource
	// groups send their events over.
	ResourceEventQueueSize int `toml:"resource_event_queue_size"`
}

// Default returns the configuration the testbed ships with.
func Default() *Config {
	return &Config{
		ApplicationName:              "scena",
		LogLevel:                     "info",
		MaxCameraCount:               16,
		MaxCameraInstanceCount:       64,
		MaxMeshAttributesCount:       1024,
		MaxPointCloudAttributesCount: 1024,
		MaxInanimateMeshCount:        1024,
		MaxRigidMeshCount:            1024,
		MaxPointCloudCount:           1024,
		MaxRigidMeshInstanceCount:    65536,
		MaxPointCloudInstanceCount:   65536,
		ResourceEventQueueSize:       256,
	}
}

// Load reads a TOML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("func Load - cannot parse %s: %w", path, err)
	}
	cfg.ResourceEventQueueSize = math.Clamp(cfg.ResourceEventQueueSize, 1, 1<<16)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every capacity can size a GPU-resident array.
func (c *Config) Validate() error {
	counts := []struct {
		name  string
		value uint32
	}{
		{"max_camera_count", c.MaxCameraCount},
		{"max_camera_instance_count", c.MaxCameraInstanceCount},
		{"max_mesh_attributes_count", c.MaxMeshAttributesCount},
		{"max_point_cloud_attributes_count", c.MaxPointCloudAttributesCount},
		{"max_inanimate_mesh_count", c.MaxInanimateMeshCount},
		{"max_rigid_mesh_count", c.MaxRigidMeshCount},
		{"max_point_cloud_count", c.MaxPointCloudCount},
		{"max_rigid_mesh_instance_count", c.MaxRigidMeshInstanceCount},
		{"max_point_cloud_instance_count", c.MaxPointCloudInstanceCount},
	}
	for _, count := range counts {
		if count.value == 0 {
			return fmt.Errorf("func Validate - %s must be > 0", count.name)
		}
	}
	if c.ResourceEventQueueSize <= 0 {
		return fmt.Errorf("func Validate - resource_event_queue_size must be > 0")
	}
	return nil
}
