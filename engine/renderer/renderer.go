package renderer

import (
	"fmt"

	"github.com/spaghettifunk/scena/engine/config"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/instances"
	"github.com/spaghettifunk/scena/engine/resources"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// Renderer is the facade an application edits the scene through. It owns
// one group aggregate per entity tier, all wired to the same backend.
type Renderer struct {
	config        *config.Config
	backend       Backend
	resourceGroup *resources.ResourceGroup
	elementGroup  *elements.ElementGroup
	instanceGroup *instances.InstanceGroup
	clock         *core.Clock
}

// Create a new Renderer on top of the given backend
func NewRenderer(cfg *config.Config, backend Backend) (*Renderer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("func NewRenderer - invalid config: %w", err)
	}
	core.SetLogLevel(cfg.LogLevel)

	clock := core.NewClock()
	clock.Start()

	name := cfg.ApplicationName
	renderer := &Renderer{
		config:        cfg,
		backend:       backend,
		resourceGroup: resources.NewResourceGroup(backend, core.NewDebugInfo(name+"-ResourceGroup")),
		elementGroup:  elements.NewElementGroup(backend, core.NewDebugInfo(name+"-ElementGroup")),
		instanceGroup: instances.NewInstanceGroup(backend, core.NewDebugInfo(name+"-InstanceGroup")),
		clock:         clock,
	}
	core.LogInfo("renderer for '%s' is ready", name)
	return renderer, nil
}

// Config returns the configuration the renderer was created with.
func (r *Renderer) Config() *config.Config {
	return r.config
}

// Resources returns the resource tier of the renderer.
func (r *Renderer) Resources() *resources.ResourceGroup {
	return r.resourceGroup
}

// Elements returns the element tier of the renderer.
func (r *Renderer) Elements() *elements.ElementGroup {
	return r.elementGroup
}

// Instances returns the instance tier of the renderer.
func (r *Renderer) Instances() *instances.InstanceGroup {
	return r.instanceGroup
}

// Clock returns the frame clock of the renderer.
func (r *Renderer) Clock() *core.Clock {
	return r.clock
}

// Record opens a recorder whose transaction the backend applies when the
// recorder is finished.
func (r *Renderer) Record() *transactions.Recorder {
	return transactions.Record(r.backend)
}

// ApplyConfig adopts the reloadable parts of a new configuration. Capacity
// changes require a restart and are ignored with a warning.
func (r *Renderer) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if err := cfg.Validate(); err != nil {
		core.LogError("ignoring invalid config: %s", err.Error())
		return
	}
	if cfg.LogLevel != r.config.LogLevel {
		core.SetLogLevel(cfg.LogLevel)
		core.LogInfo("log level changed to '%s'", cfg.LogLevel)
	}
	rest := *cfg
	rest.LogLevel = r.config.LogLevel
	if rest != *r.config {
		core.LogWarn("capacity changes take effect after a restart")
	}
	r.config.LogLevel = cfg.LogLevel
}

// Shutdown stops the clock and tears the backend down. The groups must not
// be used afterwards; inserting through them panics once the backend has
// revoked its allocators.
func (r *Renderer) Shutdown() error {
	r.clock.Stop()
	if err := r.backend.Shutdown(); err != nil {
		return fmt.Errorf("func Shutdown - backend shutdown failed: %w", err)
	}
	core.LogInfo("renderer for '%s' shut down", r.config.ApplicationName)
	return nil
}
