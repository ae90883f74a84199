// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mount attaches an animated data sphere scene to a host region
// and owns every resource it creates until [Component.Unmount].
package mount

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/base/reflectx"
	"github.com/edualert/datasphere/datasphere"
	"github.com/edualert/datasphere/frame"
	"github.com/edualert/datasphere/surface"
	"github.com/edualert/datasphere/xyz"
)

// Region is the host area that displays a surface.
type Region interface {

	// ClientSize returns the current size of the region in pixels.
	ClientSize() image.Point

	// Attach starts displaying the given surface in the region.
	Attach(sf surface.Surface)

	// Detach stops displaying the given surface. It returns false
	// if the surface was not attached.
	Detach(sf surface.Surface) bool
}

// Viewport notifies observers when the host viewport changes size.
type Viewport interface {

	// OnResize registers fun to be called after every resize,
	// and returns a function that removes it.
	OnResize(fun func()) (remove func())
}

// Host bundles the host services a [Component] mounts into.
// Viewport may be nil when the host never resizes.
type Host struct {
	Region     Region
	Viewport   Viewport
	Scheduler  frame.Scheduler
	NewSurface surface.Factory
}

// Config has the mount parameters.
type Config struct {

	// InitialSize is the side of the square surface created at mount,
	// before any resize.
	InitialSize int `default:"400"`

	// MaxSize is the largest side the surface is resized to.
	MaxSize int `default:"500"`

	// Seed seeds the random scene layout; 0 uses the current time.
	Seed int64

	// Scene holds the scene parameters; nil uses the defaults.
	Scene *datasphere.Config
}

// Defaults sets the default sizes from the default struct tags.
func (cfg *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// NewConfig returns a config with default values.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Component is one mounted data sphere. All of its methods must be
// called from the host loop.
type Component struct {

	// Config is the config the component was mounted with.
	Config *Config

	host         Host
	scene        *xyz.Scene
	entities     *datasphere.Entities
	animator     *datasphere.Animator
	surf         surface.Surface
	clock        frame.Clock
	frame        frame.Handle
	removeResize func()
	frames       int
	mounted      bool
	unmounted    bool
}

// Mount builds the scene, attaches a new surface to the host region,
// observes viewport resizes and starts the frame loop. A host without
// a region, or a surface that cannot be created, yields an inert
// component whose Unmount does nothing.
func Mount(host Host, cfg *Config) *Component {
	if cfg == nil {
		cfg = NewConfig()
	}
	cm := &Component{Config: cfg, host: host}
	if host.Region == nil {
		slog.Debug("mount: no region, component is inert")
		return cm
	}
	if host.NewSurface == nil {
		host.NewSurface = surface.NewRasterSurface
		cm.host.NewSurface = host.NewSurface
	}
	sf, err := host.NewSurface(cfg.InitialSize, cfg.InitialSize)
	if errors.Log(err) != nil {
		return cm
	}
	cm.surf = sf
	host.Region.Attach(sf)

	scfg := cfg.Scene
	if scfg == nil {
		scfg = datasphere.NewConfig()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cm.scene = xyz.NewScene("datasphere")
	cm.scene.Camera.Aspect = 1
	cm.scene.Camera.UpdateProjection()
	cm.entities = datasphere.Build(cm.scene, scfg, randx.NewSysRand(seed))
	cm.animator = datasphere.NewAnimator(cm.scene, cm.entities, scfg)
	cm.mounted = true

	if host.Viewport != nil {
		cm.removeResize = host.Viewport.OnResize(cm.resize)
	}
	if host.Scheduler != nil {
		cm.frame = host.Scheduler.ScheduleNext(cm.renderFrame)
	}
	slog.Debug("mount: mounted", "size", cfg.InitialSize, "seed", seed)
	return cm
}

// resize fits the surface to the region width, capped at MaxSize.
// The surface stays square and the entities are not touched.
func (cm *Component) resize() {
	if !cm.mounted {
		return
	}
	size := min(cm.host.Region.ClientSize().X, cm.Config.MaxSize)
	cm.surf.SetSize(size, size)
	cm.scene.Camera.Aspect = 1
	cm.scene.Camera.UpdateProjection()
	slog.Debug("mount: resized", "size", size)
}

// renderFrame is the frame callback: it advances the animation,
// renders, and schedules the next frame once this one is done.
func (cm *Component) renderFrame(now time.Duration) {
	cm.frame = 0
	if !cm.mounted {
		return
	}
	cm.animator.Step(cm.clock.Elapsed(now))
	if err := cm.surf.Render(cm.scene); err != nil {
		cm.animator.Stop()
		slog.Error("mount: render failed, frame loop stopped", "frames", cm.frames, "err", err)
		return
	}
	cm.frames++
	cm.frame = cm.host.Scheduler.ScheduleNext(cm.renderFrame)
}

// Unmount stops the frame loop and releases everything the component
// created: the resize observer, the scheduled frame, the surface and
// its attachment, and the mesh and material of every entity.
// It is safe to call before the first frame, and more than once.
func (cm *Component) Unmount() {
	if !cm.mounted {
		if cm.unmounted {
			slog.Debug("mount: already unmounted")
		}
		return
	}
	cm.mounted = false
	cm.unmounted = true

	if cm.removeResize != nil {
		cm.removeResize()
		cm.removeResize = nil
	}
	if cm.frame != 0 {
		cm.host.Scheduler.Cancel(cm.frame)
		cm.frame = 0
	}
	cm.animator.Stop()
	if !cm.host.Region.Detach(cm.surf) {
		slog.Debug("mount: surface was already detached")
	}
	cm.surf.Release()
	for _, id := range cm.entities.Releasable() {
		errors.Log(cm.scene.Release(id))
	}
	slog.Debug("mount: unmounted", "frames", cm.frames, "live", cm.scene.Live())
}

// Surface returns the render surface, or nil for an inert component.
func (cm *Component) Surface() surface.Surface {
	return cm.surf
}

// Scene returns the scene, or nil for an inert component.
func (cm *Component) Scene() *xyz.Scene {
	return cm.scene
}

// Entities returns the built entity handles, or nil for an inert component.
func (cm *Component) Entities() *datasphere.Entities {
	return cm.entities
}

// Frames returns the number of frames rendered.
func (cm *Component) Frames() int {
	return cm.frames
}

// Running returns whether the frame loop is live. It turns false on
// unmount, and when a render fails, which stops the loop while the
// component stays mounted until Unmount releases it.
func (cm *Component) Running() bool {
	return cm.mounted && cm.animator.Running()
}

// Mounted returns whether the component is live: mounted
// successfully and not yet unmounted.
func (cm *Component) Mounted() bool {
	return cm.mounted
}
