// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command datasphere shows the animated data sphere in a desktop
// window, or renders it headless to a sequence of PNG frames.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/cli"
	"github.com/edualert/datasphere/datasphere"
	"github.com/edualert/datasphere/ebitenhost"
	"github.com/edualert/datasphere/frame"
	"github.com/edualert/datasphere/mount"
	"github.com/edualert/datasphere/surface"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the datasphere cli.
type Config struct {

	// Seed seeds the random scene layout; 0 uses the current time.
	Seed int64

	// Scene is an optional TOML file with scene parameter overrides.
	Scene string

	// Size is the side in pixels of the window for run, and of the
	// offscreen region for render.
	Size int `default:"640"`

	// Frames is the number of frames to render.
	Frames int `cmd:"render" default:"60"`

	// FPS is the frame rate used to advance time between rendered frames.
	FPS int `cmd:"render" default:"60"`

	// Output is the directory the rendered frames are written to.
	Output string `cmd:"render" default:"frames"`

	// Debug enables debug logging.
	Debug bool `flag:"d,debug"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("datasphere", "An animated data sphere of panels, sheets and orbiting data points.")
	cli.Run(opts, &Config{}, Run, Render)
}

// Run opens a window showing the data sphere until it is closed.
func Run(c *Config) error { //cli:cmd -root
	mc, err := c.mountConfig()
	if err != nil {
		return err
	}
	w := ebitenhost.NewWindow("Data Sphere", c.Size, c.Size)
	return w.Run(mc)
}

// Render renders the data sphere headless, writing one PNG per frame
// into the output directory.
func Render(c *Config) error {
	mc, err := c.mountConfig()
	if err != nil {
		return err
	}
	if c.Frames <= 0 || c.FPS <= 0 {
		return fmt.Errorf("datasphere: frames and fps must be positive, got %d and %d", c.Frames, c.FPS)
	}
	mc.InitialSize = min(c.Size, mc.MaxSize)
	if err := os.MkdirAll(c.Output, 0750); err != nil {
		return err
	}

	q := frame.NewQueue()
	cm := mount.Mount(mount.Host{
		Region:     &offscreen{size: image.Pt(c.Size, c.Size)},
		Scheduler:  q,
		NewSurface: surface.NewRasterSurface,
	}, mc)
	defer cm.Unmount()
	if !cm.Mounted() {
		return fmt.Errorf("datasphere: could not mount the scene")
	}
	im, ok := cm.Surface().(surface.Imager)
	if !ok {
		return fmt.Errorf("datasphere: surface %T cannot be read back", cm.Surface())
	}

	step := time.Second / time.Duration(c.FPS)
	for f := 0; f < c.Frames; f++ {
		q.Tick(time.Duration(f) * step)
		fn := filepath.Join(c.Output, fmt.Sprintf("frame-%04d.png", f))
		if err := imagex.Save(im.Image(), fn); err != nil {
			return err
		}
	}
	slog.Info("rendered frames", "frames", c.Frames, "output", c.Output)
	return nil
}

// mountConfig returns the mount config, applying the scene file overrides.
func (c *Config) mountConfig() (*mount.Config, error) {
	if c.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	sc := datasphere.NewConfig()
	if c.Scene != "" {
		if err := sc.Open(c.Scene); err != nil {
			return nil, err
		}
	}
	mc := mount.NewConfig()
	mc.Seed = c.Seed
	mc.Scene = sc
	return mc, nil
}

// offscreen is a fixed size region with nothing to display on.
type offscreen struct {
	size     image.Point
	attached surface.Surface
}

func (o *offscreen) ClientSize() image.Point { return o.size }

func (o *offscreen) Attach(sf surface.Surface) { o.attached = sf }

func (o *offscreen) Detach(sf surface.Surface) bool {
	if o.attached != sf {
		return false
	}
	o.attached = nil
	return true
}
