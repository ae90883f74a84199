// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ebitenhost hosts a mounted data sphere in a desktop window
// driven by ebiten. The window is the mount region, viewport and frame
// scheduler at once: ebiten calls Layout, Update and Draw on a single
// goroutine, and Update pumps the frame queue once per tick.
package ebitenhost

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/edualert/datasphere/frame"
	"github.com/edualert/datasphere/mount"
	"github.com/edualert/datasphere/surface"
	"github.com/hajimehoshi/ebiten/v2"
)

// Window is an ebiten game that displays one mounted component.
type Window struct {

	// Title is the window title.
	Title string

	// Size is the initial window size in pixels.
	Size image.Point

	// Background fills the window area around the surface.
	Background color.RGBA

	// Component is the mounted component, set by [Window.Run].
	Component *mount.Component

	queue    *frame.Queue
	start    time.Time
	client   image.Point
	surf     surface.Surface
	img      *ebiten.Image
	handlers map[int]func()
	nextID   int
}

// NewWindow returns a new window of the given initial size.
func NewWindow(title string, width, height int) *Window {
	return &Window{
		Title:      title,
		Size:       image.Pt(width, height),
		Background: color.RGBA{0x1a, 0x1a, 0x1a, 0xff},
		queue:      frame.NewQueue(),
		client:     image.Pt(width, height),
		handlers:   map[int]func(){},
	}
}

// Host returns the mount host backed by this window. Surfaces are
// software rasters copied to the screen on every Draw.
func (w *Window) Host() mount.Host {
	return mount.Host{
		Region:     w,
		Viewport:   w,
		Scheduler:  w,
		NewSurface: surface.NewRasterSurface,
	}
}

// Run mounts a component with the given config and runs the window
// until it is closed, then unmounts the component exactly once. It
// blocks and must be called from the main goroutine.
func (w *Window) Run(cfg *mount.Config) error {
	w.start = time.Now()
	w.Component = mount.Mount(w.Host(), cfg)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Size.X, w.Size.Y)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(w)
	w.Component.Unmount()
	return err
}

func (w *Window) Update() error {
	return w.update(ebiten.IsWindowBeingClosed(), time.Since(w.start))
}

// update pumps one frame, or ends the game when the window is closing.
// The component is unmounted by Run once the game has ended.
func (w *Window) update(closing bool, now time.Duration) error {
	if closing {
		slog.Debug("ebitenhost: window closing")
		return ebiten.Termination
	}
	w.queue.Tick(now)
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.Background)
	im, ok := w.surf.(surface.Imager)
	if !ok {
		return
	}
	src := im.Image()
	if src == nil {
		return
	}
	sz := src.Rect.Size()
	if w.img == nil || w.img.Bounds().Size() != sz {
		if w.img != nil {
			w.img.Deallocate()
		}
		w.img = ebiten.NewImage(sz.X, sz.Y)
	}
	w.img.WritePixels(src.Pix)
	op := &ebiten.DrawImageOptions{}
	sb := screen.Bounds().Size()
	op.GeoM.Translate(float64(sb.X-sz.X)/2, float64(sb.Y-sz.Y)/2)
	screen.DrawImage(w.img, op)
}

// Layout uses the outside size as the screen size, notifying the
// resize observers whenever it changes.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	sz := image.Pt(outsideWidth, outsideHeight)
	if sz != w.client {
		w.client = sz
		for _, fun := range w.handlers {
			fun()
		}
	}
	return outsideWidth, outsideHeight
}

// ClientSize returns the current window size in pixels.
func (w *Window) ClientSize() image.Point {
	return w.client
}

func (w *Window) Attach(sf surface.Surface) {
	w.surf = sf
}

func (w *Window) Detach(sf surface.Surface) bool {
	if w.surf == nil || w.surf != sf {
		return false
	}
	w.surf = nil
	if w.img != nil {
		w.img.Deallocate()
		w.img = nil
	}
	return true
}

func (w *Window) OnResize(fun func()) func() {
	id := w.nextID
	w.nextID++
	w.handlers[id] = fun
	return func() {
		delete(w.handlers, id)
	}
}

func (w *Window) ScheduleNext(cb frame.Callback) frame.Handle {
	return w.queue.ScheduleNext(cb)
}

func (w *Window) Cancel(h frame.Handle) {
	w.queue.Cancel(h)
}
