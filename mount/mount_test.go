// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mount

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/edualert/datasphere/frame"
	"github.com/edualert/datasphere/surface"
	"github.com/edualert/datasphere/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// events records host calls in order.
type events []string

func (ev *events) add(s string) {
	*ev = append(*ev, s)
}

type fakeSurface struct {
	ev       *events
	size     image.Point
	renders  int
	released bool

	// failRender makes Render fail as if the surface was lost.
	failRender bool

	// liveAtRelease is the scene resource count seen when Release is called.
	liveAtRelease int
	scene         *xyz.Scene
}

func (fs *fakeSurface) SetSize(w, h int) { fs.size = image.Pt(max(w, 1), max(h, 1)) }
func (fs *fakeSurface) Size() image.Point { return fs.size }

func (fs *fakeSurface) Render(sc *xyz.Scene) error {
	if fs.released || fs.failRender {
		return surface.ErrReleased
	}
	fs.scene = sc
	fs.renders++
	return nil
}

func (fs *fakeSurface) Release() {
	fs.ev.add("release-surface")
	fs.released = true
	if fs.scene != nil {
		fs.liveAtRelease = fs.scene.Live()
	}
}

type fakeRegion struct {
	ev       *events
	width    int
	attached surface.Surface
	detaches int
}

func (fr *fakeRegion) ClientSize() image.Point { return image.Pt(fr.width, fr.width) }

func (fr *fakeRegion) Attach(sf surface.Surface) {
	fr.ev.add("attach")
	fr.attached = sf
}

func (fr *fakeRegion) Detach(sf surface.Surface) bool {
	fr.ev.add("detach")
	fr.detaches++
	if fr.attached != sf {
		return false
	}
	fr.attached = nil
	return true
}

type fakeViewport struct {
	ev       *events
	handlers map[int]func()
	next     int
}

func (fv *fakeViewport) OnResize(fun func()) func() {
	if fv.handlers == nil {
		fv.handlers = map[int]func(){}
	}
	id := fv.next
	fv.next++
	fv.handlers[id] = fun
	return func() {
		fv.ev.add("remove-resize")
		delete(fv.handlers, id)
	}
}

func (fv *fakeViewport) resize() {
	for _, fun := range fv.handlers {
		fun()
	}
}

// recordingQueue is a frame.Queue that records cancellations.
type recordingQueue struct {
	*frame.Queue
	ev *events
}

func (rq *recordingQueue) Cancel(h frame.Handle) {
	rq.ev.add("cancel")
	rq.Queue.Cancel(h)
}

type fixture struct {
	ev       events
	region   *fakeRegion
	viewport *fakeViewport
	queue    *recordingQueue
	surf     *fakeSurface
}

func newFixture(width int) *fixture {
	fx := &fixture{}
	fx.region = &fakeRegion{ev: &fx.ev, width: width}
	fx.viewport = &fakeViewport{ev: &fx.ev}
	fx.queue = &recordingQueue{Queue: frame.NewQueue(), ev: &fx.ev}
	return fx
}

func (fx *fixture) host() Host {
	return Host{
		Region:    fx.region,
		Viewport:  fx.viewport,
		Scheduler: fx.queue,
		NewSurface: func(w, h int) (surface.Surface, error) {
			fx.surf = &fakeSurface{ev: &fx.ev, size: image.Pt(w, h)}
			return fx.surf, nil
		},
	}
}

func (fx *fixture) mount(t *testing.T) *Component {
	t.Helper()
	cfg := NewConfig()
	cfg.Seed = 1
	cm := Mount(fx.host(), cfg)
	require.True(t, cm.Mounted())
	return cm
}

func TestMountAttaches(t *testing.T) {
	fx := newFixture(1000)
	cm := fx.mount(t)
	assert.Equal(t, events{"attach"}, fx.ev)
	assert.Same(t, fx.surf, fx.region.attached)
	assert.Equal(t, image.Pt(400, 400), cm.Surface().Size())
	assert.Equal(t, float32(1), cm.Scene().Camera.Aspect)
	assert.Equal(t, 82, cm.Scene().Live())
	assert.Len(t, fx.viewport.handlers, 1)
	assert.Equal(t, 1, fx.queue.Pending())
}

func TestFrameLoop(t *testing.T) {
	fx := newFixture(400)
	cm := fx.mount(t)
	fx.queue.Run(10, 0, time.Second/60)
	assert.Equal(t, 10, cm.Frames())
	assert.Equal(t, 10, fx.surf.renders)
	assert.Equal(t, 10, cm.animatorFrames())
	assert.Equal(t, 1, fx.queue.Pending())
}

func TestResize(t *testing.T) {
	fx := newFixture(400)
	cm := fx.mount(t)
	en := cm.Entities()
	pos := cm.Scene().Node(en.Points[0]).Pose.Pos

	fx.region.width = 800
	fx.viewport.resize()
	assert.Equal(t, image.Pt(500, 500), cm.Surface().Size())
	assert.Equal(t, float32(1), cm.Scene().Camera.Aspect)

	fx.region.width = 300
	fx.viewport.resize()
	assert.Equal(t, image.Pt(300, 300), cm.Surface().Size())
	assert.Equal(t, float32(1), cm.Scene().Camera.Aspect)

	assert.Equal(t, pos, cm.Scene().Node(en.Points[0]).Pose.Pos)
	assert.Len(t, en.Points, 30)
}

func TestUnmountOrder(t *testing.T) {
	fx := newFixture(400)
	cm := fx.mount(t)
	fx.queue.Run(3, 0, time.Second/60)
	fx.ev = nil

	cm.Unmount()
	assert.Equal(t, events{"remove-resize", "cancel", "detach", "release-surface"}, fx.ev)
	assert.Equal(t, 82, fx.surf.liveAtRelease)
	assert.Equal(t, 0, cm.Scene().Live())
	assert.False(t, cm.Mounted())
	assert.Empty(t, fx.viewport.handlers)
	assert.Nil(t, fx.region.attached)
	assert.Equal(t, 0, fx.queue.Pending())
	for _, id := range cm.Entities().Releasable() {
		assert.True(t, cm.Scene().Node(id).Released())
	}
}

func TestUnmountBeforeFirstFrame(t *testing.T) {
	fx := newFixture(400)
	cm := fx.mount(t)
	cm.Unmount()
	assert.Equal(t, 0, cm.Frames())
	assert.Equal(t, 0, fx.surf.renders)
	assert.Equal(t, 0, cm.Scene().Live())
	assert.Equal(t, 0, fx.queue.Pending())
	assert.True(t, fx.surf.released)
}

func TestNoRenderAfterUnmount(t *testing.T) {
	fx := newFixture(400)
	cm := fx.mount(t)
	fx.queue.Run(3, 0, time.Second/60)
	cm.Unmount()
	fx.queue.Run(5, time.Second, time.Second/60)
	fx.viewport.resize()
	assert.Equal(t, 3, fx.surf.renders)
	assert.Equal(t, 3, cm.Frames())
	assert.Equal(t, 3, cm.animatorFrames())
}

func TestRenderFailureStopsLoop(t *testing.T) {
	fx := newFixture(400)
	cm := fx.mount(t)
	fx.queue.Run(2, 0, time.Second/60)
	assert.True(t, cm.Running())

	fx.surf.failRender = true
	fx.queue.Run(3, time.Second, time.Second/60)
	assert.Equal(t, 2, cm.Frames())
	assert.Equal(t, 3, cm.animatorFrames())
	assert.False(t, cm.Running())
	assert.True(t, cm.Mounted())
	assert.Equal(t, 0, fx.queue.Pending())

	cm.Unmount()
	assert.Equal(t, 0, cm.Scene().Live())
	assert.False(t, cm.Running())
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 400, cfg.InitialSize)
	assert.Equal(t, 500, cfg.MaxSize)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Nil(t, cfg.Scene)
}

func TestDoubleUnmount(t *testing.T) {
	fx := newFixture(400)
	cm := fx.mount(t)
	cm.Unmount()
	cm.Unmount()
	assert.Equal(t, 1, fx.region.detaches)
	assert.Equal(t, 0, cm.Scene().Live())
}

func TestUnmountAlreadyDetached(t *testing.T) {
	fx := newFixture(400)
	cm := fx.mount(t)
	fx.region.attached = nil
	cm.Unmount()
	assert.True(t, fx.surf.released)
	assert.Equal(t, 0, cm.Scene().Live())
}

func TestMountWithoutRegion(t *testing.T) {
	q := frame.NewQueue()
	cm := Mount(Host{Scheduler: q}, nil)
	assert.False(t, cm.Mounted())
	assert.Nil(t, cm.Surface())
	assert.Nil(t, cm.Scene())
	assert.Equal(t, 0, q.Pending())
	cm.Unmount()
	assert.False(t, cm.Mounted())
}

func TestMountSurfaceFailure(t *testing.T) {
	fx := newFixture(400)
	host := fx.host()
	host.NewSurface = func(w, h int) (surface.Surface, error) {
		return nil, errors.New("no surface for you")
	}
	cm := Mount(host, nil)
	assert.False(t, cm.Mounted())
	assert.Nil(t, cm.Surface())
	assert.Empty(t, fx.ev)
	assert.Empty(t, fx.viewport.handlers)
	assert.Equal(t, 0, fx.queue.Pending())
	cm.Unmount()
	assert.Empty(t, fx.ev)
}

func TestMountRaster(t *testing.T) {
	fx := newFixture(400)
	host := fx.host()
	host.NewSurface = nil
	cfg := NewConfig()
	cfg.InitialSize = 64
	cm := Mount(host, cfg)
	require.True(t, cm.Mounted())
	rs, ok := cm.Surface().(*surface.Raster)
	require.True(t, ok)
	fx.queue.Run(2, 0, time.Second/60)
	assert.Equal(t, 2, cm.Frames())
	cm.Unmount()
	assert.True(t, rs.Released())
}

// animatorFrames returns the number of frames the animator has stepped.
func (cm *Component) animatorFrames() int {
	return cm.animator.Frames
}
