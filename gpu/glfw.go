// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"
	"runtime"
	"time"

	"cogentcore.org/fieldview/base/errors"
	"cogentcore.org/fieldview/events"
	"cogentcore.org/fieldview/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds

func init() {
	// glfw must run on the main thread
	runtime.LockOSThread()
}

// GLFWWindow is a desktop [Window] made with glfw. Its callbacks
// send pointer, scroll, key and resize events to Queue.
// IMPORTANT: all methods must be called on the main thread.
type GLFWWindow struct {

	// Queue receives the window events.
	Queue *events.Queue

	window *glfw.Window
	cursor math32.Vector2
}

// NewGLFWWindow initializes glfw and opens a window of the given
// size and title without a client API, for use with WebGPU.
func NewGLFWWindow(size image.Point, title string, q *events.Queue) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	w := &GLFWWindow{Queue: q, window: window}
	w.setCallbacks()
	return w, nil
}

func (w *GLFWWindow) setCallbacks() {
	w.window.SetMouseButtonCallback(func(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			w.Queue.Send(events.NewPointer(events.PointerDown, w.cursor))
		case glfw.Release:
			w.Queue.Send(events.NewPointer(events.PointerUp, w.cursor))
		}
	})
	w.window.SetCursorPosCallback(func(gw *glfw.Window, x, y float64) {
		w.cursor = math32.Vec2(float32(x), float32(y))
		w.Queue.Send(events.NewPointer(events.PointerMove, w.cursor))
	})
	w.window.SetCursorEnterCallback(func(gw *glfw.Window, entered bool) {
		if !entered {
			w.Queue.Send(events.NewPointer(events.PointerLeave, w.cursor))
		}
	})
	w.window.SetScrollCallback(func(gw *glfw.Window, xoff, yoff float64) {
		// positive glfw offsets scroll up, the opposite of wheel deltas
		w.Queue.Send(events.NewScroll(w.cursor, math32.Vec2(float32(-xoff), float32(-yoff))))
	})
	w.window.SetCharCallback(func(gw *glfw.Window, char rune) {
		w.Queue.Send(events.NewKey(char))
	})
	w.window.SetFramebufferSizeCallback(func(gw *glfw.Window, width, height int) {
		w.Queue.Send(events.NewResize(image.Pt(width, height)))
	})
}

func (w *GLFWWindow) Surface(inst *wgpu.Instance) *wgpu.Surface {
	return inst.CreateSurface(wgpuglfw.GetSurfaceDescriptor(w.window))
}

func (w *GLFWWindow) Size() image.Point {
	width, height := w.window.GetFramebufferSize()
	return image.Pt(width, height)
}

// Rect returns the rectangle of the window in the coordinates of
// pointer events.
func (w *GLFWWindow) Rect() image.Rectangle {
	width, height := w.window.GetSize()
	return image.Rect(0, 0, width, height)
}

// WaitEvents waits up to timeout for window events and processes them,
// returning false once the window should close.
func (w *GLFWWindow) WaitEvents(timeout time.Duration) bool {
	if w.window.ShouldClose() {
		return false
	}
	glfw.WaitEventsTimeout(timeout.Seconds())
	return !w.window.ShouldClose()
}

// SetTitle sets the title of the window.
func (w *GLFWWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

// Wake interrupts [GLFWWindow.WaitEvents] from another goroutine.
func (w *GLFWWindow) Wake() {
	glfw.PostEmptyEvent()
}

// Terminate destroys the window and shuts down glfw.
func (w *GLFWWindow) Terminate() {
	w.window.Destroy()
	glfw.Terminate()
}
