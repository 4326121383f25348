// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"cogentcore.org/fieldview/app"
	"cogentcore.org/fieldview/base/errors"
	"cogentcore.org/fieldview/gpu"
	"cogentcore.org/fieldview/render"
	"github.com/spf13/cobra"
)

func viewHelp() string {
	var b strings.Builder
	b.WriteString(`View opens a window showing the field through the selected colormap.
Drag to pan and use the wheel to zoom. Keyboard shortcuts:

`)
	for _, sc := range app.Shortcuts {
		fmt.Fprintf(&b, "  %c  %s\n", sc.Rune, sc.Help)
	}
	return b.String()
}

func addViewCmd(root *cobra.Command, o *options) {
	ff := &fieldFlags{}
	var debug bool
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show a field in an interactive window",
		Long:  viewHelp(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.load()
			if err != nil {
				return err
			}
			cfg := o.cfg
			win, err := gpu.NewGLFWWindow(image.Pt(cfg.Window.Width, cfg.Window.Height), "fieldview", nil)
			if err != nil {
				return err
			}
			defer win.Terminate()

			dev := gpu.NewDevice(win)
			dev.Debug = debug
			al := render.AlertFunc(func(msg string) {
				fmt.Fprintln(os.Stderr, "fieldview:", msg)
			})
			a, err := app.New(cfg, dev, al)
			if err != nil {
				return err
			}
			defer a.Release()
			win.Queue = &a.Queue
			a.Rect = win.Rect
			a.OnChange = func() {
				win.SetTitle("fieldview: " + a.Status())
			}
			if err := a.Start(); err != nil {
				return err
			}
			if err := a.LoadField(f); err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if cfg.Watch && cfg.ColormapDir != "" {
				go func() {
					errors.Log(a.Watch(ctx, win.Wake))
				}()
			}
			for win.WaitEvents(100 * time.Millisecond) {
				a.ProcessEvents()
			}
			return nil
		},
	}
	ff.add(cmd)
	cmd.Flags().BoolVar(&debug, "gpu-debug", false, "enable GPU validation messages")
	root.AddCommand(cmd)
}
