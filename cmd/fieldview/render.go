// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"time"

	"cogentcore.org/fieldview/app"
	"cogentcore.org/fieldview/base/iox/imagex"
	"cogentcore.org/fieldview/render"
	"cogentcore.org/fieldview/soft"
	"github.com/spf13/cobra"
)

func newRenderCmd(o *options) *cobra.Command {
	ff := &fieldFlags{}
	var (
		out           string
		colormapName  string
		flip          bool
		panX, panY    float32
		zoom          float32
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a field headless to an image file",
		Long: `Render draws a field with the software renderer and saves the frame.
The image format follows the file extension: png, jpg, gif, tif or bmp.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := o.cfg
			if cmd.Flags().Changed("flip") {
				cfg.Flip = flip
			}
			if width <= 0 {
				width = cfg.Window.Width
			}
			if height <= 0 {
				height = cfg.Window.Height
			}
			if zoom <= 0 {
				return fmt.Errorf("zoom must be positive, not %g", zoom)
			}
			f, err := ff.load()
			if err != nil {
				return err
			}

			dev := soft.New(image.Pt(width, height))
			dev.Workers = cfg.Workers
			a, err := app.New(cfg, dev, render.LogAlerter{})
			if err != nil {
				return err
			}
			defer a.Release()
			if err := a.Start(); err != nil {
				return err
			}
			if colormapName != "" {
				if err := a.SelectColormapName(colormapName); err != nil {
					return err
				}
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := a.Surface.Loader.Wait(ctx); err != nil {
				return fmt.Errorf("loading colormap: %w", err)
			}
			if err := a.LoadField(f); err != nil {
				return err
			}
			a.Camera.Pan.X += panX
			a.Camera.Pan.Y += panY
			a.Camera.Scale.X = zoom
			a.Camera.Scale.Y = zoom
			if err := a.Surface.Draw(); err != nil {
				return err
			}

			img := dev.Snapshot()
			if img == nil {
				return fmt.Errorf("nothing was rendered")
			}
			if err := imagex.Save(img, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %s)\n", out, width, height, a.ColormapName())
			return nil
		},
	}
	ff.add(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&out, "output", "o", "fieldview.png", "output image file")
	fs.StringVar(&colormapName, "colormap", "", "colormap name (default: the configured index)")
	fs.BoolVar(&flip, "flip", false, "mirror the colormap")
	fs.Float32Var(&panX, "pan-x", 0, "horizontal pan")
	fs.Float32Var(&panY, "pan-y", 0, "vertical pan")
	fs.Float32Var(&zoom, "zoom", 1, "zoom scale")
	fs.IntVar(&width, "width", 0, "image width (default: the configured window width)")
	fs.IntVar(&height, "height", 0, "image height (default: the configured window height)")
	return cmd
}
