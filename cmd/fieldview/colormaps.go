// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/fieldview/colormap"
	"github.com/spf13/cobra"
)

func newColormapsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "colormaps",
		Short: "List the available colormaps by index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := colormap.NewRegistry(colormap.Builtins()...)
			if o.cfg.ColormapDir != "" {
				r, err := colormap.OpenDir(o.cfg.ColormapDir)
				if err != nil {
					return err
				}
				reg = r
			}
			w := cmd.OutOrStdout()
			for i := range reg.Len() {
				e, err := reg.At(i)
				if err != nil {
					return err
				}
				src := e.Path
				if src == "" {
					src = "built-in"
				}
				fmt.Fprintf(w, "%3d  %-16s %s\n", i, e.Name, src)
			}
			return nil
		},
	}
}

func newConfigCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.cfg.Write(cmd.OutOrStdout())
		},
	}
}
