// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fieldview renders 2D scalar fields through colormaps,
// interactively in a window or headless to an image file.
package main

import (
	"os"

	"cogentcore.org/fieldview/config"
	"cogentcore.org/fieldview/field"
	"cogentcore.org/fieldview/logx"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the global flags and the config they select.
type options struct {
	configFile  string
	colormapDir string
	debug       bool
	verbose     bool
	quiet       bool

	cfg *config.Config
}

func (o *options) load() error {
	logx.UserLevel = logx.LevelFromFlags(o.debug, o.verbose, o.quiet)
	logx.SetDefaultLogger()
	if o.configFile == "" {
		o.cfg = config.Defaults()
	} else {
		cfg, err := config.Open(o.configFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}
	if o.colormapDir != "" {
		o.cfg.ColormapDir = o.colormapDir
		return o.cfg.Validate()
	}
	return nil
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "fieldview",
		Short:        "View 2D scalar fields through colormaps",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&o.configFile, "config", "c", "", "TOML config file")
	pf.StringVar(&o.colormapDir, "colormaps", "", "directory of colormap images (default: the built-in colormaps)")
	pf.BoolVar(&o.debug, "debug", false, "log debug messages")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(newRenderCmd(o), newColormapsCmd(o), newConfigCmd(o))
	addViewCmd(root, o)
	return root
}

// fieldFlags select the field to show: a JSON payload file,
// or else a synthetic pattern.
type fieldFlags struct {
	data    string
	pattern string
	width   int
	height  int
}

func (ff *fieldFlags) add(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&ff.data, "data", "d", "", "JSON payload file with data, width, height, minValue and maxValue")
	fs.StringVarP(&ff.pattern, "pattern", "p", "waves", "synthetic field when no data is given: ramp, gauss or waves")
	fs.IntVar(&ff.width, "field-width", 256, "width of the synthetic field")
	fs.IntVar(&ff.height, "field-height", 256, "height of the synthetic field")
}

func (ff *fieldFlags) load() (*field.Field, error) {
	if ff.data != "" {
		return field.OpenPayload(ff.data)
	}
	return field.Pattern(ff.pattern, ff.width, ff.height)
}
