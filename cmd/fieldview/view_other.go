// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package main

import "github.com/spf13/cobra"

// addViewCmd does nothing on platforms without a desktop window;
// only headless rendering is available there.
func addViewCmd(root *cobra.Command, o *options) {}
