// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cogentcore.org/fieldview/base/errors"
	"github.com/fsnotify/fsnotify"
)

// ErrIndex is returned for a colormap index outside the registry.
var ErrIndex = errors.New("colormap: index out of range")

// Entry is one colormap in a [Registry]. File entries have a Path
// and are decoded on demand; built-in entries carry their Colormap.
type Entry struct {
	Name     string
	Path     string
	Colormap *Colormap
}

// Registry is the ordered list of available colormaps, identified
// by index. It is safe for concurrent use.
type Registry struct {

	// Dir is the directory the registry is built from, if any.
	Dir string

	mu      sync.RWMutex
	entries []Entry
}

// NewRegistry returns a new [Registry] of the given in-memory colormaps,
// in the given order.
func NewRegistry(cms ...*Colormap) *Registry {
	r := &Registry{}
	for _, cm := range cms {
		r.entries = append(r.entries, Entry{Name: cm.Name, Colormap: cm})
	}
	return r
}

// OpenDir returns a new [Registry] of the colormap files in dir,
// sorted by file name. Hidden files and subdirectories are skipped;
// files that fail to decode are only reported when loaded.
func OpenDir(dir string) (*Registry, error) {
	r := &Registry{Dir: dir}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload rescans [Registry.Dir]. It does nothing for a registry
// without a directory.
func (r *Registry) Reload() error {
	if r.Dir == "" {
		return nil
	}
	des, err := os.ReadDir(r.Dir)
	if err != nil {
		return fmt.Errorf("colormap: reading registry: %w", err)
	}
	var entries []Entry
	for _, de := range des {
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		path := filepath.Join(r.Dir, de.Name())
		entries = append(entries, Entry{Name: NameFromPath(path), Path: path})
	}
	r.mu.Lock()
	r.entries = entries
	r.mu.Unlock()
	slog.Debug("colormap registry loaded", "dir", r.Dir, "count", len(entries))
	return nil
}

// Len returns the number of colormaps.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// At returns the entry at index i.
func (r *Registry) At(i int) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.entries) {
		return Entry{}, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(r.entries))
	}
	return r.entries[i], nil
}

// Names returns the colormap names in registry order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// IndexOf returns the index of the colormap with the given name, or -1.
func (r *Registry) IndexOf(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i, e := range r.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Load returns the colormap at index i, decoding it from its file
// for file entries. It may be called from any goroutine.
func (r *Registry) Load(i int) (*Colormap, error) {
	e, err := r.At(i)
	if err != nil {
		return nil, err
	}
	if e.Colormap != nil {
		return e.Colormap, nil
	}
	return DecodeFile(e.Path)
}

// Watch reloads the registry whenever files are added to, removed from
// or renamed in [Registry.Dir], calling changed after each reload.
// It blocks until ctx is done.
func (r *Registry) Watch(ctx context.Context, changed func()) error {
	if r.Dir == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(r.Dir); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if errors.Log(r.Reload()) == nil && changed != nil {
				changed()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Warn(err, "dir", r.Dir)
		}
	}
}
