// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"context"
	"log/slog"

	"cogentcore.org/fieldview/base/errors"
)

// Source supplies colormaps by index; [Registry] is the standard Source.
// Load is called from loader goroutines.
type Source interface {
	Load(index int) (*Colormap, error)
}

// SourceFunc is a function adapter for [Source].
type SourceFunc func(index int) (*Colormap, error)

func (f SourceFunc) Load(index int) (*Colormap, error) { return f(index) }

// result is the outcome of one decode goroutine.
type result struct {
	seq   uint64
	index int
	cm    *Colormap
	err   error
}

// Loader loads colormaps asynchronously and binds them in request
// order: the last request wins, whatever order decodes finish in.
// Each request takes the next value of a monotonic counter, and a
// decoded colormap is bound only if its request is still the latest.
// Decoded colormaps are cached by index, and a request for a cached
// index binds immediately.
//
// Request, Poll, Wait and Reset must all be called from the same
// (UI) goroutine; only decoding runs elsewhere.
type Loader struct {

	// Source decodes colormaps by index.
	Source Source

	// OnLoad is called on the UI goroutine whenever a colormap is
	// about to become the bound one. If it returns an error, the
	// previous colormap stays bound.
	OnLoad func(index int, cm *Colormap) error

	seq      uint64
	resetSeq uint64
	inflight int
	current  int
	bound    *Colormap
	cache    map[int]*Colormap
	results  chan result
}

// NewLoader returns a new [Loader] for the given source.
func NewLoader(src Source) *Loader {
	return &Loader{
		Source:  src,
		current: -1,
		cache:   map[int]*Colormap{},
		results: make(chan result, 8),
	}
}

// Current returns the index and colormap currently bound,
// or -1 and nil before the first load completes.
func (l *Loader) Current() (int, *Colormap) {
	return l.current, l.bound
}

// Pending returns the number of decodes still in flight.
func (l *Loader) Pending() int {
	return l.inflight
}

// Request asks for colormap index to become bound. A cached colormap
// binds before Request returns; otherwise it is decoded in a new
// goroutine and bound by a later [Loader.Poll] or [Loader.Wait],
// unless a newer request has been made by then. It returns
// the request number.
func (l *Loader) Request(index int) uint64 {
	l.seq++
	seq := l.seq
	if cm, ok := l.cache[index]; ok {
		l.bind(index, cm)
		return seq
	}
	l.inflight++
	slog.Debug("decoding colormap", "index", index, "request", seq)
	go func() {
		cm, err := l.Source.Load(index)
		l.results <- result{seq: seq, index: index, cm: cm, err: err}
	}()
	return seq
}

// Poll handles all decodes that have completed, without blocking.
// It reports whether a colormap was bound.
func (l *Loader) Poll() bool {
	bound := false
	for {
		select {
		case r := <-l.results:
			if l.handle(r) {
				bound = true
			}
		default:
			return bound
		}
	}
}

// Wait blocks until all decodes in flight have completed and been
// handled as by [Loader.Poll], or ctx is done.
func (l *Loader) Wait(ctx context.Context) error {
	for l.inflight > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r := <-l.results:
			l.handle(r)
		}
	}
	return nil
}

// Reset clears the cache, for example after the registry was reloaded
// and indexes may refer to different colormaps. Decodes still in flight
// are neither cached nor bound.
func (l *Loader) Reset() {
	l.cache = map[int]*Colormap{}
	l.resetSeq = l.seq
}

func (l *Loader) handle(r result) bool {
	l.inflight--
	if r.seq <= l.resetSeq {
		return false
	}
	if r.err != nil {
		errors.Warn(r.err, "index", r.index)
		return false
	}
	l.cache[r.index] = r.cm
	if r.seq != l.seq {
		slog.Debug("stale colormap ignored", "index", r.index, "request", r.seq, "latest", l.seq)
		return false
	}
	return l.bind(r.index, r.cm)
}

func (l *Loader) bind(index int, cm *Colormap) bool {
	if l.OnLoad != nil {
		if err := l.OnLoad(index, cm); err != nil {
			errors.Warn(err, "index", index)
			return false
		}
	}
	l.current = index
	l.bound = cm
	return true
}
