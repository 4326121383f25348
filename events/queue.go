// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO event queue, written to by window
// callbacks and drained by the UI loop.
// It must be initialized using [Queue.Init] before use.
type Queue struct {
	head atomic.Pointer[queueNode]
	tail atomic.Pointer[queueNode]
	len  atomic.Int64
}

type queueNode struct {
	next atomic.Pointer[queueNode]
	ev   Event
}

var queueNodePool = sync.Pool{
	New: func() any { return &queueNode{} },
}

// Init initializes the queue with its sentinel node.
func (q *Queue) Init() {
	n := &queueNode{}
	q.head.Store(n)
	q.tail.Store(n)
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return int(q.len.Load())
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	n := queueNodePool.Get().(*queueNode)
	n.next.Store(nil)
	n.ev = ev
	for {
		last := q.tail.Load()
		next := last.next.Load()
		if q.tail.Load() != last {
			continue
		}
		if next != nil {
			q.tail.CompareAndSwap(last, next)
			continue
		}
		if last.next.CompareAndSwap(nil, n) {
			q.tail.CompareAndSwap(last, n)
			q.len.Add(1)
			return
		}
	}
}

// Next removes and returns the next event in the queue,
// or nil if the queue is empty.
func (q *Queue) Next() Event {
	for {
		first := q.head.Load()
		last := q.tail.Load()
		next := first.next.Load()
		if q.head.Load() != first {
			continue
		}
		if first == last {
			if next == nil {
				return nil
			}
			q.tail.CompareAndSwap(last, next)
			continue
		}
		ev := next.ev
		if q.head.CompareAndSwap(first, next) {
			q.len.Add(-1)
			first.ev = nil
			queueNodePool.Put(first)
			return ev
		}
	}
}

// Drain calls fun for each queued event, in order, until the queue is empty.
func (q *Queue) Drain(fun func(Event)) {
	for ev := q.Next(); ev != nil; ev = q.Next() {
		fun(ev)
	}
}
