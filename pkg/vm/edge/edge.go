// Copyright 2022 The Vexflow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package edge implements the flow-controlled connection between two
// processors: a single-chunk slot with a producer view (push side) and a
// consumer view (pull side). An edge belongs to exactly one pipeline
// goroutine; it is not safe for concurrent use.
package edge

import "github.com/vexflow/vexflow/pkg/container/chunk"

type Edge struct {
	slot *chunk.Chunk

	// needed is set by the consumer once it wants data.
	needed bool
	// finished is set by the producer: no more chunks will arrive.
	finished bool
	// closed is set by the consumer: it will never pull again.
	closed bool

	version uint64
}

func New() *Edge {
	return &Edge{}
}

// Version counts every state transition; schedulers use it to detect
// whether a pass over the processors made progress.
func (e *Edge) Version() uint64 {
	return e.version
}

// Producer view.

// CanPush reports whether the consumer asked for data and the slot is
// free. A closed edge never accepts data again.
func (e *Edge) CanPush() bool {
	return e.needed && !e.closed && e.slot == nil
}

func (e *Edge) Push(c *chunk.Chunk) {
	if e.slot != nil || e.closed {
		panic("push on a full or closed edge")
	}
	e.slot = c
	e.version++
}

// Finish tells the consumer no more chunks will arrive. A chunk already
// in the slot stays pullable.
func (e *Edge) Finish() {
	if !e.finished {
		e.finished = true
		e.version++
	}
}

// IsClosed reports whether the consumer abandoned the edge.
func (e *Edge) IsClosed() bool {
	return e.closed
}

// Consumer view.

func (e *Edge) SetNeeded() {
	if !e.needed {
		e.needed = true
		e.version++
	}
}

func (e *Edge) HasData() bool {
	return e.slot != nil
}

func (e *Edge) Pull() *chunk.Chunk {
	if e.slot == nil {
		panic("pull on an empty edge")
	}
	c := e.slot
	e.slot = nil
	e.version++
	return c
}

// IsFinished reports whether the producer finished and nothing is left to
// pull.
func (e *Edge) IsFinished() bool {
	return e.finished && e.slot == nil
}

// Close abandons the edge from the consumer side, dropping any chunk
// still in flight.
func (e *Edge) Close() {
	if !e.closed {
		e.closed = true
		e.slot = nil
		e.version++
	}
}
