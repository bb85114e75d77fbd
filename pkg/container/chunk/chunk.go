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

package chunk

import (
	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/container/types"
	"github.com/vexflow/vexflow/pkg/container/vector"
)

// Header describes the columns flowing across an edge. It is fixed at
// construction time; processors validate their column arguments against it
// exactly once.
type Header struct {
	Attrs []string
	Types []types.Type
}

func (h Header) Width() int {
	return len(h.Types)
}

// Chunk is a batch of column-aligned rows. All vectors of a chunk carry
// the same number of rows.
type Chunk struct {
	Vecs []*vector.Vector

	rowCount int
	payload  Payload
}

// New builds a chunk over vecs, deriving the row count from the first
// vector and enforcing that every column agrees on it.
func New(vecs []*vector.Vector) (*Chunk, error) {
	c := &Chunk{Vecs: vecs}
	if len(vecs) == 0 {
		return c, nil
	}
	c.rowCount = vecs[0].Length()
	for i := 1; i < len(vecs); i++ {
		if vecs[i].Length() != c.rowCount {
			return nil, vferr.NewInternalErrorNoCtx(
				"column %d has %d rows, the chunk has %d", i, vecs[i].Length(), c.rowCount)
		}
	}
	return c, nil
}

// NewEmpty builds a zero-column, zero-row chunk; its only use is carrying
// a payload.
func NewEmpty() *Chunk {
	return &Chunk{}
}

func (c *Chunk) RowCount() int {
	return c.rowCount
}

func (c *Chunk) Width() int {
	return len(c.Vecs)
}

func (c *Chunk) SetPayload(p Payload) {
	c.payload = p
}

func (c *Chunk) Payload() Payload {
	return c.payload
}
