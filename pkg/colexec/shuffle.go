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

// Package colexec holds the column-level building blocks shared by the
// repartition operators: the hash-to-bucket selector and the chunk
// scatter.
package colexec

import (
	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/container/chunk"
	"github.com/vexflow/vexflow/pkg/container/vector"
)

// FillSelector maps every 32-bit hash lane to a destination bucket. The
// hash space [0, 2^32) is cut into numOutputs contiguous ranges of equal
// width: a lane in [(2^32/numOutputs)*i, (2^32/numOutputs)*(i+1)) goes to
// bucket i. The multiply runs in 64 bits so it cannot overflow. The
// mapping is pure: equal lanes always land in the same bucket, whatever
// the row order.
func FillSelector(hash []uint32, numOutputs int, selector []uint32) []uint32 {
	selector = selector[:0]
	n := uint64(numOutputs)
	for _, h := range hash {
		selector = append(selector, uint32(uint64(h)*n>>32))
	}
	return selector
}

// SplitChunk scatters every column of c into numOutputs chunks following
// selector. Rows of one bucket keep their original relative order, and
// all columns are scattered with the same selector so row alignment per
// bucket is preserved. Empty buckets come back as zero-row chunks, never
// nil.
func SplitChunk(c *chunk.Chunk, numOutputs int, selector []uint32) ([]*chunk.Chunk, error) {
	if c.Width() == 0 {
		return nil, vferr.NewInternalErrorNoCtx("cannot split a chunk without columns")
	}

	bucketVecs := make([][]*vector.Vector, numOutputs)
	for _, vec := range c.Vecs {
		parts := vec.Scatter(numOutputs, selector)
		for i := 0; i < numOutputs; i++ {
			bucketVecs[i] = append(bucketVecs[i], parts[i])
		}
	}

	out := make([]*chunk.Chunk, numOutputs)
	for i := 0; i < numOutputs; i++ {
		cc, err := chunk.New(bucketVecs[i])
		if err != nil {
			return nil, err
		}
		out[i] = cc
	}
	return out, nil
}
