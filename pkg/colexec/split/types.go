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

package split

import (
	"github.com/vexflow/vexflow/pkg/common/weakhash"
	"github.com/vexflow/vexflow/pkg/container/chunk"
	"github.com/vexflow/vexflow/pkg/vm"
	"github.com/vexflow/vexflow/pkg/vm/edge"
)

var _ vm.Processor = new(SplitByHash)

// SplitByHash transforms each input chunk into one output chunk whose
// partitioned-set payload holds numOutputs bucket chunks. The split is
// performed by the formula weakhash(key columns) * numOutputs / 2^32.
// All the bucket chunks travel over the single output edge; wire a
// ResizeByHash downstream to spread them across output edges.
type SplitByHash struct {
	header     chunk.Header
	numOutputs int
	keyColumns []int

	input  *edge.Edge
	output *edge.Edge

	ctr container

	// inputChunk is the chunk Work is about to scatter; outputChunk is a
	// transformed chunk waiting for the output edge to accept it.
	inputChunk  *chunk.Chunk
	outputChunk *chunk.Chunk
}

// container keeps the per-chunk scratch reused across input chunks.
type container struct {
	hash     *weakhash.Hash32
	selector []uint32
}
