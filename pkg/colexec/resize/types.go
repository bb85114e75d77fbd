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

package resize

import (
	"github.com/vexflow/vexflow/pkg/container/chunk"
	"github.com/vexflow/vexflow/pkg/vm"
	"github.com/vexflow/vexflow/pkg/vm/edge"
)

var _ vm.Processor = new(ResizeByHash)

// ResizeByHash spreads the bucket chunks produced by SplitByHash over
// numOutputs output edges. It alternates between two phases: consuming
// (take one chunk from the input edge) and generating (drain the unpacked
// bucket chunks onto their outputs, across as many scheduler turns as
// backpressure requires, without recomputing or dropping anything).
type ResizeByHash struct {
	header     chunk.Header
	numOutputs int

	input   *edge.Edge
	outputs []*edge.Edge

	// inputChunk holds the one chunk being drained.
	inputChunk   *chunk.Chunk
	outputChunks []*chunk.Chunk
	// delivered[i] guards output i for the current generating episode;
	// all flags reset when a new chunk is unpacked.
	delivered []bool

	generating bool
}
