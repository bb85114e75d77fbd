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
	"context"

	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/container/chunk"
	"github.com/vexflow/vexflow/pkg/vm"
	"github.com/vexflow/vexflow/pkg/vm/edge"
)

func New(ctx context.Context, header chunk.Header, numOutputs int, input *edge.Edge, outputs []*edge.Edge) (*ResizeByHash, error) {
	if numOutputs <= 1 {
		return nil, vferr.NewInternalError(ctx, "resize by hash expects more than 1 output, got %d", numOutputs)
	}
	if len(outputs) != numOutputs {
		return nil, vferr.NewInternalError(ctx,
			"resize by hash configured with %d outputs but wired to %d edges", numOutputs, len(outputs))
	}
	return &ResizeByHash{
		header:     header,
		numOutputs: numOutputs,
		input:      input,
		outputs:    outputs,
		delivered:  make([]bool, numOutputs),
	}, nil
}

func (r *ResizeByHash) Name() string {
	return "resize_by_hash"
}

// Prepare trampolines between the two phases. Falling out of a finished
// generating episode re-evaluates the consuming phase within the same
// call, so no scheduler turn is wasted when there is nothing left to
// generate.
func (r *ResizeByHash) Prepare() (vm.Status, error) {
	for {
		if !r.generating {
			return r.prepareConsume(), nil
		}
		st, fellThrough := r.prepareGenerate()
		if !fellThrough {
			return st, nil
		}
	}
}

func (r *ResizeByHash) prepareConsume() vm.Status {
	// All outputs must be finished or ready before the input is touched;
	// that withholding is what propagates backpressure upstream.
	allFinished := true
	for _, out := range r.outputs {
		if out.IsClosed() {
			continue
		}
		allFinished = false
		if !out.CanPush() {
			return vm.PortFull
		}
	}
	if allFinished {
		r.input.Close()
		return vm.Finished
	}

	if r.input.IsFinished() {
		for _, out := range r.outputs {
			out.Finish()
		}
		return vm.Finished
	}

	r.input.SetNeeded()
	if !r.input.HasData() {
		return vm.NeedData
	}

	r.inputChunk = r.input.Pull()
	// Work unpacks the payload; the phase after that is generating.
	r.generating = true
	return vm.Ready
}

// prepareGenerate pushes every undelivered bucket chunk whose output can
// accept it. The second result reports that the episode completed and
// Prepare should re-run the consuming phase in the same turn.
func (r *ResizeByHash) prepareGenerate() (vm.Status, bool) {
	allProcessed := true
	for i, out := range r.outputs {
		if r.delivered[i] {
			continue
		}
		c := r.outputChunks[i]
		if c == nil || c.RowCount() == 0 {
			continue
		}
		if out.IsClosed() {
			continue
		}
		if !out.CanPush() {
			allProcessed = false
			continue
		}
		out.Push(c)
		r.outputChunks[i] = nil
		r.delivered[i] = true
	}

	if !allProcessed {
		return vm.PortFull, false
	}
	r.generating = false
	return 0, true
}

// Work unpacks the held chunk's payload into the per-output pending
// array. A missing or mis-shaped payload is a protocol violation between
// the two repartition processors and aborts the query; it is never
// skipped.
func (r *ResizeByHash) Work(ctx context.Context) error {
	in := r.inputChunk
	r.inputChunk = nil
	if in == nil {
		return vferr.NewInternalError(ctx, "resize by hash has no chunk to unpack")
	}

	set, ok := in.Payload().(*chunk.PartitionedSet)
	if !ok || set == nil {
		return vferr.NewInternalError(ctx, "resize by hash expected a partitioned set payload on its input chunk")
	}

	chunks := set.Take()
	if len(chunks) != r.numOutputs {
		return vferr.NewInternalError(ctx,
			"resize by hash expected %d partition chunks, got %d", r.numOutputs, len(chunks))
	}
	for i, c := range chunks {
		if c.Width() != r.header.Width() {
			return vferr.NewInternalError(ctx,
				"partition chunk %d has %d columns, the header declares %d", i, c.Width(), r.header.Width())
		}
	}

	r.outputChunks = chunks
	for i := range r.delivered {
		r.delivered[i] = false
	}
	return nil
}
