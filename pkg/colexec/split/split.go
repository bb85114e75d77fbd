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
	"context"

	"github.com/vexflow/vexflow/pkg/colexec"
	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/common/weakhash"
	"github.com/vexflow/vexflow/pkg/container/chunk"
	"github.com/vexflow/vexflow/pkg/vm"
	"github.com/vexflow/vexflow/pkg/vm/edge"
)

// New validates the configuration once; the checks never repeat per
// chunk. Each failure is fatal: a bad fan-out or key set is a plan bug,
// not user data.
func New(ctx context.Context, header chunk.Header, numOutputs int, keyColumns []int, input, output *edge.Edge) (*SplitByHash, error) {
	if numOutputs <= 1 {
		return nil, vferr.NewInternalError(ctx, "split by hash expects more than 1 output, got %d", numOutputs)
	}
	if len(keyColumns) == 0 {
		return nil, vferr.NewInternalError(ctx, "split by hash cannot split by an empty set of key columns")
	}
	for _, col := range keyColumns {
		if col < 0 || col >= header.Width() {
			return nil, vferr.NewInternalError(ctx,
				"invalid key column %d: the header has only %d columns", col, header.Width())
		}
	}
	return &SplitByHash{
		header:     header,
		numOutputs: numOutputs,
		keyColumns: keyColumns,
		input:      input,
		output:     output,
		ctr:        container{hash: weakhash.New(0)},
	}, nil
}

func (s *SplitByHash) Name() string {
	return "split_by_hash"
}

func (s *SplitByHash) Prepare() (vm.Status, error) {
	// Deliver a finished transform first.
	if s.outputChunk != nil {
		if s.output.IsClosed() {
			s.outputChunk = nil
			s.input.Close()
			return vm.Finished, nil
		}
		if !s.output.CanPush() {
			return vm.PortFull, nil
		}
		s.output.Push(s.outputChunk)
		s.outputChunk = nil
	}

	if s.output.IsClosed() {
		s.input.Close()
		return vm.Finished, nil
	}
	if s.input.IsFinished() {
		s.output.Finish()
		return vm.Finished, nil
	}

	s.input.SetNeeded()
	if !s.input.HasData() {
		return vm.NeedData, nil
	}
	s.inputChunk = s.input.Pull()
	return vm.Ready, nil
}

// Work hashes the key columns, derives the selector, scatters every
// column and attaches the bucket chunks as the output payload.
func (s *SplitByHash) Work(ctx context.Context) error {
	in := s.inputChunk
	s.inputChunk = nil

	s.ctr.hash.Reset(in.RowCount())
	for _, col := range s.keyColumns {
		if err := in.Vecs[col].UpdateWeakHash32(s.ctr.hash); err != nil {
			return err
		}
	}
	s.ctr.selector = colexec.FillSelector(s.ctr.hash.Data(), s.numOutputs, s.ctr.selector)

	parts, err := colexec.SplitChunk(in, s.numOutputs, s.ctr.selector)
	if err != nil {
		return err
	}

	// The payload moves downstream with the chunk; only the hash and
	// selector scratch is reused across input chunks.
	out := chunk.NewEmpty()
	out.SetPayload(&chunk.PartitionedSet{Chunks: parts})
	s.outputChunk = out
	return nil
}
