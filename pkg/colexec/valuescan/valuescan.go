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

// Package valuescan feeds a fixed list of in-memory chunks into a
// pipeline, then finishes its edge.
package valuescan

import (
	"context"

	"github.com/vexflow/vexflow/pkg/container/chunk"
	"github.com/vexflow/vexflow/pkg/vm"
	"github.com/vexflow/vexflow/pkg/vm/edge"
)

var _ vm.Processor = new(ValueScan)

type ValueScan struct {
	chunks []*chunk.Chunk
	next   int
	output *edge.Edge
}

func New(chunks []*chunk.Chunk, output *edge.Edge) *ValueScan {
	return &ValueScan{chunks: chunks, output: output}
}

func (v *ValueScan) Name() string {
	return "value_scan"
}

func (v *ValueScan) Prepare() (vm.Status, error) {
	if v.output.IsClosed() {
		return vm.Finished, nil
	}
	if v.next >= len(v.chunks) {
		v.output.Finish()
		return vm.Finished, nil
	}
	if !v.output.CanPush() {
		return vm.PortFull, nil
	}
	v.output.Push(v.chunks[v.next])
	v.next++
	if v.next >= len(v.chunks) {
		v.output.Finish()
		return vm.Finished, nil
	}
	return vm.PortFull, nil
}

func (v *ValueScan) Work(context.Context) error {
	return nil
}
