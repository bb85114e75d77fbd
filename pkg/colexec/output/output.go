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

// Package output terminates a pipeline edge, handing every pulled chunk
// to a caller-supplied function.
package output

import (
	"context"

	"github.com/vexflow/vexflow/pkg/container/chunk"
	"github.com/vexflow/vexflow/pkg/vm"
	"github.com/vexflow/vexflow/pkg/vm/edge"
)

var _ vm.Processor = new(Output)

type Output struct {
	input *edge.Edge
	fn    func(*chunk.Chunk) error
	held  *chunk.Chunk
}

func New(input *edge.Edge, fn func(*chunk.Chunk) error) *Output {
	return &Output{input: input, fn: fn}
}

func (o *Output) Name() string {
	return "output"
}

func (o *Output) Prepare() (vm.Status, error) {
	if o.input.IsFinished() {
		return vm.Finished, nil
	}
	o.input.SetNeeded()
	if !o.input.HasData() {
		return vm.NeedData, nil
	}
	o.held = o.input.Pull()
	return vm.Ready, nil
}

func (o *Output) Work(context.Context) error {
	c := o.held
	o.held = nil
	return o.fn(c)
}
