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

// Package pipeline drives a set of processors cooperatively on one
// goroutine. One Step walks the processors in order, calling Prepare and
// running Work wherever Prepare answers Ready; Run loops Step until every
// processor reports Finished.
package pipeline

import (
	"context"

	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/logutil"
	"github.com/vexflow/vexflow/pkg/vm"
	"github.com/vexflow/vexflow/pkg/vm/edge"
)

type Pipeline struct {
	name  string
	procs []vm.Processor
	edges []*edge.Edge

	done  []bool
	works uint64
}

// New builds a pipeline over procs. The edges wired between the procs
// must all be registered so Run can detect stalls.
func New(name string, procs []vm.Processor, edges []*edge.Edge) *Pipeline {
	return &Pipeline{
		name:  name,
		procs: procs,
		edges: edges,
		done:  make([]bool, len(procs)),
	}
}

func (p *Pipeline) Name() string {
	return p.name
}

// Step runs one cooperative pass. It reports whether every processor has
// finished.
func (p *Pipeline) Step(ctx context.Context) (bool, error) {
	allDone := true
	for i, proc := range p.procs {
		if p.done[i] {
			continue
		}
		st, err := proc.Prepare()
		if err != nil {
			return false, err
		}
		switch st {
		case vm.Ready:
			if err := proc.Work(ctx); err != nil {
				return false, err
			}
			p.works++
		case vm.Finished:
			p.done[i] = true
			p.works++
		}
		if !p.done[i] {
			allDone = false
		}
	}
	return allDone, nil
}

func (p *Pipeline) version() uint64 {
	var v uint64
	for _, e := range p.edges {
		v += e.Version()
	}
	return v
}

// Run loops Step until the pipeline finishes. A pass that neither runs
// work nor moves any edge means the graph is wired wrong (every processor
// is waiting on a peer that will never act) and is reported as fatal
// rather than spun on.
func (p *Pipeline) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, w := p.version(), p.works
		finished, err := p.Step(ctx)
		if err != nil {
			logutil.Errorf("pipeline %s failed: %v", p.name, err)
			return err
		}
		if finished {
			return nil
		}
		if p.version() == v && p.works == w {
			return vferr.NewInvalidState(ctx, "pipeline %s stalled: no processor can make progress", p.name)
		}
	}
}
