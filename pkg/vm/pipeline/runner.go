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

package pipeline

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/vexflow/vexflow/pkg/logutil"
)

// Runner executes many pipelines concurrently on a shared goroutine pool.
// Each pipeline still runs on a single goroutine at a time, so processor
// state stays lock-free.
type Runner struct {
	pool *ants.Pool
}

func NewRunner(parallelism int) (*Runner, error) {
	pool, err := ants.NewPool(parallelism)
	if err != nil {
		return nil, err
	}
	return &Runner{pool: pool}, nil
}

// Run submits every pipeline and waits for all of them. The first error
// encountered is returned; the remaining pipelines still run to
// completion so no goroutine is leaked.
func (r *Runner) Run(ctx context.Context, pipelines []*Pipeline) error {
	var wg sync.WaitGroup
	errs := make([]error, len(pipelines))

	for i, p := range pipelines {
		i, p := i, p
		wg.Add(1)
		if err := r.pool.Submit(func() {
			defer wg.Done()
			errs[i] = p.Run(ctx)
		}); err != nil {
			wg.Done()
			errs[i] = err
			logutil.Errorf("submit pipeline %s: %v", p.Name(), err)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) Close() {
	r.pool.Release()
}
