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

// vexflow runs a demonstration shuffle: a few pipelines repartitioning
// generated chunks by hash across N outputs, reporting per-bucket row
// counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"sync/atomic"

	"github.com/vexflow/vexflow/pkg/colexec/output"
	"github.com/vexflow/vexflow/pkg/colexec/resize"
	"github.com/vexflow/vexflow/pkg/colexec/split"
	"github.com/vexflow/vexflow/pkg/colexec/valuescan"
	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/config"
	"github.com/vexflow/vexflow/pkg/container/chunk"
	"github.com/vexflow/vexflow/pkg/container/types"
	"github.com/vexflow/vexflow/pkg/container/vector"
	"github.com/vexflow/vexflow/pkg/logutil"
	"github.com/vexflow/vexflow/pkg/vm"
	"github.com/vexflow/vexflow/pkg/vm/edge"
	"github.com/vexflow/vexflow/pkg/vm/pipeline"
)

var (
	configFile = flag.String("config", "", "toml configuration file")
	pipelines  = flag.Int("pipelines", 2, "number of concurrent shuffle pipelines")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Println("load config:", err)
		return
	}
	if err := logutil.SetupLogger(cfg.Log); err != nil {
		fmt.Println("setup logger:", err)
		return
	}

	if err := run(context.Background(), cfg); err != nil {
		logutil.Fatalf("shuffle demo failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if *pipelines <= 0 {
		return vferr.NewInvalidArg(ctx, "pipelines", *pipelines)
	}

	n := cfg.Shuffle.Outputs
	header := chunk.Header{
		Attrs: []string{"id", "tag"},
		Types: []types.Type{types.T_int64.ToType(), types.T_varchar.ToType()},
	}

	bucketRows := make([]int64, n)
	ps := make([]*pipeline.Pipeline, 0, *pipelines)
	for p := 0; p < *pipelines; p++ {
		pl, err := buildPipeline(ctx, cfg, p, header, bucketRows)
		if err != nil {
			return err
		}
		ps = append(ps, pl)
	}

	runner, err := pipeline.NewRunner(cfg.Pipeline.Parallelism)
	if err != nil {
		return err
	}
	defer runner.Close()

	if err := runner.Run(ctx, ps); err != nil {
		return err
	}

	var total int64
	for i, rows := range bucketRows {
		logutil.Infof("bucket %d received %d rows", i, rows)
		total += rows
	}
	logutil.Infof("shuffled %d rows across %d buckets in %d pipelines", total, n, *pipelines)
	return nil
}

func buildPipeline(ctx context.Context, cfg *config.Config, seq int, header chunk.Header, bucketRows []int64) (*pipeline.Pipeline, error) {
	n := cfg.Shuffle.Outputs

	chunks := make([]*chunk.Chunk, 0, cfg.Shuffle.ChunkCount)
	rowID := int64(seq) * int64(cfg.Shuffle.ChunkCount*cfg.Shuffle.ChunkRows)
	for i := 0; i < cfg.Shuffle.ChunkCount; i++ {
		ids := vector.New(types.T_int64.ToType())
		tags := vector.New(types.T_varchar.ToType())
		for j := 0; j < cfg.Shuffle.ChunkRows; j++ {
			vector.AppendFixed(ids, rowID, false)
			vector.AppendBytes(tags, []byte(fmt.Sprintf("row-%d", rowID)), false)
			rowID++
		}
		c, err := chunk.New([]*vector.Vector{ids, tags})
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}

	scanEdge := edge.New()
	splitEdge := edge.New()
	outs := make([]*edge.Edge, n)
	for i := range outs {
		outs[i] = edge.New()
	}

	scan := valuescan.New(chunks, scanEdge)
	sp, err := split.New(ctx, header, n, []int{0}, scanEdge, splitEdge)
	if err != nil {
		return nil, err
	}
	rs, err := resize.New(ctx, header, n, splitEdge, outs)
	if err != nil {
		return nil, err
	}

	procs := []vm.Processor{scan, sp, rs}
	edges := []*edge.Edge{scanEdge, splitEdge}
	for i, out := range outs {
		i := i
		procs = append(procs, output.New(out, func(c *chunk.Chunk) error {
			atomic.AddInt64(&bucketRows[i], int64(c.RowCount()))
			return nil
		}))
		edges = append(edges, out)
	}

	return pipeline.New(fmt.Sprintf("shuffle-%d", seq), procs, edges), nil
}
