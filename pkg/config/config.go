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

package config

import (
	"context"

	"github.com/BurntSushi/toml"

	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/logutil"
)

type Config struct {
	Log      logutil.LogConfig `toml:"log"`
	Pipeline PipelineConfig    `toml:"pipeline"`
	Shuffle  ShuffleConfig     `toml:"shuffle"`
}

type PipelineConfig struct {
	// Parallelism bounds how many pipelines run at once.
	Parallelism int `toml:"parallelism"`
}

type ShuffleConfig struct {
	// Outputs is the repartition fan-out; must exceed 1 for a shuffle to
	// make sense.
	Outputs int `toml:"outputs"`
	// ChunkRows is how many rows each generated chunk carries.
	ChunkRows int `toml:"chunk-rows"`
	// ChunkCount is how many chunks each pipeline pushes through.
	ChunkCount int `toml:"chunk-count"`
}

func Default() Config {
	return Config{
		Log: logutil.LogConfig{
			Level:  "info",
			Format: "console",
		},
		Pipeline: PipelineConfig{
			Parallelism: 4,
		},
		Shuffle: ShuffleConfig{
			Outputs:    4,
			ChunkRows:  8192,
			ChunkCount: 8,
		},
	}
}

// Load reads path over the defaults and validates the result. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, vferr.NewInvalidInput(context.Background(),
				"cannot read configuration file %s: %v", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	ctx := context.Background()
	if c.Pipeline.Parallelism <= 0 {
		return vferr.NewBadConfig(ctx, "pipeline parallelism must be positive, got %d", c.Pipeline.Parallelism)
	}
	if c.Shuffle.Outputs <= 1 {
		return vferr.NewBadConfig(ctx, "shuffle outputs must exceed 1, got %d", c.Shuffle.Outputs)
	}
	if c.Shuffle.ChunkRows <= 0 {
		return vferr.NewBadConfig(ctx, "shuffle chunk-rows must be positive, got %d", c.Shuffle.ChunkRows)
	}
	if c.Shuffle.ChunkCount <= 0 {
		return vferr.NewBadConfig(ctx, "shuffle chunk-count must be positive, got %d", c.Shuffle.ChunkCount)
	}
	return nil
}
