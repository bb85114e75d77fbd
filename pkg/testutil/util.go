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

// Package testutil builds the vectors and chunks the tests need.
package testutil

import (
	"github.com/vexflow/vexflow/pkg/container/chunk"
	"github.com/vexflow/vexflow/pkg/container/types"
	"github.com/vexflow/vexflow/pkg/container/vector"
)

func NewInt64Vector(vs ...int64) *vector.Vector {
	v := vector.New(types.T_int64.ToType())
	vector.AppendFixedList(v, vs...)
	return v
}

func NewInt32Vector(vs ...int32) *vector.Vector {
	v := vector.New(types.T_int32.ToType())
	vector.AppendFixedList(v, vs...)
	return v
}

func NewUint32Vector(vs ...uint32) *vector.Vector {
	v := vector.New(types.T_uint32.ToType())
	vector.AppendFixedList(v, vs...)
	return v
}

func NewFloat64Vector(vs ...float64) *vector.Vector {
	v := vector.New(types.T_float64.ToType())
	vector.AppendFixedList(v, vs...)
	return v
}

func NewVarcharVector(vs ...string) *vector.Vector {
	v := vector.New(types.T_varchar.ToType())
	vector.AppendStringList(v, vs...)
	return v
}

// NewChunk panics on column length mismatch.
func NewChunk(vecs ...*vector.Vector) *chunk.Chunk {
	c, err := chunk.New(vecs)
	if err != nil {
		panic(err)
	}
	return c
}

func NewHeader(attrs []string, ts []types.Type) chunk.Header {
	return chunk.Header{Attrs: attrs, Types: ts}
}
