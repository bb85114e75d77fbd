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

package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/container/types"
	"github.com/vexflow/vexflow/pkg/container/vector"
)

func TestNew(t *testing.T) {
	a := vector.New(types.T_int64.ToType())
	vector.AppendFixedList(a, int64(1), 2, 3)
	b := vector.New(types.T_varchar.ToType())
	vector.AppendStringList(b, "x", "y", "z")

	c, err := New([]*vector.Vector{a, b})
	require.NoError(t, err)
	require.Equal(t, 3, c.RowCount())
	require.Equal(t, 2, c.Width())
}

func TestNewRejectsMisalignedColumns(t *testing.T) {
	a := vector.New(types.T_int64.ToType())
	vector.AppendFixedList(a, int64(1), 2, 3)
	b := vector.New(types.T_int64.ToType())
	vector.AppendFixedList(b, int64(1), 2)

	_, err := New([]*vector.Vector{a, b})
	require.True(t, vferr.IsVfErrCode(err, vferr.ErrInternal))
}

func TestNewEmpty(t *testing.T) {
	c := NewEmpty()
	require.Equal(t, 0, c.RowCount())
	require.Equal(t, 0, c.Width())
	require.Nil(t, c.Payload())
}

func TestPartitionedSetTake(t *testing.T) {
	set := &PartitionedSet{Chunks: []*Chunk{NewEmpty(), NewEmpty()}}

	carrier := NewEmpty()
	carrier.SetPayload(set)

	got, ok := carrier.Payload().(*PartitionedSet)
	require.True(t, ok)

	chunks := got.Take()
	require.Len(t, chunks, 2)
	require.Nil(t, got.Chunks)
}

func TestHeaderWidth(t *testing.T) {
	h := Header{
		Attrs: []string{"id", "name"},
		Types: []types.Type{types.T_int64.ToType(), types.T_varchar.ToType()},
	}
	require.Equal(t, 2, h.Width())
}
