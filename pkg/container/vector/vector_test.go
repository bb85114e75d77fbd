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

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexflow/vexflow/pkg/common/weakhash"
	"github.com/vexflow/vexflow/pkg/container/nulls"
	"github.com/vexflow/vexflow/pkg/container/types"
)

func TestAppendFixed(t *testing.T) {
	v := New(types.T_int64.ToType())
	AppendFixedList(v, int64(3), 1, 4, 1, 5)
	require.Equal(t, 5, v.Length())
	require.Equal(t, []int64{3, 1, 4, 1, 5}, MustFixedCol[int64](v))
	require.Equal(t, int64(4), GetFixedAt[int64](v, 2))

	AppendFixed(v, int64(9), true)
	require.Equal(t, 6, v.Length())
	require.True(t, nulls.Contains(v.GetNulls(), 5))
}

func TestAppendBytes(t *testing.T) {
	v := New(types.T_varchar.ToType())
	AppendStringList(v, "ab", "", "cde")
	AppendBytes(v, nil, true)
	require.Equal(t, 4, v.Length())
	require.Equal(t, []byte("ab"), v.GetBytesAt(0))
	require.Equal(t, []byte{}, v.GetBytesAt(1))
	require.Equal(t, []byte("cde"), v.GetBytesAt(2))
	require.True(t, nulls.Contains(v.GetNulls(), 3))
}

func TestScatterFixedStable(t *testing.T) {
	v := New(types.T_int32.ToType())
	AppendFixedList(v, int32(10), 11, 12, 13, 14, 15)
	selector := []uint32{1, 0, 1, 2, 0, 1}

	parts := v.Scatter(3, selector)
	require.Len(t, parts, 3)
	require.Equal(t, []int32{11, 14}, MustFixedCol[int32](parts[0]))
	require.Equal(t, []int32{10, 12, 15}, MustFixedCol[int32](parts[1]))
	require.Equal(t, []int32{13}, MustFixedCol[int32](parts[2]))
	require.Equal(t, 2, parts[0].Length())
	require.Equal(t, 3, parts[1].Length())
	require.Equal(t, 1, parts[2].Length())
}

func TestScatterEmptyBuckets(t *testing.T) {
	v := New(types.T_int64.ToType())
	AppendFixedList(v, int64(1), 2, 3)
	parts := v.Scatter(4, []uint32{2, 2, 2})
	for i, p := range parts {
		if i == 2 {
			require.Equal(t, 3, p.Length())
			continue
		}
		require.Equal(t, 0, p.Length())
	}
}

func TestScatterVarlen(t *testing.T) {
	v := New(types.T_varchar.ToType())
	AppendStringList(v, "a", "bb", "ccc", "dddd")
	parts := v.Scatter(2, []uint32{1, 0, 1, 0})
	require.Equal(t, []byte("bb"), parts[0].GetBytesAt(0))
	require.Equal(t, []byte("dddd"), parts[0].GetBytesAt(1))
	require.Equal(t, []byte("a"), parts[1].GetBytesAt(0))
	require.Equal(t, []byte("ccc"), parts[1].GetBytesAt(1))
}

func TestScatterKeepsNulls(t *testing.T) {
	v := New(types.T_int64.ToType())
	AppendFixed(v, int64(1), false)
	AppendFixed(v, int64(0), true)
	AppendFixed(v, int64(3), false)
	AppendFixed(v, int64(0), true)

	parts := v.Scatter(2, []uint32{0, 0, 1, 1})
	require.False(t, nulls.Contains(parts[0].GetNulls(), 0))
	require.True(t, nulls.Contains(parts[0].GetNulls(), 1))
	require.False(t, nulls.Contains(parts[1].GetNulls(), 0))
	require.True(t, nulls.Contains(parts[1].GetNulls(), 1))

	// No null is lost or invented across the scatter.
	require.Equal(t, nulls.Size(v.GetNulls()),
		nulls.Size(parts[0].GetNulls())+nulls.Size(parts[1].GetNulls()))
}

func TestUpdateWeakHash32(t *testing.T) {
	v := New(types.T_int64.ToType())
	AppendFixedList(v, int64(7), 7, 8)

	h := weakhash.New(3)
	require.NoError(t, v.UpdateWeakHash32(h))

	// Equal values hash equally, different values differently.
	require.Equal(t, h.Data()[0], h.Data()[1])
	require.NotEqual(t, h.Data()[0], h.Data()[2])

	// Lane count must match the row count.
	bad := weakhash.New(2)
	err := v.UpdateWeakHash32(bad)
	require.Error(t, err)
}

func TestUpdateWeakHash32Null(t *testing.T) {
	v := New(types.T_int64.ToType())
	AppendFixed(v, int64(0), false)
	AppendFixed(v, int64(0), true)

	h := weakhash.New(2)
	require.NoError(t, v.UpdateWeakHash32(h))
	require.NotEqual(t, h.Data()[0], h.Data()[1])
}
