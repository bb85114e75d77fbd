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

package colexec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/container/vector"
	"github.com/vexflow/vexflow/pkg/testutil"
)

func TestFillSelectorQuarters(t *testing.T) {
	hash := []uint32{0, 0x40000000, 0x80000000, 0xC0000000}
	sel := FillSelector(hash, 4, nil)
	require.Equal(t, []uint32{0, 1, 2, 3}, sel)
}

func TestFillSelectorBoundaries(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 16, 1000} {
		sel := FillSelector([]uint32{0, math.MaxUint32}, n, nil)
		require.Equal(t, uint32(0), sel[0], "n=%d", n)
		require.Equal(t, uint32(n-1), sel[1], "n=%d", n)
	}
}

func TestFillSelectorRanges(t *testing.T) {
	// Every bucket owns a contiguous range: values on both sides of a
	// range border map to adjacent buckets.
	n := 4
	width := uint64(1) << 32 / uint64(n)
	for i := 1; i < n; i++ {
		border := uint32(width * uint64(i))
		sel := FillSelector([]uint32{border - 1, border}, n, nil)
		require.Equal(t, uint32(i-1), sel[0])
		require.Equal(t, uint32(i), sel[1])
	}
}

func TestFillSelectorDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	hash := make([]uint32, 1024)
	for i := range hash {
		hash[i] = r.Uint32()
	}
	first := FillSelector(hash, 7, nil)
	second := FillSelector(hash, 7, nil)
	require.Equal(t, first, second)

	// The scratch slice is reusable.
	reused := FillSelector(hash, 7, second)
	require.Equal(t, first, reused)
}

func TestFillSelectorInRange(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	hash := make([]uint32, 4096)
	for i := range hash {
		hash[i] = r.Uint32()
	}
	for _, n := range []int{2, 3, 5, 64} {
		for _, b := range FillSelector(hash, n, nil) {
			require.Less(t, b, uint32(n))
		}
	}
}

func TestSplitChunkStability(t *testing.T) {
	rows := 100
	n := 3
	ids := make([]int64, rows)
	for i := range ids {
		ids[i] = int64(i)
	}
	c := testutil.NewChunk(testutil.NewInt64Vector(ids...))

	r := rand.New(rand.NewSource(3))
	selector := make([]uint32, rows)
	for i := range selector {
		selector[i] = uint32(r.Intn(n))
	}

	parts, err := SplitChunk(c, n, selector)
	require.NoError(t, err)
	require.Len(t, parts, n)

	// Each row lands in exactly one bucket, in original relative order.
	total := 0
	seen := make(map[int64]bool)
	for b, part := range parts {
		col := vector.MustFixedCol[int64](part.Vecs[0])
		total += len(col)
		last := int64(-1)
		for _, id := range col {
			require.Equal(t, uint32(b), selector[id])
			require.False(t, seen[id])
			require.Greater(t, id, last)
			seen[id] = true
			last = id
		}
	}
	require.Equal(t, rows, total)
}

func TestSplitChunkAlignsColumns(t *testing.T) {
	c := testutil.NewChunk(
		testutil.NewInt64Vector(0, 1, 2, 3),
		testutil.NewVarcharVector("r0", "r1", "r2", "r3"),
	)
	parts, err := SplitChunk(c, 2, []uint32{1, 0, 1, 0})
	require.NoError(t, err)

	for _, part := range parts {
		ids := vector.MustFixedCol[int64](part.Vecs[0])
		for i, id := range ids {
			require.Equal(t, []byte{'r', byte('0' + id)}, part.Vecs[1].GetBytesAt(i))
		}
	}
}

func TestSplitChunkMixedFixedWidths(t *testing.T) {
	c := testutil.NewChunk(
		testutil.NewInt32Vector(0, 1, 2, 3),
		testutil.NewUint32Vector(100, 101, 102, 103),
		testutil.NewFloat64Vector(0.5, 1.5, 2.5, 3.5),
	)
	parts, err := SplitChunk(c, 2, []uint32{0, 1, 0, 1})
	require.NoError(t, err)

	for b, part := range parts {
		ids := vector.MustFixedCol[int32](part.Vecs[0])
		require.Len(t, ids, 2)
		for i, id := range ids {
			require.Equal(t, uint32(b), uint32(id)%2)
			require.Equal(t, uint32(id)+100, vector.GetFixedAt[uint32](part.Vecs[1], i))
			require.Equal(t, float64(id)+0.5, vector.GetFixedAt[float64](part.Vecs[2], i))
		}
	}
}

func TestSplitChunkEmptyBuckets(t *testing.T) {
	c := testutil.NewChunk(testutil.NewInt64Vector(1, 2, 3, 4))
	parts, err := SplitChunk(c, 3, []uint32{1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 0, parts[0].RowCount())
	require.Equal(t, 4, parts[1].RowCount())
	require.Equal(t, 0, parts[2].RowCount())
	// Empty buckets still materialize their columns.
	require.Equal(t, 1, parts[0].Width())
}

func TestSplitChunkZeroRows(t *testing.T) {
	c := testutil.NewChunk(testutil.NewInt64Vector())
	parts, err := SplitChunk(c, 2, nil)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	require.Equal(t, 0, parts[0].RowCount())
	require.Equal(t, 0, parts[1].RowCount())
}

func TestSplitChunkNoColumns(t *testing.T) {
	c := testutil.NewChunk()
	_, err := SplitChunk(c, 2, nil)
	require.True(t, vferr.IsVfErrCode(err, vferr.ErrInternal))
}
