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
	"unsafe"

	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/common/weakhash"
	"github.com/vexflow/vexflow/pkg/container/nulls"
	"github.com/vexflow/vexflow/pkg/container/types"
)

// Vector represents a column. Fixed-width types store their elements in a
// typed slice, varlen types in a shared types.Bytes area.
type Vector struct {
	typ types.Type
	nsp *nulls.Nulls

	// col is []T for fixed-width types and *types.Bytes for varlen types.
	col any

	length int
}

func New(typ types.Type) *Vector {
	v := &Vector{
		typ: typ,
		nsp: nulls.New(),
	}
	if typ.IsVarlen() {
		v.col = &types.Bytes{}
	}
	return v
}

func (v *Vector) GetType() types.Type {
	return v.typ
}

func (v *Vector) Length() int {
	return v.length
}

func (v *Vector) GetNulls() *nulls.Nulls {
	return v.nsp
}

// MustFixedCol gives the typed view of a fixed-width vector.
func MustFixedCol[T types.FixedSizeT](v *Vector) []T {
	if v.col == nil {
		return nil
	}
	return v.col.([]T)
}

func MustBytesCol(v *Vector) *types.Bytes {
	return v.col.(*types.Bytes)
}

func GetFixedAt[T types.FixedSizeT](v *Vector, i int) T {
	return MustFixedCol[T](v)[i]
}

func (v *Vector) GetBytesAt(i int) []byte {
	return MustBytesCol(v).Get(i)
}

func AppendFixed[T types.FixedSizeT](v *Vector, w T, isNull bool) {
	col := MustFixedCol[T](v)
	if isNull {
		nulls.Add(v.nsp, uint32(len(col)))
	}
	v.col = append(col, w)
	v.length++
}

func AppendFixedList[T types.FixedSizeT](v *Vector, ws ...T) {
	v.col = append(MustFixedCol[T](v), ws...)
	v.length += len(ws)
}

func AppendBytes(v *Vector, w []byte, isNull bool) {
	bs := MustBytesCol(v)
	if isNull {
		nulls.Add(v.nsp, uint32(bs.Len()))
	}
	bs.Append(w)
	v.length++
}

func AppendStringList(v *Vector, ws ...string) {
	bs := MustBytesCol(v)
	for _, w := range ws {
		bs.Append([]byte(w))
	}
	v.length += len(ws)
}

// UpdateWeakHash32 folds this column into h, one lane per row. Calling it
// for each key column in order accumulates a hash of the composite key.
func (v *Vector) UpdateWeakHash32(h *weakhash.Hash32) error {
	if h.Rows() != v.length {
		return vferr.NewInternalErrorNoCtx(
			"weak hash has %d lanes but the column has %d rows", h.Rows(), v.length)
	}
	switch v.typ.Oid {
	case types.T_int8:
		fixedWeakHash[int8](v, h)
	case types.T_int16:
		fixedWeakHash[int16](v, h)
	case types.T_int32:
		fixedWeakHash[int32](v, h)
	case types.T_int64:
		fixedWeakHash[int64](v, h)
	case types.T_uint8:
		fixedWeakHash[uint8](v, h)
	case types.T_uint16:
		fixedWeakHash[uint16](v, h)
	case types.T_uint32:
		fixedWeakHash[uint32](v, h)
	case types.T_uint64:
		fixedWeakHash[uint64](v, h)
	case types.T_float32:
		fixedWeakHash[float32](v, h)
	case types.T_float64:
		fixedWeakHash[float64](v, h)
	case types.T_varchar:
		varlenWeakHash(v, h)
	default:
		return vferr.NewInternalErrorNoCtx("weak hash on unexpected type %s", v.typ)
	}
	return nil
}

func fixedWeakHash[T types.FixedSizeT](v *Vector, h *weakhash.Hash32) {
	col := MustFixedCol[T](v)
	sz := v.typ.TypeSize()
	hasNulls := nulls.Any(v.nsp)
	for i := range col {
		if hasNulls && nulls.Contains(v.nsp, uint32(i)) {
			h.MixNull(i)
			continue
		}
		h.MixBytes(i, unsafe.Slice((*byte)(unsafe.Pointer(&col[i])), sz))
	}
}

func varlenWeakHash(v *Vector, h *weakhash.Hash32) {
	bs := MustBytesCol(v)
	hasNulls := nulls.Any(v.nsp)
	for i := 0; i < bs.Len(); i++ {
		if hasNulls && nulls.Contains(v.nsp, uint32(i)) {
			h.MixNull(i)
			continue
		}
		h.MixBytes(i, bs.Get(i))
	}
}

// Scatter partitions the rows of v into n new vectors following selector.
// Row i goes to bucket selector[i]; rows of one bucket keep their original
// relative order. len(selector) must equal v.Length().
func (v *Vector) Scatter(n int, selector []uint32) []*Vector {
	switch v.typ.Oid {
	case types.T_int8:
		return scatterFixed[int8](v, n, selector)
	case types.T_int16:
		return scatterFixed[int16](v, n, selector)
	case types.T_int32:
		return scatterFixed[int32](v, n, selector)
	case types.T_int64:
		return scatterFixed[int64](v, n, selector)
	case types.T_uint8:
		return scatterFixed[uint8](v, n, selector)
	case types.T_uint16:
		return scatterFixed[uint16](v, n, selector)
	case types.T_uint32:
		return scatterFixed[uint32](v, n, selector)
	case types.T_uint64:
		return scatterFixed[uint64](v, n, selector)
	case types.T_float32:
		return scatterFixed[float32](v, n, selector)
	case types.T_float64:
		return scatterFixed[float64](v, n, selector)
	case types.T_varchar:
		return scatterVarlen(v, n, selector)
	}
	panic("scatter on unexpected type " + v.typ.String())
}

func scatterFixed[T types.FixedSizeT](v *Vector, n int, selector []uint32) []*Vector {
	col := MustFixedCol[T](v)
	counts := make([]int, n)
	for _, b := range selector {
		counts[b]++
	}

	res := make([]*Vector, n)
	cols := make([][]T, n)
	for i := 0; i < n; i++ {
		res[i] = New(v.typ)
		cols[i] = make([]T, 0, counts[i])
	}

	hasNulls := nulls.Any(v.nsp)
	for i, b := range selector {
		if hasNulls && nulls.Contains(v.nsp, uint32(i)) {
			nulls.Add(res[b].nsp, uint32(len(cols[b])))
		}
		cols[b] = append(cols[b], col[i])
	}
	for i := 0; i < n; i++ {
		res[i].col = cols[i]
		res[i].length = len(cols[i])
	}
	return res
}

func scatterVarlen(v *Vector, n int, selector []uint32) []*Vector {
	bs := MustBytesCol(v)
	res := make([]*Vector, n)
	for i := 0; i < n; i++ {
		res[i] = New(v.typ)
	}

	hasNulls := nulls.Any(v.nsp)
	for i, b := range selector {
		dst := MustBytesCol(res[b])
		if hasNulls && nulls.Contains(v.nsp, uint32(i)) {
			nulls.Add(res[b].nsp, uint32(dst.Len()))
		}
		dst.Append(bs.Get(i))
		res[b].length++
	}
	return res
}
