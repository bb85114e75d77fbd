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

package types

import "fmt"

type T uint8

const (
	T_any T = iota

	T_int8
	T_int16
	T_int32
	T_int64

	T_uint8
	T_uint16
	T_uint32
	T_uint64

	T_float32
	T_float64

	T_varchar
)

// Type describes one column of a header or vector.
type Type struct {
	Oid T
	// Size is the fixed element width in bytes, -1 for varlen types.
	Size int32
}

func (t T) ToType() Type {
	switch t {
	case T_int8, T_uint8:
		return Type{Oid: t, Size: 1}
	case T_int16, T_uint16:
		return Type{Oid: t, Size: 2}
	case T_int32, T_uint32, T_float32:
		return Type{Oid: t, Size: 4}
	case T_int64, T_uint64, T_float64:
		return Type{Oid: t, Size: 8}
	case T_varchar:
		return Type{Oid: t, Size: -1}
	}
	panic(fmt.Sprintf("unknown type oid %d", t))
}

func (t Type) TypeSize() int {
	return int(t.Size)
}

func (t Type) IsVarlen() bool {
	return t.Oid == T_varchar
}

func (t T) String() string {
	switch t {
	case T_any:
		return "ANY"
	case T_int8:
		return "TINYINT"
	case T_int16:
		return "SMALLINT"
	case T_int32:
		return "INT"
	case T_int64:
		return "BIGINT"
	case T_uint8:
		return "TINYINT UNSIGNED"
	case T_uint16:
		return "SMALLINT UNSIGNED"
	case T_uint32:
		return "INT UNSIGNED"
	case T_uint64:
		return "BIGINT UNSIGNED"
	case T_float32:
		return "FLOAT"
	case T_float64:
		return "DOUBLE"
	case T_varchar:
		return "VARCHAR"
	}
	return fmt.Sprintf("unexpected type oid %d", uint8(t))
}

func (t Type) String() string {
	return t.Oid.String()
}

// FixedSizeT is the constraint for element types stored with a fixed width.
type FixedSizeT interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Bytes is the storage of a varlen column: a shared data area addressed by
// per-row offset and length.
type Bytes struct {
	Data    []byte
	Offsets []uint32
	Lengths []uint32
}

func (b *Bytes) Len() int {
	return len(b.Offsets)
}

func (b *Bytes) Get(i int) []byte {
	off := b.Offsets[i]
	return b.Data[off : off+b.Lengths[i]]
}

func (b *Bytes) Append(v []byte) {
	b.Offsets = append(b.Offsets, uint32(len(b.Data)))
	b.Lengths = append(b.Lengths, uint32(len(v)))
	b.Data = append(b.Data, v...)
}

func (b *Bytes) Reset() {
	b.Data = b.Data[:0]
	b.Offsets = b.Offsets[:0]
	b.Lengths = b.Lengths[:0]
}
