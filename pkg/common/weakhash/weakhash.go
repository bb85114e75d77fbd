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

// Package weakhash computes a cheap, non-cryptographic streaming 32-bit
// hash with one lane per row. Key columns are mixed into the lanes one
// after another so the final value hashes the composite key.
//
// The hash is unseeded: equal key values produce equal lanes in every
// process, which is what keeps independent repartition instances
// assigning matching keys to the same bucket.
package weakhash

import "hash/crc32"

var crcTable = crc32.MakeTable(crc32.Castagnoli)

// nullMarker is mixed for NULL rows so that NULL and the zero value of a
// type land in different lanes.
var nullMarker = []byte{0xff}

type Hash32 struct {
	lanes []uint32
}

func New(rows int) *Hash32 {
	h := &Hash32{}
	h.Reset(rows)
	return h
}

// Reset resizes the state to one zeroed lane per row.
func (h *Hash32) Reset(rows int) {
	if cap(h.lanes) < rows {
		h.lanes = make([]uint32, rows)
		return
	}
	h.lanes = h.lanes[:rows]
	for i := range h.lanes {
		h.lanes[i] = 0
	}
}

func (h *Hash32) Rows() int {
	return len(h.lanes)
}

// Data exposes the lanes; callers must not hold the slice across a Reset.
func (h *Hash32) Data() []uint32 {
	return h.lanes
}

func (h *Hash32) MixBytes(row int, v []byte) {
	h.lanes[row] = crc32.Update(h.lanes[row], crcTable, v)
}

func (h *Hash32) MixNull(row int) {
	h.lanes[row] = crc32.Update(h.lanes[row], crcTable, nullMarker)
}
