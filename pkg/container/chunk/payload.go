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

// Payload is side-channel metadata attached to a chunk. The set of kinds
// is sealed so consumers can type-switch instead of casting blindly; an
// unexpected kind is a wiring bug, not bad data.
type Payload interface {
	isPayload()
}

// PartitionedSet carries the per-bucket sub-chunks produced by the
// split-by-hash step, indexed by destination bucket. It is handed from
// producer to consumer exactly once; the consumer takes ownership of the
// chunks with Take.
type PartitionedSet struct {
	Chunks []*Chunk
}

func (*PartitionedSet) isPayload() {}

// Take moves the chunks out, leaving the set empty.
func (s *PartitionedSet) Take() []*Chunk {
	cs := s.Chunks
	s.Chunks = nil
	return cs
}
