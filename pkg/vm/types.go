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

package vm

import "context"

// Status is what Prepare reports back to the scheduler instead of
// blocking.
type Status int32

const (
	// NeedData: the processor wants input and none is available.
	NeedData Status = iota
	// PortFull: the processor cannot push because a downstream edge is
	// not ready to accept data.
	PortFull
	// Ready: the scheduler should run Work now.
	Ready
	// Finished: the processor is done; Prepare will not be called again.
	Finished
)

func (s Status) String() string {
	switch s {
	case NeedData:
		return "NeedData"
	case PortFull:
		return "PortFull"
	case Ready:
		return "Ready"
	case Finished:
		return "Finished"
	}
	return "Unknown"
}

// Processor is one stage of a pipeline, driven cooperatively: the
// scheduler calls Prepare, which must not block, and runs Work whenever
// Prepare answers Ready. A scheduler never invokes the same processor
// from two goroutines, so processor state needs no locking.
type Processor interface {
	Name() string
	Prepare() (Status, error)
	Work(ctx context.Context) error
}
