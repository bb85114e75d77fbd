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

package output

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexflow/vexflow/pkg/common/vferr"
	"github.com/vexflow/vexflow/pkg/container/chunk"
	"github.com/vexflow/vexflow/pkg/testutil"
	"github.com/vexflow/vexflow/pkg/vm"
	"github.com/vexflow/vexflow/pkg/vm/edge"
)

func TestOutputCollectsChunks(t *testing.T) {
	in := edge.New()
	var got []*chunk.Chunk
	o := New(in, func(c *chunk.Chunk) error {
		got = append(got, c)
		return nil
	})

	st, err := o.Prepare()
	require.NoError(t, err)
	require.Equal(t, vm.NeedData, st)
	require.True(t, in.CanPush())

	c := testutil.NewChunk(testutil.NewInt64Vector(7, 8))
	in.Push(c)

	st, err = o.Prepare()
	require.NoError(t, err)
	require.Equal(t, vm.Ready, st)
	require.NoError(t, o.Work(context.Background()))
	require.Equal(t, []*chunk.Chunk{c}, got)

	in.Finish()
	st, err = o.Prepare()
	require.NoError(t, err)
	require.Equal(t, vm.Finished, st)
}

func TestOutputPropagatesSinkError(t *testing.T) {
	in := edge.New()
	o := New(in, func(*chunk.Chunk) error {
		return vferr.NewInternalErrorNoCtx("sink failed")
	})

	o.Prepare()
	in.Push(testutil.NewChunk(testutil.NewInt64Vector(1)))
	st, err := o.Prepare()
	require.NoError(t, err)
	require.Equal(t, vm.Ready, st)
	err = o.Work(context.Background())
	require.True(t, vferr.IsVfErrCode(err, vferr.ErrInternal))
}
