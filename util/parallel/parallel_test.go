// Copyright 2020 The wxstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Invoke(t *testing.T) {
	var calls int64
	err := Invoke(context.Background(),
		func(ctx context.Context) error {
			atomic.AddInt64(&calls, 1)
			return nil
		},
		func(ctx context.Context) error {
			atomic.AddInt64(&calls, 1)
			return nil
		})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func Test_InvokeN_FirstErrorCancels(t *testing.T) {
	boom := errors.New("boom")
	var canceled int64
	err := InvokeN(context.Background(), 4, func(ctx context.Context, i int) error {
		if i == 0 {
			return boom
		}
		<-ctx.Done()
		atomic.AddInt64(&canceled, 1)
		return ctx.Err()
	})
	assert.Equal(t, boom, err, "the first error wins; later context errors are dropped")
	assert.Equal(t, int64(3), atomic.LoadInt64(&canceled))
}

func Test_Go(t *testing.T) {
	ran := false
	wait := Go(func() {
		ran = true
	})
	wait()
	wait()
	assert.True(t, ran)
}

func Test_GoCaptureError(t *testing.T) {
	boom := errors.New("task failed")
	wait := GoCaptureError(func() error {
		return boom
	})
	assert.Equal(t, boom, wait())
	// Repeated waits report the same result.
	assert.Equal(t, boom, wait())

	wait = GoCaptureError(func() error {
		return nil
	})
	assert.NoError(t, wait())
}
