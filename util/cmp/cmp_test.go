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

package cmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MaxInt32(t *testing.T) {
	assert.Equal(t, int32(5), MaxInt32(3, 5))
	assert.Equal(t, int32(5), MaxInt32(5, 3))
	assert.Equal(t, int32(-3), MaxInt32(-3, -5))
}

func Test_MinInt32(t *testing.T) {
	assert.Equal(t, int32(3), MinInt32(3, 5))
	assert.Equal(t, int32(3), MinInt32(5, 3))
	assert.Equal(t, int32(-5), MinInt32(-3, -5))
}
