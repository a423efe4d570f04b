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

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Any(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	assert.NoError(t, Any())
	assert.NoError(t, Any(nil, nil, nil))
	assert.Equal(t, first, Any(nil, first, second))
	assert.Equal(t, second, Any(nil, nil, second))
}
