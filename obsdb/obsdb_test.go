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

package obsdb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseConsistency(t *testing.T) {
	tests := []struct {
		input    string
		expected Consistency
		expError string
	}{
		{input: "ONE", expected: One},
		{input: "TWO", expected: Two},
		{input: "THREE", expected: Three},
		{input: "QUORUM", expected: Quorum},
		{input: "ALL", expected: All},
		{input: "one", expError: `unknown consistency level "one"`},
		{input: "", expError: `unknown consistency level ""`},
		{input: "EACH_QUORUM", expError: `unknown consistency level "EACH_QUORUM"`},
	}
	for _, test := range tests {
		c, err := ParseConsistency(test.input)
		if test.expError != "" {
			assert.EqualError(t, err, test.expError)
			continue
		}
		if assert.NoError(t, err) {
			assert.Equal(t, test.expected, c)
			assert.Equal(t, test.input, c.String())
		}
	}
}

func Test_ConsistencyString_Unknown(t *testing.T) {
	assert.Equal(t, "Consistency(42)", Consistency(42).String())
}

func Test_ErrorPredicates(t *testing.T) {
	plain := errors.New("marshaling failed")
	unavailable := UnavailableError{Level: Three}
	noData := NoDataError{StationID: "USW00014837"}
	notFound := NotFoundError{StationID: "USW00014837"}

	assert.True(t, IsUnavailable(unavailable))
	assert.False(t, IsUnavailable(plain))
	assert.False(t, IsUnavailable(noData))

	assert.True(t, IsNoData(noData))
	assert.False(t, IsNoData(unavailable))

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(noData))

	assert.Equal(t, "not enough replicas available for THREE", unavailable.Error())
	withCause := UnavailableError{Level: One, Cause: errors.New("no connections")}
	assert.Equal(t, "not enough replicas available for ONE: no connections", withCause.Error())
	assert.Equal(t, "no observations recorded for station USW00014837", noData.Error())
	assert.Equal(t, "station USW00014837 not found", notFound.Error())
}
