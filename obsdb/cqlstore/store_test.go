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

package cqlstore

import (
	"errors"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/wxstore/wxstore/obsdb"
)

func Test_NewStatements(t *testing.T) {
	stmts := newStatements("weather")
	assert.Equal(t,
		"INSERT INTO weather.stations (id, date, record) VALUES (?, ?, {tmin: ?, tmax: ?})",
		stmts.insertObservation)
	assert.Equal(t,
		"SELECT MAX(record.tmax) AS max_temp FROM weather.stations WHERE id = ?",
		stmts.selectMax)
	assert.Equal(t,
		"SELECT name FROM weather.stations WHERE id = ?",
		stmts.selectName)
	assert.Equal(t,
		"INSERT INTO weather.stations (id, name) VALUES (?, ?)",
		stmts.insertStation)
	assert.Equal(t, "DESCRIBE TABLE weather.stations", stmts.describeTable)
}

func Test_GocqlConsistency(t *testing.T) {
	tests := []struct {
		level obsdb.Consistency
		exp   gocql.Consistency
	}{
		{obsdb.One, gocql.One},
		{obsdb.Two, gocql.Two},
		{obsdb.Three, gocql.Three},
		{obsdb.Quorum, gocql.Quorum},
		{obsdb.All, gocql.All},
	}
	for _, test := range tests {
		assert.Equal(t, test.exp, gocqlConsistency(test.level), "level %v", test.level)
	}
	assert.Panics(t, func() {
		gocqlConsistency(obsdb.Consistency(0))
	})
}

func Test_Classify(t *testing.T) {
	assert.NoError(t, classify(nil, obsdb.Three))

	err := classify(&gocql.RequestErrUnavailable{}, obsdb.Three)
	assert.True(t, obsdb.IsUnavailable(err))

	err = classify(gocql.ErrNoConnections, obsdb.One)
	assert.True(t, obsdb.IsUnavailable(err))

	// Everything else must pass through untouched, so that callers see
	// timeouts and syntax errors verbatim.
	boom := errors.New("boom")
	assert.Equal(t, boom, classify(boom, obsdb.Three))
	assert.False(t, obsdb.IsUnavailable(boom))
}
