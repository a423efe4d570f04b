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

package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxstore/wxstore/obsdb"
	"github.com/wxstore/wxstore/obsdb/mockstore"
)

// stationLine builds one fixed-width ghcnd-stations.txt line. The lat, lon
// and elevation values are filler; ParseStations ignores them.
func stationLine(id, state, name string) string {
	return fmt.Sprintf("%-11s %8.4f %9.4f %6.1f %-2s %-30s        ",
		id, 43.1406, -89.3453, 261.2, state, name)
}

var sample = strings.Join([]string{
	stationLine("ACW00011604", "", "ST JOHNS COOLIDGE FLD"),
	stationLine("USW00014837", "WI", "MADISON DANE CO RGNL AP"),
	stationLine("USW00094846", "MI", "DETROIT METRO AP"),
	stationLine("USW00014839", "WI", "MILWAUKEE MITCHELL AP"),
}, "\n")

func Test_ParseStations_StateFilter(t *testing.T) {
	stations, err := ParseStations(strings.NewReader(sample), "WI")
	require.NoError(t, err)
	assert.Equal(t, []obsdb.Station{
		{ID: "USW00014837", Name: "MADISON DANE CO RGNL AP"},
		{ID: "USW00014839", Name: "MILWAUKEE MITCHELL AP"},
	}, stations)
}

func Test_ParseStations_NoFilter(t *testing.T) {
	stations, err := ParseStations(strings.NewReader(sample), "")
	require.NoError(t, err)
	assert.Len(t, stations, 4)
}

func Test_ParseStations_BlankLines(t *testing.T) {
	input := "\n" + stationLine("USW00014837", "WI", "MADISON DANE CO RGNL AP") + "\n\n"
	stations, err := ParseStations(strings.NewReader(input), "WI")
	require.NoError(t, err)
	assert.Len(t, stations, 1)
}

func Test_ParseStations_TruncatedLine(t *testing.T) {
	input := stationLine("USW00014837", "WI", "MADISON DANE CO RGNL AP") + "\nUSW00014839  43.1406"
	_, err := ParseStations(strings.NewReader(input), "WI")
	assert.EqualError(t, err, "stations file line 2: too short (20 bytes)")
}

func Test_InsertAll(t *testing.T) {
	stations := make([]obsdb.Station, 10)
	for i := range stations {
		stations[i] = obsdb.Station{
			ID:   fmt.Sprintf("USW%08d", i),
			Name: fmt.Sprintf("STATION %d", i),
		}
	}
	store := mockstore.New()
	err := InsertAll(context.Background(), store, stations, 3)
	require.NoError(t, err)
	for _, s := range stations {
		name, err := store.StationName(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.Name, name)
	}
}

func Test_InsertAll_Error(t *testing.T) {
	store := mockstore.New()
	store.SetNextInsertError(errors.New("no hosts available"))
	err := InsertAll(context.Background(), store, []obsdb.Station{
		{ID: "USW00014837", Name: "MADISON DANE CO RGNL AP"},
	}, 1)
	assert.EqualError(t, err, "inserting station USW00014837: no hosts available")
}
