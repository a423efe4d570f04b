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

package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxstore/wxstore/api"
	"github.com/wxstore/wxstore/obsdb"
	"github.com/wxstore/wxstore/station"
)

func Test_StationMax(t *testing.T) {
	type test struct {
		name     string
		reading  station.Reading
		err      error
		expTmax  int32
		expError string
	}
	tests := []test{{
		name:    "strong read",
		reading: station.Reading{TMax: 9},
		expTmax: 9,
	}, {
		name:     "degraded read",
		reading:  station.Reading{TMax: 9, Degraded: true},
		expTmax:  9,
		expError: "fallback_to_available",
	}, {
		name:     "no observations",
		err:      obsdb.NoDataError{StationID: "USW00014837"},
		expTmax:  -1,
		expError: "No data found",
	}, {
		name:     "both tiers unavailable",
		err:      obsdb.UnavailableError{Level: obsdb.One},
		expError: "unavailable",
	}, {
		name:     "other errors pass through",
		err:      errors.New("gocql: connection refused"),
		expError: "gocql: connection refused",
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := Server{stations: &mockStations{
				reading:    test.reading,
				readingErr: test.err,
			}}
			reply, err := s.StationMax(context.Background(),
				&api.StationMaxRequest{Station: "USW00014837"})
			require.NoError(t, err, "outcomes travel in the reply, not the gRPC status")
			assert.Equal(t, test.expTmax, reply.Tmax)
			assert.Equal(t, test.expError, reply.Error)
		})
	}
}

func Test_RecordTemps(t *testing.T) {
	type test struct {
		name     string
		err      error
		expError string
	}
	tests := []test{{
		name: "recorded",
	}, {
		name:     "unavailable",
		err:      obsdb.UnavailableError{Level: obsdb.One},
		expError: "unavailable",
	}, {
		name:     "other errors pass through",
		err:      errors.New(`invalid observation date "01/02/2023": expected YYYY-MM-DD`),
		expError: `invalid observation date "01/02/2023": expected YYYY-MM-DD`,
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mock := &mockStations{recordErr: test.err}
			s := Server{stations: mock}
			reply, err := s.RecordTemps(context.Background(), &api.RecordTempsRequest{
				Station: "USW00014837",
				Date:    "2023-07-04",
				Tmin:    -2,
				Tmax:    9,
			})
			require.NoError(t, err)
			assert.Equal(t, test.expError, reply.Error)
			require.Len(t, mock.recorded, 1)
			assert.Equal(t, obsdb.Observation{
				StationID: "USW00014837",
				Date:      "2023-07-04",
				TMin:      -2,
				TMax:      9,
			}, mock.recorded[0])
		})
	}
}

func Test_StationName(t *testing.T) {
	s := Server{stations: &mockStations{name: "MADISON DANE CO RGNL AP"}}
	reply, err := s.StationName(context.Background(),
		&api.StationNameRequest{Station: "USW00014837"})
	require.NoError(t, err)
	assert.Equal(t, "MADISON DANE CO RGNL AP", reply.Name)
	assert.Equal(t, "", reply.Error)

	s = Server{stations: &mockStations{nameErr: obsdb.NotFoundError{StationID: "nope"}}}
	reply, err = s.StationName(context.Background(),
		&api.StationNameRequest{Station: "nope"})
	require.NoError(t, err)
	assert.Equal(t, "", reply.Name)
	assert.Equal(t, "Station not found", reply.Error)
}

func Test_StationSchema(t *testing.T) {
	s := Server{stations: &mockStations{schema: "CREATE TABLE weather.stations (...)"}}
	reply, err := s.StationSchema(context.Background(), &api.StationSchemaRequest{})
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE weather.stations (...)", reply.Schema)
	assert.Equal(t, "", reply.Error)

	s = Server{stations: &mockStations{schemaErr: errors.New("no connections")}}
	reply, err = s.StationSchema(context.Background(), &api.StationSchemaRequest{})
	require.NoError(t, err)
	assert.Equal(t, "no connections", reply.Error)
}

type mockStations struct {
	reading    station.Reading
	readingErr error
	recorded   []obsdb.Observation
	recordErr  error
	name       string
	nameErr    error
	schema     string
	schemaErr  error
}

func (m *mockStations) RecordObservation(ctx context.Context, obs obsdb.Observation) error {
	m.recorded = append(m.recorded, obs)
	return m.recordErr
}

func (m *mockStations) MaxTemperature(ctx context.Context, stationID string) (station.Reading, error) {
	if m.readingErr != nil {
		return station.Reading{}, m.readingErr
	}
	return m.reading, nil
}

func (m *mockStations) Name(ctx context.Context, stationID string) (string, error) {
	if m.nameErr != nil {
		return "", m.nameErr
	}
	return m.name, nil
}

func (m *mockStations) Schema(ctx context.Context) (string, error) {
	if m.schemaErr != nil {
		return "", m.schemaErr
	}
	return m.schema, nil
}
