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

package station

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxstore/wxstore/config"
	"github.com/wxstore/wxstore/obsdb"
	"github.com/wxstore/wxstore/obsdb/mockstore"
)

const madison = "USW00014837"

func newService(store obsdb.Store) *Service {
	return New(store, DefaultLevels())
}

func Test_MaxTemperature_Strong(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	ctx := context.Background()

	require.NoError(t, svc.RecordObservation(ctx, obsdb.Observation{
		StationID: madison, Date: "2023-01-01", TMin: -5, TMax: 2,
	}))
	require.NoError(t, svc.RecordObservation(ctx, obsdb.Observation{
		StationID: madison, Date: "2023-01-02", TMin: -1, TMax: 9,
	}))

	reading, err := svc.MaxTemperature(ctx, madison)
	require.NoError(t, err)
	assert.Equal(t, int32(9), reading.TMax)
	assert.False(t, reading.Degraded, "clean strong read must not be flagged degraded")
	assert.Equal(t, 1, store.ReadCalls(obsdb.Three))
	assert.Equal(t, 0, store.ReadCalls(obsdb.One), "no fallback read expected")
}

func Test_MaxTemperature_NoData(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)

	_, err := svc.MaxTemperature(context.Background(), madison)
	assert.True(t, obsdb.IsNoData(err), "expected NoDataError, got %v", err)
	assert.Equal(t, 0, store.ReadCalls(obsdb.One),
		"an empty result is not an availability failure and must not trigger fallback")
}

func Test_MaxTemperature_FallbackDegraded(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	ctx := context.Background()

	require.NoError(t, svc.RecordObservation(ctx, obsdb.Observation{
		StationID: madison, Date: "2023-01-02", TMin: -1, TMax: 9,
	}))
	store.SetReadError(obsdb.Three, obsdb.UnavailableError{Level: obsdb.Three})

	reading, err := svc.MaxTemperature(ctx, madison)
	require.NoError(t, err)
	assert.Equal(t, int32(9), reading.TMax)
	assert.True(t, reading.Degraded, "fallback success must carry the degraded flag")
	assert.Equal(t, 1, store.ReadCalls(obsdb.Three))
	assert.Equal(t, 1, store.ReadCalls(obsdb.One))
}

func Test_MaxTemperature_BothTiersUnavailable(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	store.SetReadError(obsdb.Three, obsdb.UnavailableError{Level: obsdb.Three})
	store.SetReadError(obsdb.One, obsdb.UnavailableError{Level: obsdb.One})

	_, err := svc.MaxTemperature(context.Background(), madison)
	assert.True(t, obsdb.IsUnavailable(err), "expected UnavailableError, got %v", err)
}

func Test_MaxTemperature_NoFallbackOnOtherErrors(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	boom := errors.New("invalid query: unconfigured table")
	store.SetReadError(obsdb.Three, boom)

	_, err := svc.MaxTemperature(context.Background(), madison)
	assert.Equal(t, boom, err, "non-availability errors must surface verbatim")
	assert.Equal(t, 0, store.ReadCalls(obsdb.One),
		"fallback is reserved for the availability failure mode")
}

func Test_MaxTemperature_FallbackOtherErrorVerbatim(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	boom := errors.New("read timeout on fallback")
	store.SetReadError(obsdb.Three, obsdb.UnavailableError{Level: obsdb.Three})
	store.SetReadError(obsdb.One, boom)

	_, err := svc.MaxTemperature(context.Background(), madison)
	assert.Equal(t, boom, err)
}

func Test_MaxTemperature_FallbackNoData(t *testing.T) {
	// The strong tier can be unavailable while the one replica that answers
	// holds nothing. That is still a normal empty outcome.
	store := mockstore.New()
	svc := newService(store)
	store.SetReadError(obsdb.Three, obsdb.UnavailableError{Level: obsdb.Three})

	_, err := svc.MaxTemperature(context.Background(), madison)
	assert.True(t, obsdb.IsNoData(err), "expected NoDataError, got %v", err)
}

func Test_RecordObservation_Idempotent(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	ctx := context.Background()
	obs := obsdb.Observation{StationID: madison, Date: "2023-01-01", TMin: -5, TMax: 2}

	require.NoError(t, svc.RecordObservation(ctx, obs))
	require.NoError(t, svc.RecordObservation(ctx, obs))

	recorded := store.Observations(madison)
	require.Len(t, recorded, 1, "repeated identical writes must not accumulate rows")
	assert.Equal(t, obs, recorded["2023-01-01"])
}

func Test_RecordObservation_LastWriteWins(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	ctx := context.Background()

	require.NoError(t, svc.RecordObservation(ctx, obsdb.Observation{
		StationID: madison, Date: "2023-01-01", TMin: -5, TMax: 2,
	}))
	require.NoError(t, svc.RecordObservation(ctx, obsdb.Observation{
		StationID: madison, Date: "2023-01-01", TMin: 0, TMax: 7,
	}))

	recorded := store.Observations(madison)
	require.Len(t, recorded, 1)
	assert.Equal(t, int32(7), recorded["2023-01-01"].TMax)

	reading, err := svc.MaxTemperature(ctx, madison)
	require.NoError(t, err)
	assert.Equal(t, int32(7), reading.TMax)
}

func Test_RecordObservation_Permissive(t *testing.T) {
	// No station existence check and no tmin <= tmax check: the write path
	// accepts what the store accepts.
	store := mockstore.New()
	svc := newService(store)
	err := svc.RecordObservation(context.Background(), obsdb.Observation{
		StationID: "NEVERSEEDED", Date: "2023-06-01", TMin: 30, TMax: -30,
	})
	assert.NoError(t, err)
}

func Test_RecordObservation_InvalidDate(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	tests := []string{"", "2023-13-01", "01/02/2023", "2023-02-30"}
	for _, date := range tests {
		err := svc.RecordObservation(context.Background(), obsdb.Observation{
			StationID: madison, Date: date, TMin: 0, TMax: 1,
		})
		if assert.Error(t, err, "date %q", date) {
			assert.Contains(t, err.Error(), "invalid observation date")
		}
	}
	assert.Len(t, store.Observations(madison), 0)
}

func Test_RecordObservation_StoreErrorVerbatim(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	boom := errors.New("mutation too large")
	store.SetNextRecordError(boom)
	err := svc.RecordObservation(context.Background(), obsdb.Observation{
		StationID: madison, Date: "2023-01-01",
	})
	assert.Equal(t, boom, err)
}

func Test_Name(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	ctx := context.Background()
	require.NoError(t, store.InsertStation(ctx, obsdb.Station{ID: madison, Name: "MADISON DANE CO RGNL AP"}))

	name, err := svc.Name(ctx, madison)
	require.NoError(t, err)
	assert.Equal(t, "MADISON DANE CO RGNL AP", name)

	name, err = svc.Name(ctx, "USW00000000")
	assert.True(t, obsdb.IsNotFound(err), "expected NotFoundError, got %v", err)
	assert.Equal(t, "", name)
}

func Test_Schema(t *testing.T) {
	store := mockstore.New()
	svc := newService(store)
	schema, err := svc.Schema(context.Background())
	require.NoError(t, err)
	assert.Contains(t, schema, "CREATE TABLE")
	assert.Contains(t, schema, "PRIMARY KEY (id, date)")
}

func Test_LevelsFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Cassandra
		expected Levels
		expError string
	}{{
		name:     "defaults",
		cfg:      config.Cassandra{},
		expected: DefaultLevels(),
	}, {
		name: "overrides",
		cfg: config.Cassandra{
			WriteConsistency:        "TWO",
			ReadStrongConsistency:   "QUORUM",
			ReadFallbackConsistency: "ONE",
		},
		expected: Levels{Write: obsdb.Two, ReadStrong: obsdb.Quorum, ReadFallback: obsdb.One},
	}, {
		name:     "bad level",
		cfg:      config.Cassandra{ReadStrongConsistency: "MOST"},
		expError: `unknown consistency level "MOST"`,
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			levels, err := LevelsFromConfig(&test.cfg)
			if test.expError != "" {
				assert.EqualError(t, err, test.expError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, levels)
		})
	}
}
