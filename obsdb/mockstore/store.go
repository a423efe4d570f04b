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

// Package mockstore contains an in-process, in-memory implementation of an
// obsdb.Store. This is a high-level mock intended for unit testing; it keeps
// last-write-wins semantics per (station, date) key and lets tests inject
// errors per consistency level to exercise fallback paths.
package mockstore

import (
	"context"
	"sync"

	"github.com/wxstore/wxstore/obsdb"
	"github.com/wxstore/wxstore/util/cmp"
)

// Store is an in-process, in-memory implementation of obsdb.Store.
type Store struct {
	// lock protects the fields in locked.
	lock   sync.Mutex
	locked struct {
		// stations[id] is the station's reference name.
		stations map[string]string
		// observations[id][date] is the latest write for that key.
		observations map[string]map[string]obsdb.Observation
		// If readErrors[level] is not nil, MaxTemperature calls at that
		// level return it instead of reading.
		readErrors map[obsdb.Consistency]error
		// If not nil, the next call to RecordObservation will not write
		// anything, return this error, and set this to nil.
		nextRecordError error
		// Like nextRecordError, for InsertStation.
		nextInsertError error
		// readCalls[level] counts MaxTemperature calls at that level.
		readCalls map[obsdb.Consistency]int
	}
	// Schema text returned by Schema. Settable by tests; defaults to
	// CreateTableCQL.
	SchemaText string
}

// Store implements obsdb.Store.
var _ obsdb.Store = (*Store)(nil)

// CreateTableCQL is the creation statement reported by Schema unless a test
// overrides SchemaText.
const CreateTableCQL = `CREATE TABLE weather.stations (
    id text,
    date date,
    name text static,
    record station_record,
    PRIMARY KEY (id, date)
) WITH CLUSTERING ORDER BY (date ASC)`

// New constructs an empty Store.
func New() *Store {
	store := &Store{SchemaText: CreateTableCQL}
	store.locked.stations = make(map[string]string)
	store.locked.observations = make(map[string]map[string]obsdb.Observation)
	store.locked.readErrors = make(map[obsdb.Consistency]error)
	store.locked.readCalls = make(map[obsdb.Consistency]int)
	return store
}

// RecordObservation implements the method declared in obsdb.Store.
func (store *Store) RecordObservation(ctx context.Context, obs obsdb.Observation, level obsdb.Consistency) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	if err := store.locked.nextRecordError; err != nil {
		store.locked.nextRecordError = nil
		return err
	}
	byDate := store.locked.observations[obs.StationID]
	if byDate == nil {
		byDate = make(map[string]obsdb.Observation)
		store.locked.observations[obs.StationID] = byDate
	}
	byDate[obs.Date] = obs
	return nil
}

// MaxTemperature implements the method declared in obsdb.Store.
func (store *Store) MaxTemperature(ctx context.Context, stationID string, level obsdb.Consistency) (int32, error) {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.locked.readCalls[level]++
	if err := store.locked.readErrors[level]; err != nil {
		return 0, err
	}
	byDate := store.locked.observations[stationID]
	if len(byDate) == 0 {
		return 0, obsdb.NoDataError{StationID: stationID}
	}
	first := true
	var max int32
	for _, obs := range byDate {
		if first {
			max = obs.TMax
			first = false
		} else {
			max = cmp.MaxInt32(max, obs.TMax)
		}
	}
	return max, nil
}

// StationName implements the method declared in obsdb.Store.
func (store *Store) StationName(ctx context.Context, stationID string) (string, error) {
	store.lock.Lock()
	defer store.lock.Unlock()
	name, ok := store.locked.stations[stationID]
	if !ok {
		return "", obsdb.NotFoundError{StationID: stationID}
	}
	return name, nil
}

// InsertStation implements the method declared in obsdb.Store.
func (store *Store) InsertStation(ctx context.Context, station obsdb.Station) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	if err := store.locked.nextInsertError; err != nil {
		store.locked.nextInsertError = nil
		return err
	}
	store.locked.stations[station.ID] = station.Name
	return nil
}

// Schema implements the method declared in obsdb.Store.
func (store *Store) Schema(ctx context.Context) (string, error) {
	return store.SchemaText, nil
}

// SetReadError arranges for MaxTemperature calls at the given level to return
// err. Passing nil clears the injection for that level.
func (store *Store) SetReadError(level obsdb.Consistency, err error) {
	store.lock.Lock()
	defer store.lock.Unlock()
	if err == nil {
		delete(store.locked.readErrors, level)
		return
	}
	store.locked.readErrors[level] = err
}

// SetNextRecordError arranges for the next RecordObservation call to fail
// with err without writing anything.
func (store *Store) SetNextRecordError(err error) {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.locked.nextRecordError = err
}

// SetNextInsertError arranges for the next InsertStation call to fail with
// err without writing anything.
func (store *Store) SetNextInsertError(err error) {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.locked.nextInsertError = err
}

// ReadCalls returns how many MaxTemperature calls ran at the given level.
func (store *Store) ReadCalls(level obsdb.Consistency) int {
	store.lock.Lock()
	defer store.lock.Unlock()
	return store.locked.readCalls[level]
}

// Observations returns a copy of the station's recorded observations, keyed
// by date. Useful for asserting last-write-wins behavior.
func (store *Store) Observations(stationID string) map[string]obsdb.Observation {
	store.lock.Lock()
	defer store.lock.Unlock()
	out := make(map[string]obsdb.Observation, len(store.locked.observations[stationID]))
	for date, obs := range store.locked.observations[stationID] {
		out[date] = obs
	}
	return out
}
