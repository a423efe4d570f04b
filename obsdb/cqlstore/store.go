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

// Package cqlstore implements obsdb.Store on top of an Apache Cassandra
// cluster using the gocql driver. The session is acquired once at startup and
// pools connections internally; statement text is fixed at construction and
// shared read-only by all in-flight requests.
package cqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"
	log "github.com/sirupsen/logrus"
	"github.com/wxstore/wxstore/config"
	"github.com/wxstore/wxstore/obsdb"
)

// Store is a Cassandra-backed implementation of obsdb.Store.
type Store struct {
	session *gocql.Session
	stmts   statements
}

// Store implements obsdb.Store.
var _ obsdb.Store = (*Store)(nil)

// statements holds the CQL text used by the Store. Built once in New and
// never mutated; safe for concurrent use.
type statements struct {
	insertObservation string
	selectMax         string
	selectName        string
	insertStation     string
	describeTable     string
}

func newStatements(keyspace string) statements {
	table := keyspace + ".stations"
	return statements{
		insertObservation: fmt.Sprintf(
			"INSERT INTO %v (id, date, record) VALUES (?, ?, {tmin: ?, tmax: ?})", table),
		selectMax: fmt.Sprintf(
			"SELECT MAX(record.tmax) AS max_temp FROM %v WHERE id = ?", table),
		selectName: fmt.Sprintf(
			"SELECT name FROM %v WHERE id = ?", table),
		insertStation: fmt.Sprintf(
			"INSERT INTO %v (id, name) VALUES (?, ?)", table),
		describeTable: fmt.Sprintf("DESCRIBE TABLE %v", table),
	}
}

// New connects to the Cassandra cluster described by cfg and returns a Store.
// It blocks until the session is established or fails.
func New(cfg *config.Cassandra) (*Store, error) {
	session, err := connect(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{
		session: session,
		stmts:   newStatements(cfg.Keyspace),
	}, nil
}

// connect builds a gocql session from the configuration. Timeouts on
// individual requests are owned by the driver, not by callers.
func connect(cfg *config.Cassandra) (*gocql.Session, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Consistency = gocql.One
	if cfg.TimeoutMillis > 0 {
		cluster.Timeout = time.Duration(cfg.TimeoutMillis) * time.Millisecond
	}
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("connecting to Cassandra at %v: %v", cfg.Hosts, err)
	}
	log.Infof("Connected to Cassandra cluster at %v", cfg.Hosts)
	return session, nil
}

// Close shuts down the underlying session.
func (store *Store) Close() {
	store.session.Close()
}

// RecordObservation implements the method declared in obsdb.Store.
func (store *Store) RecordObservation(ctx context.Context, obs obsdb.Observation, level obsdb.Consistency) error {
	start := time.Now()
	err := store.session.Query(store.stmts.insertObservation,
		obs.StationID, obs.Date, obs.TMin, obs.TMax).
		WithContext(ctx).
		Consistency(gocqlConsistency(level)).
		Exec()
	metrics.writeRTTSeconds.Observe(time.Since(start).Seconds())
	return classify(err, level)
}

// MaxTemperature implements the method declared in obsdb.Store.
func (store *Store) MaxTemperature(ctx context.Context, stationID string, level obsdb.Consistency) (int32, error) {
	start := time.Now()
	// MAX over an empty partition yields a single row holding a null, so the
	// scan target must be able to represent null.
	var max *int32
	err := store.session.Query(store.stmts.selectMax, stationID).
		WithContext(ctx).
		Consistency(gocqlConsistency(level)).
		Scan(&max)
	metrics.readRTTSeconds.Observe(time.Since(start).Seconds())
	if err == gocql.ErrNotFound {
		return 0, obsdb.NoDataError{StationID: stationID}
	}
	if err != nil {
		return 0, classify(err, level)
	}
	if max == nil {
		return 0, obsdb.NoDataError{StationID: stationID}
	}
	return *max, nil
}

// StationName implements the method declared in obsdb.Store.
func (store *Store) StationName(ctx context.Context, stationID string) (string, error) {
	var name string
	err := store.session.Query(store.stmts.selectName, stationID).
		WithContext(ctx).
		Consistency(gocql.One).
		Scan(&name)
	if err == gocql.ErrNotFound {
		return "", obsdb.NotFoundError{StationID: stationID}
	}
	if err != nil {
		return "", classify(err, obsdb.One)
	}
	if name == "" {
		// The partition exists (observations were written) but the station
		// was never seeded with a name. Report it like a missing row.
		return "", obsdb.NotFoundError{StationID: stationID}
	}
	return name, nil
}

// InsertStation implements the method declared in obsdb.Store.
func (store *Store) InsertStation(ctx context.Context, station obsdb.Station) error {
	err := store.session.Query(store.stmts.insertStation, station.ID, station.Name).
		WithContext(ctx).
		Consistency(gocql.One).
		Exec()
	return classify(err, obsdb.One)
}

// Schema implements the method declared in obsdb.Store.
func (store *Store) Schema(ctx context.Context) (string, error) {
	row := make(map[string]interface{})
	iter := store.session.Query(store.stmts.describeTable).
		WithContext(ctx).
		Consistency(gocql.One).
		Iter()
	if !iter.MapScan(row) {
		if err := iter.Close(); err != nil {
			return "", classify(err, obsdb.One)
		}
		return "", fmt.Errorf("DESCRIBE TABLE returned no rows")
	}
	if err := iter.Close(); err != nil {
		return "", classify(err, obsdb.One)
	}
	create, ok := row["create_statement"].(string)
	if !ok {
		return "", fmt.Errorf("DESCRIBE TABLE returned no create_statement column")
	}
	return create, nil
}

// gocqlConsistency maps the store-independent level to the driver's enum.
func gocqlConsistency(level obsdb.Consistency) gocql.Consistency {
	switch level {
	case obsdb.One:
		return gocql.One
	case obsdb.Two:
		return gocql.Two
	case obsdb.Three:
		return gocql.Three
	case obsdb.Quorum:
		return gocql.Quorum
	case obsdb.All:
		return gocql.All
	default:
		panic(fmt.Sprintf("unmapped consistency level: %v", level))
	}
}

// classify converts driver failures that mean "not enough replicas" into
// obsdb.UnavailableError and passes every other error through verbatim, so
// callers can branch on the tag rather than on driver types.
func classify(err error, level obsdb.Consistency) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case *gocql.RequestErrUnavailable:
		metrics.unavailableTotal.Inc()
		return obsdb.UnavailableError{Level: level, Cause: err}
	}
	if err == gocql.ErrNoConnections {
		metrics.unavailableTotal.Inc()
		return obsdb.UnavailableError{Level: level, Cause: err}
	}
	return err
}
