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

// Package obsdb contains interfaces to wxstore's replicated observation
// store. The store partitions rows by station id and replicates each
// partition; callers choose how many replicas must respond per operation by
// passing a Consistency level.
package obsdb

import (
	"context"
	"fmt"
)

// A Consistency is the minimum number (or fraction) of replicas that must
// acknowledge a write or agree on a read before the store reports success.
type Consistency int

// The consistency levels supported by the store. One favors availability and
// latency, Quorum and above favor correctness.
const (
	One Consistency = iota + 1
	Two
	Three
	Quorum
	All
)

// String returns the CQL-style name of the consistency level.
func (c Consistency) String() string {
	switch c {
	case One:
		return "ONE"
	case Two:
		return "TWO"
	case Three:
		return "THREE"
	case Quorum:
		return "QUORUM"
	case All:
		return "ALL"
	default:
		return fmt.Sprintf("Consistency(%d)", int(c))
	}
}

// ParseConsistency converts a CQL-style level name, as found in config files,
// into a Consistency. It returns an error for unknown names.
func ParseConsistency(name string) (Consistency, error) {
	for _, c := range []Consistency{One, Two, Three, Quorum, All} {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown consistency level %q", name)
}

// A Station is a row in the station reference set. Stations are created
// during administrative seeding and never deleted.
type Station struct {
	// An opaque fixed-format station code. This is the partition key: it
	// determines which replica set holds the station's rows.
	ID string
	// Set once per station and shared across all of its observations.
	Name string
}

// An Observation is one day's temperature record for one station. At most one
// observation exists per (station, date) pair; a later write to the same pair
// overwrites the earlier one.
type Observation struct {
	StationID string
	// A calendar day in "2006-01-02" form, with no time component.
	Date string
	// Temperature extremes in integer units. The store does not validate
	// physical plausibility, and TMin > TMax is accepted.
	TMin int32
	TMax int32
}

// A Store is a client to the replicated observation store. Implementations
// must be safe for concurrent use; the statement handles and consistency
// configuration behind them are immutable after construction.
type Store interface {
	// RecordObservation upserts one observation at the given consistency
	// level. It does not check that the station exists in the reference set;
	// writing an observation for an unknown station implicitly creates its
	// partition. Returns nil on success, an UnavailableError when too few
	// replicas are reachable, and any other storage error verbatim.
	RecordObservation(ctx context.Context, obs Observation, level Consistency) error

	// MaxTemperature returns the maximum TMax across all observations of the
	// station, evaluated at the given consistency level. Returns a
	// NoDataError when the station has no observations, an UnavailableError
	// when too few replicas are reachable, and any other storage error
	// verbatim.
	MaxTemperature(ctx context.Context, stationID string, level Consistency) (int32, error)

	// StationName returns the station's reference name. It runs at the
	// weakest consistency level: the lookup is a cheap single-partition read
	// and needs no tunable guarantee. Returns a NotFoundError when no row
	// matches.
	StationName(ctx context.Context, stationID string) (string, error)

	// InsertStation adds a station to the reference set, name only. Used by
	// administrative seeding; re-insertion is tolerated.
	InsertStation(ctx context.Context, station Station) error

	// Schema returns the storage engine's creation statement for the
	// observations table, for diagnostics.
	Schema(ctx context.Context) (string, error)
}

// An UnavailableError is returned when the store could not assemble enough
// live replicas to satisfy the requested consistency level. The condition is
// always retryable; reads additionally retry it once internally at a weaker
// level before surfacing it (see the station package).
type UnavailableError struct {
	// The consistency level the failed operation asked for.
	Level Consistency
	// The underlying storage error, if the client reported one.
	Cause error
}

// Error implements the method defined by 'error'.
func (err UnavailableError) Error() string {
	if err.Cause != nil {
		return fmt.Sprintf("not enough replicas available for %v: %v", err.Level, err.Cause)
	}
	return fmt.Sprintf("not enough replicas available for %v", err.Level)
}

// IsUnavailable returns true if err has type UnavailableError, false otherwise.
func IsUnavailable(err error) bool {
	_, ok := err.(UnavailableError)
	return ok
}

// A NoDataError is returned from MaxTemperature when the station has no
// observations. It is a normal empty outcome, not a failure: the replicas
// answered and agreed that nothing is there.
type NoDataError struct {
	StationID string
}

// Error implements the method defined by 'error'.
func (err NoDataError) Error() string {
	return fmt.Sprintf("no observations recorded for station %v", err.StationID)
}

// IsNoData returns true if err has type NoDataError, false otherwise.
func IsNoData(err error) bool {
	_, ok := err.(NoDataError)
	return ok
}

// A NotFoundError is returned from StationName when the station is absent
// from the reference set.
type NotFoundError struct {
	StationID string
}

// Error implements the method defined by 'error'.
func (err NotFoundError) Error() string {
	return fmt.Sprintf("station %v not found", err.StationID)
}

// IsNotFound returns true if err has type NotFoundError, false otherwise.
func IsNotFound(err error) bool {
	_, ok := err.(NotFoundError)
	return ok
}
