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

// Package station holds the read/write consistency policy for station
// observations. Writes are acknowledged by a single replica, favoring
// availability; reads first require the strong tier and degrade to the
// fallback tier only when too few replicas respond, with the degradation
// reported to the caller rather than hidden.
package station

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wxstore/wxstore/config"
	"github.com/wxstore/wxstore/obsdb"
)

// Levels are the consistency tiers the service operates at. They are fixed at
// startup and shared read-only by every in-flight request.
type Levels struct {
	// Applied to observation writes. Weak: one replica acknowledging is
	// enough, and a replica lost after the ack can lose the write. Accepted
	// trade-off.
	Write obsdb.Consistency
	// The first tier attempted by MaxTemperature. Strong: the result
	// reflects every durably acknowledged write.
	ReadStrong obsdb.Consistency
	// The tier retried when ReadStrong is unavailable.
	ReadFallback obsdb.Consistency
}

// DefaultLevels returns the levels used when the configuration doesn't
// override them: single-replica writes, three-replica strong reads,
// single-replica fallback reads.
func DefaultLevels() Levels {
	return Levels{
		Write:        obsdb.One,
		ReadStrong:   obsdb.Three,
		ReadFallback: obsdb.One,
	}
}

// LevelsFromConfig builds Levels from the Cassandra section of the
// configuration, applying DefaultLevels for unset fields.
func LevelsFromConfig(cfg *config.Cassandra) (Levels, error) {
	levels := DefaultLevels()
	set := func(dst *obsdb.Consistency, name string) error {
		if name == "" {
			return nil
		}
		level, err := obsdb.ParseConsistency(name)
		if err != nil {
			return err
		}
		*dst = level
		return nil
	}
	if err := set(&levels.Write, cfg.WriteConsistency); err != nil {
		return Levels{}, err
	}
	if err := set(&levels.ReadStrong, cfg.ReadStrongConsistency); err != nil {
		return Levels{}, err
	}
	if err := set(&levels.ReadFallback, cfg.ReadFallbackConsistency); err != nil {
		return Levels{}, err
	}
	return levels, nil
}

// A Reading is the outcome of a successful MaxTemperature call.
type Reading struct {
	// The maximum recorded TMax across all of the station's observations.
	TMax int32
	// True when the value was obtained at the fallback tier. The answer may
	// not reflect all acknowledged writes; callers apply their own policy.
	Degraded bool
}

// Service answers station queries against an obsdb.Store at the configured
// consistency tiers. Safe for concurrent use.
type Service struct {
	store  obsdb.Store
	levels Levels
}

// New returns a Service reading and writing through store at the given
// levels.
func New(store obsdb.Store, levels Levels) *Service {
	return &Service{store: store, levels: levels}
}

// Levels returns the service's consistency tiers.
func (s *Service) Levels() Levels {
	return s.levels
}

// RecordObservation upserts one observation at the write tier. The station is
// not checked against the reference set: an observation for an unknown
// station implicitly creates its partition. Repeating a call with the same
// inputs has the same effect as making it once. The date must parse as a
// calendar day; tmin and tmax are stored as given, even when tmin > tmax.
func (s *Service) RecordObservation(ctx context.Context, obs obsdb.Observation) error {
	if _, err := time.Parse("2006-01-02", obs.Date); err != nil {
		return fmt.Errorf("invalid observation date %q: expected YYYY-MM-DD", obs.Date)
	}
	return s.store.RecordObservation(ctx, obs, s.levels.Write)
}

// MaxTemperature returns the maximum TMax across the station's observations.
//
// The aggregate first runs at the strong tier. If that fails specifically
// because too few replicas responded, the identical aggregate is retried once
// at the fallback tier and a success there is returned with Reading.Degraded
// set. Any other failure, at either tier, is returned verbatim with no
// further attempts; a station with no observations yields a NoDataError from
// whichever tier answered.
func (s *Service) MaxTemperature(ctx context.Context, stationID string) (Reading, error) {
	metrics.strongReadsTotal.Inc()
	max, err := s.store.MaxTemperature(ctx, stationID, s.levels.ReadStrong)
	if err == nil {
		return Reading{TMax: max}, nil
	}
	if !obsdb.IsUnavailable(err) {
		return Reading{}, err
	}

	metrics.fallbackReadsTotal.Inc()
	log.WithFields(log.Fields{
		"station": stationID,
		"strong":  s.levels.ReadStrong,
	}).Warnf("Strong read unavailable, falling back to %v", s.levels.ReadFallback)
	max, err = s.store.MaxTemperature(ctx, stationID, s.levels.ReadFallback)
	if err == nil {
		metrics.degradedResultsTotal.Inc()
		return Reading{TMax: max, Degraded: true}, nil
	}
	if obsdb.IsUnavailable(err) {
		metrics.unavailableTotal.Inc()
	}
	return Reading{}, err
}

// Name returns the station's reference name, or a NotFoundError. A plain
// single-partition lookup; no fallback tier applies.
func (s *Service) Name(ctx context.Context, stationID string) (string, error) {
	return s.store.StationName(ctx, stationID)
}

// Schema returns the storage engine's creation statement for the
// observations table. Diagnostic only.
func (s *Service) Schema(ctx context.Context) (string, error) {
	return s.store.Schema(ctx)
}
