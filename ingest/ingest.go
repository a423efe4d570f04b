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

// Package ingest seeds the station reference set from a GHCND stations file.
// The file is the fixed-width ghcnd-stations.txt published by NOAA; each line
// describes one station, with the fields at fixed byte offsets.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wxstore/wxstore/config"
	"github.com/wxstore/wxstore/obsdb"
	"github.com/wxstore/wxstore/util/parallel"
)

// Byte offsets of the fields within a ghcnd-stations.txt line, from the
// GHCND readme. Offsets there are 1-based and inclusive.
const (
	idStart    = 0  // columns 1-11
	idEnd      = 11
	stateStart = 38 // columns 39-40
	stateEnd   = 40
	nameStart  = 41 // columns 42-71
	nameEnd    = 71
)

// ParseStations reads a ghcnd-stations.txt listing and returns the stations
// whose state field matches 'state'. With state "", every station is
// returned. Station names have their fixed-width padding trimmed. A line too
// short to carry the name field is an error; the file is machine-generated
// and a truncated line means a truncated download.
func ParseStations(r io.Reader, state string) ([]obsdb.Station, error) {
	var stations []obsdb.Station
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < nameEnd {
			return nil, fmt.Errorf("stations file line %d: too short (%d bytes)",
				lineNum, len(line))
		}
		if state != "" && line[stateStart:stateEnd] != state {
			continue
		}
		stations = append(stations, obsdb.Station{
			ID:   strings.TrimSpace(line[idStart:idEnd]),
			Name: strings.TrimSpace(line[nameStart:nameEnd]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stations file: %v", err)
	}
	return stations, nil
}

// InsertAll writes the given stations into the store, fanning the inserts out
// over 'workers' goroutines. The first insert error cancels the remaining
// work.
func InsertAll(ctx context.Context, store obsdb.Store, stations []obsdb.Station, workers int) error {
	if workers < 1 {
		workers = 1
	}
	return parallel.InvokeN(ctx, workers, func(ctx context.Context, i int) error {
		for j := i; j < len(stations); j += workers {
			if err := store.InsertStation(ctx, stations[j]); err != nil {
				return fmt.Errorf("inserting station %v: %v", stations[j].ID, err)
			}
		}
		return nil
	})
}

// Load runs a complete seeding pass per the given configuration: parse the
// stations file, filter to the configured state, insert the survivors. It
// returns the number of stations inserted.
func Load(ctx context.Context, store obsdb.Store, cfg *config.Ingest) (int, error) {
	f, err := os.Open(cfg.StationsFile)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	stations, err := ParseStations(f, cfg.State)
	if err != nil {
		return 0, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	start := time.Now()
	if err := InsertAll(ctx, store, stations, workers); err != nil {
		return 0, err
	}
	log.WithFields(log.Fields{
		"stations": len(stations),
		"state":    cfg.State,
		"elapsed":  time.Since(start),
	}).Info("Seeded station reference set")
	return len(stations), nil
}
