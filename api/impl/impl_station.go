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

	opentracing "github.com/opentracing/opentracing-go"
	log "github.com/sirupsen/logrus"
	"github.com/wxstore/wxstore/api"
	"github.com/wxstore/wxstore/obsdb"
)

// Outcomes of the station RPCs travel in the reply 'error' field rather than
// in the gRPC status: callers switch on these strings. The values are part of
// the wire contract and must not change.
const (
	// The replica set couldn't satisfy the request's consistency tier.
	errUnavailable = "unavailable"
	// StationMax answered, but from the fallback tier. The accompanying
	// value may not reflect every acknowledged write.
	errFallback = "fallback_to_available"
	// The station has no recorded observations at all.
	errNoData = "No data found"
	// The station is absent from the reference set.
	errStationNotFound = "Station not found"
)

// StationSchema implements the StationSchema function in the Station gRPC
// API. It returns the storage engine's creation statement for the
// observations table.
func (s *Server) StationSchema(ctx context.Context, req *api.StationSchemaRequest) (*api.StationSchemaReply, error) {
	schema, err := s.stations.Schema(ctx)
	if err != nil {
		return &api.StationSchemaReply{Error: err.Error()}, nil
	}
	return &api.StationSchemaReply{Schema: schema}, nil
}

// StationName implements the StationName function in the Station gRPC API.
func (s *Server) StationName(ctx context.Context, req *api.StationNameRequest) (*api.StationNameReply, error) {
	name, err := s.stations.Name(ctx, req.Station)
	switch {
	case err == nil:
		return &api.StationNameReply{Name: name}, nil
	case obsdb.IsNotFound(err):
		return &api.StationNameReply{Error: errStationNotFound}, nil
	default:
		return &api.StationNameReply{Error: err.Error()}, nil
	}
}

// RecordTemps implements the RecordTemps function in the Station gRPC API. It
// upserts one day's observation for a station; repeating the call is
// harmless.
func (s *Server) RecordTemps(ctx context.Context, req *api.RecordTempsRequest) (*api.RecordTempsReply, error) {
	log.Debugf("RecordTemps %+v", req)
	err := s.stations.RecordObservation(ctx, obsdb.Observation{
		StationID: req.Station,
		Date:      req.Date,
		TMin:      req.Tmin,
		TMax:      req.Tmax,
	})
	switch {
	case err == nil:
		return &api.RecordTempsReply{}, nil
	case obsdb.IsUnavailable(err):
		return &api.RecordTempsReply{Error: errUnavailable}, nil
	default:
		return &api.RecordTempsReply{Error: err.Error()}, nil
	}
}

// StationMax implements the StationMax function in the Station gRPC API. It
// returns the maximum recorded tmax across the station's observations,
// reporting in the reply's error field when the value came from the degraded
// fallback tier.
func (s *Server) StationMax(ctx context.Context, req *api.StationMaxRequest) (*api.StationMaxReply, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "max temperature read")
	reading, err := s.stations.MaxTemperature(ctx, req.Station)
	span.Finish()

	switch {
	case err == nil && !reading.Degraded:
		return &api.StationMaxReply{Tmax: reading.TMax}, nil
	case err == nil:
		return &api.StationMaxReply{Tmax: reading.TMax, Error: errFallback}, nil
	case obsdb.IsNoData(err):
		return &api.StationMaxReply{Tmax: -1, Error: errNoData}, nil
	case obsdb.IsUnavailable(err):
		return &api.StationMaxReply{Error: errUnavailable}, nil
	default:
		return &api.StationMaxReply{Error: err.Error()}, nil
	}
}
