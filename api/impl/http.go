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

// Package impl implements the public wxstore API. It exposes the station
// service over gRPC, plus a small HTTP surface for metrics and diagnostics.
package impl

import (
	"context"
	"net/http"
	_ "net/http/pprof" // enable pprof endpoints

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/wxstore/wxstore/config"
	"github.com/wxstore/wxstore/obsdb"
	"github.com/wxstore/wxstore/station"
	"github.com/wxstore/wxstore/util/web"
)

// New returns a new instance of the API server, which exposes both an HTTP &
// gRPC API for consumers of the wxstore system to use. The returned Server
// instance will not start handling traffic until a subsequent call to
// Server.Run()
func New(cfg *config.Wxstore, stations *station.Service) *Server {
	return &Server{
		cfg:      cfg,
		stations: stations,
	}
}

// Server is an implementation of the external gRPC & HTTP interfaces to
// wxstore
type Server struct {
	cfg      *config.Wxstore
	stations stationService
}

// stationService provides an abstraction from the consistency policy layer to
// aid in testing.
type stationService interface {
	RecordObservation(ctx context.Context, obs obsdb.Observation) error
	MaxTemperature(ctx context.Context, stationID string) (station.Reading, error)
	Name(ctx context.Context, stationID string) (string, error)
	Schema(ctx context.Context) (string, error)
}

// Run will start listening for gRPC & HTTP requests.
// This function will block until the server is shutdown.
func (s *Server) Run() error {
	if err := s.startGRPC(); err != nil {
		return err
	}

	m := httprouter.New()

	m.GET("/schema", s.schemaHTTP)

	// prometheus metrics
	m.Handler("GET", "/metrics", promhttp.Handler())

	m.NotFound = http.DefaultServeMux
	logger := func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("[API] %v %v", r.Method, r.URL)
		m.ServeHTTP(w, r)
	}
	return http.ListenAndServe(s.cfg.API.HTTPAddress, http.HandlerFunc(logger))
}

// schemaHTTP dumps the observations table definition, for operators poking at
// a deployment with curl.
func (s *Server) schemaHTTP(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	schema, err := s.stations.Schema(r.Context())
	if err != nil {
		web.WriteError(w, http.StatusInternalServerError, "Unable to fetch schema: %v", err)
		return
	}
	web.WriteText(w, schema)
}
