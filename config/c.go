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

// Package config contains the configuration for wxstore servers and tools.
// The configuration is typically loaded from a JSON file on disk.
package config

// Wxstore describes the configuration for a wxstore process.
type Wxstore struct {
	// How to reach the Cassandra cluster holding the observation data.
	// Required on all processes.
	Cassandra Cassandra `json:"cassandra"`

	// Configuration for the API server. Ignored by the tools.
	API *API `json:"api,omitempty"`

	// If non-nil, the configuration for distributed tracing (OpenTracing). If
	// nil, the process will not collect traces.
	Tracing *Tracing `json:"tracing,omitempty"`

	// Configuration for the station reference seeding tool. Ignored by other
	// processes.
	Ingest *Ingest `json:"ingest,omitempty"`
}

// Cassandra describes how to reach the observation store and which
// consistency tiers to operate at. The tiers are read once at startup and
// never change while the process runs.
type Cassandra struct {
	// Contact points for the cluster, host or host:port. Required.
	Hosts []string `json:"hosts"`

	// The keyspace holding the stations table. Required.
	Keyspace string `json:"keyspace"`

	// Per-request driver timeout in milliseconds. If 0 (or unset), the
	// driver's default applies. Request cancellation is owned by the driver,
	// not by the service.
	TimeoutMillis int64 `json:"timeoutMillis,omitempty"`

	// Consistency level names ("ONE", "TWO", "THREE", "QUORUM", "ALL") for
	// the three tiers. Unset fields take the service defaults: ONE for
	// writes, THREE for strong reads, ONE for fallback reads.
	WriteConsistency        string `json:"writeConsistency,omitempty"`
	ReadStrongConsistency   string `json:"readStrongConsistency,omitempty"`
	ReadFallbackConsistency string `json:"readFallbackConsistency,omitempty"`
}

// API contains configuration specific to the API server.
type API struct {
	// The host:port or :port on which to serve GRPC requests. Required.
	GRPCAddress string `json:"grpcAddress"`

	// The host:port or :port on which to serve HTTP requests (admin, metrics,
	// etc). Required.
	HTTPAddress string `json:"httpAddress"`

	// Caps the number of concurrently handled RPCs, protecting the store's
	// session capacity. If 0 (or unset), defaults to 9.
	MaxInFlight int64 `json:"maxInFlight,omitempty"`
}

// Tracing contains configuration related to distributed execution tracing.
type Tracing struct {
	// Must be "jaeger" (for now).
	Type string `json:"type"`

	// An endpoint that accepts jaeger.thrift over HTTP directly from clients,
	// e.g. "http://jaeger:14268/api/traces".
	CollectorURL string `json:"collectorUrl"`
}

// Ingest contains configuration for the one-time station reference load.
type Ingest struct {
	// Path to a fixed-width GHCND station list file. Required.
	StationsFile string `json:"stationsFile"`

	// Two-letter state code to keep; all other stations are skipped.
	// Required.
	State string `json:"state"`

	// Number of concurrent insert workers. If 0 (or unset), defaults to 4.
	Workers int `json:"workers,omitempty"`
}
