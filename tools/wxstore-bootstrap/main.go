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

// Command wxstore-bootstrap prepares a Cassandra cluster for wxstore: it
// creates the keyspace and observations table, and seeds the station
// reference set from a GHCND stations file.
package main

import (
	"context"
	"strconv"

	docopt "github.com/docopt/docopt-go"
	log "github.com/sirupsen/logrus"
	"github.com/wxstore/wxstore/config"
	"github.com/wxstore/wxstore/ingest"
	"github.com/wxstore/wxstore/obsdb/cqlstore"
	"github.com/wxstore/wxstore/util/debuglog"
)

const usage = `wxstore-bootstrap prepares a Cassandra cluster for wxstore.

Usage:
  wxstore-bootstrap [--cfg=FILE] provision [--drop] [--rf=N]
  wxstore-bootstrap [--cfg=FILE] seed [--file=FILE] [--state=ST]

Options:
  --cfg=FILE     wxstore config file [default: config.json]
  --drop         Drop an existing keyspace before provisioning. Destroys data.
  --rf=N         Replication factor for the keyspace [default: 3]
  --file=FILE    GHCND stations file; overrides the config's ingest.stationsFile.
  --state=ST     Only seed stations in this two-letter state; overrides the
                 config's ingest.state.

Examples:
  # Create the keyspace and table on a fresh 3-node cluster.
  wxstore-bootstrap provision

  # Load the Wisconsin stations from a NOAA listing.
  wxstore-bootstrap seed --file=ghcnd-stations.txt --state=WI

`

type options struct {
	ConfigFile string `docopt:"--cfg"`

	// Provision
	Provision bool   `docopt:"provision"`
	Drop      bool   `docopt:"--drop"`
	RFString  string `docopt:"--rf"`
	RF        int

	// Seed
	Seed         bool   `docopt:"seed"`
	StationsFile string `docopt:"--file"`
	State        string `docopt:"--state"`
}

func parseArgs() *options {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Error parsing command-line arguments: %v", err)
	}
	var options options
	err = opts.Bind(&options)
	if err != nil {
		log.Fatalf("Error binding command-line arguments: %v\nfrom: %+v", err, opts)
	}
	if options.RFString != "" {
		options.RF, err = strconv.Atoi(options.RFString)
		if err != nil {
			log.Fatalf("Unable to parse replication factor: %v", err)
		}
	}
	return &options
}

func main() {
	debuglog.Configure(debuglog.Options{})
	options := parseArgs()
	ctx := context.Background()

	cfg, err := config.Load(options.ConfigFile)
	if err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}

	switch {
	case options.Provision:
		err := cqlstore.Provision(ctx, &cfg.Cassandra, cqlstore.ProvisionOptions{
			DropExisting:      options.Drop,
			ReplicationFactor: options.RF,
		})
		if err != nil {
			log.Fatalf("Error provisioning keyspace %v: %v", cfg.Cassandra.Keyspace, err)
		}
		log.Infof("Provisioned keyspace %v", cfg.Cassandra.Keyspace)

	case options.Seed:
		ingestCfg := cfg.Ingest
		if ingestCfg == nil {
			ingestCfg = &config.Ingest{}
		}
		if options.StationsFile != "" {
			ingestCfg.StationsFile = options.StationsFile
		}
		if options.State != "" {
			ingestCfg.State = options.State
		}
		if ingestCfg.StationsFile == "" {
			log.Fatal("No stations file: set ingest.stationsFile in the config or pass --file")
		}
		store, err := cqlstore.New(&cfg.Cassandra)
		if err != nil {
			log.Fatalf("Unable to connect to Cassandra: %v", err)
		}
		defer store.Close()
		count, err := ingest.Load(ctx, store, ingestCfg)
		if err != nil {
			log.Fatalf("Error seeding stations: %v", err)
		}
		log.Infof("Seeded %v stations", count)

	default:
		log.Fatalf("command not implemented")
	}
}
