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

package cqlstore

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/wxstore/wxstore/config"
)

// ProvisionOptions controls Provision's behavior.
type ProvisionOptions struct {
	// If true, any existing keyspace of the same name is dropped first,
	// destroying all stored data. Only sensible in development clusters.
	DropExisting bool

	// The keyspace's replication factor. If 0, defaults to 3.
	ReplicationFactor int
}

// Provision creates the keyspace, the station_record type, and the stations
// table. It is an administrative bootstrap step, run once before the API
// server starts; the server itself assumes the schema exists.
func Provision(ctx context.Context, cfg *config.Cassandra, opts ProvisionOptions) error {
	session, err := connect(cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	rf := opts.ReplicationFactor
	if rf == 0 {
		rf = 3
	}
	stmts := []string{}
	if opts.DropExisting {
		stmts = append(stmts, fmt.Sprintf("DROP KEYSPACE IF EXISTS %v", cfg.Keyspace))
	}
	stmts = append(stmts,
		fmt.Sprintf(`CREATE KEYSPACE %v WITH replication = {'class': 'SimpleStrategy', 'replication_factor': %d}`,
			cfg.Keyspace, rf),
		fmt.Sprintf(`CREATE TYPE %v.station_record (tmin int, tmax int)`, cfg.Keyspace),
		fmt.Sprintf(`CREATE TABLE %v.stations (
			id text,
			date date,
			name text STATIC,
			record station_record,
			PRIMARY KEY (id, date)
		) WITH CLUSTERING ORDER BY (date ASC)`, cfg.Keyspace),
	)
	for _, stmt := range stmts {
		log.Debugf("Provisioning: %v", stmt)
		if err := session.Query(stmt).WithContext(ctx).Exec(); err != nil {
			return fmt.Errorf("provisioning keyspace %v: %v", cfg.Keyspace, err)
		}
	}
	log.Infof("Provisioned keyspace %v (replication factor %d)", cfg.Keyspace, rf)
	return nil
}
