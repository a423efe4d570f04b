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

// Command wxstore-api runs a wxstore API server daemon.
package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"
	api "github.com/wxstore/wxstore/api/impl"
	"github.com/wxstore/wxstore/config"
	"github.com/wxstore/wxstore/obsdb/cqlstore"
	"github.com/wxstore/wxstore/station"
	"github.com/wxstore/wxstore/util/debuglog"
	"github.com/wxstore/wxstore/util/signals"
	"github.com/wxstore/wxstore/util/tracing"
	_ "google.golang.org/grpc/encoding/gzip" // imported for side-effect of registering compressor
)

func main() {
	debuglog.Configure(debuglog.Options{})
	cfgFile := flag.String("cfg", "config.json", "config file")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}
	if cfg.API == nil {
		log.Fatal("api field missing in config")
	}
	log.Infof("Using config: %+v", cfg)

	tracer, err := tracing.New("wxstore-api", cfg.Tracing)
	if err != nil {
		log.Fatalf("Unable to initialize distributed tracing: %v", err)
	}
	defer tracer.Close()

	store, err := cqlstore.New(&cfg.Cassandra)
	if err != nil {
		log.Fatalf("Unable to connect to Cassandra: %v", err)
	}
	defer store.Close()

	levels, err := station.LevelsFromConfig(&cfg.Cassandra)
	if err != nil {
		log.Fatalf("Unable to parse consistency levels: %v", err)
	}
	apiServer := api.New(cfg, station.New(store, levels))
	go func() {
		log.Infof("Server::Run returned %v", apiServer.Run())
		os.Exit(-1)
	}()

	signals.WaitForQuit()
	log.Info("wxstore API server exiting")
}
