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

// Command wxstore-client provides command line access to the wxstore gRPC API
package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	docopt "github.com/docopt/docopt-go"
	opentracing "github.com/opentracing/opentracing-go"
	log "github.com/sirupsen/logrus"
	"github.com/wxstore/wxstore/api"
	"github.com/wxstore/wxstore/config"
	"github.com/wxstore/wxstore/util/debuglog"
	grpcclientutil "github.com/wxstore/wxstore/util/grpc/client"
	"github.com/wxstore/wxstore/util/tracing"
)

const usage = `wxstore-client is a command-line tool for calling the wxstore API service.

Usage:
  wxstore-client [--api=HOST -t=DUR --trace=HOST] schema
  wxstore-client [--api=HOST -t=DUR --trace=HOST] name STATION
  wxstore-client [--api=HOST -t=DUR --trace=HOST] record STATION DATE TMIN TMAX
  wxstore-client [--api=HOST -t=DUR --trace=HOST] max STATION

Options:
  --api=HOST               Host and port of wxstore API server to connect to [default: localhost:9987]
  -t=DUR, --timeout=DUR    Timeout for RPC calls to the wxstore API tier [default: 10s]
  --trace=HOST             Send OpenTracing traces to this collector.

Examples:
  # Record one day's observation for the Madison airport station.
  wxstore-client record USW00014837 2023-07-04 17 31

  # Ask for the maximum recorded high. A 'fallback_to_available' note on the
  # output means the value came from a degraded read.
  wxstore-client max USW00014837

  # Look up the station's reference name.
  wxstore-client name USW00014837

`

type options struct {
	Server string `docopt:"--api"`
	// Timeout is never zero; it's set to 1 hour if the user passes 0s.
	Timeout          time.Duration
	TimeoutString    string `docopt:"--timeout"`
	TracingCollector string `docopt:"--trace"`

	Station string `docopt:"STATION"`

	// Schema
	Schema bool `docopt:"schema"`

	// Name
	Name bool `docopt:"name"`

	// Record
	Record     bool   `docopt:"record"`
	Date       string `docopt:"DATE"`
	TMin       int32
	TMinString string `docopt:"TMIN"`
	TMax       int32
	TMaxString string `docopt:"TMAX"`

	// Max
	Max bool `docopt:"max"`
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
	if options.TimeoutString != "" {
		options.Timeout, err = time.ParseDuration(options.TimeoutString)
		if err != nil {
			log.Fatalf("Unable to parse timeout value: %v", err)
		}
	}
	if options.Timeout == 0 {
		options.Timeout = time.Hour
	}
	if options.Record {
		options.TMin = parseTemp("TMIN", options.TMinString)
		options.TMax = parseTemp("TMAX", options.TMaxString)
	}
	return &options
}

func parseTemp(arg, value string) int32 {
	v, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		log.Fatalf("Unable to parse %s value %q: %v", arg, value, err)
	}
	return int32(v)
}

func main() {
	debuglog.Configure(debuglog.Options{})
	options := parseArgs()
	ctx := context.Background()

	if options.TracingCollector != "" {
		tracer, err := tracing.New("wxstore-client", &config.Tracing{
			Type:         "jaeger",
			CollectorURL: options.TracingCollector,
		})
		if err != nil {
			log.WithError(err).Warn("Could not initialize OpenTracing tracer")
		} else {
			defer tracer.Close()
		}
	}
	span, ctx := opentracing.StartSpanFromContext(ctx, "wxstore-client run")
	defer span.Finish()

	conn := grpcclientutil.InsecureDialContext(ctx, options.Server)
	stations := api.NewStationClient(conn)

	timeoutCtx, cancelFunc := context.WithTimeout(ctx, options.Timeout)
	defer cancelFunc()

	switch {
	case options.Schema:
		if err := schema(timeoutCtx, stations); err != nil {
			log.Fatalf("Error executing schema: %v", err)
		}
	case options.Name:
		if err := name(timeoutCtx, stations, options); err != nil {
			log.Fatalf("Error executing name: %v", err)
		}
	case options.Record:
		if err := record(timeoutCtx, stations, options); err != nil {
			log.Fatalf("Error executing record: %v", err)
		}
	case options.Max:
		if err := max(timeoutCtx, stations, options); err != nil {
			log.Fatalf("Error executing max: %v", err)
		}
	default:
		log.Fatalf("command not implemented")
	}
}

func schema(ctx context.Context, stations api.StationClient) error {
	res, err := stations.StationSchema(ctx, &api.StationSchemaRequest{})
	if err != nil {
		return err
	}
	if res.Error != "" {
		return fmt.Errorf("server reported: %s", res.Error)
	}
	fmt.Println(res.Schema)
	return nil
}

func name(ctx context.Context, stations api.StationClient, options *options) error {
	res, err := stations.StationName(ctx, &api.StationNameRequest{Station: options.Station})
	if err != nil {
		return err
	}
	if res.Error != "" {
		return fmt.Errorf("server reported: %s", res.Error)
	}
	fmt.Printf("%s: %s\n", options.Station, res.Name)
	return nil
}

func record(ctx context.Context, stations api.StationClient, options *options) error {
	res, err := stations.RecordTemps(ctx, &api.RecordTempsRequest{
		Station: options.Station,
		Date:    options.Date,
		Tmin:    options.TMin,
		Tmax:    options.TMax,
	})
	if err != nil {
		return err
	}
	if res.Error != "" {
		return fmt.Errorf("server reported: %s", res.Error)
	}
	fmt.Printf("Recorded %s %s tmin=%d tmax=%d\n",
		options.Station, options.Date, options.TMin, options.TMax)
	return nil
}

func max(ctx context.Context, stations api.StationClient, options *options) error {
	res, err := stations.StationMax(ctx, &api.StationMaxRequest{Station: options.Station})
	if err != nil {
		return err
	}
	switch res.Error {
	case "":
		fmt.Printf("%s max tmax: %d\n", options.Station, res.Tmax)
	case "fallback_to_available":
		fmt.Printf("%s max tmax: %d (degraded read; may be missing recent writes)\n",
			options.Station, res.Tmax)
	default:
		return fmt.Errorf("server reported: %s", res.Error)
	}
	return nil
}
