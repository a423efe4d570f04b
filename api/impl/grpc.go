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
	"net"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/wxstore/wxstore/api"
	grpcserverutil "github.com/wxstore/wxstore/util/grpc/server"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
)

func (s *Server) startGRPC() error {
	log.Infof("Starting gRPC API server on %v", s.cfg.API.GRPCAddress)
	l, err := net.Listen("tcp", s.cfg.API.GRPCAddress)
	if err != nil {
		return err
	}
	limit := s.cfg.API.MaxInFlight
	if limit <= 0 {
		limit = 9
	}
	grpcServer := grpcserverutil.NewServer(capInFlight(limit))
	api.RegisterStationServer(grpcServer, s)
	grpc_prometheus.Register(grpcServer)
	go grpcServer.Serve(l)
	return nil
}

// capInFlight bounds the number of RPCs executing at once. RPCs over the
// limit queue rather than fail; a caller giving up is seen as a context
// cancellation while waiting for a slot.
func capInFlight(limit int64) grpc.UnaryServerInterceptor {
	sem := semaphore.NewWeighted(limit)
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		metrics.inFlightRequests.Inc()
		defer func() {
			metrics.inFlightRequests.Dec()
			sem.Release(1)
		}()
		return handler(ctx, req)
	}
}
