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

// Package grpcclientutil has helpers for configuring gRPC clients.
package grpcclientutil

import (
	"context"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/grpc-ecosystem/grpc-opentracing/go/otgrpc"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// InsecureDialContext connects to the given address. It sets up Prometheus and
// OpenTracing monitoring. It disables transport-level security.
//
// The actual connection happens in the background; the given 'connectCtx' can
// be used to cancel this background activity. The caller must not pass
// grpc.WithBlock() as an option.
func InsecureDialContext(connectCtx context.Context, address string, opts ...grpc.DialOption) *grpc.ClientConn {
	tracer := opentracing.GlobalTracer()
	conn, err := grpc.DialContext(connectCtx, address, append([]grpc.DialOption{
		grpc.WithInsecure(),
		grpc.WithBackoffMaxDelay(time.Second),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			// 10s is the minimum keepalive allowed by the client library.
			Time:                time.Second * 10,
			Timeout:             time.Second,
			PermitWithoutStream: true,
		}),
		grpc.WithUnaryInterceptor(UnaryInterceptorChain(otgrpc.OpenTracingClientInterceptor(tracer),
			grpc_prometheus.UnaryClientInterceptor)),
	}, opts...)...)
	if err != nil {
		// DialContext without WithBlock only fails on bad arguments.
		logrus.WithError(err).Panic("Expected no error from grpc.DialContext")
	}
	return conn
}

// UnaryInterceptorChain lets you use multiple interceptors on a single client.
// gRPC only lets you have one top-level UnaryClientInterceptor per client, so
// this chains them together.
func UnaryInterceptorChain(first, second grpc.UnaryClientInterceptor) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption) error {
		return first(ctx, method, req, reply, cc, func(
			ctx context.Context,
			method string,
			req, reply interface{},
			cc *grpc.ClientConn,
			opts ...grpc.CallOption,
		) error {
			return second(ctx, method, req, reply, cc, invoker, opts...)
		}, opts...)
	}
}
