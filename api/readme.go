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

// Package api contains ProtoBuf-generated types for the external gRPC API to
// wxstore.
package api

/*
The error contract
==================

The Station RPCs report their outcome in the reply's 'error' field, not in the
gRPC status. A gRPC-level error from these methods means the request never
reached the service (bad connection, timeout, queue overflow); anything the
service itself has to say comes back in the reply.

The field is empty on success, and otherwise carries one of a small set of
strings that callers switch on:

    "unavailable"            the replica set couldn't satisfy the request's
                             consistency tier
    "fallback_to_available"  StationMax answered from the degraded tier; the
                             accompanying tmax may be missing recent writes
    "No data found"          the station has no observations (tmax is -1)
    "Station not found"      the station is absent from the reference set

Any other non-empty value is the text of an unexpected storage error, passed
through verbatim.

The distinction between "fallback_to_available" and a plain success is the
point of the API: the service never silently substitutes a weaker read. A
caller that can't tolerate stale answers treats it as an error; a caller that
favors availability uses the value and moves on.

To regenerate api.pb.go after editing station.proto:

    protoc --go_out=plugins=grpc,paths=source_relative:. api/station.proto
*/
