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
	"github.com/prometheus/client_golang/prometheus"
	metricsutil "github.com/wxstore/wxstore/util/metrics"
)

type storeMetrics struct {
	writeRTTSeconds  prometheus.Summary
	readRTTSeconds   prometheus.Summary
	unavailableTotal prometheus.Counter
}

var metrics storeMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = storeMetrics{
		writeRTTSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace: "wxstore",
			Subsystem: "cqlstore",
			Name:      "write_rtt_seconds",
			Help: `The round trip time in seconds of an observation upsert.

This measures the driver call, including any retries the driver performs
internally. Failed writes are observed too.
`,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
		readRTTSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace: "wxstore",
			Subsystem: "cqlstore",
			Name:      "read_rtt_seconds",
			Help: `The round trip time in seconds of a max-temperature aggregate read.

Strong and fallback reads are observed alike; the station package counts the
two tiers separately.
`,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
		unavailableTotal: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "wxstore",
			Subsystem: "cqlstore",
			Name:      "unavailable_total",
			Help: `The number of driver calls that failed because too few replicas responded.

Counts both unavailable errors reported by the coordinator and requests that
could not reach any host at all.
`,
		}),
	}
}
