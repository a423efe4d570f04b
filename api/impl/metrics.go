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
	"github.com/prometheus/client_golang/prometheus"
	metricsutil "github.com/wxstore/wxstore/util/metrics"
)

type apiMetrics struct {
	inFlightRequests prometheus.Gauge
}

var metrics apiMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = apiMetrics{
		inFlightRequests: mr.NewGauge(prometheus.GaugeOpts{
			Namespace: "wxstore",
			Subsystem: "api",
			Name:      "in_flight_requests",
			Help: `The number of RPCs currently holding an execution slot.

Bounded above by the api.maxInFlight configuration setting. Pinned at the
limit means new RPCs are queueing for slots.
`,
		}),
	}
}
