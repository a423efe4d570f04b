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

package station

import (
	"github.com/prometheus/client_golang/prometheus"
	metricsutil "github.com/wxstore/wxstore/util/metrics"
)

type serviceMetrics struct {
	strongReadsTotal     prometheus.Counter
	fallbackReadsTotal   prometheus.Counter
	degradedResultsTotal prometheus.Counter
	unavailableTotal     prometheus.Counter
}

var metrics serviceMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = serviceMetrics{
		strongReadsTotal: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "wxstore",
			Subsystem: "station",
			Name:      "strong_reads_total",
			Help: `The number of max-temperature reads attempted at the strong tier.

Every MaxTemperature call increments this once, whatever its outcome.
`,
		}),
		fallbackReadsTotal: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "wxstore",
			Subsystem: "station",
			Name:      "fallback_reads_total",
			Help: `The number of reads retried at the fallback tier.

Incremented only when the strong tier failed with an unavailable error. The
gap between this and strong_reads_total shows how often the cluster satisfies
the strong tier.
`,
		}),
		degradedResultsTotal: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "wxstore",
			Subsystem: "station",
			Name:      "degraded_results_total",
			Help: `The number of reads answered from the fallback tier.

Each of these returned a value to the caller flagged as degraded: the answer
may not reflect every acknowledged write.
`,
		}),
		unavailableTotal: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "wxstore",
			Subsystem: "station",
			Name:      "unavailable_total",
			Help: `The number of reads where both tiers failed with unavailable errors.

These calls returned no value at all. A non-zero rate here means even
single-replica reads are failing.
`,
		}),
	}
}
