// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package aspect

import (
	"github.com/molecular-unfolding/cfnaspects/pkg/metadata"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "aspect"

// Metrics contains the Prometheus metrics recorded while applying aspects.
var Metrics = struct {
	Visits        *prometheus.CounterVec
	Changes       *prometheus.CounterVec
	Errors        *prometheus.CounterVec
	ApplyDuration *prometheus.HistogramVec
}{
	Visits: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Total number of construct nodes visited by an aspect",
			Namespace: metadata.MetricsNamespace,
			Subsystem: subsystem,
			Name:      "visits_total",
		},
		[]string{"aspect"},
	),
	Changes: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Total number of visits which changed the template",
			Namespace: metadata.MetricsNamespace,
			Subsystem: subsystem,
			Name:      "changes_total",
		},
		[]string{"aspect"},
	),
	Errors: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Total number of errors reported by an aspect",
			Namespace: metadata.MetricsNamespace,
			Subsystem: subsystem,
			Name:      "errors_total",
		},
		// code: the status error code, e.g. 1003
		[]string{"aspect", "code"},
	),
	ApplyDuration: prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Help:      "Distribution of durations of applying all aspects to a stack",
			Namespace: metadata.MetricsNamespace,
			Subsystem: subsystem,
			Name:      "apply_duration_seconds",
		},
		// status: success, error
		[]string{"status"},
	),
}

func init() {
	prometheus.MustRegister(
		Metrics.Visits,
		Metrics.Changes,
		Metrics.Errors,
		Metrics.ApplyDuration,
	)
}
