// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package sigparse

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values for methodsig_parse_total.
const (
	resultOK        = "ok"
	resultMalformed = "malformed"
)

// metricsParse holds Prometheus metrics for the parser.
type metricsParse struct {
	once sync.Once

	parses    *prometheus.CounterVec
	arguments prometheus.Histogram
	duration  prometheus.Histogram
}

var parseMetrics metricsParse

func (m *metricsParse) init() {
	m.once.Do(func() {
		m.parses = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "methodsig_parse_total",
			Help: "Signatures parsed, by backend and outcome",
		}, []string{"mode", "result"})

		m.arguments = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "methodsig_parse_arguments",
			Help:    "Arguments per successfully parsed signature",
			Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 12, 16},
		})

		m.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "methodsig_parse_seconds",
			Help:    "Duration of a single signature parse",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		})

		prometheus.MustRegister(m.parses, m.arguments, m.duration)
	})
}

// observeParse records the outcome of one Parse call.
func observeParse(mode Mode, args int, elapsed time.Duration, err error) {
	parseMetrics.init()

	result := resultOK
	if err != nil {
		result = resultMalformed
	}
	parseMetrics.parses.WithLabelValues(string(mode), result).Inc()
	parseMetrics.duration.Observe(elapsed.Seconds())
	if err == nil {
		parseMetrics.arguments.Observe(float64(args))
	}
}
