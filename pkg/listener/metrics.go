// Copyright 2023 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package listener

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	tlsUpgrades = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xmppc",
			Subsystem: "listener",
			Name:      "tls_upgrades_total",
			Help:      "The total number of transport encryption activation attempts.",
		},
		[]string{"version", "success"},
	)
	authentications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xmppc",
			Subsystem: "listener",
			Name:      "authentications_total",
			Help:      "The total number of SASL authentications.",
		},
		[]string{"mechanism", "success"},
	)
)

func init() {
	prometheus.MustRegister(tlsUpgrades)
	prometheus.MustRegister(authentications)
}

func reportTLSUpgrade(version uint16, success bool) {
	tlsUpgrades.With(prometheus.Labels{
		"version": tlsVersionName(version),
		"success": strconv.FormatBool(success),
	}).Inc()
}

func reportAuthentication(mechanism string, success bool) {
	authentications.With(prometheus.Labels{
		"mechanism": mechanism,
		"success":   strconv.FormatBool(success),
	}).Inc()
}
