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

package eventbus

import (
	"strconv"

	"github.com/jackal-xmpp/xmppc/pkg/event"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	dispatchedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xmppc",
			Subsystem: "eventbus",
			Name:      "dispatched_events_total",
			Help:      "The total number of dispatched events.",
		},
		[]string{"direction", "name", "kind", "failed"},
	)
	dispatchDurationBucket = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "xmppc",
			Subsystem: "eventbus",
			Name:      "dispatch_duration_bucket",
			Help:      "Bucketed histogram of event dispatch duration.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
		},
		[]string{"direction"},
	)
)

func init() {
	prometheus.MustRegister(dispatchedEvents)
	prometheus.MustRegister(dispatchDurationBucket)
}

// unhandledName labels events dispatched with no attached handlers.
const unhandledName = "unhandled"

func reportDispatchedEvent(dir Direction, evt *event.Event, handled bool, err error, durationInSecs float64) {
	name := unhandledName
	if handled {
		name = evt.Name().String()
	}
	dispatchedEvents.With(prometheus.Labels{
		"direction": dir.String(),
		"name":      name,
		"kind":      evt.Kind().String(),
		"failed":    strconv.FormatBool(err != nil),
	}).Inc()
	dispatchDurationBucket.With(prometheus.Labels{
		"direction": dir.String(),
	}).Observe(durationInSecs)
}
