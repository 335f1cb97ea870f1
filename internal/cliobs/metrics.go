// Copyright Amazon.com Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//	http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package cliobs holds the CLI's own Prometheus counters — command
// invocation counts and their outcomes. These are registered against a
// local registry and exposed by `topology serve-metrics`, never pushed
// anywhere.
package cliobs

import "github.com/prometheus/client_golang/prometheus"

const (
	// MetricCommandTotal is the total number of topology CLI invocations.
	MetricCommandTotal = "topology_command_total"
	// MetricValidationErrors is the total number of error-severity
	// diagnostics emitted by `topology validate`.
	MetricValidationErrors = "topology_validation_errors_total"
)

var (
	commandTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricCommandTotal,
			Help: "Total number of topology CLI command invocations by command and result",
		},
		[]string{"command", "result"},
	)

	validationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricValidationErrors,
			Help: "Total number of error-severity diagnostics emitted by validate, by command",
		},
		[]string{"command"},
	)
)

// Registry is the CLI's private metrics registry. It is never the global
// DefaultRegisterer, so running the CLI never pollutes another process's
// default registry when imported as a library.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(commandTotal, validationErrors)
}

// RecordCommand increments the invocation counter for command with the
// given result ("ok", "invalid" or "error").
func RecordCommand(command, result string) {
	commandTotal.WithLabelValues(command, result).Inc()
}

// RecordValidationErrors adds count to the validation error counter for
// command.
func RecordValidationErrors(command string, count int) {
	if count <= 0 {
		return
	}
	validationErrors.WithLabelValues(command).Add(float64(count))
}
