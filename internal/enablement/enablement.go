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

// Package enablement computes the set of enabled services from
// unconditional flags and evaluated enablement expressions (§4.5).
package enablement

import (
	"sort"

	"github.com/leger-labs/topology/internal/condition"
	"github.com/leger-labs/topology/internal/diag"
	"github.com/leger-labs/topology/internal/model"
)

// Result is the outcome of computing the enabled set: the set itself plus
// any diagnostics surfaced while evaluating enablement expressions.
type Result struct {
	Enabled map[string]bool
	Diags   []diag.Diagnostic
}

// Compute returns the set E of enabled services: a service is in E iff its
// infrastructure.enabled flag is true, or any of its enabledBy expressions
// evaluates to true (logical OR).
func Compute(topology *model.Topology) Result {
	evaluator := condition.New(topology)
	enabled := make(map[string]bool, len(topology.Services))
	var diags []diag.Diagnostic

	for _, name := range topology.SortedServiceNames() {
		svc := topology.Services[name]
		if svc.Infrastructure.Enabled {
			enabled[name] = true
			continue
		}

		ok, exprDiags := evaluator.EvalAny(name, svc.Infrastructure.EnabledBy)
		diags = append(diags, exprDiags...)
		enabled[name] = ok
	}

	return Result{Enabled: enabled, Diags: diags}
}

// Names returns the sorted list of enabled service names.
func (r Result) Names() []string {
	names := make([]string, 0, len(r.Enabled))
	for name, ok := range r.Enabled {
		if ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
