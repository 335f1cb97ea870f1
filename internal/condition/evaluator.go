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

package condition

import (
	"github.com/leger-labs/topology/internal/diag"
	"github.com/leger-labs/topology/internal/model"
)

// Evaluator evaluates enablement expressions against a topology's current
// field defaults. The "current value" of a field, at this layer, is its
// default — the topology is treated as the as-configured state.
type Evaluator struct {
	topology *model.Topology
}

// New returns an Evaluator bound to topology.
func New(topology *model.Topology) *Evaluator {
	return &Evaluator{topology: topology}
}

// Eval evaluates a single expression string. A malformed expression or a
// reference to a missing service/field evaluates to false; it is never an
// error at this layer (the validator reports reference errors separately).
// A non-nil diagnostic is returned alongside false whenever evaluation
// fell back on that default for a reason worth surfacing.
func (e *Evaluator) Eval(context, raw string) (bool, *diag.Diagnostic) {
	expr, ok := Parse(raw)
	if !ok {
		d := diag.Warningf(context, "malformed enablement expression %q", raw)
		return false, &d
	}

	svc, ok := e.topology.Services[expr.Service]
	if !ok {
		return false, nil
	}
	field, ok := svc.Configuration.Properties[expr.Field]
	if !ok {
		return false, nil
	}
	if !field.HasDefault {
		return false, nil
	}

	equal := Equal(field.Default, expr.Literal)
	switch expr.Op {
	case OpEquals:
		return equal, nil
	case OpNotEquals:
		return !equal, nil
	default:
		return false, nil
	}
}

// EvalAny evaluates a list of expressions with logical OR: true as soon as
// any expression evaluates to true. Diagnostics from every expression are
// returned regardless of the short-circuit outcome's truth value, since a
// malformed expression is worth surfacing even if some other expression in
// the list was true.
func (e *Evaluator) EvalAny(context string, expressions []string) (bool, []diag.Diagnostic) {
	var diags []diag.Diagnostic
	result := false
	for _, expr := range expressions {
		ok, d := e.Eval(context, expr)
		if d != nil {
			diags = append(diags, *d)
		}
		if ok {
			result = true
		}
	}
	return result, diags
}
