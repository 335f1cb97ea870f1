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

// Package resolve builds the service dependency graph for a given enabled
// set and produces a deterministic topological order (§4.3).
package resolve

import (
	"fmt"

	"github.com/leger-labs/topology/internal/dag"
	"github.com/leger-labs/topology/internal/model"
)

// Order computes the topological order of the services in enabled,
// restricted to the topology's `requires` graph. Dependencies outside
// enabled are silently ignored — their absence from the enabled set is an
// orthogonal concern the validator checks separately.
//
// The returned order is deterministic: ties are broken by ascending
// lexicographic service name, per §4.3's public ordering contract.
func Order(topology *model.Topology, enabled map[string]bool) ([]string, error) {
	g := dag.New()
	for name := range enabled {
		if enabled[name] {
			g.AddNode(name)
		}
	}

	for name := range enabled {
		if !enabled[name] {
			continue
		}
		svc := topology.Services[name]
		if svc == nil {
			continue
		}
		for _, dep := range svc.Infrastructure.Requires {
			if enabled[dep] {
				g.AddEdge(dep, name)
			}
		}
	}

	order, ok := g.TopologicalSort()
	if !ok {
		_, cycle := g.HasCycle()
		return nil, fmt.Errorf("dependency cycle among enabled services: %v", cycle)
	}
	return order, nil
}
