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

package render

import (
	"sort"

	"github.com/leger-labs/topology/internal/model"
)

// NodeCategory is the styling category a graph node renders with.
type NodeCategory string

const (
	NodeCategoryCore        NodeCategory = "core"
	NodeCategoryConditional NodeCategory = "conditional"
	NodeCategorySupport     NodeCategory = "support"
)

// GraphNode is one node of the rendered dependency graph.
type GraphNode struct {
	ID       string
	Category NodeCategory
}

// GraphEdge is a directed edge from dependency to dependent.
type GraphEdge struct {
	From string
	To   string
}

// Graph is the render-data payload for a dependency visualization.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

// BuildGraph builds the full graph (every service, not just the enabled
// subset) with each node's styling category: core for unconditionally
// enabled services, conditional for services with a non-empty enabledBy,
// support otherwise.
func BuildGraph(topology *model.Topology) Graph {
	var g Graph

	for _, name := range topology.SortedServiceNames() {
		svc := topology.Services[name]
		g.Nodes = append(g.Nodes, GraphNode{ID: name, Category: nodeCategory(svc)})

		requires := append([]string{}, svc.Infrastructure.Requires...)
		sort.Strings(requires)
		for _, dep := range requires {
			g.Edges = append(g.Edges, GraphEdge{From: dep, To: name})
		}
	}

	return g
}

func nodeCategory(svc *model.Service) NodeCategory {
	switch {
	case svc.Infrastructure.Enabled:
		return NodeCategoryCore
	case len(svc.Infrastructure.EnabledBy) > 0:
		return NodeCategoryConditional
	default:
		return NodeCategorySupport
	}
}
