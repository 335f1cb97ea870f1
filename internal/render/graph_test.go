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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leger-labs/topology/internal/model"
)

func TestBuildGraphCategorizesNodes(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"db":    {Name: "db", Infrastructure: model.Infrastructure{Enabled: true}},
			"proxy": {Name: "proxy", Infrastructure: model.Infrastructure{EnabledBy: []string{"db.configuration.x == true"}}},
			"tool":  {Name: "tool", Infrastructure: model.Infrastructure{Requires: []string{"db"}}},
		},
	}

	g := BuildGraph(top)
	categories := make(map[string]NodeCategory)
	for _, n := range g.Nodes {
		categories[n.ID] = n.Category
	}

	assert.Equal(t, NodeCategoryCore, categories["db"])
	assert.Equal(t, NodeCategoryConditional, categories["proxy"])
	assert.Equal(t, NodeCategorySupport, categories["tool"])
}

func TestBuildGraphIncludesEveryService(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"a": {Name: "a"},
			"b": {Name: "b", Infrastructure: model.Infrastructure{Requires: []string{"a"}}},
		},
	}

	g := BuildGraph(top)
	assert.Len(t, g.Nodes, 2)
	assert.Equal(t, []GraphEdge{{From: "a", To: "b"}}, g.Edges)
}
