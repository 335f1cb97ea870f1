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

package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddNodeIsIdempotent(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("a")
	assert.Equal(t, []string{"a"}, g.Nodes())
}

func TestAddEdgeRegistersBothEnds(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	assert.Equal(t, []string{"a", "b"}, g.Nodes())
	assert.Equal(t, []string{"b"}, g.Successors("a"))
}

func TestTopologicalSortLexicographicTiebreak(t *testing.T) {
	g := New()
	g.AddNode("c")
	g.AddNode("b")
	g.AddNode("a")

	order, ok := g.TopologicalSort()
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestTopologicalSortRespectsEdges(t *testing.T) {
	g := New()
	g.AddEdge("database", "web")
	g.AddEdge("cache", "web")
	g.AddNode("standalone")

	order, ok := g.TopologicalSort()
	assert.True(t, ok)
	assert.Equal(t, []string{"cache", "database", "standalone", "web"}, order)

	posDatabase := indexOf(order, "database")
	posCache := indexOf(order, "cache")
	posWeb := indexOf(order, "web")
	assert.Less(t, posDatabase, posWeb)
	assert.Less(t, posCache, posWeb)
}

func TestTopologicalSortDetectsCycle(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	order, ok := g.TopologicalSort()
	assert.False(t, ok)
	assert.Less(t, len(order), 2)
}

func TestHasCycleFalseOnDAG(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	hasCycle, cycle := g.HasCycle()
	assert.False(t, hasCycle)
	assert.Nil(t, cycle)
}

func TestHasCycleReturnsClosedWalk(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	hasCycle, cycle := g.HasCycle()
	assert.True(t, hasCycle)
	assert.NotEmpty(t, cycle)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
}

func TestHasCycleSelfLoop(t *testing.T) {
	g := New()
	g.AddEdge("a", "a")

	hasCycle, cycle := g.HasCycle()
	assert.True(t, hasCycle)
	assert.Equal(t, []string{"a", "a"}, cycle)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
