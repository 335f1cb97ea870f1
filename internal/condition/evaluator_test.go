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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leger-labs/topology/internal/model"
)

func newTestTopology() *model.Topology {
	return &model.Topology{
		Services: map[string]*model.Service{
			"litellm": {
				Name: "litellm",
				Configuration: model.Configuration{
					Properties: map[string]*model.FieldDef{
						"provider": {Type: "string", Default: "openai", HasDefault: true},
						"noDefault": {Type: "string"},
					},
				},
			},
		},
	}
}

func TestEvalEqualsTrue(t *testing.T) {
	e := New(newTestTopology())

	ok, d := e.Eval("web", "litellm.configuration.provider == 'openai'")
	require.Nil(t, d)
	assert.True(t, ok)
}

func TestEvalEqualsFalse(t *testing.T) {
	e := New(newTestTopology())

	ok, d := e.Eval("web", "litellm.configuration.provider == 'anthropic'")
	require.Nil(t, d)
	assert.False(t, ok)
}

func TestEvalNotEquals(t *testing.T) {
	e := New(newTestTopology())

	ok, d := e.Eval("web", "litellm.configuration.provider != 'anthropic'")
	require.Nil(t, d)
	assert.True(t, ok)
}

func TestEvalMalformedExpressionWarns(t *testing.T) {
	e := New(newTestTopology())

	ok, d := e.Eval("web", "not an expression")
	assert.False(t, ok)
	require.NotNil(t, d)
	assert.Equal(t, "web", d.Context)
}

func TestEvalMissingServiceIsFalseNotError(t *testing.T) {
	e := New(newTestTopology())

	ok, d := e.Eval("web", "nonexistent.configuration.provider == 'openai'")
	assert.False(t, ok)
	assert.Nil(t, d)
}

func TestEvalMissingFieldIsFalseNotError(t *testing.T) {
	e := New(newTestTopology())

	ok, d := e.Eval("web", "litellm.configuration.missingField == 'openai'")
	assert.False(t, ok)
	assert.Nil(t, d)
}

func TestEvalFieldWithoutDefaultIsFalse(t *testing.T) {
	e := New(newTestTopology())

	ok, d := e.Eval("web", "litellm.configuration.noDefault == 'anything'")
	assert.False(t, ok)
	assert.Nil(t, d)
}

func TestEvalAnyLogicalOr(t *testing.T) {
	e := New(newTestTopology())

	t.Run("true as soon as any expression matches", func(t *testing.T) {
		ok, diags := e.EvalAny("web", []string{
			"litellm.configuration.provider == 'anthropic'",
			"litellm.configuration.provider == 'openai'",
		})
		assert.True(t, ok)
		assert.Empty(t, diags)
	})

	t.Run("collects diagnostics even when an earlier expression is true", func(t *testing.T) {
		ok, diags := e.EvalAny("web", []string{
			"litellm.configuration.provider == 'openai'",
			"malformed",
		})
		assert.True(t, ok)
		require.Len(t, diags, 1)
	})

	t.Run("empty list is false", func(t *testing.T) {
		ok, diags := e.EvalAny("web", nil)
		assert.False(t, ok)
		assert.Empty(t, diags)
	})
}
