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

package enablement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leger-labs/topology/internal/model"
)

func TestComputeUnconditionalEnablement(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"web": {Name: "web", Infrastructure: model.Infrastructure{Enabled: true}},
		},
	}

	result := Compute(top)
	assert.True(t, result.Enabled["web"])
	assert.Equal(t, []string{"web"}, result.Names())
}

func TestComputeConditionalEnablement(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"litellm": {
				Name: "litellm",
				Configuration: model.Configuration{
					Properties: map[string]*model.FieldDef{
						"provider": {Default: "openai", HasDefault: true},
					},
				},
			},
			"openaiProxy": {
				Name: "openaiProxy",
				Infrastructure: model.Infrastructure{
					EnabledBy: []string{"litellm.configuration.provider == 'openai'"},
				},
			},
		},
	}

	result := Compute(top)
	assert.True(t, result.Enabled["openaiProxy"])
	assert.False(t, result.Enabled["litellm"])
}

func TestComputeMalformedExpressionSurfacesDiagnostic(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"web": {Name: "web", Infrastructure: model.Infrastructure{EnabledBy: []string{"garbage"}}},
		},
	}

	result := Compute(top)
	assert.False(t, result.Enabled["web"])
	assert.Len(t, result.Diags, 1)
}

func TestNamesSortedAscending(t *testing.T) {
	r := Result{Enabled: map[string]bool{"web": true, "cache": true, "database": false}}
	assert.Equal(t, []string{"cache", "web"}, r.Names())
}
