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

package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leger-labs/topology/internal/model"
)

func service(name string, requires ...string) *model.Service {
	return &model.Service{Name: name, Infrastructure: model.Infrastructure{Requires: requires}}
}

func TestOrderRespectsRequires(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"web":      service("web", "database", "cache"),
			"database": service("database"),
			"cache":    service("cache"),
		},
	}
	enabled := map[string]bool{"web": true, "database": true, "cache": true}

	order, err := Order(top, enabled)
	require.NoError(t, err)
	assert.Equal(t, []string{"cache", "database", "web"}, order)
}

func TestOrderIgnoresDependenciesOutsideEnabledSet(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"web":      service("web", "database"),
			"database": service("database"),
		},
	}
	enabled := map[string]bool{"web": true, "database": false}

	order, err := Order(top, enabled)
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, order)
}

func TestOrderDetectsCycle(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"a": service("a", "b"),
			"b": service("b", "a"),
		},
	}
	enabled := map[string]bool{"a": true, "b": true}

	_, err := Order(top, enabled)
	assert.Error(t, err)
}

func TestOrderEmptyEnabledSet(t *testing.T) {
	top := &model.Topology{Services: map[string]*model.Service{"a": service("a")}}

	order, err := Order(top, map[string]bool{})
	require.NoError(t, err)
	assert.Empty(t, order)
}
