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

package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leger-labs/topology/internal/model"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestBuildOmitsServicesWithoutFields(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"noFields": {Name: "noFields"},
		},
	}

	snap := Build(top, fixedNow)
	assert.Empty(t, snap.Services)
}

func TestBuildDerivesFieldStates(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"web": {
				Name: "web",
				Configuration: model.Configuration{
					Required: []string{"apiKey"},
					Properties: map[string]*model.FieldDef{
						"apiKey":   {DefaultHandling: model.DefaultHandlingUnset},
						"logLevel": {DefaultHandling: model.DefaultHandlingPreloaded, Default: "info"},
						"nickname": {DefaultHandling: model.DefaultHandlingUnset},
						"port":     {DefaultHandling: model.DefaultHandlingUserConfigured, Default: 8080},
					},
				},
			},
		},
	}

	snap := Build(top, fixedNow)
	webSnap := snap.Services["web"]

	assert.Equal(t, FieldStateUnset, webSnap.Fields["apiKey"].State)
	assert.Equal(t, FieldStateDefault, webSnap.Fields["logLevel"].State)
	assert.Equal(t, FieldStateOptionalUnset, webSnap.Fields["nickname"].State)
	assert.Equal(t, FieldStateConfigured, webSnap.Fields["port"].State)
}

func TestBuildSummaryCounts(t *testing.T) {
	top := &model.Topology{
		Services: map[string]*model.Service{
			"web": {
				Name: "web",
				Configuration: model.Configuration{
					Required: []string{"apiKey"},
					Properties: map[string]*model.FieldDef{
						"apiKey":   {DefaultHandling: model.DefaultHandlingUnset},
						"logLevel": {DefaultHandling: model.DefaultHandlingPreloaded, Default: "info"},
						"port":     {DefaultHandling: model.DefaultHandlingUserConfigured, Default: 8080},
					},
				},
			},
		},
	}

	snap := Build(top, fixedNow)
	summary := snap.Services["web"].Summary
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.UnsetRequired)
	assert.Equal(t, 1, summary.UserConfigured)
	assert.Equal(t, 1, summary.UsingDefaults)
}

func TestBuildTimestampIsUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	local := time.Date(2026, 3, 1, 8, 0, 0, 0, loc)

	top := &model.Topology{Services: map[string]*model.Service{}}
	snap := Build(top, local)
	assert.Equal(t, time.UTC, snap.Timestamp.Location())
}
