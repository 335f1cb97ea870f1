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
	"fmt"

	"github.com/gobuffalo/flect"

	"github.com/leger-labs/topology/internal/model"
)

// ReleaseSummary is the data the original implementation's doc generator
// printed as a release banner, promoted to a first-class render payload
// (SPEC_FULL §3) rather than left as stdout formatting.
type ReleaseSummary struct {
	Version           string
	ReleasedAt        string
	TemplateSha       string
	ChangelogURL      string
	Description       string
	ServiceCount      int
	// ServiceCountLabel is ServiceCount rendered with its noun correctly
	// singularized or pluralized, e.g. "1 service" / "3 services".
	ServiceCountLabel string
}

// BuildReleaseSummary builds the ReleaseSummary for topology.
func BuildReleaseSummary(topology *model.Topology) ReleaseSummary {
	count := len(topology.Services)
	noun := "service"
	if count != 1 {
		noun = flect.Pluralize(noun)
	}

	return ReleaseSummary{
		Version:           topology.Release.Version,
		ReleasedAt:        topology.Release.ReleasedAt,
		TemplateSha:       topology.Release.TemplateSha,
		ChangelogURL:      topology.Release.ChangelogURL,
		Description:       topology.Release.Description,
		ServiceCount:      count,
		ServiceCountLabel: fmt.Sprintf("%d %s", count, noun),
	}
}
