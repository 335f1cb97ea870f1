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

// Package state implements the state engine (§4.6): deriving a per-field
// snapshot from a topology, and diffing two snapshots.
package state

import (
	"time"

	"github.com/leger-labs/topology/internal/model"
)

// FieldState is the derived state of one configuration field.
type FieldState string

const (
	FieldStateConfigured    FieldState = "configured"
	FieldStateUnset         FieldState = "unset"
	FieldStateOptionalUnset FieldState = "optional_unset"
	FieldStateDefault       FieldState = "default"
)

// Field is the per-field entry of a service's snapshot.
type Field struct {
	State        FieldState `json:"state"`
	Value        any        `json:"value"`
	Required     bool       `json:"required"`
	Type         string     `json:"type"`
	Sensitive    bool       `json:"sensitive"`
	Visibility   string     `json:"visibility"`
	TemplatePath string     `json:"templatePath,omitempty"`
	SecretRef    string     `json:"secretRef,omitempty"`
}

// Summary is the per-service rollup of field states.
type Summary struct {
	Total          int `json:"total"`
	UsingDefaults  int `json:"usingDefaults"`
	UserConfigured int `json:"userConfigured"`
	UnsetRequired  int `json:"unsetRequired"`
}

// ServiceSnapshot is one service's field map plus its summary.
type ServiceSnapshot struct {
	Fields  map[string]Field `json:"fields"`
	Summary Summary          `json:"summary"`
}

// Snapshot is a timestamped projection of a topology's current per-field
// state. Services with no configurable fields are omitted.
type Snapshot struct {
	Timestamp     time.Time                  `json:"timestamp"`
	SchemaVersion string                     `json:"schemaVersion"`
	Services      map[string]ServiceSnapshot `json:"services"`
}

// Build derives a Snapshot from topology. now is injected so callers
// control the timestamp (keeps this function a pure derivation, per §9's
// "do not cache snapshots inside the Model" mutability note, and testable
// without wall-clock dependence).
func Build(topology *model.Topology, now time.Time) Snapshot {
	services := make(map[string]ServiceSnapshot)

	for _, name := range topology.SortedServiceNames() {
		svc := topology.Services[name]
		if len(svc.Configuration.Properties) == 0 {
			continue
		}

		fields := make(map[string]Field, len(svc.Configuration.Properties))
		summary := Summary{}

		for fieldName, field := range svc.Configuration.Properties {
			required := svc.Configuration.IsRequired(fieldName)
			fs := deriveFieldState(field, required)

			fields[fieldName] = Field{
				State:        fs,
				Value:        field.Default,
				Required:     required,
				Type:         field.Type,
				Sensitive:    field.Sensitive,
				Visibility:   string(field.Visibility),
				TemplatePath: field.TemplatePath,
				SecretRef:    field.SecretRef,
			}

			summary.Total++
			switch fs {
			case FieldStateConfigured:
				summary.UserConfigured++
			case FieldStateUnset:
				summary.UnsetRequired++
			case FieldStateDefault:
				summary.UsingDefaults++
			}
		}

		services[name] = ServiceSnapshot{Fields: fields, Summary: summary}
	}

	return Snapshot{
		Timestamp:     now.UTC(),
		SchemaVersion: topology.SchemaVersion,
		Services:      services,
	}
}

func deriveFieldState(field *model.FieldDef, required bool) FieldState {
	switch field.DefaultHandling {
	case model.DefaultHandlingUserConfigured:
		return FieldStateConfigured
	case model.DefaultHandlingUnset:
		if required {
			return FieldStateUnset
		}
		return FieldStateOptionalUnset
	default:
		return FieldStateDefault
	}
}
