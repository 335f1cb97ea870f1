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
	"sort"
	"time"

	"github.com/google/go-cmp/cmp"
)

// ValueChange carries the old and new value of a field whose Value
// differs between two snapshots.
type ValueChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// StateChange carries the old and new FieldState of a field whose derived
// state differs between two snapshots.
type StateChange struct {
	Old FieldState `json:"old"`
	New FieldState `json:"new"`
}

// FieldChange is the change record for one field: at least one of Value or
// State is populated.
type FieldChange struct {
	Value *ValueChange `json:"value,omitempty"`
	State *StateChange `json:"state,omitempty"`
}

// ServiceChange is the per-service change record for services present in
// both snapshots.
type ServiceChange struct {
	FieldsAdded   []string               `json:"fieldsAdded,omitempty"`
	FieldsRemoved []string               `json:"fieldsRemoved,omitempty"`
	FieldsChanged map[string]FieldChange `json:"fieldsChanged,omitempty"`
}

func (c ServiceChange) empty() bool {
	return len(c.FieldsAdded) == 0 && len(c.FieldsRemoved) == 0 && len(c.FieldsChanged) == 0
}

// Diff is the difference record between two snapshots, in the order
// (old, new) the caller supplied them.
type Diff struct {
	Timestamp        time.Time                `json:"timestamp"`
	OldVersion       string                   `json:"oldVersion"`
	NewVersion       string                   `json:"newVersion"`
	ServicesAdded    []string                 `json:"servicesAdded,omitempty"`
	ServicesRemoved  []string                 `json:"servicesRemoved,omitempty"`
	ServicesModified map[string]ServiceChange `json:"servicesModified,omitempty"`
}

// Compare produces the Diff between snapshots a (old) and b (new). now is
// injected for the same reason Build takes one: Compare stays a pure
// derivation.
func Compare(a, b Snapshot, now time.Time) Diff {
	d := Diff{
		Timestamp:        now.UTC(),
		OldVersion:       a.SchemaVersion,
		NewVersion:       b.SchemaVersion,
		ServicesModified: make(map[string]ServiceChange),
	}

	d.ServicesAdded = sortedKeysNotIn(b.Services, a.Services)
	d.ServicesRemoved = sortedKeysNotIn(a.Services, b.Services)

	for _, name := range sortedServiceNames(a.Services) {
		bSvc, ok := b.Services[name]
		if !ok {
			continue
		}
		aSvc := a.Services[name]

		change := diffService(aSvc, bSvc)
		if !change.empty() {
			d.ServicesModified[name] = change
		}
	}

	return d
}

func diffService(a, b ServiceSnapshot) ServiceChange {
	change := ServiceChange{FieldsChanged: make(map[string]FieldChange)}

	change.FieldsAdded = sortedFieldKeysNotIn(b.Fields, a.Fields)
	change.FieldsRemoved = sortedFieldKeysNotIn(a.Fields, b.Fields)

	for _, name := range sortedFieldKeys(a.Fields) {
		bField, ok := b.Fields[name]
		if !ok {
			continue
		}
		aField := a.Fields[name]

		var fc FieldChange
		if !cmp.Equal(aField.Value, bField.Value) {
			fc.Value = &ValueChange{Old: aField.Value, New: bField.Value}
		}
		if aField.State != bField.State {
			fc.State = &StateChange{Old: aField.State, New: bField.State}
		}
		if fc.Value != nil || fc.State != nil {
			change.FieldsChanged[name] = fc
		}
	}

	if len(change.FieldsChanged) == 0 {
		change.FieldsChanged = nil
	}

	return change
}

func sortedKeysNotIn(m, absent map[string]ServiceSnapshot) []string {
	var keys []string
	for k := range m {
		if _, ok := absent[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func sortedFieldKeysNotIn(m, absent map[string]Field) []string {
	var keys []string
	for k := range m {
		if _, ok := absent[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func sortedServiceNames(m map[string]ServiceSnapshot) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFieldKeys(m map[string]Field) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
