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

// ProviderRow is one option row of a provider table.
type ProviderRow struct {
	Option         string
	EnabledService string
	RequiredFields []string
}

// ProviderField is the provider table for one FieldDef carrying provider
// metadata.
type ProviderField struct {
	ServiceName string
	FieldName   string
	Rows        []ProviderRow
}

// BuildProviderTables builds one ProviderField entry per FieldDef in the
// topology that carries providerFields and/or affectsServices metadata,
// in service-name/field-name lexicographic order.
func BuildProviderTables(topology *model.Topology) []ProviderField {
	var tables []ProviderField

	for _, svcName := range topology.SortedServiceNames() {
		svc := topology.Services[svcName]
		fieldNames := make([]string, 0, len(svc.Configuration.Properties))
		for name := range svc.Configuration.Properties {
			fieldNames = append(fieldNames, name)
		}
		sort.Strings(fieldNames)

		for _, fieldName := range fieldNames {
			field := svc.Configuration.Properties[fieldName]
			if len(field.ProviderFields) == 0 && len(field.AffectsServices) == 0 {
				continue
			}
			tables = append(tables, buildProviderField(svcName, fieldName, field))
		}
	}

	return tables
}

func buildProviderField(svcName, fieldName string, field *model.FieldDef) ProviderField {
	options := make(map[string]struct{})
	for option := range field.ProviderFields {
		options[option] = struct{}{}
	}
	for option := range field.AffectsServices {
		options[option] = struct{}{}
	}

	optionNames := make([]string, 0, len(options))
	for option := range options {
		optionNames = append(optionNames, option)
	}
	sort.Strings(optionNames)

	pf := ProviderField{ServiceName: svcName, FieldName: fieldName}
	for _, option := range optionNames {
		required := append([]string{}, field.ProviderFields[option]...)
		sort.Strings(required)
		pf.Rows = append(pf.Rows, ProviderRow{
			Option:         option,
			EnabledService: field.AffectsServices[option],
			RequiredFields: required,
		})
	}
	return pf
}
