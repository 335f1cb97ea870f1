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

// Package validate runs the field-, service-, and topology-level checks of
// §4.4 over a *model.Topology and emits diagnostics with stable ordering.
// Validation never short-circuits on the first error: every pass runs to
// completion and every diagnostic is collected.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leger-labs/topology/internal/condition"
	"github.com/leger-labs/topology/internal/dag"
	"github.com/leger-labs/topology/internal/diag"
	"github.com/leger-labs/topology/internal/errkind"
	"github.com/leger-labs/topology/internal/fieldpath"
	"github.com/leger-labs/topology/internal/model"
)

// Summary is a first-class, testable projection of the counts the original
// CLI printed after a successful validation run.
type Summary struct {
	Services               int
	EnabledUnconditionally int
	EnabledConditionally   int
	PublishedPorts         int
}

// Result is the aggregate of a validation run: every diagnostic produced
// across all three passes, plus the derived summary.
type Result struct {
	Diagnostics []diag.Diagnostic
	Summary     Summary
}

// Valid reports whether the result contains zero errors (warnings never
// affect validity).
func (r Result) Valid() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diag.SeverityError {
			return false
		}
	}
	return true
}

// Errors returns only the error-severity diagnostics.
func (r Result) Errors() []diag.Diagnostic {
	return r.filter(diag.SeverityError)
}

// Warnings returns only the warning-severity diagnostics.
func (r Result) Warnings() []diag.Diagnostic {
	return r.filter(diag.SeverityWarning)
}

func (r Result) filter(sev diag.Severity) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Validate runs all three validation levels over topology and returns the
// aggregate Result. Diagnostics are emitted in a fixed order: field pass in
// service-name/field-name lexicographic order, service pass in
// service-name order, topology pass in the order listed below.
func Validate(topology *model.Topology) Result {
	v := &validator{topology: topology}
	v.fieldPass()
	v.servicePass()
	v.topologyPass()

	return Result{
		Diagnostics: v.diags,
		Summary:     v.summary(),
	}
}

type validator struct {
	topology *model.Topology
	diags    []diag.Diagnostic
}

func (v *validator) add(d diag.Diagnostic) {
	v.diags = append(v.diags, d)
}

// ---------------------------------------------------------------------
// Field pass (invariant 10, warnings only)
// ---------------------------------------------------------------------

func (v *validator) fieldPass() {
	for _, svcName := range v.topology.SortedServiceNames() {
		svc := v.topology.Services[svcName]
		for _, fieldName := range sortedFieldNames(svc.Configuration.Properties) {
			field := svc.Configuration.Properties[fieldName]
			context := svcName + "." + fieldName

			if field.Sensitive && field.SecretRef == "" {
				v.add(diag.Warning(context, "sensitive field lacks a secretRef"))
			}
			if (field.Visibility == model.VisibilityExposed || field.Visibility == model.VisibilityAdvanced) && field.EnvVar == "" {
				v.add(diag.Warning(context, "exposed/advanced field lacks an envVar"))
			}
		}
	}
}

// ---------------------------------------------------------------------
// Service pass (invariants 2, 3, 10's healthcheck clause)
// ---------------------------------------------------------------------

func (v *validator) servicePass() {
	for _, svcName := range v.topology.SortedServiceNames() {
		svc := v.topology.Services[svcName]
		v.validateRequires(svcName, svc)
		v.validateHealthcheck(svcName, svc)
	}

	v.validatePortUniqueness()
	v.validateContainerNameUniqueness()
}

func (v *validator) validateRequires(svcName string, svc *model.Service) {
	for _, dep := range svc.Infrastructure.Requires {
		if _, ok := v.topology.Services[dep]; !ok {
			msg := fmt.Sprintf("requires non-existent service %q", dep)
			err := &errkind.ReferenceError{Context: svcName, Message: msg}
			v.add(diag.Errorf(svcName, "%s", msg).WithErr(err))
		}
	}
}

func (v *validator) validateHealthcheck(svcName string, svc *model.Service) {
	enabled := svc.Infrastructure.Enabled || len(svc.Infrastructure.EnabledBy) > 0
	if enabled && svc.Infrastructure.Healthcheck == nil {
		v.add(diag.Warning(svcName, "enabled service lacks a healthcheck"))
	}
}

func (v *validator) validatePortUniqueness() {
	byPort := make(map[int][]string)
	for _, svcName := range v.topology.SortedServiceNames() {
		svc := v.topology.Services[svcName]
		if svc.Infrastructure.PublishedPort != nil {
			port := *svc.Infrastructure.PublishedPort
			byPort[port] = append(byPort[port], svcName)
		}
	}
	for _, port := range sortedIntKeys(byPort) {
		services := byPort[port]
		if len(services) > 1 {
			msg := fmt.Sprintf("published port %d is used by multiple services: %s", port, strings.Join(services, ", "))
			err := &errkind.UniquenessError{Message: msg, Services: services}
			v.add(diag.Errorf("", "%s", msg).WithErr(err))
		}
	}
}

func (v *validator) validateContainerNameUniqueness() {
	byName := make(map[string][]string)
	for _, svcName := range v.topology.SortedServiceNames() {
		svc := v.topology.Services[svcName]
		if svc.Infrastructure.ContainerName != "" {
			byName[svc.Infrastructure.ContainerName] = append(byName[svc.Infrastructure.ContainerName], svcName)
		}
	}
	for _, name := range sortedStringKeys(byName) {
		services := byName[name]
		if len(services) > 1 {
			msg := fmt.Sprintf("container name %q is used by multiple services: %s", name, strings.Join(services, ", "))
			err := &errkind.UniquenessError{Message: msg, Services: services}
			v.add(diag.Errorf("", "%s", msg).WithErr(err))
		}
	}
}

// ---------------------------------------------------------------------
// Topology pass (invariants 4-9)
// ---------------------------------------------------------------------

func (v *validator) topologyPass() {
	v.validateNoCycles()
	v.validateEnablementExpressions()
	v.validateFieldReferences()
	v.validateSecretReferences()
	v.validateProviderConsistency()
}

func (v *validator) validateNoCycles() {
	g := dag.New()
	for _, name := range v.topology.SortedServiceNames() {
		g.AddNode(name)
	}
	for _, name := range v.topology.SortedServiceNames() {
		svc := v.topology.Services[name]
		for _, dep := range svc.Infrastructure.Requires {
			if _, ok := v.topology.Services[dep]; ok {
				g.AddEdge(dep, name)
			}
		}
	}

	if hasCycle, cycle := g.HasCycle(); hasCycle {
		// The graph's edges run from dependency to dependent; reverse the
		// closed walk so it reads in `requires` order (a -> b: a requires b).
		for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
			cycle[i], cycle[j] = cycle[j], cycle[i]
		}
		err := &errkind.CycleError{Path: cycle}
		v.add(diag.Errorf("", "circular dependency detected: %s", strings.Join(cycle, " -> ")).WithErr(err))
	}
}

func (v *validator) validateEnablementExpressions() {
	for _, svcName := range v.topology.SortedServiceNames() {
		svc := v.topology.Services[svcName]
		for _, raw := range svc.Infrastructure.EnabledBy {
			v.validateExpression(svcName, raw)
		}
	}
}

func (v *validator) validateExpression(svcName, raw string) {
	expr, ok := condition.Parse(raw)
	if !ok {
		err := &errkind.ExpressionError{Context: svcName, Expression: raw}
		v.add(diag.Errorf(svcName, "invalid expression format %q", raw).WithErr(err))
		return
	}

	refSvc, ok := v.topology.Services[expr.Service]
	if !ok {
		msg := fmt.Sprintf("expression references non-existent service %q", expr.Service)
		err := &errkind.ReferenceError{Context: svcName, Message: msg}
		v.add(diag.Errorf(svcName, "%s", msg).WithErr(err))
		return
	}

	if _, ok := refSvc.Configuration.Properties[expr.Field]; !ok {
		msg := fmt.Sprintf("expression references non-existent field %q.%q", expr.Service, expr.Field)
		err := &errkind.ReferenceError{Context: svcName, Message: msg}
		v.add(diag.Errorf(svcName, "%s", msg).WithErr(err))
	}
}

func (v *validator) validateFieldReferences() {
	for _, svcName := range v.topology.SortedServiceNames() {
		svc := v.topology.Services[svcName]
		for _, fieldName := range sortedFieldNames(svc.Configuration.Properties) {
			field := svc.Configuration.Properties[fieldName]
			if field.RequiresField == "" {
				continue
			}
			v.validateFieldReference(svcName, fieldName, field.RequiresField)
		}
	}
}

func (v *validator) validateFieldReference(svcName, fieldName, reference string) {
	context := svcName + "." + fieldName
	segments, parseErr := fieldpath.Names(reference)
	if parseErr != nil || len(segments) < 2 {
		msg := fmt.Sprintf("invalid reference format %q", reference)
		refErr := &errkind.ReferenceError{Context: context, Message: msg}
		v.add(diag.Errorf(context, "%s", msg).WithErr(refErr))
		return
	}

	refService := segments[0]
	refSvc, ok := v.topology.Services[refService]
	if !ok {
		msg := fmt.Sprintf("references non-existent service %q", refService)
		refErr := &errkind.ReferenceError{Context: context, Message: msg}
		v.add(diag.Errorf(context, "%s", msg).WithErr(refErr))
		return
	}

	if ok := resolvesStatically(refSvc, segments[1:]); !ok {
		v.add(diag.Warning(context, "reference "+reference+" could not be statically type-checked"))
	}
}

// resolvesStatically reports whether a requiresField path's remaining
// segments can be resolved against the known shape of a Service
// (infrastructure.* or configuration.<field>). Anything else is
// accepted but flagged as untyped (invariant 6: W on failure).
func resolvesStatically(svc *model.Service, segments []string) bool {
	if len(segments) == 0 {
		return false
	}
	switch segments[0] {
	case "infrastructure":
		return len(segments) >= 2
	case "configuration":
		if len(segments) < 2 {
			return false
		}
		_, ok := svc.Configuration.Properties[segments[1]]
		return ok
	default:
		return false
	}
}

func (v *validator) validateSecretReferences() {
	for _, svcName := range v.topology.SortedServiceNames() {
		svc := v.topology.Services[svcName]
		for _, fieldName := range sortedFieldNames(svc.Configuration.Properties) {
			field := svc.Configuration.Properties[fieldName]
			if field.SecretRef == "" {
				continue
			}
			v.validateSecretReference(svcName, fieldName, field.SecretRef)
		}
	}
}

func (v *validator) validateSecretReference(svcName, fieldName, reference string) {
	context := svcName + "." + fieldName
	segments, parseErr := fieldpath.Names(reference)
	if parseErr != nil || len(segments) == 0 || segments[0] != "secrets" {
		msg := fmt.Sprintf("secret reference must start with 'secrets.': %q", reference)
		refErr := &errkind.ReferenceError{Context: context, Message: msg}
		v.add(diag.Errorf(context, "%s", msg).WithErr(refErr))
		return
	}

	var obj any = v.topology.Secrets
	for _, seg := range segments[1:] {
		m, ok := obj.(map[string]any)
		if !ok {
			msg := fmt.Sprintf("secret %q does not exist", reference)
			refErr := &errkind.ReferenceError{Context: context, Message: msg}
			v.add(diag.Errorf(context, "%s", msg).WithErr(refErr))
			return
		}
		next, ok := m[seg]
		if !ok {
			msg := fmt.Sprintf("secret %q does not exist", reference)
			refErr := &errkind.ReferenceError{Context: context, Message: msg}
			v.add(diag.Errorf(context, "%s", msg).WithErr(refErr))
			return
		}
		obj = next
	}
}

func (v *validator) validateProviderConsistency() {
	for _, svcName := range v.topology.SortedServiceNames() {
		svc := v.topology.Services[svcName]
		for _, fieldName := range sortedFieldNames(svc.Configuration.Properties) {
			field := svc.Configuration.Properties[fieldName]
			context := svcName + "." + fieldName

			for _, provider := range sortedStringKeys(field.ProviderFields) {
				for _, required := range field.ProviderFields[provider] {
					if _, ok := svc.Configuration.Properties[required]; !ok {
						msg := fmt.Sprintf("provider %q requires non-existent field %q", provider, required)
						err := &errkind.ProviderConsistencyError{Context: context, Message: msg}
						v.add(diag.Errorf(context, "%s", msg).WithErr(err))
					}
				}
			}

			for _, enabled := range field.EnablesServices {
				if _, ok := v.topology.Services[enabled]; !ok {
					msg := fmt.Sprintf("enables non-existent service %q", enabled)
					err := &errkind.ProviderConsistencyError{Context: context, Message: msg}
					v.add(diag.Errorf(context, "%s", msg).WithErr(err))
				}
			}

			for _, provider := range sortedStringKeysFromMap(field.AffectsServices) {
				affected := field.AffectsServices[provider]
				if affected == "" {
					continue
				}
				if _, ok := v.topology.Services[affected]; !ok {
					msg := fmt.Sprintf("affects non-existent service %q", affected)
					err := &errkind.ProviderConsistencyError{Context: context, Message: msg}
					v.add(diag.Errorf(context, "%s", msg).WithErr(err))
				}
			}
		}
	}
}

// ---------------------------------------------------------------------
// Summary
// ---------------------------------------------------------------------

func (v *validator) summary() Summary {
	s := Summary{Services: len(v.topology.Services)}
	for _, svc := range v.topology.Services {
		if svc.Infrastructure.Enabled {
			s.EnabledUnconditionally++
		}
		if len(svc.Infrastructure.EnabledBy) > 0 {
			s.EnabledConditionally++
		}
		if svc.Infrastructure.PublishedPort != nil {
			s.PublishedPorts++
		}
	}
	return s
}

// ---------------------------------------------------------------------
// Deterministic-iteration helpers
// ---------------------------------------------------------------------

func sortedFieldNames(properties map[string]*model.FieldDef) []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedIntKeys(m map[int][]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedStringKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedStringKeysFromMap(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
