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

// Package errkind defines the error kinds surfaced by the core engine. Each
// kind is a small wrapper type carrying just enough context to render the
// three-part diagnostic line described in the external-interfaces section:
// a bullet marker, a contextual path, and a message. None of these types
// carry a stack trace.
package errkind

import "fmt"

// InputNotFound is returned by the loader when the topology document
// cannot be located.
type InputNotFound struct {
	Path string
}

func (e *InputNotFound) Error() string {
	return fmt.Sprintf("input not found: %s", e.Path)
}

// InputMalformed is returned by the loader when the document bytes cannot
// be decoded at all (not a schema-shape problem — a parse problem).
type InputMalformed struct {
	Path string
	Err  error
}

func (e *InputMalformed) Error() string {
	return fmt.Sprintf("input malformed: %s: %s", e.Path, e.Err)
}

func (e *InputMalformed) Unwrap() error { return e.Err }

// SchemaViolation is a pass-through diagnostic from the external schema
// engine, annotated with the JSON path it concerns.
type SchemaViolation struct {
	Path    string
	Message string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ReferenceError reports a dangling reference: an unknown service, field,
// or secret path.
type ReferenceError struct {
	Context string
	Message string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Context, e.Message)
}

// UniquenessError reports a duplicate containerName or publishedPort.
type UniquenessError struct {
	Message  string
	Services []string
}

func (e *UniquenessError) Error() string {
	return e.Message
}

// CycleError reports a dependency cycle, with one offending cycle spelled
// out as a closed walk in traversal order.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency: %s", formatCycle(e.Path))
}

func formatCycle(path []string) string {
	s := ""
	for i, p := range path {
		if i > 0 {
			s += " -> "
		}
		s += p
	}
	return s
}

// ExpressionError reports a malformed enablement expression.
type ExpressionError struct {
	Context    string
	Expression string
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("%s: invalid expression %q", e.Context, e.Expression)
}

// ProviderConsistencyError reports a providerFields/enablesServices/
// affectsServices entry that refers to a field or service that does not
// exist.
type ProviderConsistencyError struct {
	Context string
	Message string
}

func (e *ProviderConsistencyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Context, e.Message)
}
