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

// Package diag defines the diagnostic pair shared by the validator and the
// condition evaluator: a severity, a contextual path, and a message.
package diag

import "fmt"

// Severity is the level of a Diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one validator or evaluator finding.
type Diagnostic struct {
	Severity Severity
	// Context is a dotted path such as "service.field" or a bare
	// "service" name.
	Context  string
	Message  string
	Err      error
}

// String renders the three-part user-visible line: bullet, context,
// message.
func (d Diagnostic) String() string {
	if d.Context == "" {
		return fmt.Sprintf("• %s", d.Message)
	}
	return fmt.Sprintf("• %s: %s", d.Context, d.Message)
}

func Error(context, message string) Diagnostic {
	return Diagnostic{Severity: SeverityError, Context: context, Message: message}
}

func Errorf(context, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityError, Context: context, Message: fmt.Sprintf(format, args...)}
}

func Warning(context, message string) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Context: context, Message: message}
}

func Warningf(context, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Context: context, Message: fmt.Sprintf(format, args...)}
}

// WithErr attaches the underlying error that produced a diagnostic,
// preserving it for errors.Unwrap-style inspection by callers that need it.
func (d Diagnostic) WithErr(err error) Diagnostic {
	d.Err = err
	return d
}
