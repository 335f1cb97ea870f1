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

package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticString(t *testing.T) {
	t.Run("with context", func(t *testing.T) {
		d := Error("web.port", "already in use")
		assert.Equal(t, "• web.port: already in use", d.String())
	})

	t.Run("without context", func(t *testing.T) {
		d := Error("", "circular dependency detected")
		assert.Equal(t, "• circular dependency detected", d.String())
	})
}

func TestConstructors(t *testing.T) {
	t.Run("Errorf formats", func(t *testing.T) {
		d := Errorf("web", "requires non-existent service %q", "db")
		assert.Equal(t, SeverityError, d.Severity)
		assert.Equal(t, `requires non-existent service "db"`, d.Message)
	})

	t.Run("Warningf formats", func(t *testing.T) {
		d := Warningf("web.field", "field %s lacks a default", "apiKey")
		assert.Equal(t, SeverityWarning, d.Severity)
		assert.Equal(t, "field apiKey lacks a default", d.Message)
	})
}

func TestWithErr(t *testing.T) {
	inner := errors.New("boom")
	d := Warning("web", "evaluation fell back to default").WithErr(inner)
	assert.Same(t, inner, d.Err)
}
