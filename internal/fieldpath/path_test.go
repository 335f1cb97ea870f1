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

package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimplePath(t *testing.T) {
	segments, err := Parse("litellm.infrastructure.containerName")
	require.NoError(t, err)
	assert.Equal(t, []Segment{
		{Name: "litellm", Index: -1},
		{Name: "infrastructure", Index: -1},
		{Name: "containerName", Index: -1},
	}, segments)
}

func TestParseQuotedField(t *testing.T) {
	segments, err := Parse(`litellm["my.field"].value`)
	require.NoError(t, err)
	assert.Equal(t, []Segment{
		{Name: "litellm", Index: -1},
		{Name: "my.field", Index: -1},
		{Name: "value", Index: -1},
	}, segments)
}

func TestParseArrayIndex(t *testing.T) {
	segments, err := Parse("litellm.policyArns[1]")
	require.NoError(t, err)
	assert.Equal(t, []Segment{
		{Name: "litellm", Index: -1},
		{Name: "policyArns", Index: -1},
		{Index: 1},
	}, segments)
}

func TestParseUnterminatedQuote(t *testing.T) {
	_, err := Parse(`litellm["unterminated`)
	assert.Error(t, err)
}

func TestParseInvalidArrayIndex(t *testing.T) {
	_, err := Parse("litellm.policyArns[notAnInt]")
	assert.Error(t, err)
}

func TestNamesSkipsArrayIndices(t *testing.T) {
	names, err := Names("litellm.policyArns[1].value")
	require.NoError(t, err)
	assert.Equal(t, []string{"litellm", "policyArns", "value"}, names)
}

func TestNamesSimplePath(t *testing.T) {
	names, err := Names("secrets.api_keys.litellm_master")
	require.NoError(t, err)
	assert.Equal(t, []string{"secrets", "api_keys", "litellm_master"}, names)
}

func TestNamesPropagatesParseError(t *testing.T) {
	_, err := Names("litellm[")
	assert.Error(t, err)
}
