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

// Package fieldpath parses the dotted reference paths used by
// requiresField ("other_service.infrastructure.containerName") and
// secretRef ("secrets.api_keys.litellm_master"). Dictionary access with a
// dot inside the key is always quoted, e.g. other_service["my.field"].
package fieldpath

import (
	"fmt"
	"strconv"
)

// Segment is one named hop of a parsed path. Index is -1 unless the
// segment is an array access.
type Segment struct {
	Name  string
	Index int
}

// Parse parses a dotted path string into segments.
func Parse(path string) ([]Segment, error) {
	p := &parser{input: path, len: len(path)}
	return p.parse()
}

// Names returns just the segment names of a parsed path, in order,
// skipping pure array-index segments. This is what requiresField and
// secretRef resolution actually walks: both paths are always names, never
// indices.
func Names(path string) ([]string, error) {
	segments, err := Parse(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Index == -1 {
			names = append(names, s.Name)
		}
	}
	return names, nil
}

type parser struct {
	input string
	pos   int
	len   int
}

func (p *parser) parse() ([]Segment, error) {
	var segments []Segment

	for p.pos < p.len {
		if p.pos+1 < p.len && p.input[p.pos] == '[' && p.input[p.pos+1] == '"' {
			field, err := p.parseQuotedField()
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{Name: field, Index: -1})
		} else if p.input[p.pos] != '[' {
			field, err := p.parseUnquotedField()
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{Name: field, Index: -1})
		}

		if p.pos < p.len && p.input[p.pos] == '[' && (p.pos+1 >= p.len || p.input[p.pos+1] != '"') {
			idx, err := p.parseArrayIndex()
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{Index: idx})
		}

		if p.pos < p.len && p.input[p.pos] == '.' {
			p.pos++
		}
	}

	return segments, nil
}

func (p *parser) parseQuotedField() (string, error) {
	p.pos += 2 // skip [ and opening quote
	start := p.pos
	for p.pos < p.len {
		if p.input[p.pos] != '"' {
			p.pos++
			continue
		}
		field := p.input[start:p.pos]
		p.pos++ // skip closing quote
		if p.pos < p.len && p.input[p.pos] == ']' {
			p.pos++
			return field, nil
		}
		return "", fmt.Errorf("expected closing bracket after quote at position %d", p.pos)
	}
	return "", fmt.Errorf("unterminated quoted string starting at position %d", start)
}

func (p *parser) parseUnquotedField() (string, error) {
	start := p.pos
	for p.pos < p.len && p.input[p.pos] != '.' && p.input[p.pos] != '[' {
		p.pos++
	}
	if start == p.pos {
		return "", fmt.Errorf("empty field name at position %d", start)
	}
	return p.input[start:p.pos], nil
}

func (p *parser) parseArrayIndex() (int, error) {
	p.pos++ // skip [
	start := p.pos
	for p.pos < p.len && p.input[p.pos] != ']' {
		p.pos++
	}
	if p.pos >= p.len {
		return -1, fmt.Errorf("unterminated array index at position %d", start)
	}
	idxStr := p.input[start:p.pos]
	p.pos++ // skip ]

	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return -1, fmt.Errorf("invalid array index %q at position %d", idxStr, start)
	}
	return idx, nil
}
