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

// Package model defines the in-memory, typed representation of a topology
// document. Values in this package are constructed once by the loader and
// are never mutated afterwards; every other package in this module treats
// a *Topology as read-only.
package model

import "sort"

// Visibility controls where a field is surfaced to an operator.
type Visibility string

const (
	VisibilityExposed  Visibility = "exposed"
	VisibilityAdvanced Visibility = "advanced"
	VisibilityExpert   Visibility = "expert"
	VisibilityHidden   Visibility = "hidden"
)

// DefaultHandling describes how a field's default was produced.
type DefaultHandling string

const (
	DefaultHandlingPreloaded      DefaultHandling = "preloaded"
	DefaultHandlingUserConfigured DefaultHandling = "user-configured"
	DefaultHandlingUnset          DefaultHandling = "unset"
)

// VolumeKind distinguishes a named volume from a bind mount.
type VolumeKind string

const (
	VolumeKindVolume VolumeKind = "volume"
	VolumeKindBind   VolumeKind = "bind"
)

// Topology is the full, versioned document: network topology, release
// metadata, the service fleet, and a secrets lookup region.
type Topology struct {
	SchemaVersion string
	Release       Release
	Network       Network
	Services      map[string]*Service
	Secrets       map[string]any
}

// Release carries the metadata of the topology's release.
type Release struct {
	Version      string
	ReleasedAt   string
	TemplateSha  string
	ChangelogURL string
	Description  string
}

// Network is the topology's shared container network.
type Network struct {
	Name    string
	Subnet  string
	Gateway string
}

// Service is a named unit composed of an infrastructure record and a
// configuration schema.
type Service struct {
	Name           string
	Infrastructure Infrastructure
	Configuration  Configuration
}

// Infrastructure is the deployment-facing half of a Service.
type Infrastructure struct {
	Image             string
	ContainerName     string
	Port              int
	Hostname          string
	PublishedPort     *int
	Bind              string
	Requires          []string
	Enabled           bool
	EnabledBy         []string
	ExternalSubdomain string
	Websocket         bool
	Volumes           []Volume
	Healthcheck       *Healthcheck
}

// Volume describes a single container mount.
type Volume struct {
	Name         string
	MountPath    string
	SELinuxLabel string
	Kind         VolumeKind
}

// Healthcheck describes a container's liveness probe.
type Healthcheck struct {
	Cmd         string
	Interval    string
	Timeout     string
	Retries     int
	StartPeriod string
}

// Configuration is the schema-style, per-field configuration half of a
// Service.
type Configuration struct {
	Required   []string
	Properties map[string]*FieldDef
}

// FieldDef carries both schema-style attributes and the extension metadata
// the wire format layers on via an `x-` prefix. The prefix is pure wire
// naming; this struct exposes the attributes by name and keeps any
// unrecognized extension in Extensions for round-tripping only.
type FieldDef struct {
	Type        string
	Description string
	Default     any
	HasDefault  bool
	Enum        []any

	EnvVar       string
	Category     string
	DisplayOrder int

	Visibility Visibility
	Sensitive  bool
	SecretRef  string

	TemplatePath  string
	RequiresField string
	DependsOn     map[string]any

	DefaultHandling DefaultHandling
	Rationale       string

	EnablesServices []string
	AffectsServices map[string]string
	ProviderFields  map[string][]string

	// Extensions preserves any unrecognized `x-*` attribute verbatim. It is
	// never consulted by engine logic.
	Extensions map[string]any
}

// IsRequired reports whether fieldName is listed in cfg.Required.
func (cfg Configuration) IsRequired(fieldName string) bool {
	for _, r := range cfg.Required {
		if r == fieldName {
			return true
		}
	}
	return false
}

// SortedServiceNames returns the topology's service names in lexicographic
// order. Every iteration over Services elsewhere in this module goes
// through this helper (or repeats this pattern) so output ordering never
// depends on Go's randomized map iteration.
func (t *Topology) SortedServiceNames() []string {
	names := make([]string, 0, len(t.Services))
	for name := range t.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
