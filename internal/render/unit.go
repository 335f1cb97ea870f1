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

// Package render builds the data payloads external renderers consume
// (§4.7): unit data, network data, graph data, and provider tables. These
// are pure functions over the model; the textual rendering mechanics live
// in the render/text subpackage.
package render

import (
	"sort"
	"strconv"

	"github.com/leger-labs/topology/internal/model"
)

// PortPublish is the (bind, publishedPort, containerPort) triple for a
// service that publishes a port.
type PortPublish struct {
	Bind          string
	PublishedPort int
	Port          int
}

// VolumeMount is one rendered volume mount line's data.
type VolumeMount struct {
	Name         string
	MountPath    string
	SELinuxLabel string
	Kind         model.VolumeKind
}

// EnvAssignment is one rendered environment variable assignment.
type EnvAssignment struct {
	Name  string
	Value string
}

// Unit is the render-data payload for one enabled service's container
// unit.
type Unit struct {
	ServiceName   string
	Description   string
	Image         string
	ContainerName string
	NetworkUnit   string
	Hostname      string
	Publish       *PortPublish
	Volumes       []VolumeMount
	Env           []EnvAssignment
	Healthcheck   *model.Healthcheck
	// Wants lists the service names this unit wants: every entry of
	// `requires`, sorted. It is not restricted to the enabled set.
	Wants         []string
}

// Units builds one Unit per enabled service, in the topological order
// supplied by the caller (normally resolve.Order's output).
func Units(topology *model.Topology, order []string) []Unit {
	units := make([]Unit, 0, len(order))
	for _, name := range order {
		svc := topology.Services[name]
		if svc == nil {
			continue
		}
		units = append(units, buildUnit(topology, svc))
	}
	return units
}

func buildUnit(topology *model.Topology, svc *model.Service) Unit {
	infra := svc.Infrastructure

	u := Unit{
		ServiceName:   svc.Name,
		Description:   svc.Name + " container",
		Image:         infra.Image,
		ContainerName: infra.ContainerName,
		NetworkUnit:   topology.Network.Name + ".network",
		Hostname:      infra.Hostname,
		Healthcheck:   infra.Healthcheck,
	}

	if infra.PublishedPort != nil {
		u.Publish = &PortPublish{
			Bind:          infra.Bind,
			PublishedPort: *infra.PublishedPort,
			Port:          infra.Port,
		}
	}

	for _, v := range infra.Volumes {
		u.Volumes = append(u.Volumes, VolumeMount{
			Name:         v.Name,
			MountPath:    v.MountPath,
			SELinuxLabel: v.SELinuxLabel,
			Kind:         v.Kind,
		})
	}

	u.Env = buildEnv(svc.Configuration)

	requires := append([]string{}, infra.Requires...)
	sort.Strings(requires)
	u.Wants = requires

	return u
}

// buildEnv produces one environment assignment per FieldDef with an
// envVar when its default is non-null. Booleans project to lowercase
// true/false, in field-name lexicographic order.
func buildEnv(cfg model.Configuration) []EnvAssignment {
	names := make([]string, 0, len(cfg.Properties))
	for name, field := range cfg.Properties {
		if field.EnvVar == "" || !field.HasDefault || field.Default == nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	env := make([]EnvAssignment, 0, len(names))
	for _, name := range names {
		field := cfg.Properties[name]
		env = append(env, EnvAssignment{
			Name:  field.EnvVar,
			Value: stringifyEnvValue(field.Default),
		})
	}
	return env
}

func stringifyEnvValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return ""
	}
}
