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

// Package loader projects a raw topology document into the typed model
// (§4.1). It assumes an external schema engine has already validated the
// document's structural shape; its own job is normalizing absent fields to
// their documented defaults and preserving unknown `x-*` extensions.
package loader

import (
	"io"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/leger-labs/topology/internal/errkind"
	"github.com/leger-labs/topology/internal/model"
)

// LoadFile reads and parses the topology document at path. It wraps a
// missing file as *errkind.InputNotFound and a parse failure as
// *errkind.InputMalformed, per §7's Loader-only error kinds.
func LoadFile(path string) (*model.Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errkind.InputNotFound{Path: path}
		}
		return nil, &errkind.InputMalformed{Path: path, Err: err}
	}
	return LoadBytes(path, data)
}

// Load reads the entirety of r and parses it as a topology document.
func Load(r io.Reader) (*model.Topology, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &errkind.InputMalformed{Path: "<stream>", Err: err}
	}
	return LoadBytes("<stream>", data)
}

// LoadBytes parses raw topology document bytes (YAML or JSON — YAML is a
// JSON superset, so both wire formats are accepted uniformly) into a
// *model.Topology.
func LoadBytes(path string, data []byte) (*model.Topology, error) {
	var w wireTopology
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, &errkind.InputMalformed{Path: path, Err: err}
	}
	return project(w), nil
}

// project converts the wire representation into the typed model,
// normalizing absent fields to their documented defaults:
// empty requires, empty enabledBy, enabled=false, visibility=exposed,
// defaultHandling=preloaded, displayOrder=999.
func project(w wireTopology) *model.Topology {
	topology := &model.Topology{
		SchemaVersion: w.SchemaVersion,
		Release: model.Release{
			Version:      w.Release.Version,
			ReleasedAt:   w.Release.ReleasedAt,
			TemplateSha:  w.Release.TemplateSha,
			ChangelogURL: w.Release.ChangelogURL,
			Description:  w.Release.Description,
		},
		Network: model.Network{
			Name:    w.Network.Name,
			Subnet:  w.Network.Subnet,
			Gateway: w.Network.Gateway,
		},
		Services: make(map[string]*model.Service, len(w.Services)),
		Secrets:  w.Secrets,
	}

	for name, svc := range w.Services {
		topology.Services[name] = projectService(name, svc)
	}

	return topology
}

func projectService(name string, w wireService) *model.Service {
	return &model.Service{
		Name:           name,
		Infrastructure: projectInfrastructure(w.Infrastructure),
		Configuration:  projectConfiguration(w.Configuration),
	}
}

func projectInfrastructure(w wireInfrastructure) model.Infrastructure {
	enabled := false
	if w.Enabled != nil {
		enabled = *w.Enabled
	}

	infra := model.Infrastructure{
		Image:             w.Image,
		ContainerName:     w.ContainerName,
		Port:              w.Port,
		Hostname:          w.Hostname,
		PublishedPort:     w.PublishedPort,
		Bind:              w.Bind,
		Requires:          w.Requires,
		Enabled:           enabled,
		EnabledBy:         w.EnabledBy,
		ExternalSubdomain: w.ExternalSubdomain,
		Websocket:         w.Websocket,
	}
	if infra.Requires == nil {
		infra.Requires = []string{}
	}
	if infra.EnabledBy == nil {
		infra.EnabledBy = []string{}
	}

	for _, v := range w.Volumes {
		infra.Volumes = append(infra.Volumes, model.Volume{
			Name:         v.Name,
			MountPath:    v.MountPath,
			SELinuxLabel: v.SELinuxLabel,
			Kind:         model.VolumeKind(v.Kind),
		})
	}

	if w.Healthcheck != nil {
		infra.Healthcheck = &model.Healthcheck{
			Cmd:         w.Healthcheck.Cmd,
			Interval:    w.Healthcheck.Interval,
			Timeout:     w.Healthcheck.Timeout,
			Retries:     w.Healthcheck.Retries,
			StartPeriod: w.Healthcheck.StartPeriod,
		}
	}

	return infra
}

func projectConfiguration(w wireConfiguration) model.Configuration {
	cfg := model.Configuration{
		Required:   w.Required,
		Properties: make(map[string]*model.FieldDef, len(w.Properties)),
	}
	if cfg.Required == nil {
		cfg.Required = []string{}
	}

	for name, f := range w.Properties {
		cfg.Properties[name] = projectFieldDef(f)
	}

	return cfg
}

func projectFieldDef(w wireFieldDef) *model.FieldDef {
	visibility := model.Visibility(w.Visibility)
	if visibility == "" {
		visibility = model.VisibilityExposed
	}

	defaultHandling := model.DefaultHandling(w.DefaultHandling)
	if defaultHandling == "" {
		defaultHandling = model.DefaultHandlingPreloaded
	}

	displayOrder := 999
	if w.DisplayOrder != nil {
		displayOrder = *w.DisplayOrder
	}

	return &model.FieldDef{
		Type:            w.Type,
		Description:     w.Description,
		Default:         w.Default,
		HasDefault:      w.hasDefault,
		Enum:            w.Enum,
		EnvVar:          w.EnvVar,
		Category:        w.Category,
		DisplayOrder:    displayOrder,
		Visibility:      visibility,
		Sensitive:       w.Sensitive,
		SecretRef:       w.SecretRef,
		TemplatePath:    w.TemplatePath,
		RequiresField:   w.RequiresField,
		DependsOn:       w.DependsOn,
		DefaultHandling: defaultHandling,
		Rationale:       w.Rationale,
		EnablesServices: w.EnablesServices,
		AffectsServices: w.AffectsServices,
		ProviderFields:  w.ProviderFields,
		Extensions:      w.extensions,
	}
}
