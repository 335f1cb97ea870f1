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

package loader

import "encoding/json"

// The wire* structs below mirror the topology document's on-the-wire shape
// (§6, §3). The loader's job is to project this shape into the typed
// model, not to re-validate it structurally — that is the external schema
// engine's job (§4.1).

type wireTopology struct {
	SchemaVersion string                 `json:"schemaVersion"`
	Release       wireRelease            `json:"release"`
	Network       wireNetwork            `json:"network"`
	Services      map[string]wireService `json:"services"`
	Secrets       map[string]any         `json:"secrets"`
}

type wireRelease struct {
	Version      string `json:"version"`
	ReleasedAt   string `json:"releasedAt"`
	TemplateSha  string `json:"templateSha"`
	ChangelogURL string `json:"changelogUrl"`
	Description  string `json:"description"`
}

type wireNetwork struct {
	Name    string `json:"name"`
	Subnet  string `json:"subnet"`
	Gateway string `json:"gateway"`
}

type wireService struct {
	Infrastructure wireInfrastructure `json:"infrastructure"`
	Configuration  wireConfiguration  `json:"configuration"`
}

type wireInfrastructure struct {
	Image             string           `json:"image"`
	ContainerName     string           `json:"containerName"`
	Port              int              `json:"port"`
	Hostname          string           `json:"hostname,omitempty"`
	PublishedPort     *int             `json:"publishedPort,omitempty"`
	Bind              string           `json:"bind,omitempty"`
	Requires          []string         `json:"requires,omitempty"`
	Enabled           *bool            `json:"enabled,omitempty"`
	EnabledBy         []string         `json:"enabledBy,omitempty"`
	ExternalSubdomain string           `json:"externalSubdomain,omitempty"`
	Websocket         bool             `json:"websocket,omitempty"`
	Volumes           []wireVolume     `json:"volumes,omitempty"`
	Healthcheck       *wireHealthcheck `json:"healthcheck,omitempty"`
}

type wireVolume struct {
	Name         string `json:"name"`
	MountPath    string `json:"mountPath"`
	SELinuxLabel string `json:"selinuxLabel,omitempty"`
	Kind         string `json:"kind"`
}

type wireHealthcheck struct {
	Cmd         string `json:"cmd"`
	Interval    string `json:"interval,omitempty"`
	Timeout     string `json:"timeout,omitempty"`
	Retries     int    `json:"retries,omitempty"`
	StartPeriod string `json:"startPeriod,omitempty"`
}

type wireConfiguration struct {
	Type       string                  `json:"type"`
	Required   []string                `json:"required,omitempty"`
	Properties map[string]wireFieldDef `json:"properties,omitempty"`
}

// wireFieldDef captures the recognized x-* extension keys directly and
// preserves any unrecognized one via its custom UnmarshalJSON below.
type wireFieldDef struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	hasDefault  bool
	Enum        []any  `json:"enum,omitempty"`

	EnvVar       string `json:"x-env-var,omitempty"`
	Category     string `json:"x-category,omitempty"`
	DisplayOrder *int   `json:"x-display-order,omitempty"`

	Visibility string `json:"x-visibility,omitempty"`
	Sensitive  bool   `json:"x-sensitive,omitempty"`
	SecretRef  string `json:"x-secret-ref,omitempty"`

	TemplatePath  string         `json:"x-template-path,omitempty"`
	RequiresField string         `json:"x-requires-field,omitempty"`
	DependsOn     map[string]any `json:"x-depends-on,omitempty"`

	DefaultHandling string `json:"x-default-handling,omitempty"`
	Rationale       string `json:"x-rationale,omitempty"`

	EnablesServices []string            `json:"x-enables-services,omitempty"`
	AffectsServices map[string]string   `json:"x-affects-services,omitempty"`
	ProviderFields  map[string][]string `json:"x-provider-fields,omitempty"`

	extensions map[string]any
}

var knownFieldDefKeys = map[string]bool{
	"type": true, "description": true, "default": true, "enum": true,
	"x-env-var": true, "x-category": true, "x-display-order": true,
	"x-visibility": true, "x-sensitive": true, "x-secret-ref": true,
	"x-template-path": true, "x-requires-field": true, "x-depends-on": true,
	"x-default-handling": true, "x-rationale": true,
	"x-enables-services": true, "x-affects-services": true, "x-provider-fields": true,
}

// UnmarshalJSON decodes the recognized attributes with the struct's
// default json tag behavior, then makes a second pass over the raw object
// to preserve any unknown `x-*` key verbatim, per §4.1's round-trip
// requirement.
func (f *wireFieldDef) UnmarshalJSON(data []byte) error {
	type plain wireFieldDef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = wireFieldDef(p)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if _, ok := raw["default"]; ok {
		f.hasDefault = true
	}

	for key, value := range raw {
		if knownFieldDefKeys[key] {
			continue
		}
		if f.extensions == nil {
			f.extensions = make(map[string]any)
		}
		var decoded any
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		f.extensions[key] = decoded
	}

	return nil
}
