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

// Package text renders the render package's data payloads into the
// byte-stable container-unit and network-unit text formats of §6. This is
// templating mechanics only — the data it consumes is the core's
// contribution (internal/render).
package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leger-labs/topology/internal/render"
)

// Unit renders one container unit file's text, in the fixed section order
// [Unit], [Container], [Service], [Install].
func Unit(networkName string, u render.Unit) string {
	var b strings.Builder

	b.WriteString("[Unit]\n")
	fmt.Fprintf(&b, "Description=%s\n", u.Description)
	b.WriteString("After=network-online.target\n")
	fmt.Fprintf(&b, "After=%s.network.service\n", networkName)
	fmt.Fprintf(&b, "Requires=%s.network.service\n", networkName)
	if len(u.Wants) > 0 {
		wants := make([]string, len(u.Wants))
		for i, w := range u.Wants {
			wants[i] = w + ".service"
		}
		fmt.Fprintf(&b, "Wants=%s\n", strings.Join(wants, " "))
	}
	b.WriteString("\n")

	b.WriteString("[Container]\n")
	fmt.Fprintf(&b, "Image=%s\n", u.Image)
	b.WriteString("AutoUpdate=registry\n")
	fmt.Fprintf(&b, "ContainerName=%s\n", u.ContainerName)
	if u.Hostname != "" {
		fmt.Fprintf(&b, "HostName=%s\n", u.Hostname)
	}
	fmt.Fprintf(&b, "Network=%s\n", u.NetworkUnit)
	if u.Publish != nil {
		fmt.Fprintf(&b, "PublishPort=%s:%d:%d\n", u.Publish.Bind, u.Publish.PublishedPort, u.Publish.Port)
	}
	for _, v := range u.Volumes {
		if v.Kind == "bind" {
			fmt.Fprintf(&b, "Volume=%%h/.config/containers/%s:%s:%s\n", v.Name, v.MountPath, v.SELinuxLabel)
		} else {
			fmt.Fprintf(&b, "Volume=%s:%s:%s\n", v.Name, v.MountPath, v.SELinuxLabel)
		}
	}
	for _, e := range u.Env {
		fmt.Fprintf(&b, "Environment=%s=%s\n", e.Name, e.Value)
	}
	if h := u.Healthcheck; h != nil {
		fmt.Fprintf(&b, "HealthCmd=%s\n", h.Cmd)
		fmt.Fprintf(&b, "HealthInterval=%s\n", withDefault(h.Interval, "30s"))
		fmt.Fprintf(&b, "HealthTimeout=%s\n", withDefault(h.Timeout, "5s"))
		retries := h.Retries
		if retries == 0 {
			retries = 3
		}
		fmt.Fprintf(&b, "HealthRetries=%d\n", retries)
		fmt.Fprintf(&b, "HealthStartPeriod=%s\n", withDefault(h.StartPeriod, "10s"))
	}
	b.WriteString("\n")

	b.WriteString("[Service]\n")
	b.WriteString("Slice=scroll.slice\n")
	b.WriteString("TimeoutStartSec=900\n")
	b.WriteString("Restart=on-failure\n")
	b.WriteString("RestartSec=10\n")
	b.WriteString("\n")

	b.WriteString("[Install]\n")
	b.WriteString("WantedBy=scroll-session.target\n")
	b.WriteString("PartOf=scroll-session.target\n")

	return b.String()
}

// Network renders the network unit file's text.
func Network(n render.Network) string {
	var b strings.Builder

	b.WriteString("[Network]\n")
	fmt.Fprintf(&b, "Subnet=%s\n", n.Subnet)
	fmt.Fprintf(&b, "Gateway=%s\n", n.Gateway)
	for _, k := range sortedKeys(n.Labels) {
		fmt.Fprintf(&b, "Label=%s=%s\n", k, n.Labels[k])
	}
	b.WriteString("\n")

	b.WriteString("[Install]\n")
	b.WriteString("WantedBy=scroll-session.target\n")

	return b.String()
}

// withDefault returns value, or def when the original implementation's
// healthcheck field was left blank (generators/quadlet_generator.py's
// healthcheck.get(field, default) lookups).
func withDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
