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

package render

import "github.com/leger-labs/topology/internal/model"

// Network is the render-data payload for the shared network unit.
type Network struct {
	Name    string
	Subnet  string
	Gateway string
	Labels  map[string]string
}

// BuildNetwork builds the Network payload from the topology's network
// region.
func BuildNetwork(topology *model.Topology) Network {
	return Network{
		Name:    topology.Network.Name,
		Subnet:  topology.Network.Subnet,
		Gateway: topology.Network.Gateway,
		Labels:  map[string]string{"app": "scroll"},
	}
}
