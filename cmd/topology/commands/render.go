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

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leger-labs/topology/internal/enablement"
	"github.com/leger-labs/topology/internal/loader"
	"github.com/leger-labs/topology/internal/render"
	"github.com/leger-labs/topology/internal/render/text"
	"github.com/leger-labs/topology/internal/resolve"
	"github.com/leger-labs/topology/internal/validate"
)

// AddRenderCommand registers `topology render FILE OUTPUT_DIR`.
func AddRenderCommand(root *cobra.Command, logger *zap.Logger) {
	cmd := &cobra.Command{
		Use:   "render FILE OUTPUT_DIR",
		Short: "Render container and network unit files for a topology's enabled services",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			topology, err := loader.LoadFile(args[0])
			if err != nil {
				logger.Error("failed to load topology", zap.Error(err))
				reportLoadError(err)
				os.Exit(1)
			}

			result := validate.Validate(topology)
			for _, d := range result.Diagnostics {
				fmt.Fprintln(cmd.OutOrStdout(), d.String())
			}
			if !result.Valid() {
				os.Exit(1)
			}

			enabledResult := enablement.Compute(topology)
			order, err := resolve.Order(topology, enabledResult.Enabled)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}

			if err := os.MkdirAll(args[1], 0o755); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}

			networkData := render.BuildNetwork(topology)
			networkPath := filepath.Join(args[1], networkData.Name+".network")
			if err := os.WriteFile(networkPath, []byte(text.Network(networkData)), 0o644); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}

			for _, unit := range render.Units(topology, order) {
				unitPath := filepath.Join(args[1], unit.ServiceName+".container")
				if err := os.WriteFile(unitPath, []byte(text.Unit(topology.Network.Name, unit)), 0o644); err != nil {
					fmt.Fprintln(os.Stderr, "error:", err)
					os.Exit(1)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "rendered %d unit(s) + network\n", len(order))
			return nil
		},
	}
	root.AddCommand(cmd)
}
