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
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leger-labs/topology/internal/loader"
	"github.com/leger-labs/topology/internal/state"
)

// AddSnapshotCommand registers `topology snapshot FILE`.
func AddSnapshotCommand(root *cobra.Command, logger *zap.Logger) {
	cmd := &cobra.Command{
		Use:   "snapshot FILE",
		Short: "Produce a state snapshot from a topology document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topology, err := loader.LoadFile(args[0])
			if err != nil {
				logger.Error("failed to load topology", zap.Error(err))
				reportLoadError(err)
				os.Exit(1)
			}

			snapshot := state.Build(topology, time.Now())
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(snapshot); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			return nil
		},
	}
	root.AddCommand(cmd)
}
