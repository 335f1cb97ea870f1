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

	"github.com/leger-labs/topology/internal/state"
)

// AddDiffCommand registers `topology diff OLD_SNAPSHOT NEW_SNAPSHOT`.
func AddDiffCommand(root *cobra.Command, logger *zap.Logger) {
	cmd := &cobra.Command{
		Use:   "diff OLD_SNAPSHOT NEW_SNAPSHOT",
		Short: "Compare two previously produced state snapshots",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var a, b state.Snapshot
			if err := readSnapshot(args[0], &a); err != nil {
				logger.Error("failed to read snapshot", zap.String("path", args[0]), zap.Error(err))
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			if err := readSnapshot(args[1], &b); err != nil {
				logger.Error("failed to read snapshot", zap.String("path", args[1]), zap.Error(err))
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}

			d := state.Compare(a, b, time.Now())
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(d); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			return nil
		},
	}
	root.AddCommand(cmd)
}

func readSnapshot(path string, snapshot *state.Snapshot) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, snapshot)
}
