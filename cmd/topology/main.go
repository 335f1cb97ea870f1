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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leger-labs/topology/cmd/topology/commands"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(2)
	}
	defer logger.Sync() //nolint:errcheck

	rootCmd := &cobra.Command{
		Use:   "topology",
		Short: "Validate, snapshot, diff, and render service topologies",
	}

	commands.AddValidateCommand(rootCmd, logger)
	commands.AddSnapshotCommand(rootCmd, logger)
	commands.AddDiffCommand(rootCmd, logger)
	commands.AddRenderCommand(rootCmd, logger)
	commands.AddServeMetricsCommand(rootCmd, logger)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
