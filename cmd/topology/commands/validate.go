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

// Package commands wires the core engine packages into a thin cobra
// command tree. Argument parsing mechanics are out of scope for the core
// (spec §1) — these commands only carry the §6 exit-code contract.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leger-labs/topology/internal/cliobs"
	"github.com/leger-labs/topology/internal/errkind"
	"github.com/leger-labs/topology/internal/loader"
	"github.com/leger-labs/topology/internal/validate"
)

// AddValidateCommand registers `topology validate FILE`.
func AddValidateCommand(root *cobra.Command, logger *zap.Logger) {
	verbose := false

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a topology document's cross-service relationships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topology, err := loader.LoadFile(args[0])
			if err != nil {
				logger.Error("failed to load topology", zap.Error(err))
				reportLoadError(err)
				cliobs.RecordCommand("validate", "error")
				os.Exit(1)
			}

			result := validate.Validate(topology)
			for _, d := range result.Diagnostics {
				fmt.Fprintln(cmd.OutOrStdout(), d.String())
			}
			cliobs.RecordValidationErrors("validate", len(result.Errors()))

			if verbose && result.Valid() {
				s := result.Summary
				fmt.Fprintf(cmd.OutOrStdout(), "services=%d enabled=%d conditional=%d publishedPorts=%d\n",
					s.Services, s.EnabledUnconditionally, s.EnabledConditionally, s.PublishedPorts)
			}

			if !result.Valid() {
				cliobs.RecordCommand("validate", "invalid")
				os.Exit(1)
			}
			cliobs.RecordCommand("validate", "ok")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the validation summary")

	root.AddCommand(cmd)
}

func reportLoadError(err error) {
	var notFound *errkind.InputNotFound
	var malformed *errkind.InputMalformed
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintln(os.Stderr, "error:", notFound.Error())
	case errors.As(err, &malformed):
		fmt.Fprintln(os.Stderr, "error:", malformed.Error())
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
	}
}
