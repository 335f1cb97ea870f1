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
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leger-labs/topology/internal/cliobs"
)

// AddServeMetricsCommand registers `topology serve-metrics ADDR`, exposing
// the CLI's own command-invocation counters for scraping. This is a
// long-running foreground process; it never touches a topology document.
func AddServeMetricsCommand(root *cobra.Command, logger *zap.Logger) {
	cmd := &cobra.Command{
		Use:   "serve-metrics ADDR",
		Short: "Serve the CLI's Prometheus metrics over HTTP until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(cliobs.Registry, promhttp.HandlerOpts{}))

			logger.Info("serving metrics", zap.String("addr", args[0]))
			return http.ListenAndServe(args[0], mux)
		},
	}
	root.AddCommand(cmd)
}
