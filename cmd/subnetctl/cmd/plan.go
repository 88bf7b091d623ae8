// Copyright 2025 The Subnetctl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/subnetctl/subnetctl/pkg/subnetctl/output"
	"github.com/subnetctl/subnetctl/pkg/subnetctl/plan"
)

const planLongHelp = `Compute a VLSM addressing plan.

Without flags the command runs interactively: it prompts for the parent
network, the number of routers and, for each router, its interface and subnet
counts and per-subnet host counts. One /30 point-to-point link is derived for
every router pair.

With --file the topology is read from a YAML file instead, e.g.:

  network: 10.0.0.0/16
  routers:
    - name: R1
      interfaces: 2
      subnets:
        - { name: LAN1, hosts: 120 }
    - name: R2
      interfaces: 2
      subnets:
        - { name: LAN1, hosts: 50 }

The resulting plan can be exported to JSON or CSV with --export.`

func newPlanCommand(ctx context.Context) *cobra.Command {
	options := plan.NewOptions(nil)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a VLSM addressing plan",
		Long:  planLongHelp,
		Args:  cobra.NoArgs,

		Run: func(cmd *cobra.Command, _ []string) {
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				debug = false
			}
			options.Printer = output.NewPrinter(debug)
			options.Printer.CheckErr(options.RunPlan(ctx))
		},
	}

	options.AddFlags(cmd.Flags())
	return cmd
}
