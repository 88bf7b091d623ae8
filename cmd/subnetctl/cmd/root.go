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

// Package cmd contains the subnetctl command tree.
package cmd

import (
	"context"
	"flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const subnetctlShortHelp = "A VLSM address planning tool for IPv4 networks"

const subnetctlLongHelp = `subnetctl partitions a parent IPv4 network into the smallest sufficient,
non-overlapping subnets covering a set of LAN segments and point-to-point
router links, and reports each subnet's network address, mask, usable host
range and broadcast address.`

// NewRootCommand initializes the tree of commands.
func NewRootCommand(ctx context.Context) *cobra.Command {
	// rootCmd represents the base command when called without any subcommands.
	var rootCmd = &cobra.Command{
		Use:   "subnetctl",
		Short: subnetctlShortHelp,
		Long:  subnetctlLongHelp,
	}
	flagset := flag.NewFlagSet("klog", flag.PanicOnError)
	klog.InitFlags(flagset)
	rootCmd.PersistentFlags().AddGoFlagSet(flagset)
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable/Disable debug mode (default: false)")
	rootCmd.AddCommand(newPlanCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}
