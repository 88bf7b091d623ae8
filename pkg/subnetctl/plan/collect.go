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

package plan

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/subnetctl/subnetctl/pkg/subnetctl/export"
	"github.com/subnetctl/subnetctl/pkg/subnetctl/output"
	"github.com/subnetctl/subnetctl/pkg/subnetctl/topology"
)

const exportNone = "none"

// collectTopology gathers the topology through interactive prompts: the
// parent network (re-prompting until it parses), the router count and, per
// router, the interface and subnet counts and per-subnet host counts.
func (o *Options) collectTopology(ctx context.Context) (*topology.Topology, error) {
	topo := &topology.Topology{}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		network, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(o.cfg.DefaultNetwork).
			Show("Parent network (e.g. 192.168.0.0/16)")
		if err != nil {
			return nil, err
		}
		if _, err := topology.ParseNetwork(network); err != nil {
			o.Printer.Warning.Println("Invalid network address, try again.")
			continue
		}
		topo.Network = network
		break
	}

	routers, err := askCount(o.Printer, "Number of routers", o.cfg.DefaultRouters)
	if err != nil {
		return nil, err
	}

	for r := 1; r <= routers; r++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		o.Printer.Section.Printfln("Router R%d", r)

		interfaces, err := askCount(o.Printer, "Number of connected interfaces (loopbacks excluded)", 2)
		if err != nil {
			return nil, err
		}
		subnets, err := askCount(o.Printer, "Number of connected subnets", 1)
		if err != nil {
			return nil, err
		}

		router := topology.Router{Interfaces: interfaces}
		for s := 1; s <= subnets; s++ {
			hosts, err := askCount(o.Printer, fmt.Sprintf("Subnet %d - number of hosts", s), o.cfg.DefaultHosts)
			if err != nil {
				return nil, err
			}
			router.Subnets = append(router.Subnets, topology.Subnet{Hosts: uint32(hosts)})
		}
		topo.Routers = append(topo.Routers, router)
	}

	topo.Normalize()
	return topo, nil
}

// askCount prompts for a non-negative integer, re-prompting on invalid
// input.
func askCount(printer *output.Printer, prompt string, def int) (int, error) {
	for {
		raw, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(strconv.Itoa(def)).
			Show(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			printer.Warning.Println("Please enter a non-negative number.")
			continue
		}
		return value, nil
	}
}

// askExportFormat asks the post-run export choice.
func askExportFormat() (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions([]string{string(export.FormatJSON), string(export.FormatCSV), exportNone}).
		WithDefaultOption(exportNone).
		Show("Export the results?")
}
