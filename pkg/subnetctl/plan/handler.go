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

// Package plan implements the `subnetctl plan` command: it collects a
// topology (interactively or from file), runs the allocator and presents the
// resulting addressing plan.
package plan

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/subnetctl/subnetctl/pkg/subnetctl/config"
	"github.com/subnetctl/subnetctl/pkg/subnetctl/export"
	"github.com/subnetctl/subnetctl/pkg/subnetctl/output"
	"github.com/subnetctl/subnetctl/pkg/subnetctl/topology"
	"github.com/subnetctl/subnetctl/pkg/vlsm"
)

// Options encapsulates the arguments of the plan command.
type Options struct {
	Printer *output.Printer

	// TopologyFile switches to batch mode: the topology is read from this
	// YAML file instead of the interactive prompts.
	TopologyFile string
	// ExportFormat forces an export format (json or csv). When empty in
	// interactive mode, the user is asked after the plan is rendered.
	ExportFormat string
	// ExportFile overrides the export destination.
	ExportFile string
	// ConfigFile points to an optional defaults file.
	ConfigFile string

	cfg config.Config
}

// NewOptions returns a new Options struct.
func NewOptions(printer *output.Printer) *Options {
	return &Options{Printer: printer}
}

// AddFlags registers the flags of the plan command.
func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.TopologyFile, "file", "f", "", "Topology YAML file; skips the interactive prompts")
	flags.StringVar(&o.ExportFormat, "export", "", "Export the plan in the given format (json|csv)")
	flags.StringVar(&o.ExportFile, "export-file", "", "Export destination (default: plan.<format> in the export directory)")
	flags.StringVar(&o.ConfigFile, "config", "", "Path to a subnetctl defaults file")
}

// RunPlan executes the `plan` command.
func (o *Options) RunPlan(ctx context.Context) error {
	o.cfg = config.Default()
	if o.ConfigFile != "" {
		cfg, err := config.ReadFromFile(o.ConfigFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}

	topo, err := o.gatherTopology(ctx)
	if err != nil {
		return err
	}

	parent, err := topology.ParseNetwork(topo.Network)
	if err != nil {
		return err
	}

	demands := topo.Demands()
	klog.V(2).Infof("allocating %d demands from parent network %s", len(demands), parent)

	plan, err := vlsm.Compute(parent, demands)
	if err != nil {
		return err
	}

	if err := o.renderPlan(plan); err != nil {
		return err
	}

	return o.exportPlan(plan)
}

func (o *Options) gatherTopology(ctx context.Context) (*topology.Topology, error) {
	if o.TopologyFile != "" {
		return topology.Load(o.TopologyFile)
	}
	return o.collectTopology(ctx)
}

func (o *Options) exportPlan(plan *vlsm.Plan) error {
	format := o.ExportFormat

	// In interactive mode the export choice is collected after the table,
	// as a post-run prompt.
	if format == "" && o.TopologyFile == "" {
		choice, err := askExportFormat()
		if err != nil {
			return err
		}
		format = choice
	}
	if format == "" || format == exportNone {
		return nil
	}

	switch export.Format(format) {
	case export.FormatJSON, export.FormatCSV:
	default:
		return fmt.Errorf("unsupported export format %q (expected json or csv)", format)
	}

	path := o.ExportFile
	if path == "" {
		path = filepath.Join(o.cfg.ExportDir, "plan."+format)
	}

	if err := export.ToFile(path, export.Format(format), export.ForgeRecords(plan)); err != nil {
		return err
	}

	o.Printer.Success.Printfln("Plan exported to %s", path)
	return nil
}
