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
	"github.com/pterm/pterm"

	"github.com/subnetctl/subnetctl/pkg/subnetctl/export"
	"github.com/subnetctl/subnetctl/pkg/vlsm"
)

// ForgeTableData creates the table header.
func ForgeTableData() pterm.TableData {
	return pterm.TableData{
		{"Type", "Description", "Network", "Mask", "Usable range", "Broadcast"},
	}
}

// AppendRecordTableData appends one plan record to the table data.
func AppendRecordTableData(r *export.Record, td pterm.TableData) pterm.TableData {
	return append(td, []string{r.Type, r.Description, r.Network, r.Mask, r.Range, r.Broadcast})
}

// renderPlan prints the addressing plan as a table, then reports the demands
// the carving loop could not fit. Skips are an artifact of the greedy
// largest-first ordering, not a hard capacity failure, and leave the rest of
// the plan valid.
func (o *Options) renderPlan(plan *vlsm.Plan) error {
	records := export.ForgeRecords(plan)

	o.Printer.Section.Println("Addressing plan")

	td := ForgeTableData()
	for i := range records {
		td = AppendRecordTableData(&records[i], td)
	}
	if err := o.Printer.Table.WithData(td).Render(); err != nil {
		return err
	}

	for _, id := range plan.Skipped {
		o.Printer.Warning.Printfln("Demand %q skipped: no free block large enough (address space fragmented)", id)
	}

	return nil
}
