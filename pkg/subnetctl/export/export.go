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

// Package export serializes addressing plans to JSON and CSV. The record
// field names and ordering are part of the output contract and must not
// change.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/subnetctl/subnetctl/pkg/vlsm"
)

// Format selects an export encoding.
type Format string

const (
	// FormatJSON exports the plan as an indented JSON array of records.
	FormatJSON Format = "json"
	// FormatCSV exports the plan as CSV with a header row.
	FormatCSV Format = "csv"
)

// Record is one row of the addressing plan in its reportable form.
type Record struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Network     string `json:"network"`
	Mask        string `json:"mask"`
	Range       string `json:"range"`
	Broadcast   string `json:"broadcast"`
}

// Header lists the record field names, in CSV column order.
func Header() []string {
	return []string{"type", "description", "network", "mask", "range", "broadcast"}
}

// ForgeRecord converts an allocation to its reportable form.
func ForgeRecord(a *vlsm.Allocation) Record {
	return Record{
		Type:        string(a.Kind),
		Description: a.DemandID,
		Network:     a.Network.String(),
		Mask:        a.Netmask.String(),
		Range:       fmt.Sprintf("%s - %s", a.FirstUsable, a.LastUsable),
		Broadcast:   a.Broadcast.String(),
	}
}

// ForgeRecords converts a plan's allocations to records, preserving the
// allocation order.
func ForgeRecords(plan *vlsm.Plan) []Record {
	records := make([]Record, len(plan.Allocations))
	for i := range plan.Allocations {
		records[i] = ForgeRecord(&plan.Allocations[i])
	}
	return records
}

// WriteJSON writes the records as a 2-space-indented JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// WriteCSV writes the records as CSV, header row first.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	for i := range records {
		r := &records[i]
		row := []string{r.Type, r.Description, r.Network, r.Mask, r.Range, r.Broadcast}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile writes the records to path in the given format.
func ToFile(path string, format Format, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create export file")
	}
	defer f.Close()

	switch format {
	case FormatJSON:
		err = WriteJSON(f, records)
	case FormatCSV:
		err = WriteCSV(f, records)
	default:
		err = fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to export plan to %q", path)
	}
	return nil
}
