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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/netip"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/subnetctl/subnetctl/pkg/subnetctl/export"
	"github.com/subnetctl/subnetctl/pkg/subnetctl/output"
	"github.com/subnetctl/subnetctl/pkg/vlsm"
)

var _ = Describe("Plan command", func() {
	var (
		buf     bytes.Buffer
		options *Options
	)

	forgePlan := func() *vlsm.Plan {
		plan, err := vlsm.Compute(netip.MustParsePrefix("192.168.0.0/24"), []vlsm.Demand{
			{ID: "R1-LAN1", Kind: vlsm.KindLAN, Hosts: 50},
			{ID: "R1-R2", Kind: vlsm.KindLink},
		})
		Expect(err).NotTo(HaveOccurred())
		return plan
	}

	BeforeEach(func() {
		buf.Reset()
		options = NewOptions(output.NewFakePrinter(&buf))
	})

	Context("rendering", func() {
		It("should print every allocation row", func() {
			Expect(options.renderPlan(forgePlan())).To(Succeed())

			out := buf.String()
			Expect(out).To(ContainSubstring("192.168.0.0/26"))
			Expect(out).To(ContainSubstring("192.168.0.1 - 192.168.0.62"))
			Expect(out).To(ContainSubstring("192.168.0.64/30"))
			Expect(out).To(ContainSubstring("255.255.255.252"))
		})

		It("should report skipped demands as warnings", func() {
			plan := forgePlan()
			plan.Skipped = append(plan.Skipped, "R2-LAN1")

			Expect(options.renderPlan(plan)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("R2-LAN1"))
			Expect(buf.String()).To(ContainSubstring("skipped"))
		})

		It("should forge table data with one header and one row per record", func() {
			records := export.ForgeRecords(forgePlan())
			td := ForgeTableData()
			for i := range records {
				td = AppendRecordTableData(&records[i], td)
			}
			Expect(td).To(HaveLen(len(records) + 1))
			Expect(td[0]).To(HaveLen(6))
		})
	})

	Context("exporting", func() {
		It("should honor the export flags in batch mode", func() {
			dir := GinkgoT().TempDir()
			options.TopologyFile = "irrelevant.yaml"
			options.ExportFormat = "json"
			options.ExportFile = filepath.Join(dir, "plan.json")

			Expect(options.exportPlan(forgePlan())).To(Succeed())

			data, err := os.ReadFile(options.ExportFile)
			Expect(err).NotTo(HaveOccurred())

			var decoded []export.Record
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())
			Expect(decoded).To(HaveLen(2))
			Expect(decoded[0].Description).To(Equal("R1-LAN1"))
		})

		It("should do nothing in batch mode without an export format", func() {
			options.TopologyFile = "irrelevant.yaml"
			Expect(options.exportPlan(forgePlan())).To(Succeed())
		})

		It("should reject unknown export formats", func() {
			options.TopologyFile = "irrelevant.yaml"
			options.ExportFormat = "xml"
			Expect(options.exportPlan(forgePlan())).NotTo(Succeed())
		})
	})

	Context("running end to end from a topology file", func() {
		It("should produce a complete plan and export it", func() {
			dir := GinkgoT().TempDir()
			topoPath := filepath.Join(dir, "topology.yaml")
			blob := `network: 172.16.0.0/20
routers:
  - subnets:
      - hosts: 200
  - subnets:
      - hosts: 50
`
			Expect(os.WriteFile(topoPath, []byte(blob), 0o600)).To(Succeed())

			options.TopologyFile = topoPath
			options.ExportFormat = "csv"
			options.ExportFile = filepath.Join(dir, "plan.csv")

			Expect(options.RunPlan(context.Background())).To(Succeed())

			data, err := os.ReadFile(options.ExportFile)
			Expect(err).NotTo(HaveOccurred())
			// Two LANs plus the R1-R2 link, plus the header row.
			Expect(bytes.Count(data, []byte("\n"))).To(Equal(4))
		})

		It("should surface a capacity error", func() {
			dir := GinkgoT().TempDir()
			topoPath := filepath.Join(dir, "topology.yaml")
			blob := `network: 10.0.0.0/30
routers:
  - subnets:
      - hosts: 10
  - subnets: []
`
			Expect(os.WriteFile(topoPath, []byte(blob), 0o600)).To(Succeed())

			options.TopologyFile = topoPath
			err := options.RunPlan(context.Background())

			capErr := &vlsm.CapacityError{}
			Expect(errors.As(err, &capErr)).To(BeTrue())
		})
	})
})
