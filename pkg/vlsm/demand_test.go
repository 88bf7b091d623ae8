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

package vlsm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Demand sizing", func() {
	Context("deriving the prefix length", func() {
		It("should fit the host count plus the network and broadcast addresses", func() {
			// 50 hosts need 52 addresses, so a /26 (64 addresses).
			Expect(DerivePrefix(50)).To(Equal(26))
			// 62 hosts need exactly 64 addresses.
			Expect(DerivePrefix(62)).To(Equal(26))
			// One more host spills over into a /25.
			Expect(DerivePrefix(63)).To(Equal(25))
		})

		It("should map zero hosts to a /31", func() {
			Expect(DerivePrefix(0)).To(Equal(31))
		})

		It("should be monotonically non-increasing in the host count", func() {
			prev := DerivePrefix(0)
			for hosts := uint32(1); hosts <= 5000; hosts++ {
				cur := DerivePrefix(hosts)
				Expect(cur).To(BeNumerically("<=", prev),
					"prefix grew from /%d to /%d at %d hosts", prev, cur, hosts)
				prev = cur
			}
		})
	})

	Context("sizing demands", func() {
		It("should clamp LAN demands at the /24 ceiling", func() {
			// 5000 hosts would need a /19; the ceiling wins.
			sized := Size(Demand{ID: "big", Kind: KindLAN, Hosts: 5000})
			Expect(sized.Prefix).To(Equal(24))
		})

		It("should not clamp LAN demands below the ceiling", func() {
			sized := Size(Demand{ID: "small", Kind: KindLAN, Hosts: 50})
			Expect(sized.Prefix).To(Equal(26))
		})

		It("should always size links as /30", func() {
			sized := Size(Demand{ID: "R1-R2", Kind: KindLink, Hosts: 200})
			Expect(sized.Prefix).To(Equal(30))
		})
	})
})

var _ = Describe("Demand ordering", func() {
	forge := func(id string, hosts uint32) SizedDemand {
		return Size(Demand{ID: id, Kind: KindLAN, Hosts: hosts})
	}
	link := func(id string) SizedDemand {
		return Size(Demand{ID: id, Kind: KindLink})
	}

	It("should sort LAN demands descending by host count, links last", func() {
		ordered := Order([]SizedDemand{
			link("R1-R2"),
			forge("a", 10),
			forge("b", 500),
			link("R1-R3"),
			forge("c", 120),
		})

		ids := make([]string, len(ordered))
		for i := range ordered {
			ids[i] = ordered[i].ID
		}
		Expect(ids).To(Equal([]string{"b", "c", "a", "R1-R2", "R1-R3"}))
	})

	It("should preserve the input order of equal host counts", func() {
		ordered := Order([]SizedDemand{
			forge("first", 25),
			forge("second", 25),
			forge("third", 25),
		})

		ids := make([]string, len(ordered))
		for i := range ordered {
			ids[i] = ordered[i].ID
		}
		Expect(ids).To(Equal([]string{"first", "second", "third"}))
	})

	It("should not mutate its input", func() {
		input := []SizedDemand{forge("a", 1), forge("b", 100)}
		Order(input)
		Expect(input[0].ID).To(Equal("a"))
		Expect(input[1].ID).To(Equal("b"))
	})
})
