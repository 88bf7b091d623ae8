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
	"net/netip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Address math", func() {
	It("should split a prefix into its two halves", func() {
		left, right := splitPrefix(netip.MustParsePrefix("10.0.0.0/24"))
		Expect(left).To(Equal(netip.MustParsePrefix("10.0.0.0/25")))
		Expect(right).To(Equal(netip.MustParsePrefix("10.0.0.128/25")))

		left, right = splitPrefix(netip.MustParsePrefix("10.0.0.0/8"))
		Expect(left).To(Equal(netip.MustParsePrefix("10.0.0.0/9")))
		Expect(right).To(Equal(netip.MustParsePrefix("10.128.0.0/9")))
	})

	It("should panic on a prefix with host bits set", func() {
		Expect(func() { splitPrefix(netip.MustParsePrefix("10.0.0.1/24")) }).To(Panic())
	})

	It("should derive dotted-quad netmasks", func() {
		Expect(netmask(0)).To(Equal(netip.MustParseAddr("0.0.0.0")))
		Expect(netmask(8)).To(Equal(netip.MustParseAddr("255.0.0.0")))
		Expect(netmask(26)).To(Equal(netip.MustParseAddr("255.255.255.192")))
		Expect(netmask(30)).To(Equal(netip.MustParseAddr("255.255.255.252")))
		Expect(netmask(32)).To(Equal(netip.MustParseAddr("255.255.255.255")))
	})

	It("should compute the broadcast address", func() {
		Expect(broadcast(netip.MustParsePrefix("192.168.0.0/26"))).
			To(Equal(netip.MustParseAddr("192.168.0.63")))
		Expect(broadcast(netip.MustParsePrefix("10.0.0.0/8"))).
			To(Equal(netip.MustParseAddr("10.255.255.255")))
		Expect(broadcast(netip.MustParsePrefix("10.1.2.3/32"))).
			To(Equal(netip.MustParseAddr("10.1.2.3")))
	})
})
