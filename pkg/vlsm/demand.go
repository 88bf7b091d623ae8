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
	"math/bits"
	"sort"
)

// Kind discriminates the two demand variants.
type Kind string

const (
	// KindLAN is a LAN segment sized by its host count.
	KindLAN Kind = "LAN"
	// KindLink is a point-to-point link between two routers, always a /30.
	KindLink Kind = "P2P"
)

const (
	// lanPrefixCeiling is the operational ceiling on LAN broadcast-domain
	// size: a LAN subnet is never larger than a /24, independent of the
	// requested host count.
	lanPrefixCeiling = 24

	// linkPrefix is the fixed prefix length of a point-to-point link,
	// leaving exactly two usable addresses.
	linkPrefix = 30

	// maxUsablePrefix is the longest prefix with a well-defined usable
	// range: a /31 or /32 has no room for hosts beside the network and
	// broadcast reservations.
	maxUsablePrefix = 30

	// linkWeight sorts link demands after every LAN demand. LAN weights
	// are negated host counts, so any value above zero would do; keep a
	// sentinel far away from the LAN range.
	linkWeight = int64(1) << 40
)

// Demand is a unit of address-space need.
type Demand struct {
	// ID identifies the demand in the resulting plan, e.g. "R1-LAN1" or
	// "R1-R2".
	ID string
	// Kind is KindLAN or KindLink.
	Kind Kind
	// Hosts is the number of usable addresses a LAN demand needs. It is
	// ignored for link demands, which always need exactly two.
	Hosts uint32
}

// SizedDemand is a Demand annotated with the prefix length of the subnet it
// will consume.
type SizedDemand struct {
	Demand
	// Prefix is the derived prefix length, in [0, 32].
	Prefix int
}

// DerivePrefix returns the minimum prefix length whose subnet holds hosts
// usable addresses plus the network and broadcast reservations.
//
// The function is total: hosts = 0 yields a /31 (needed = 2, so a single
// address pair), a degenerate but well-defined result that the allocator
// rejects later because such a subnet has no usable range.
func DerivePrefix(hosts uint32) int {
	needed := uint64(hosts) + 2
	return 32 - bits.Len64(needed-1)
}

// Size annotates a demand with its required prefix length: the derived
// minimum for LAN demands, clamped at the /24 ceiling, and the fixed /30 for
// links.
func Size(d Demand) SizedDemand {
	prefix := linkPrefix
	if d.Kind == KindLAN {
		prefix = DerivePrefix(d.Hosts)
		if prefix < lanPrefixCeiling {
			prefix = lanPrefixCeiling
		}
	}
	return SizedDemand{Demand: d, Prefix: prefix}
}

// blockSize returns the number of addresses a subnet of the given prefix
// length spans.
func blockSize(prefix int) uint64 {
	return uint64(1) << (32 - prefix)
}

// weight is the sort key of the packing heuristic: LAN demands by descending
// host count, link demands last.
func (d *SizedDemand) weight() int64 {
	if d.Kind == KindLink {
		return linkWeight
	}
	return -int64(d.Hosts)
}

// Order sorts sized demands largest-first: all LAN demands by descending host
// count, then every link demand. Carving big blocks first keeps the free pool
// power-of-two aligned and minimizes fragmentation; it is a greedy heuristic,
// not an optimal packing, so pathological demand sets can still fail to fit
// even when the capacity pre-check passes.
//
// The sort is stable: demands with equal host counts keep their input order,
// so identical inputs always produce identical plans.
func Order(demands []SizedDemand) []SizedDemand {
	ordered := make([]SizedDemand, len(demands))
	copy(ordered, demands)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].weight() < ordered[j].weight()
	})
	return ordered
}
