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

// Package vlsm computes Variable-Length Subnet Mask allocation plans: it
// partitions one parent IPv4 network into the smallest sufficient,
// non-overlapping subnets covering a set of LAN and point-to-point demands.
//
// The allocator is pure and deterministic: it performs no I/O, owns its free
// pool for the duration of a single run, and maps identical inputs to
// identical plans. Concurrent runs are safe as long as each uses its own
// inputs, since no state is shared across invocations.
package vlsm

import (
	"fmt"
	"net/netip"
)

// CapacityError reports that the sized demands cannot possibly fit in the
// parent network: the sum of their block sizes exceeds its address count.
//
// The bound is optimistic. It sums the exact block each demand will consume
// at its clamped prefix length but ignores fragmentation loss from the
// carving order, so a passing pre-check does not guarantee that every demand
// fits (see Plan.Skipped).
type CapacityError struct {
	// Needed is the total number of addresses the demands consume.
	Needed uint64
	// Available is the number of addresses in the parent network.
	Available uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("demands need %d addresses, parent network only has %d", e.Needed, e.Available)
}

// DegeneratePrefixError reports a demand whose subnet would have no usable
// host addresses: a /31 or /32 cannot hold a host beside the network and
// broadcast reservations.
type DegeneratePrefixError struct {
	// DemandID identifies the rejected demand.
	DemandID string
	// Prefix is the derived prefix length, greater than 30.
	Prefix int
}

func (e *DegeneratePrefixError) Error() string {
	return fmt.Sprintf("demand %q requires a /%d, which has no usable host addresses", e.DemandID, e.Prefix)
}

// Allocation binds one demand to the subnet carved out for it. Immutable
// once created.
type Allocation struct {
	// DemandID is the identifier of the satisfied demand.
	DemandID string
	// Kind is the kind of the satisfied demand.
	Kind Kind
	// Network is the allocated subnet.
	Network netip.Prefix
	// Netmask is the dotted-quad form of the subnet's prefix length.
	Netmask netip.Addr
	// FirstUsable and LastUsable delimit the usable host range, i.e. the
	// subnet minus its network and broadcast addresses.
	FirstUsable netip.Addr
	LastUsable  netip.Addr
	// Broadcast is the last address of the subnet.
	Broadcast netip.Addr
}

// Plan is the outcome of one allocation run: the allocations in carving
// order (largest-first, not input order) plus the identifiers of the demands
// that could not be fitted. Never mutated after being returned.
type Plan struct {
	Allocations []Allocation
	Skipped     []string
}

// newAllocation derives the reportable addresses of a subnet bound to a
// demand. The prefix length is at most /30, so the usable range is always
// non-empty.
func newAllocation(d *SizedDemand, network netip.Prefix) Allocation {
	bcast := broadcast(network)
	return Allocation{
		DemandID:    d.ID,
		Kind:        d.Kind,
		Network:     network,
		Netmask:     netmask(network.Bits()),
		FirstUsable: network.Addr().Next(),
		LastUsable:  bcast.Prev(),
		Broadcast:   bcast,
	}
}

// CheckCapacity fails fast when a demand set is obviously hopeless: it sums
// the block size consumed by every sized demand and compares it against the
// parent's address count. Equality passes; only a strictly larger sum is
// rejected.
func CheckCapacity(parent netip.Prefix, demands []SizedDemand) error {
	var needed uint64
	for i := range demands {
		needed += blockSize(demands[i].Prefix)
	}
	available := blockSize(parent.Bits())
	if needed > available {
		return &CapacityError{Needed: needed, Available: available}
	}
	return nil
}

// Allocate carves a subnet for each demand, in the given order, out of a
// pool initialized to the parent network. A demand no free block can host is
// recorded as skipped and the loop moves on: a partial plan is valid output,
// the loop never aborts early.
func Allocate(parent netip.Prefix, ordered []SizedDemand) *Plan {
	plan := &Plan{}
	pool := NewPool(parent)

	for i := range ordered {
		network, next, ok := pool.Carve(ordered[i].Prefix)
		if !ok {
			plan.Skipped = append(plan.Skipped, ordered[i].ID)
			continue
		}
		pool = next
		plan.Allocations = append(plan.Allocations, newAllocation(&ordered[i], network))
	}

	return plan
}

// Compute runs the whole pipeline: it sizes the demands, rejects degenerate
// ones, pre-checks capacity, orders largest-first and carves. The parent
// prefix is masked, so host bits are tolerated and normalized away.
//
// A nil error does not imply a complete plan: demands stranded by
// fragmentation are reported through Plan.Skipped, which is an artifact of
// the greedy ordering heuristic rather than a hard space shortage.
func Compute(parent netip.Prefix, demands []Demand) (*Plan, error) {
	if !parent.Addr().Is4() {
		return nil, fmt.Errorf("parent network %q is not IPv4", parent)
	}
	parent = parent.Masked()

	sized := make([]SizedDemand, len(demands))
	for i := range demands {
		sized[i] = Size(demands[i])
		if sized[i].Prefix > maxUsablePrefix {
			return nil, &DegeneratePrefixError{DemandID: sized[i].ID, Prefix: sized[i].Prefix}
		}
	}

	if err := CheckCapacity(parent, sized); err != nil {
		return nil, err
	}

	return Allocate(parent, Order(sized)), nil
}
