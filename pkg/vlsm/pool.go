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
)

// Pool is an ordered sequence of disjoint IPv4 networks representing the
// address space not yet allocated. Carving is expressed as a transformation
// from one pool value to the next, so each step of the allocation loop can be
// inspected in isolation; a pool is never mutated in place.
type Pool struct {
	blocks []netip.Prefix
}

// NewPool returns a pool holding the whole parent network. The parent is
// masked, so a prefix with non-zero host bits is normalized to its containing
// network.
func NewPool(parent netip.Prefix) Pool {
	return Pool{blocks: []netip.Prefix{parent.Masked()}}
}

// Blocks returns a copy of the free blocks, in pool order.
func (p Pool) Blocks() []netip.Prefix {
	blocks := make([]netip.Prefix, len(p.blocks))
	copy(blocks, p.blocks)
	return blocks
}

// Empty reports whether no free space is left.
func (p Pool) Empty() bool {
	return len(p.blocks) == 0
}

// Carve allocates the first subnet of the given prefix length that fits in
// the pool. It scans the blocks in pool order for the first one large enough
// (block prefix length <= bits), takes its lowest-addressed aligned sub-block
// as the allocation, and replaces the block with the binary complement of the
// allocation: the aligned sibling blocks covering the rest of it, reinserted
// in place in ascending address order.
//
// The returned pool shares no state with the receiver. ok is false when no
// block can host the request, leaving the pool unchanged.
func (p Pool) Carve(bits int) (allocated netip.Prefix, next Pool, ok bool) {
	for i, block := range p.blocks {
		if block.Bits() > bits {
			continue
		}

		allocated = netip.PrefixFrom(block.Addr(), bits)

		// Walking down to the allocation keeps, at each split, the
		// right half as part of the complement. Collected top-down the
		// halves are in descending address order, hence the reversal.
		var complement []netip.Prefix
		for cur := block; cur.Bits() < bits; {
			left, right := splitPrefix(cur)
			complement = append(complement, right)
			cur = left
		}
		for l, r := 0, len(complement)-1; l < r; l, r = l+1, r-1 {
			complement[l], complement[r] = complement[r], complement[l]
		}

		blocks := make([]netip.Prefix, 0, len(p.blocks)-1+len(complement))
		blocks = append(blocks, p.blocks[:i]...)
		blocks = append(blocks, complement...)
		blocks = append(blocks, p.blocks[i+1:]...)

		return allocated, Pool{blocks: blocks}, true
	}

	return netip.Prefix{}, p, false
}
