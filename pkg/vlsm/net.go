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
	"encoding/binary"
	"fmt"
	"net/netip"
)

// addrToUint32 converts an IPv4 address to its numeric value.
func addrToUint32(addr netip.Addr) uint32 {
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:])
}

// uint32ToAddr converts a numeric value back to an IPv4 address.
func uint32ToAddr(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

func checkHostBitsZero(prefix netip.Prefix) error {
	if prefix.Masked().Addr().Compare(prefix.Addr()) != 0 {
		return fmt.Errorf("%s: host bits must be zero", prefix)
	}
	return nil
}

// splitPrefix splits a network prefix into its two halves. It increases the
// prefix length by one and sets the new bit to 0 or 1 to obtain the two
// subnets. The prefix must have zero host bits and be shorter than /32.
func splitPrefix(prefix netip.Prefix) (left, right netip.Prefix) {
	if err := checkHostBitsZero(prefix); err != nil {
		panic(err)
	}
	if prefix.Bits() >= 32 {
		panic(fmt.Errorf("%s: cannot split a /32", prefix))
	}

	bits := prefix.Bits() + 1
	addr := addrToUint32(prefix.Addr())

	left = netip.PrefixFrom(prefix.Addr(), bits)
	right = netip.PrefixFrom(uint32ToAddr(addr|1<<(32-bits)), bits)
	return left, right
}

// netmask returns the dotted-quad netmask of a prefix length, e.g. /26 maps
// to 255.255.255.192.
func netmask(bits int) netip.Addr {
	if bits == 0 {
		return uint32ToAddr(0)
	}
	return uint32ToAddr(^uint32(0) << (32 - bits))
}

// broadcast returns the last address of a network, i.e. the one with all
// host bits set.
func broadcast(prefix netip.Prefix) netip.Addr {
	addr := addrToUint32(prefix.Masked().Addr())
	host := ^uint32(0) >> prefix.Bits()
	return uint32ToAddr(addr | host)
}
