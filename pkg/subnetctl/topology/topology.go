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

// Package topology models the input of a planning run: the parent network
// and the routers with their LAN segments. A topology can be collected
// interactively or loaded from a YAML file, and flattens into the demand set
// consumed by the allocator.
package topology

import (
	"fmt"
	"net/netip"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/subnetctl/subnetctl/pkg/vlsm"
)

var validate = validator.New()

// Subnet is a LAN segment attached to a router, sized by its host count.
type Subnet struct {
	Name  string `yaml:"name"`
	Hosts uint32 `yaml:"hosts"`
}

// Router groups the LAN segments it serves. Interfaces counts the physical
// connections (loopbacks excluded); it is informational and does not
// generate demands.
type Router struct {
	Name       string   `yaml:"name"`
	Interfaces int      `yaml:"interfaces" validate:"min=0"`
	Subnets    []Subnet `yaml:"subnets" validate:"dive"`
}

// Topology is the parent network plus the routers to address.
type Topology struct {
	Network string   `yaml:"network" validate:"required,cidrv4"`
	Routers []Router `yaml:"routers" validate:"dive"`
}

// ParseNetwork parses the parent network CIDR. Parsing is non-strict: host
// bits are tolerated and the prefix is normalized to its containing network.
func ParseNetwork(cidr string) (netip.Prefix, error) {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return netip.Prefix{}, errors.Wrapf(err, "invalid network %q", cidr)
	}
	if !prefix.Addr().Is4() {
		return netip.Prefix{}, fmt.Errorf("network %q is not IPv4", cidr)
	}
	return prefix.Masked(), nil
}

// Normalize fills in the default router and subnet names (R1, R2, ... and
// LAN1, LAN2, ... within each router) for entries that do not carry one.
func (t *Topology) Normalize() {
	for r := range t.Routers {
		router := &t.Routers[r]
		if router.Name == "" {
			router.Name = fmt.Sprintf("R%d", r+1)
		}
		for s := range router.Subnets {
			if router.Subnets[s].Name == "" {
				router.Subnets[s].Name = fmt.Sprintf("LAN%d", s+1)
			}
		}
	}
}

// Validate checks the topology, including that the network is a valid IPv4
// CIDR.
func (t *Topology) Validate() error {
	if err := validate.Struct(t); err != nil {
		return errors.Wrap(err, "invalid topology")
	}
	return nil
}

// Demands flattens the topology into the allocator's demand set: one LAN
// demand per subnet, in router order, followed by one derived link demand
// per unordered router pair (a full mesh of point-to-point links).
func (t *Topology) Demands() []vlsm.Demand {
	var demands []vlsm.Demand

	for r := range t.Routers {
		router := &t.Routers[r]
		for s := range router.Subnets {
			demands = append(demands, vlsm.Demand{
				ID:    fmt.Sprintf("%s-%s", router.Name, router.Subnets[s].Name),
				Kind:  vlsm.KindLAN,
				Hosts: router.Subnets[s].Hosts,
			})
		}
	}

	for i := range t.Routers {
		for j := i + 1; j < len(t.Routers); j++ {
			demands = append(demands, vlsm.Demand{
				ID:   fmt.Sprintf("%s-%s", t.Routers[i].Name, t.Routers[j].Name),
				Kind: vlsm.KindLink,
			})
		}
	}

	return demands
}

// Load reads, normalizes and validates a topology from a YAML file.
func Load(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read topology file")
	}

	var topo Topology
	if err := yaml.Unmarshal(data, &topo); err != nil {
		return nil, errors.Wrapf(err, "failed to parse topology file %q", path)
	}

	topo.Normalize()
	if err := topo.Validate(); err != nil {
		return nil, err
	}

	return &topo, nil
}
