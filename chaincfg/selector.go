// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"slices"
	"sync/atomic"

	btcwire "github.com/btcsuite/btcd/wire"
	"golang.org/x/exp/maps"

	"github.com/mobitglobal/mobitd/wire"
)

// Selector maps network names to their parameters and holds the one network
// the process runs on.  The active network is selected once; it can't be
// changed or cleared afterwards.
//
// The selector keeps its own copies of the parameters and only returns deep
// copies of them.
//
// A Selector is safe for concurrent use.
type Selector struct {
	profiles map[string]*Params
	active   atomic.Pointer[Params]
}

// NewSelector returns a selector over copies of the passed network
// parameters.  Names and network magics must be unique.
func NewSelector(profiles ...*Params) (*Selector, error) {
	byName := make(map[string]*Params, len(profiles))
	byNet := make(map[btcwire.BitcoinNet]*Params, len(profiles))
	for _, p := range profiles {
		if other, ok := byName[p.Name]; ok {
			str := fmt.Sprintf("network %q is defined twice", other.Name)
			return nil, configError(ErrDuplicateNet, p.Name, str)
		}
		if other, ok := byNet[p.Net]; ok {
			str := fmt.Sprintf("networks %q and %q share the magic %v",
				other.Name, p.Name, wire.NetString(p.Net))
			return nil, configError(ErrDuplicateNet, p.Name, str)
		}
		p = p.Copy()
		byName[p.Name] = p
		byNet[p.Net] = p
	}

	return &Selector{profiles: byName}, nil
}

// LookupProfile returns a copy of the parameters of the named network.  It
// doesn't depend on, nor change, the active network.
func (s *Selector) LookupProfile(name string) (*Params, error) {
	p, err := s.profile(name)
	if err != nil {
		return nil, err
	}
	return p.Copy(), nil
}

func (s *Selector) profile(name string) (*Params, error) {
	p, ok := s.profiles[name]
	if !ok {
		str := fmt.Sprintf("unknown network %q", name)
		return nil, configError(ErrUnknownNetwork, name, str)
	}
	return p, nil
}

// SelectActive makes the named network the active one.  Selecting the
// already active network again is a no-op.  Selecting an unknown network, or
// a different network once one is active, fails and leaves the active
// network unchanged.
func (s *Selector) SelectActive(name string) error {
	p, err := s.profile(name)
	if err != nil {
		return err
	}

	if s.active.CompareAndSwap(nil, p) {
		log.Infof("Active network: %s (%s, port %s)", p.Name,
			wire.NetString(p.Net), p.DefaultPort)
		return nil
	}

	active := s.active.Load()
	if active == p {
		return nil
	}
	str := fmt.Sprintf("unable to select network %q: network %q is already "+
		"active", name, active.Name)
	return configError(ErrAlreadySelected, name, str)
}

// ActiveProfile returns a copy of the parameters of the active network.
// Calling it before a network was selected is a programming error and panics
// with an AssertionError.
func (s *Selector) ActiveProfile() *Params {
	p := s.active.Load()
	if p == nil {
		fatalf("network parameters were read before a network was selected")
	}
	return p.Copy()
}

// Networks returns the sorted names of the known networks.
func (s *Selector) Networks() []string {
	names := maps.Keys(s.profiles)
	slices.Sort(names)
	return names
}

// defaultSelector selects among the default networks.
var defaultSelector = mustNewDefaultSelector()

func mustNewDefaultSelector() *Selector {
	s, err := NewSelector(MainNetParams, TestNetParams, RegressionNetParams)
	if err != nil {
		fatalf("%v", err)
	}
	return s
}

// LookupProfile returns the parameters of the named default network: one of
// "main", "test" or "regtest".
func LookupProfile(name string) (*Params, error) {
	return defaultSelector.LookupProfile(name)
}

// SelectActive makes the named default network the process wide active
// network.  See Selector.SelectActive.
func SelectActive(name string) error {
	return defaultSelector.SelectActive(name)
}

// ActiveProfile returns the process wide active network parameters.  It
// panics when SelectActive has not succeeded yet.
func ActiveProfile() *Params {
	return defaultSelector.ActiveProfile()
}

// Networks returns the sorted names of the default networks.
func Networks() []string {
	return defaultSelector.Networks()
}
