// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math"

	"github.com/btcsuite/btcd/blockchain"
)

const (
	// MaxDeploymentBit is the highest block version bit a deployment may
	// signal on.  Bits 29 and above are taken by the version bits top
	// bits.
	MaxDeploymentBit = 28

	// DeploymentAlwaysActive is the start time sentinel for a deployment
	// that is active from the genesis block.  It must be paired with
	// DeploymentNoTimeout.
	DeploymentAlwaysActive int64 = -1

	// DeploymentNoTimeout is the timeout of a deployment that never
	// expires.
	DeploymentNoTimeout int64 = math.MaxInt64
)

// Names of the deployments defined on the default networks.
const (
	// DeploymentTestDummy is a deployment used for testing purposes.
	DeploymentTestDummy = "testdummy"

	// DeploymentCSV is the CSV soft-fork package: BIPs 68, 112 and 113.
	DeploymentCSV = "csv"

	// DeploymentDIP0001 is the DIP0001 soft-fork raising the block size
	// and lowering fees.
	DeploymentDIP0001 = "dip0001"
)

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// Name identifies the deployment within its network.
	Name string

	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time, in unix seconds, after which
	// voting on the deployment starts.
	StartTime int64

	// ExpireTime is the median block time, in unix seconds, after which
	// the attempted deployment expires.
	ExpireTime int64

	// WindowSize is the number of blocks in each signaling window.  Zero
	// means the network's MinerConfirmationWindow.
	WindowSize uint32

	// Threshold is the number of blocks within one window that must
	// signal for the deployment to lock in.  Zero means the network's
	// RuleChangeActivationThreshold.
	Threshold uint32
}

// AlwaysActive returns whether the deployment uses the always-active
// sentinel pair.
func (d *ConsensusDeployment) AlwaysActive() bool {
	return d.StartTime == DeploymentAlwaysActive &&
		d.ExpireTime == DeploymentNoTimeout
}

// interval returns the [start, expire) interval during which the deployment
// may signal.  An always-active deployment covers the whole time line.
func (d *ConsensusDeployment) interval() (int64, int64) {
	if d.AlwaysActive() {
		return math.MinInt64, math.MaxInt64
	}
	return d.StartTime, d.ExpireTime
}

// overlaps returns whether the signaling intervals of the two deployments
// intersect.
func (d *ConsensusDeployment) overlaps(other *ConsensusDeployment) bool {
	start, expire := d.interval()
	otherStart, otherExpire := other.interval()
	return start < otherExpire && otherStart < expire
}

// DeploymentRegistry is the validated, ordered set of deployments of one
// network.  Deployments are registered while the network parameters are
// built; the registry is sealed afterwards and only read.
type DeploymentRegistry struct {
	defaultThreshold uint32
	defaultWindow    uint32
	deployments      []ConsensusDeployment
	sealed           bool
}

// NewDeploymentRegistry returns an empty registry.  The passed threshold and
// window are used for deployments that don't specify their own.
func NewDeploymentRegistry(defaultThreshold, defaultWindow uint32) *DeploymentRegistry {
	return &DeploymentRegistry{
		defaultThreshold: defaultThreshold,
		defaultWindow:    defaultWindow,
	}
}

// Register validates the deployment and adds it to the registry.  The window
// size and threshold are filled in from the registry defaults when unset.
// The deployment is rejected when its bit collides with an already
// registered deployment whose signaling interval overlaps its own.
func (r *DeploymentRegistry) Register(d ConsensusDeployment) error {
	if r.sealed {
		str := fmt.Sprintf("unable to register deployment %q: the "+
			"registry is sealed", d.Name)
		return configError(ErrSealed, d.Name, str)
	}

	if d.Name == "" {
		return configError(ErrDeploymentName, "", "deployment has no name")
	}
	if _, ok := r.Lookup(d.Name); ok {
		str := fmt.Sprintf("deployment %q is already registered", d.Name)
		return configError(ErrDeploymentName, d.Name, str)
	}

	if d.BitNumber > MaxDeploymentBit {
		str := fmt.Sprintf("deployment %q uses bit %d, max allowed is %d",
			d.Name, d.BitNumber, MaxDeploymentBit)
		return configError(ErrDeploymentBit, d.Name, str)
	}

	switch {
	case d.AlwaysActive():
	case d.StartTime == DeploymentAlwaysActive:
		str := fmt.Sprintf("deployment %q is always active but has "+
			"timeout %d", d.Name, d.ExpireTime)
		return configError(ErrDeploymentTimes, d.Name, str)
	case d.StartTime < 0 || d.StartTime >= d.ExpireTime:
		str := fmt.Sprintf("deployment %q start time %d is not before "+
			"its timeout %d", d.Name, d.StartTime, d.ExpireTime)
		return configError(ErrDeploymentTimes, d.Name, str)
	}

	if d.WindowSize == 0 {
		d.WindowSize = r.defaultWindow
	}
	if d.Threshold == 0 {
		d.Threshold = r.defaultThreshold
	}
	if d.Threshold == 0 || d.Threshold > d.WindowSize {
		str := fmt.Sprintf("deployment %q threshold %d is not within its "+
			"window size %d", d.Name, d.Threshold, d.WindowSize)
		return configError(ErrDeploymentThreshold, d.Name, str)
	}

	for i := range r.deployments {
		other := &r.deployments[i]
		if other.BitNumber != d.BitNumber || !other.overlaps(&d) {
			continue
		}
		str := fmt.Sprintf("deployment %q uses bit %d which overlaps "+
			"in time with deployment %q", d.Name, d.BitNumber,
			other.Name)
		return configError(ErrDeploymentBitCollision, d.Name, str)
	}

	r.deployments = append(r.deployments, d)
	return nil
}

// AllDeployments returns a copy of the registered deployments in
// registration order.
func (r *DeploymentRegistry) AllDeployments() []ConsensusDeployment {
	deployments := make([]ConsensusDeployment, len(r.deployments))
	copy(deployments, r.deployments)
	return deployments
}

// Lookup returns the registered deployment with the given name.
func (r *DeploymentRegistry) Lookup(name string) (ConsensusDeployment, bool) {
	for _, d := range r.deployments {
		if d.Name == name {
			return d, true
		}
	}
	return ConsensusDeployment{}, false
}

// Len returns the number of registered deployments.
func (r *DeploymentRegistry) Len() int {
	return len(r.deployments)
}

// seal prevents any further registration.
func (r *DeploymentRegistry) seal() {
	r.sealed = true
}

// The per-block deployment state is computed by the chain, not here.  The
// functions below pin down the BIP0009 state machine the registered
// definitions feed, using the btcd state values:
//
//	Defined  -> Started   once the window's median time reaches StartTime
//	Defined  -> Failed    once the window's median time reaches ExpireTime
//	Started  -> LockedIn  once Threshold of WindowSize blocks signal
//	Started  -> Failed    once the median time reaches ExpireTime
//	LockedIn -> Active    after exactly one more window
//
// Active and Failed are terminal.

// IsTerminalState returns whether no further transition can happen from the
// passed state.
func IsTerminalState(state blockchain.ThresholdState) bool {
	return state == blockchain.ThresholdActive ||
		state == blockchain.ThresholdFailed
}

// ValidThresholdTransition returns whether a deployment in state from at one
// window boundary may be in state to at the next one.
func ValidThresholdTransition(from, to blockchain.ThresholdState) bool {
	switch from {
	case blockchain.ThresholdDefined:
		return to == blockchain.ThresholdDefined ||
			to == blockchain.ThresholdStarted ||
			to == blockchain.ThresholdFailed

	case blockchain.ThresholdStarted:
		return to == blockchain.ThresholdStarted ||
			to == blockchain.ThresholdLockedIn ||
			to == blockchain.ThresholdFailed

	case blockchain.ThresholdLockedIn:
		return to == blockchain.ThresholdActive

	case blockchain.ThresholdActive, blockchain.ThresholdFailed:
		return to == from
	}

	return false
}
