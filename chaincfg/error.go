// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// AssertionError identifies a fatal inconsistency in the hard-coded network
// parameters, such as a genesis block that doesn't hash to its pinned value.
// It is only ever raised through panic: the binary and its declared constants
// disagree about which chain they follow and there is nothing a caller could
// do to recover.
type AssertionError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertionError) Error() string {
	return "assertion failed: " + string(e)
}

// fatalf logs the formatted diagnostic at the critical level and then panics
// with it as an AssertionError.
func fatalf(format string, params ...interface{}) {
	msg := fmt.Sprintf(format, params...)
	log.Criticalf("%s", msg)
	panic(AssertionError(msg))
}

// ErrorCode identifies a kind of configuration error.
type ErrorCode int

// These constants are used to identify a specific ConfigError.
const (
	// ErrUnknownNetwork indicates a network identifier that doesn't name
	// one of the known networks.
	ErrUnknownNetwork ErrorCode = iota

	// ErrAlreadySelected indicates an attempt to select a different
	// active network after one has already been selected.
	ErrAlreadySelected

	// ErrDuplicateNet indicates two network profiles sharing a name or
	// message start preamble.
	ErrDuplicateNet

	// ErrGenesisHashMismatch indicates the constructed genesis block does
	// not hash to the pinned genesis hash.
	ErrGenesisHashMismatch

	// ErrGenesisMerkleMismatch indicates the constructed genesis block's
	// merkle root does not match the pinned merkle root.
	ErrGenesisMerkleMismatch

	// ErrGenesisTarget indicates genesis difficulty bits that encode a
	// non-positive target or one above the proof-of-work limit.
	ErrGenesisTarget

	// ErrGenesisScript indicates a genesis coinbase script that can't be
	// built, such as an oversized message or an invalid reward key.
	ErrGenesisScript

	// ErrConfirmationWindow indicates the miner confirmation window does
	// not agree with the target timespan and spacing, or the activation
	// threshold exceeds it.
	ErrConfirmationWindow

	// ErrDeploymentName indicates a deployment without a name or with a
	// name that is already registered.
	ErrDeploymentName

	// ErrDeploymentBit indicates a deployment bit outside of the range
	// usable for version bits signaling.
	ErrDeploymentBit

	// ErrDeploymentTimes indicates a deployment whose start time is not
	// before its timeout, or a partial use of the always-active sentinels.
	ErrDeploymentTimes

	// ErrDeploymentThreshold indicates a deployment whose threshold is
	// zero or exceeds its window size.
	ErrDeploymentThreshold

	// ErrDeploymentBitCollision indicates two deployments signaling on
	// the same bit with overlapping time windows.
	ErrDeploymentBitCollision

	// ErrCheckpointOrder indicates a checkpoint whose height is not
	// strictly greater than the previous one.
	ErrCheckpointOrder

	// ErrCheckpointHash indicates a checkpoint without a hash.
	ErrCheckpointHash

	// ErrSealed indicates an attempt to modify a deployment registry or
	// checkpoint table after its network profile was built.
	ErrSealed

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrUnknownNetwork:         "ErrUnknownNetwork",
	ErrAlreadySelected:        "ErrAlreadySelected",
	ErrDuplicateNet:           "ErrDuplicateNet",
	ErrGenesisHashMismatch:    "ErrGenesisHashMismatch",
	ErrGenesisMerkleMismatch:  "ErrGenesisMerkleMismatch",
	ErrGenesisTarget:          "ErrGenesisTarget",
	ErrGenesisScript:          "ErrGenesisScript",
	ErrConfirmationWindow:     "ErrConfirmationWindow",
	ErrDeploymentName:         "ErrDeploymentName",
	ErrDeploymentBit:          "ErrDeploymentBit",
	ErrDeploymentTimes:        "ErrDeploymentTimes",
	ErrDeploymentThreshold:    "ErrDeploymentThreshold",
	ErrDeploymentBitCollision: "ErrDeploymentBitCollision",
	ErrCheckpointOrder:        "ErrCheckpointOrder",
	ErrCheckpointHash:         "ErrCheckpointHash",
	ErrSealed:                 "ErrSealed",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// ConfigError identifies a network parameter that is not acceptable, along
// with the input that caused it.  The caller can use type assertions to
// determine if a failure was specifically due to a configuration problem and
// access the ErrorCode field to ascertain the specific reason.
type ConfigError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Input       string    // The offending input, if any
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e ConfigError) Error() string {
	return e.Description
}

// configError creates a ConfigError given a set of arguments.
func configError(c ErrorCode, input, desc string) ConfigError {
	return ConfigError{ErrorCode: c, Input: input, Description: desc}
}

// IsErrorCode returns whether err is a ConfigError with the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	cerr, ok := err.(ConfigError)
	return ok && cerr.ErrorCode == c
}
