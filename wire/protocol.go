// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"

	btcwire "github.com/btcsuite/btcd/wire"
)

// Constants used to indicate the message network.  They are the 4-byte
// message start preamble of each network read as a little-endian uint32, so
// they can be used anywhere the btcd wire package expects a BitcoinNet.
const (
	// MainNet represents the main network.  Preamble d1 2e 1e e6.
	MainNet btcwire.BitcoinNet = 0xe61e2ed1

	// TestNet represents the test network.  Preamble ce ca e2 ff.
	TestNet btcwire.BitcoinNet = 0xffe2cace

	// RegTest represents the regression test network.  Preamble fc b7 c1 dc.
	RegTest btcwire.BitcoinNet = 0xdcc1b7fc
)

// netStrings is a map of networks back to their constant names for pretty
// printing.
var netStrings = map[btcwire.BitcoinNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegTest: "RegTest",
}

// NetString returns the network in human-readable form.  The btcd String
// method only knows about bitcoin networks, so it can't be used here.
func NetString(net btcwire.BitcoinNet) string {
	if s, ok := netStrings[net]; ok {
		return s
	}

	return fmt.Sprintf("Unknown network (%d)", uint32(net))
}

// MessageStart returns the preamble bytes in the order they are transmitted
// at the start of every peer message.
func MessageStart(net btcwire.BitcoinNet) [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(net))
	return start
}

// NetFromMessageStart is the inverse of MessageStart.
func NetFromMessageStart(start [4]byte) btcwire.BitcoinNet {
	return btcwire.BitcoinNet(binary.LittleEndian.Uint32(start[:]))
}
