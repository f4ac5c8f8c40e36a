// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	x11 "github.com/samli88/go-x11-hash"
)

// BlockHash computes the identity hash of a block header.  Unlike bitcoin,
// which uses double sha256, blocks on these networks are identified by the
// X11 hash of the serialized 80-byte header.  Transaction hashes and merkle
// roots are still double sha256.
func BlockHash(header *btcwire.BlockHeader) chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, btcwire.MaxBlockHeaderPayload))

	// Serializing into a bytes.Buffer can't fail.
	_ = header.Serialize(buf)

	var hash chainhash.Hash
	x11.New().Hash(buf.Bytes(), hash[:])
	return hash
}
