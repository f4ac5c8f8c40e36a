// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// genesisMerkleRoot is the coinbase hash shared by the default network
// genesis blocks.
const genesisMerkleRoot = "17f606cf3ec3991bbc9aec34a1f5355469c53013d83d627a62f6fb8bbcd35e9b"

// TestBlockHash checks the X11 header hash against known headers.  The Dash
// genesis header pins the hash function itself since its X11 hash is widely
// published, while the remaining entries are the default network genesis
// headers.
func TestBlockHash(t *testing.T) {
	tests := []struct {
		name       string
		merkleRoot string
		timestamp  int64
		bits       uint32
		nonce      uint32
		want       string
	}{
		{
			name:       "dash genesis",
			merkleRoot: "e0028eb9648db56b1ac77cf090b99048a8007e2bb64b68f092c03c7f56a662c7",
			timestamp:  1390095618,
			bits:       0x1e0ffff0,
			nonce:      28917698,
			want:       "00000ffd590b1485b3caadc19b22e6379c733355108f107a430458cdf3407ab6",
		},
		{
			name:       "mainnet genesis",
			merkleRoot: genesisMerkleRoot,
			timestamp:  1531008000,
			bits:       0x1e0ffff0,
			nonce:      193523,
			want:       "323911dd51cf96fbfb41e2a05e222eee8dd264f367075a37cc163e588425e075",
		},
		{
			name:       "testnet genesis",
			merkleRoot: genesisMerkleRoot,
			timestamp:  1512849601,
			bits:       0x1e0ffff0,
			nonce:      490078,
			want:       "2cfef32205abfc9693ae13c702e35836781041bb82b0490a7d2950706716fbbf",
		},
		{
			name:       "regtest genesis",
			merkleRoot: genesisMerkleRoot,
			timestamp:  1512849602,
			bits:       0x207fffff,
			nonce:      0,
			want:       "fe0fd31dedd547d3d8b75b6807c93b200d78df852fd6ffdf9cbe55e1b91214ee",
		},
	}

	for _, test := range tests {
		merkleRoot, err := chainhash.NewHashFromStr(test.merkleRoot)
		require.NoError(t, err, test.name)

		header := btcwire.NewBlockHeader(1, &chainhash.Hash{}, merkleRoot,
			test.bits, test.nonce)
		header.Timestamp = time.Unix(test.timestamp, 0)

		got := BlockHash(header)
		require.Equal(t, test.want, got.String(), test.name)

		// The identity hash must not be confused with the double sha256
		// header hash btcd computes.
		require.NotEqual(t, header.BlockHash(), got, test.name)

		// Hashing is a pure function of the header.
		require.Equal(t, got, BlockHash(header), test.name)
	}
}
