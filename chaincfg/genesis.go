// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/mobitglobal/mobitd/wire"
)

const (
	// genesisCoinbaseBits is the value pushed first in the genesis
	// coinbase signature script.  It's the bitcoin genesis difficulty bits
	// and carries no meaning for these networks, but it is part of the
	// pinned genesis transaction.
	genesisCoinbaseBits = 486604799

	// genesisCoinbaseExtraNonce is pushed after genesisCoinbaseBits as a
	// one byte data push (not as OP_4).
	genesisCoinbaseExtraNonce = 4
)

// GenesisMessage is the timestamp message embedded in the coinbase of every
// default network's genesis block.
var GenesisMessage = []byte("CNN 24/Nov/2017 Jeff Bezos is now worth $100 billion")

// genesisPubKey is the uncompressed public key the genesis reward of every
// default network is paid to.
var genesisPubKey = mustDecodeHex("0459c0c3032f67e8277e2fd194d9a9c7f60103ff45cb" +
	"8e017cbb016ec099ea3e06385668bd2957f6b8edfbf7cecf163b4faa5bd90e3eed806512fd" +
	"50aa9232198a")

// GenesisScriptSig returns the signature script of a genesis coinbase
// embedding message.  There is no previous output to satisfy, so the script
// is never executed and only serves to carry the message.
func GenesisScriptSig(message []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, genesisCoinbaseExtraNonce}).
		AddData(message).
		Script()
}

// PayToPubKeyScript returns a pay-to-pubkey script paying to the passed
// serialized public key, which must be a valid secp256k1 point.
func PayToPubKeyScript(pubKey []byte) ([]byte, error) {
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return nil, err
	}

	return txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// BuildGenesis creates a genesis block.  The block contains a single coinbase
// transaction whose only input references no previous output and carries
// message in its signature script, and whose only output pays reward to
// rewardScript.  The output can't be spent since it was never added to the
// utxo set.
//
// The result depends only on the arguments.
func BuildGenesis(message, rewardScript []byte, timestamp time.Time, nonce,
	bits uint32, version int32, reward btcutil.Amount) (*btcwire.MsgBlock, error) {

	scriptSig, err := GenesisScriptSig(message)
	if err != nil {
		str := fmt.Sprintf("unable to build genesis signature script: %v", err)
		return nil, configError(ErrGenesisScript, "", str)
	}

	coinbase := btcwire.NewMsgTx(1)
	coinbase.AddTxIn(&btcwire.TxIn{
		PreviousOutPoint: *btcwire.NewOutPoint(&chainhash.Hash{},
			btcwire.MaxPrevOutIndex),
		SignatureScript: scriptSig,
		Sequence:        btcwire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(btcwire.NewTxOut(int64(reward), rewardScript))

	// With a single transaction the merkle tree is just its hash.
	merkles := blockchain.BuildMerkleTreeStore(
		[]*btcutil.Tx{btcutil.NewTx(coinbase)}, false)
	merkleRoot := merkles[len(merkles)-1]

	header := btcwire.NewBlockHeader(version, &chainhash.Hash{}, merkleRoot,
		bits, nonce)
	header.Timestamp = time.Unix(timestamp.Unix(), 0)

	block := btcwire.NewMsgBlock(header)
	if err := block.AddTransaction(coinbase); err != nil {
		return nil, err
	}
	return block, nil
}

// ValidateGenesis checks the identity hash and merkle root of block against
// the pinned values.  The merkle root is recomputed from the transactions
// rather than trusted from the header.
func ValidateGenesis(block *btcwire.MsgBlock, expectedHash,
	expectedMerkleRoot *chainhash.Hash) error {

	var computed *chainhash.Hash
	if len(block.Transactions) > 0 {
		txns := make([]*btcutil.Tx, 0, len(block.Transactions))
		for _, tx := range block.Transactions {
			txns = append(txns, btcutil.NewTx(tx))
		}
		merkles := blockchain.BuildMerkleTreeStore(txns, false)
		computed = merkles[len(merkles)-1]
	}
	if !expectedMerkleRoot.IsEqual(computed) ||
		block.Header.MerkleRoot != *expectedMerkleRoot {

		str := fmt.Sprintf("genesis merkle root %v does not match pinned "+
			"merkle root %v", block.Header.MerkleRoot, expectedMerkleRoot)
		return configError(ErrGenesisMerkleMismatch,
			block.Header.MerkleRoot.String(), str)
	}

	hash := wire.BlockHash(&block.Header)
	if !expectedHash.IsEqual(&hash) {
		str := fmt.Sprintf("genesis hash %v does not match pinned hash %v",
			hash, expectedHash)
		return configError(ErrGenesisHashMismatch, hash.String(), str)
	}

	return nil
}

// checkGenesisTarget ensures the genesis difficulty bits describe a positive
// target that doesn't exceed the proof-of-work limit.  The genesis block is
// never checked for proof of work, so its hash isn't compared to the target.
func checkGenesisTarget(block *btcwire.MsgBlock, powLimit *big.Int) error {
	target := blockchain.CompactToBig(block.Header.Bits)
	if target.Sign() <= 0 || target.Cmp(powLimit) > 0 {
		str := fmt.Sprintf("genesis target %064x is outside of the "+
			"proof-of-work limit %064x", target, powLimit)
		return configError(ErrGenesisTarget, "", str)
	}

	return nil
}

// mustBuildGenesis builds and checks the genesis block of a default network.
// Any failure means the hard-coded parameters are inconsistent and is fatal.
func mustBuildGenesis(netName string, g *genesisParams, powLimit *big.Int) *btcwire.MsgBlock {
	rewardScript, err := PayToPubKeyScript(g.pubKey)
	if err != nil {
		fatalf("%s: invalid genesis reward key: %v", netName, err)
	}

	block, err := BuildGenesis(g.message, rewardScript, time.Unix(g.timestamp, 0),
		g.nonce, g.bits, g.version, g.reward)
	if err != nil {
		fatalf("%s: unable to build genesis block: %v", netName, err)
	}

	err = ValidateGenesis(block, newHashFromStr(g.hash),
		newHashFromStr(g.merkleRoot))
	if err != nil {
		fatalf("%s: %v", netName, err)
	}
	if err := checkGenesisTarget(block, powLimit); err != nil {
		fatalf("%s: %v", netName, err)
	}

	return block
}

// genesisParams holds the recorded inputs of a network's genesis block along
// with the hash and merkle root it is pinned to.
type genesisParams struct {
	message    []byte
	pubKey     []byte
	timestamp  int64
	nonce      uint32
	bits       uint32
	version    int32
	reward     btcutil.Amount
	hash       string
	merkleRoot string
}

// mustDecodeHex decodes a hard-coded hex string and panics on failure.
func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
