// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// sigcheckVerificationFactor is how much more expensive verifying a block
// past the last checkpoint is assumed to be compared to one before it, since
// signatures below the last checkpoint are not checked.
const sigcheckVerificationFactor = 5.0

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData is the metadata recorded alongside a network's checkpoints.
// It is only used to estimate sync progress, never for validation.
type CheckpointData struct {
	// LastCheckpointTime is the timestamp of the last checkpoint block.
	LastCheckpointTime time.Time

	// TxCountAtCheckpoint is the total number of transactions between
	// genesis and the last checkpoint.
	TxCountAtCheckpoint uint64

	// TxPerDay is the estimated number of transactions per day after the
	// last checkpoint.
	TxPerDay float64
}

// CheckpointTable is the ordered set of checkpoints of one network.
type CheckpointTable struct {
	checkpoints []Checkpoint
	byHeight    map[int32]*chainhash.Hash
	data        CheckpointData
	sealed      bool
}

// NewCheckpointTable returns an empty checkpoint table with the given sync
// progress metadata.
func NewCheckpointTable(data CheckpointData) *CheckpointTable {
	return &CheckpointTable{
		byHeight: make(map[int32]*chainhash.Hash),
		data:     data,
	}
}

// Add appends a checkpoint.  Checkpoints must be added from oldest to newest:
// the height must be strictly greater than the height of the previous one.
func (t *CheckpointTable) Add(height int32, hash *chainhash.Hash) error {
	if t.sealed {
		str := fmt.Sprintf("unable to add checkpoint at height %d: the "+
			"table is sealed", height)
		return configError(ErrSealed, fmt.Sprint(height), str)
	}
	if hash == nil {
		str := fmt.Sprintf("checkpoint at height %d has no hash", height)
		return configError(ErrCheckpointHash, fmt.Sprint(height), str)
	}
	if height < 0 {
		str := fmt.Sprintf("checkpoint height %d is negative", height)
		return configError(ErrCheckpointOrder, fmt.Sprint(height), str)
	}
	if last := t.LastCheckpoint(); last != nil && height <= last.Height {
		str := fmt.Sprintf("checkpoint height %d is not after the "+
			"previous checkpoint height %d", height, last.Height)
		return configError(ErrCheckpointOrder, fmt.Sprint(height), str)
	}

	hashCopy := *hash
	t.checkpoints = append(t.checkpoints, Checkpoint{Height: height, Hash: &hashCopy})
	t.byHeight[height] = &hashCopy
	return nil
}

// Validate returns whether hash is acceptable at height.  When height is a
// checkpoint, hash must match it exactly.  Any hash is acceptable at other
// heights.
func (t *CheckpointTable) Validate(height int32, hash *chainhash.Hash) bool {
	checkpointHash, ok := t.byHeight[height]
	if !ok {
		return true
	}
	return checkpointHash.IsEqual(hash)
}

// Lookup returns the checkpoint hash at height, if any.
func (t *CheckpointTable) Lookup(height int32) (chainhash.Hash, bool) {
	hash, ok := t.byHeight[height]
	if !ok {
		return chainhash.Hash{}, false
	}
	return *hash, true
}

// Checkpoints returns a copy of the checkpoints ordered from oldest to
// newest.
func (t *CheckpointTable) Checkpoints() []Checkpoint {
	checkpoints := make([]Checkpoint, 0, len(t.checkpoints))
	for _, c := range t.checkpoints {
		hash := *c.Hash
		checkpoints = append(checkpoints, Checkpoint{Height: c.Height, Hash: &hash})
	}
	return checkpoints
}

// LastCheckpoint returns the most recent checkpoint, or nil when there are
// none.
func (t *CheckpointTable) LastCheckpoint() *Checkpoint {
	if len(t.checkpoints) == 0 {
		return nil
	}
	last := t.checkpoints[len(t.checkpoints)-1]
	hash := *last.Hash
	return &Checkpoint{Height: last.Height, Hash: &hash}
}

// Data returns the sync progress metadata.
func (t *CheckpointTable) Data() CheckpointData {
	return t.data
}

// TotalBlocksEstimate returns the height of the last checkpoint, which is a
// lower bound for the height of the best chain.
func (t *CheckpointTable) TotalBlocksEstimate() int32 {
	if len(t.checkpoints) == 0 {
		return 0
	}
	return t.checkpoints[len(t.checkpoints)-1].Height
}

// GuessVerificationProgress estimates the fraction, between 0 and 1, of the
// verification work done once the chain tip has chainTxCount transactions and
// a timestamp of blockTime.  Work past the last checkpoint is extrapolated
// from the transactions per day estimate up to now and weighted by the cost
// of signature checks.
func (t *CheckpointTable) GuessVerificationProgress(chainTxCount uint64,
	blockTime, now time.Time) float64 {

	const secondsPerDay = 24 * 60 * 60

	var cheapBefore, expensiveBefore, cheapAfter, expensiveAfter float64
	if chainTxCount <= t.data.TxCountAtCheckpoint {
		cheapBefore = float64(chainTxCount)
		cheapAfter = float64(t.data.TxCountAtCheckpoint - chainTxCount)
		elapsed := now.Sub(t.data.LastCheckpointTime).Seconds()
		expensiveAfter = elapsed / secondsPerDay * t.data.TxPerDay
	} else {
		cheapBefore = float64(t.data.TxCountAtCheckpoint)
		expensiveBefore = float64(chainTxCount - t.data.TxCountAtCheckpoint)
		elapsed := now.Sub(blockTime).Seconds()
		expensiveAfter = elapsed / secondsPerDay * t.data.TxPerDay
	}

	// A tip timestamp in the future says nothing about remaining work.
	if expensiveAfter < 0 {
		expensiveAfter = 0
	}

	workBefore := cheapBefore + expensiveBefore*sigcheckVerificationFactor
	workAfter := cheapAfter + expensiveAfter*sigcheckVerificationFactor
	if workBefore+workAfter == 0 {
		return 0
	}
	return workBefore / (workBefore + workAfter)
}

// seal prevents any further additions.
func (t *CheckpointTable) seal() {
	t.sealed = true
}
