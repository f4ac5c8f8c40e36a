// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	btcdchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/mobitglobal/mobitd/wire"
)

// PowAlgorithm identifies the difficulty retarget algorithm in force at a
// given height.
type PowAlgorithm uint8

const (
	// PowOriginal is the bitcoin retarget algorithm.
	PowOriginal PowAlgorithm = iota

	// PowKGW is Kimoto Gravity Well.
	PowKGW

	// PowDGW is Dark Gravity Wave.
	PowDGW
)

var powAlgorithmStrings = map[PowAlgorithm]string{
	PowOriginal: "original",
	PowKGW:      "KGW",
	PowDGW:      "DGW",
}

// String returns the PowAlgorithm in human-readable form.
func (a PowAlgorithm) String() string {
	if s, ok := powAlgorithmStrings[a]; ok {
		return s
	}
	return fmt.Sprintf("Unknown PowAlgorithm (%d)", uint8(a))
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// ConsensusParams holds the consensus critical constants of a network.
type ConsensusParams struct {
	// GenesisHash is the identity hash of the genesis block.
	GenesisHash *chainhash.Hash

	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is halved.
	SubsidyHalvingInterval int32

	// BlockSubsidyRampPeriod is the number of blocks after genesis over
	// which the subsidy ramps up to its full value.
	BlockSubsidyRampPeriod int32

	// Masternode, budget and governance parameters.
	MasternodePaymentsStartBlock   int32
	InstantSendKeepLock            int32
	BudgetPaymentsStartBlock       int32
	BudgetPaymentsCycleBlocks      int32
	BudgetPaymentsWindowBlocks     int32
	BudgetProposalEstablishingTime time.Duration
	SuperblockStartBlock           int32
	SuperblockCycle                int32
	GovernanceMinQuorum            int32
	GovernanceFilterElements       int32
	MasternodeMinimumConfirmations int32

	// Legacy block version majority upgrade thresholds, counted over the
	// last MajorityWindow blocks.
	MajorityEnforceBlockUpgrade int32
	MajorityRejectBlockOutdated int32
	MajorityWindow              int32

	// BIP0034Height is the height at which BIP0034 became active, or -1
	// when it is not necessarily active.  BIP0034Hash is the hash of that
	// block when known.
	BIP0034Height int32
	BIP0034Hash   *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// ReduceMinDifficulty defines whether the network should allow
	// minimum difficulty blocks.  This is really only useful for test
	// networks and should not be set on a main network.
	ReduceMinDifficulty bool

	// NoRetargeting disables difficulty retargeting entirely.
	NoRetargeting bool

	// KGWHeight and DGWHeight are the heights at which the Kimoto Gravity
	// Well and Dark Gravity Wave retarget algorithms take over.  DGW wins
	// when both apply, so KGWHeight >= DGWHeight means KGW is never used.
	KGWHeight int32
	DGWHeight int32

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 95% for the main network and 75% for test networks.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Both are the defaults for deployments that don't set their own.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   *DeploymentRegistry

	// MinimumChainWork is the least amount of cumulative work the best
	// chain is expected to have.
	MinimumChainWork *big.Int

	// DefaultAssumeValid is the block whose ancestors' signatures are
	// assumed valid by default.  The zero hash disables it.
	DefaultAssumeValid *chainhash.Hash
}

// DifficultyAlgorithm returns the retarget algorithm used for the block at
// height.
func (c *ConsensusParams) DifficultyAlgorithm(height int32) PowAlgorithm {
	switch {
	case height >= c.DGWHeight:
		return PowDGW
	case height >= c.KGWHeight:
		return PowKGW
	default:
		return PowOriginal
	}
}

// checkConsensusParams validates the confirmation window.  Unless the network
// overrides it, the window must equal the number of blocks in one target
// timespan; a zero window is filled in with that value.
func checkConsensusParams(c *ConsensusParams, windowOverride bool) error {
	if c.TargetTimePerBlock <= 0 || c.TargetTimespan < c.TargetTimePerBlock {
		str := fmt.Sprintf("target timespan %v and spacing %v don't "+
			"define a retarget window", c.TargetTimespan,
			c.TargetTimePerBlock)
		return configError(ErrConfirmationWindow, "", str)
	}

	derived := uint32(c.TargetTimespan / c.TargetTimePerBlock)
	switch {
	case windowOverride && c.MinerConfirmationWindow == 0:
		return configError(ErrConfirmationWindow, "",
			"overridden miner confirmation window is zero")

	case !windowOverride && c.MinerConfirmationWindow == 0:
		c.MinerConfirmationWindow = derived

	case !windowOverride && c.MinerConfirmationWindow != derived:
		str := fmt.Sprintf("miner confirmation window %d does not match "+
			"target timespan / spacing = %d", c.MinerConfirmationWindow,
			derived)
		return configError(ErrConfirmationWindow, "", str)
	}

	if c.RuleChangeActivationThreshold == 0 ||
		c.RuleChangeActivationThreshold > c.MinerConfirmationWindow {

		str := fmt.Sprintf("rule change activation threshold %d is not "+
			"within the miner confirmation window %d",
			c.RuleChangeActivationThreshold, c.MinerConfirmationWindow)
		return configError(ErrConfirmationWindow, "", str)
	}

	return nil
}

// Params defines a network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// The default networks are built once when the package is initialized.  The
// selector only hands out deep copies of them, so changing a returned value
// never reaches the networks seen by other callers.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net btcwire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are host:port peers used when DNS seeding yields nothing.
	FixedSeeds []string

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *btcwire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// Consensus holds the consensus critical parameters.
	Consensus ConsensusParams

	// Checkpoints ordered from oldest to newest.
	Checkpoints *CheckpointTable

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32

	// MiningRequiresPeers defines whether mining requires connected peers.
	MiningRequiresPeers bool

	// DefaultConsistencyChecks enables expensive internal consistency
	// checks by default.
	DefaultConsistencyChecks bool

	// RequireStandard defines whether only standard transactions are
	// relayed and mined.
	RequireStandard bool

	// MineBlocksOnDemand allows blocks to be generated on request, without
	// waiting for the target spacing.
	MineBlocksOnDemand bool

	// TestnetToBeDeprecatedFieldRPC makes RPC results carry the
	// deprecated testnet field.
	TestnetToBeDeprecatedFieldRPC bool

	// MaxTipAge is how far behind the tip may be before the node
	// considers itself in initial block download.
	MaxTipAge time.Duration

	// DelayGetHeadersTime is how long to delay getheaders requests while
	// the tip is older than it.
	DelayGetHeadersTime time.Duration

	// PruneAfterHeight is the height below which block files are never
	// pruned.
	PruneAfterHeight int32

	// AlertPubKey and SporkPubKey verify network alerts and sporks.
	AlertPubKey []byte
	SporkPubKey []byte

	// PoolMaxTransactions is the maximum number of transactions in a
	// mixing pool.
	PoolMaxTransactions int32

	// FulfilledRequestExpireTime is how long fulfilled network requests
	// are remembered.
	FulfilledRequestExpireTime time.Duration
}

// Copy returns a deep copy of the parameters.  The deployment registry and
// checkpoint table are sealed, so the copy shares them.
func (p *Params) Copy() *Params {
	params := *p
	params.DNSSeeds = slices.Clone(p.DNSSeeds)
	params.FixedSeeds = slices.Clone(p.FixedSeeds)
	params.GenesisBlock = copyBlock(p.GenesisBlock)
	params.GenesisHash = copyHash(p.GenesisHash)
	params.Consensus = p.Consensus.copy()
	params.AlertPubKey = slices.Clone(p.AlertPubKey)
	params.SporkPubKey = slices.Clone(p.SporkPubKey)
	return &params
}

// copy returns a deep copy of the consensus parameters.
func (c *ConsensusParams) copy() ConsensusParams {
	params := *c
	params.GenesisHash = copyHash(c.GenesisHash)
	params.BIP0034Hash = copyHash(c.BIP0034Hash)
	params.PowLimit = copyBig(c.PowLimit)
	params.MinimumChainWork = copyBig(c.MinimumChainWork)
	params.DefaultAssumeValid = copyHash(c.DefaultAssumeValid)
	return params
}

func copyHash(hash *chainhash.Hash) *chainhash.Hash {
	if hash == nil {
		return nil
	}
	h := *hash
	return &h
}

func copyBig(n *big.Int) *big.Int {
	if n == nil {
		return nil
	}
	return new(big.Int).Set(n)
}

func copyBlock(block *btcwire.MsgBlock) *btcwire.MsgBlock {
	if block == nil {
		return nil
	}
	c := btcwire.NewMsgBlock(&block.Header)
	for _, tx := range block.Transactions {
		c.Transactions = append(c.Transactions, tx.Copy())
	}
	return c
}

// MessageStart returns the preamble prefixed to every peer message on the
// network.
func (p *Params) MessageStart() [4]byte {
	return wire.MessageStart(p.Net)
}

// BtcdParams returns the network expressed as btcd chain parameters so the
// btcutil address, WIF and HD key helpers can encode and decode this
// network's keys and addresses.  Only the fields those helpers rely on and
// the fields that map one to one are filled in.  Each call returns a new
// value that shares no memory with p.
func (p *Params) BtcdParams() *btcdchaincfg.Params {
	checkpoints := p.Checkpoints.Checkpoints()
	btcdCheckpoints := make([]btcdchaincfg.Checkpoint, 0, len(checkpoints))
	for _, c := range checkpoints {
		btcdCheckpoints = append(btcdCheckpoints, btcdchaincfg.Checkpoint{
			Height: c.Height,
			Hash:   c.Hash,
		})
	}

	dnsSeeds := make([]btcdchaincfg.DNSSeed, 0, len(p.DNSSeeds))
	for _, seed := range p.DNSSeeds {
		dnsSeeds = append(dnsSeeds, btcdchaincfg.DNSSeed{
			Host:         seed.Host,
			HasFiltering: seed.HasFiltering,
		})
	}

	return &btcdchaincfg.Params{
		Name:                          p.Name,
		Net:                           p.Net,
		DefaultPort:                   p.DefaultPort,
		DNSSeeds:                      dnsSeeds,
		GenesisBlock:                  copyBlock(p.GenesisBlock),
		GenesisHash:                   copyHash(p.GenesisHash),
		PowLimit:                      copyBig(p.Consensus.PowLimit),
		PowLimitBits:                  p.Consensus.PowLimitBits,
		BIP0034Height:                 p.Consensus.BIP0034Height,
		SubsidyReductionInterval:      p.Consensus.SubsidyHalvingInterval,
		TargetTimespan:                p.Consensus.TargetTimespan,
		TargetTimePerBlock:            p.Consensus.TargetTimePerBlock,
		ReduceMinDifficulty:           p.Consensus.ReduceMinDifficulty,
		GenerateSupported:             p.MineBlocksOnDemand,
		Checkpoints:                   btcdCheckpoints,
		RuleChangeActivationThreshold: p.Consensus.RuleChangeActivationThreshold,
		MinerConfirmationWindow:       p.Consensus.MinerConfirmationWindow,
		RelayNonStdTxs:                !p.RequireStandard,
		PubKeyHashAddrID:              p.PubKeyHashAddrID,
		ScriptHashAddrID:              p.ScriptHashAddrID,
		PrivateKeyID:                  p.PrivateKeyID,
		HDPrivateKeyID:                p.HDPrivateKeyID,
		HDPublicKeyID:                 p.HDPublicKeyID,
		HDCoinType:                    p.HDCoinType,
	}
}

// networkDef collects everything needed to build a default network beyond
// the fields set directly on Params.
type networkDef struct {
	params         *Params
	windowOverride bool
	genesis        genesisParams
	deployments    []ConsensusDeployment
	checkpoints    []Checkpoint
	checkpointData CheckpointData
}

// mustBuildParams completes and validates the parameters of a default
// network.  Every inconsistency is fatal.
func mustBuildParams(def *networkDef) *Params {
	p := def.params
	c := &p.Consensus

	if err := checkConsensusParams(c, def.windowOverride); err != nil {
		fatalf("%s: %v", p.Name, err)
	}
	c.PowLimitBits = blockchain.BigToCompact(c.PowLimit)

	c.Deployments = NewDeploymentRegistry(c.RuleChangeActivationThreshold,
		c.MinerConfirmationWindow)
	for _, d := range def.deployments {
		if err := c.Deployments.Register(d); err != nil {
			fatalf("%s: %v", p.Name, err)
		}
	}
	c.Deployments.seal()

	p.GenesisBlock = mustBuildGenesis(p.Name, &def.genesis, c.PowLimit)
	genesisHash := wire.BlockHash(&p.GenesisBlock.Header)
	p.GenesisHash = &genesisHash
	c.GenesisHash = &genesisHash

	p.Checkpoints = NewCheckpointTable(def.checkpointData)
	for _, checkpoint := range def.checkpoints {
		err := p.Checkpoints.Add(checkpoint.Height, checkpoint.Hash)
		if err != nil {
			fatalf("%s: %v", p.Name, err)
		}
	}
	p.Checkpoints.seal()

	log.Debugf("Built %s network parameters (genesis %v, %d deployments, "+
		"%d checkpoints)", p.Name, p.GenesisHash, c.Deployments.Len(),
		len(def.checkpoints))
	return p
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// newBigFromHex converts a hard-coded big-endian hex string into a big.Int
// and panics on malformed input.  An empty string is zero.
func newBigFromHex(hexStr string) *big.Int {
	n := new(big.Int)
	if hexStr == "" {
		return n
	}
	if _, ok := n.SetString(hexStr, 16); !ok {
		panic(fmt.Sprintf("invalid hex number %q", hexStr))
	}
	return n
}
