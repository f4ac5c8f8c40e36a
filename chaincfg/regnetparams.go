// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/mobitglobal/mobitd/wire"
)

const regressionNetGenesisHash = "fe0fd31dedd547d3d8b75b6807c93b200d78df852fd6ffdf9cbe55e1b91214ee"

// regressionDeploymentTimeout is the timeout of every regression test
// network deployment.
const regressionDeploymentTimeout = 999999999999

// zeroHash is the zero value hash, used where a hash is disabled.
var zeroHash chainhash.Hash

// RegressionNetParams defines the network parameters for the regression test
// network.  Not to be confused with the test network, this network is
// sometimes simply called "regtest".
var RegressionNetParams = newRegressionNetParams()

func newRegressionNetParams() *Params {
	return mustBuildParams(&networkDef{
		params: &Params{
			Name:        "regtest",
			Net:         wire.RegTest,
			DefaultPort: "32548",
			DNSSeeds:    []DNSSeed{}, // NOTE: There must NOT be any seeds.

			Consensus: ConsensusParams{
				SubsidyHalvingInterval:         150,
				BlockSubsidyRampPeriod:         100,
				MasternodePaymentsStartBlock:   200,
				InstantSendKeepLock:            6,
				BudgetPaymentsStartBlock:       1000,
				BudgetPaymentsCycleBlocks:      50,
				BudgetPaymentsWindowBlocks:     10,
				BudgetProposalEstablishingTime: 20 * time.Minute,
				SuperblockStartBlock:           1500,
				SuperblockCycle:                10,
				GovernanceMinQuorum:            1,
				GovernanceFilterElements:       100,
				MasternodeMinimumConfirmations: 1,
				MajorityEnforceBlockUpgrade:    750,
				MajorityRejectBlockOutdated:    950,
				MajorityWindow:                 1000,
				BIP0034Height:                  -1, // not necessarily active
				BIP0034Hash:                    &zeroHash,
				PowLimit:                       newBigFromHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
				TargetTimespan:                 time.Hour,
				TargetTimePerBlock:             150 * time.Second,
				ReduceMinDifficulty:            true,
				NoRetargeting:                  true,
				KGWHeight:                      15200,
				DGWHeight:                      34140,
				RuleChangeActivationThreshold:  108, // 75% of MinerConfirmationWindow
				MinerConfirmationWindow:        144,
				MinimumChainWork:               newBigFromHex(""),
				DefaultAssumeValid:             &zeroHash,
			},

			// Address encoding magics
			PubKeyHashAddrID: 140, // starts with y
			ScriptHashAddrID: 19,  // starts with 8 or 9
			PrivateKeyID:     239, // starts with 9 or c

			// BIP32 hierarchical deterministic extended key magics
			HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
			HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

			// BIP44 coin type used in the hierarchical deterministic path for
			// address generation.
			HDCoinType: 1,

			MiningRequiresPeers:           false,
			DefaultConsistencyChecks:      true,
			RequireStandard:               false,
			MineBlocksOnDemand:            true,
			TestnetToBeDeprecatedFieldRPC: false,

			MaxTipAge:                  time.Hour,
			DelayGetHeadersTime:        0,
			PruneAfterHeight:           1000,
			FulfilledRequestExpireTime: 5 * time.Minute,
		},

		// Faster than normal: 144 blocks instead of 1h / 2.5m.
		windowOverride: true,

		genesis: genesisParams{
			message:    GenesisMessage,
			pubKey:     genesisPubKey,
			timestamp:  1512849602,
			nonce:      0,
			bits:       0x207fffff,
			version:    1,
			reward:     1 * btcutil.SatoshiPerBitcoin,
			hash:       regressionNetGenesisHash,
			merkleRoot: genesisMerkleRoot,
		},

		deployments: []ConsensusDeployment{
			{
				Name:       DeploymentTestDummy,
				BitNumber:  28,
				StartTime:  0,
				ExpireTime: regressionDeploymentTimeout,
			},
			{
				Name:       DeploymentCSV,
				BitNumber:  0,
				StartTime:  0,
				ExpireTime: regressionDeploymentTimeout,
			},
			{
				Name:       DeploymentDIP0001,
				BitNumber:  1,
				StartTime:  0,
				ExpireTime: regressionDeploymentTimeout,
			},
		},

		checkpoints: []Checkpoint{
			{0, newHashFromStr(regressionNetGenesisHash)},
		},
		checkpointData: CheckpointData{
			LastCheckpointTime:  time.Unix(1512849602, 0),
			TxCountAtCheckpoint: 0,
			TxPerDay:            500,
		},
	})
}
