// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/mobitglobal/mobitd/wire"
)

const testNetGenesisHash = "2cfef32205abfc9693ae13c702e35836781041bb82b0490a7d2950706716fbbf"

// TestNetParams defines the network parameters for the test network.
var TestNetParams = newTestNetParams()

func newTestNetParams() *Params {
	return mustBuildParams(&networkDef{
		params: &Params{
			Name:        "test",
			Net:         wire.TestNet,
			DefaultPort: "32374",
			DNSSeeds:    nil,

			Consensus: ConsensusParams{
				SubsidyHalvingInterval:         210240,
				BlockSubsidyRampPeriod:         300,
				MasternodePaymentsStartBlock:   600,
				InstantSendKeepLock:            6,
				BudgetPaymentsStartBlock:       1,
				BudgetPaymentsCycleBlocks:      50,
				BudgetPaymentsWindowBlocks:     10,
				BudgetProposalEstablishingTime: 20 * time.Minute,
				SuperblockStartBlock:           10,
				SuperblockCycle:                24,
				GovernanceMinQuorum:            1,
				GovernanceFilterElements:       500,
				MasternodeMinimumConfirmations: 1,
				MajorityEnforceBlockUpgrade:    51,
				MajorityRejectBlockOutdated:    75,
				MajorityWindow:                 100,
				BIP0034Height:                  0,
				BIP0034Hash:                    &zeroHash,
				PowLimit:                       newBigFromHex("000fffff00000000000000000000000000000000000000000000000000000000"),
				TargetTimespan:                 time.Hour,
				TargetTimePerBlock:             150 * time.Second,
				ReduceMinDifficulty:            true,
				NoRetargeting:                  false,
				KGWHeight:                      4001, // same as DGWHeight, so KGW is never used
				DGWHeight:                      4001,
				RuleChangeActivationThreshold:  1512, // 75% for testchains
				MinerConfirmationWindow:        2016,
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

			MiningRequiresPeers:           true,
			DefaultConsistencyChecks:      false,
			RequireStandard:               false,
			MineBlocksOnDemand:            false,
			TestnetToBeDeprecatedFieldRPC: true,

			// Old tips are still mined on.
			MaxTipAge:                  math.MaxInt32 * time.Second,
			DelayGetHeadersTime:        math.MaxInt32 * time.Second,
			PruneAfterHeight:           1000,
			AlertPubKey:                mustDecodeHex("04a08731ca7235c548531b46adb3b8fa269ddfd0f161724ae29afa1646887c9372f4fd817167f51ce8fea0668a0bcc16f4d0765189dcb22c598ab54c0f28ceec43"),
			SporkPubKey:                mustDecodeHex("04eafde4f2f87d7d516409690c5d8c307f4d1c2810331b364b92b88de221c57fd798723f55675c78779a1d3459f93ed09edb47caa1eefa88943b639a4e1e12ded4"),
			PoolMaxTransactions:        3,
			FulfilledRequestExpireTime: 5 * time.Minute,
		},

		windowOverride: true,

		genesis: genesisParams{
			message:    GenesisMessage,
			pubKey:     genesisPubKey,
			timestamp:  1512849601,
			nonce:      490078,
			bits:       0x1e0ffff0,
			version:    1,
			reward:     1 * btcutil.SatoshiPerBitcoin,
			hash:       testNetGenesisHash,
			merkleRoot: genesisMerkleRoot,
		},

		deployments: []ConsensusDeployment{
			{
				Name:       DeploymentTestDummy,
				BitNumber:  28,
				StartTime:  1199145601, // January 1, 2008 UTC
				ExpireTime: 1230767999, // December 31, 2008 UTC
			},
			{
				Name:       DeploymentCSV,
				BitNumber:  0,
				StartTime:  1506556800, // September 28th, 2017
				ExpireTime: 1538092800, // September 28th, 2018
			},
			{
				Name:       DeploymentDIP0001,
				BitNumber:  1,
				StartTime:  1505692800, // Sep 18th, 2017
				ExpireTime: 1537228800, // Sep 18th, 2018
				WindowSize: 100,
				Threshold:  50, // 50% of 100
			},
		},

		checkpoints: []Checkpoint{
			{0, newHashFromStr(testNetGenesisHash)},
		},
		checkpointData: CheckpointData{
			LastCheckpointTime:  time.Unix(1512849601, 0),
			TxCountAtCheckpoint: 0,
			TxPerDay:            500,
		},
	})
}
