// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/mobitglobal/mobitd/wire"
)

const (
	mainGenesisHash = "323911dd51cf96fbfb41e2a05e222eee8dd264f367075a37cc163e588425e075"

	// genesisMerkleRoot is shared by every default network since their
	// genesis coinbase transactions are identical.
	genesisMerkleRoot = "17f606cf3ec3991bbc9aec34a1f5355469c53013d83d627a62f6fb8bbcd35e9b"
)

// MainNetParams defines the network parameters for the main network.
var MainNetParams = newMainNetParams()

func newMainNetParams() *Params {
	return mustBuildParams(&networkDef{
		params: &Params{
			Name:        "main",
			Net:         wire.MainNet,
			DefaultPort: "31374",
			DNSSeeds:    nil,

			Consensus: ConsensusParams{
				SubsidyHalvingInterval:         210240,
				BlockSubsidyRampPeriod:         0,
				MasternodePaymentsStartBlock:   2500,
				InstantSendKeepLock:            24,
				BudgetPaymentsStartBlock:       0,
				BudgetPaymentsCycleBlocks:      17520,
				BudgetPaymentsWindowBlocks:     100,
				BudgetProposalEstablishingTime: 24 * time.Hour,
				SuperblockStartBlock:           2500,
				SuperblockCycle:                17520,
				GovernanceMinQuorum:            10,
				GovernanceFilterElements:       20000,
				MasternodeMinimumConfirmations: 15,
				MajorityEnforceBlockUpgrade:    750,
				MajorityRejectBlockOutdated:    950,
				MajorityWindow:                 1000,
				BIP0034Height:                  0,
				BIP0034Hash:                    &zeroHash,
				PowLimit:                       newBigFromHex("00000ffff0000000000000000000000000000000000000000000000000000000"),
				TargetTimespan:                 time.Hour,
				TargetTimePerBlock:             150 * time.Second,
				ReduceMinDifficulty:            false,
				NoRetargeting:                  false,
				KGWHeight:                      15200,
				DGWHeight:                      34140,
				RuleChangeActivationThreshold:  1916, // 95% of MinerConfirmationWindow
				MinerConfirmationWindow:        2016,
				MinimumChainWork:               newBigFromHex("400040"),
				DefaultAssumeValid:             newHashFromStr("00000b5644e8154de2ff95b08d9c0dfd708befe6fef2f83ae98df63d3b7eda8e"),
			},

			// Address encoding magics
			PubKeyHashAddrID: 50,  // starts with M
			ScriptHashAddrID: 110, // starts with m
			PrivateKeyID:     160,

			// BIP32 hierarchical deterministic extended key magics
			HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
			HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

			// BIP44 coin type used in the hierarchical deterministic path for
			// address generation.
			HDCoinType: 5,

			MiningRequiresPeers:           true,
			DefaultConsistencyChecks:      false,
			RequireStandard:               true,
			MineBlocksOnDemand:            false,
			TestnetToBeDeprecatedFieldRPC: false,

			MaxTipAge:                  6 * time.Hour,
			DelayGetHeadersTime:        24 * time.Hour,
			PruneAfterHeight:           100000,
			AlertPubKey:                mustDecodeHex("04cc24ab003c828cdd9cf4db2ebbde8e1cecb3bbfa8b3127fcb9dd9b84d44112080827ed7c49a648af9fe788ff42e316aee665879c553f099e55299d6b54edd7e0"),
			SporkPubKey:                mustDecodeHex("043605c3bb57b3f1ca12fd986bde03e88beb41de215fefd280481e749a44ded6088518fee1198b75e19d6e8285fdc34023aba985ac73b78aa78db3bf06006f3256"),
			PoolMaxTransactions:        3,
			FulfilledRequestExpireTime: time.Hour,
		},

		// 1h / 2.5m is 24 blocks, but the main network signals over the
		// bitcoin window.
		windowOverride: true,

		genesis: genesisParams{
			message:    GenesisMessage,
			pubKey:     genesisPubKey,
			timestamp:  1531008000,
			nonce:      193523,
			bits:       0x1e0ffff0,
			version:    1,
			reward:     1 * btcutil.SatoshiPerBitcoin,
			hash:       mainGenesisHash,
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
				StartTime:  1486252800, // Feb 5th, 2017
				ExpireTime: 1517788800, // Feb 5th, 2018
			},
			{
				Name:       DeploymentDIP0001,
				BitNumber:  1,
				StartTime:  1508025600, // Oct 15th, 2017
				ExpireTime: 1539561600, // Oct 15th, 2018
				WindowSize: 4032,
				Threshold:  3226, // 80% of 4032
			},
		},

		checkpoints: []Checkpoint{
			{3, newHashFromStr("00000b5644e8154de2ff95b08d9c0dfd708befe6fef2f83ae98df63d3b7eda8e")},
		},
		checkpointData: CheckpointData{
			LastCheckpointTime:  time.Unix(1531175260, 0),
			TxCountAtCheckpoint: 3,
			TxPerDay:            5000,
		},
	})
}
