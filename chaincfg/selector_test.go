// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func newTestSelector(t *testing.T) *Selector {
	t.Helper()

	s, err := NewSelector(MainNetParams, TestNetParams, RegressionNetParams)
	require.NoError(t, err)
	return s
}

func TestNewSelectorDuplicates(t *testing.T) {
	_, err := NewSelector(MainNetParams, MainNetParams)
	require.True(t, IsErrorCode(err, ErrDuplicateNet), "got %v", err)

	renamed := *TestNetParams
	renamed.Name = "test2"
	_, err = NewSelector(TestNetParams, &renamed)
	require.True(t, IsErrorCode(err, ErrDuplicateNet), "got %v", err)

	s, err := NewSelector()
	require.NoError(t, err)
	require.Empty(t, s.Networks())
}

func TestLookupProfile(t *testing.T) {
	s := newTestSelector(t)

	for _, want := range []*Params{MainNetParams, TestNetParams, RegressionNetParams} {
		got, err := s.LookupProfile(want.Name)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NotSame(t, want, got)

		// Every lookup hands out its own copy.
		again, err := s.LookupProfile(want.Name)
		require.NoError(t, err)
		require.Equal(t, got, again)
		require.NotSame(t, got, again)

		got, err = LookupProfile(want.Name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	for _, name := range []string{"mainnet", "Main", "testnet3", ""} {
		_, err := s.LookupProfile(name)
		require.True(t, IsErrorCode(err, ErrUnknownNetwork), "%q: got %v", name, err)
		require.Equal(t, name, err.(ConfigError).Input)
		require.Contains(t, err.Error(), `"`+name+`"`)
	}
}

func TestSelectActive(t *testing.T) {
	s := newTestSelector(t)

	requireAssertion(t, func() { s.ActiveProfile() })

	// An unknown network is reported and selects nothing.
	err := s.SelectActive("mainnet")
	require.True(t, IsErrorCode(err, ErrUnknownNetwork), "got %v", err)
	require.Contains(t, err.Error(), "mainnet")
	requireAssertion(t, func() { s.ActiveProfile() })

	require.NoError(t, s.SelectActive("test"))
	require.Equal(t, TestNetParams, s.ActiveProfile())
	require.NotSame(t, s.ActiveProfile(), s.ActiveProfile())

	// Selecting the active network again is harmless.
	require.NoError(t, s.SelectActive("test"))

	err = s.SelectActive("main")
	require.True(t, IsErrorCode(err, ErrAlreadySelected), "got %v", err)
	require.Equal(t, TestNetParams.Name, s.ActiveProfile().Name)

	err = s.SelectActive("mainnet")
	require.True(t, IsErrorCode(err, ErrUnknownNetwork), "got %v", err)
	require.Equal(t, TestNetParams.Name, s.ActiveProfile().Name)
}

// TestProfileCopies ensures changes made through a returned profile, or to
// the parameters a selector was built from, don't reach later readers.
func TestProfileCopies(t *testing.T) {
	s := newTestSelector(t)

	p, err := s.LookupProfile("main")
	require.NoError(t, err)
	p.Consensus.DGWHeight = 0
	p.Consensus.PowLimit.SetInt64(1)
	p.Consensus.GenesisHash[0] ^= 0xff
	p.Consensus.BIP0034Hash[0] ^= 0xff
	p.GenesisBlock.Header.Nonce = 42
	p.GenesisBlock.Transactions[0].TxOut[0].Value = 0
	p.GenesisHash[0] ^= 0xff
	p.AlertPubKey[0] ^= 0xff

	fresh, err := s.LookupProfile("main")
	require.NoError(t, err)
	require.Equal(t, MainNetParams, fresh)
	require.Equal(t, int32(34140), fresh.Consensus.DGWHeight)
	require.Equal(t, PowOriginal, fresh.Consensus.DifficultyAlgorithm(1))
	require.Equal(t, uint32(193523), fresh.GenesisBlock.Header.Nonce)
	require.Equal(t, mainGenesisHash, fresh.GenesisHash.String())
	require.Equal(t, mainGenesisHash, fresh.Consensus.GenesisHash.String())
	require.Equal(t, chainhash.Hash{}, *fresh.Consensus.BIP0034Hash)
	require.Equal(t, newBigFromHex("00000ffff0000000000000000000000000000000"+
		"000000000000000000000000"), fresh.Consensus.PowLimit)

	// The btcd view doesn't share memory with the profile either.
	btcdParams := fresh.BtcdParams()
	btcdParams.PowLimit.SetInt64(1)
	btcdParams.GenesisBlock.Header.Nonce = 42
	btcdParams.GenesisHash[0] ^= 0xff
	require.Equal(t, MainNetParams, fresh)

	// The active profile is handed out the same way.
	require.NoError(t, s.SelectActive("main"))
	active := s.ActiveProfile()
	active.Consensus.PowLimit.SetInt64(1)
	active.GenesisBlock.Header.Nonce = 42
	require.Equal(t, MainNetParams, s.ActiveProfile())

	// Changing the parameters a selector was built from doesn't reach it.
	params := MainNetParams.Copy()
	other, err := NewSelector(params)
	require.NoError(t, err)
	params.Consensus.PowLimit.SetInt64(1)
	params.DefaultPort = "1"
	got, err := other.LookupProfile("main")
	require.NoError(t, err)
	require.Equal(t, MainNetParams, got)
}

// TestSelectActiveConcurrent ensures exactly one of several racing
// selections of different networks wins.
func TestSelectActiveConcurrent(t *testing.T) {
	s := newTestSelector(t)
	names := s.Networks()

	const perNetwork = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		winner = make(map[string]int)
	)
	for i := 0; i < perNetwork; i++ {
		for _, name := range names {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				if err := s.SelectActive(name); err == nil {
					mu.Lock()
					winner[name]++
					mu.Unlock()
				}
			}(name)
		}
	}
	wg.Wait()

	require.Len(t, winner, 1)
	active := s.ActiveProfile()
	require.Equal(t, perNetwork, winner[active.Name])
}

func TestNetworks(t *testing.T) {
	require.Equal(t, []string{"main", "regtest", "test"}, Networks())
	require.Equal(t, Networks(), newTestSelector(t).Networks())
}

// TestActiveProfileUnselected ensures the process wide active network can't
// be read before it was selected.  No test in this package selects it.
func TestActiveProfileUnselected(t *testing.T) {
	requireAssertion(t, func() { ActiveProfile() })
}
