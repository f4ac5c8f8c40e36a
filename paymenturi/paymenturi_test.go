// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paymenturi

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mobitglobal/mobitd/chaincfg"
)

const testAddr = "MN7sh43pV9cYbKHLArXxYcaTxPkwYz3Qmm"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		want Request
		err  error
	}{
		{
			name: "unknown required parameter",
			uri:  "mbgl:" + testAddr + "?req-dontexist=",
			err:  ErrUnknownRequiredParam,
		},
		{
			name: "unknown optional parameter",
			uri:  "mbgl:" + testAddr + "?dontexist=",
		},
		{
			name: "label",
			uri:  "mbgl:" + testAddr + "?label=Some Example Address",
			want: Request{Label: "Some Example Address"},
		},
		{
			name: "small amount",
			uri:  "mbgl:" + testAddr + "?amount=0.001",
			want: Request{Amount: 100000},
		},
		{
			name: "fractional amount",
			uri:  "mbgl:" + testAddr + "?amount=1.001",
			want: Request{Amount: 100100000},
		},
		{
			name: "amount and label",
			uri:  "mbgl:" + testAddr + "?amount=100&label=Some Example",
			want: Request{Amount: 10000000000, Label: "Some Example"},
		},
		{
			name: "message",
			uri:  "mbgl:" + testAddr + "?message=Some Example Address",
			want: Request{Message: "Some Example Address"},
		},
		{
			name: "double slash form",
			uri:  "mbgl://" + testAddr + "?message=Some Example Address",
			want: Request{Message: "Some Example Address"},
		},
		{
			name: "required known parameter",
			uri:  "mbgl:" + testAddr + "?req-message=Some Example Address",
			want: Request{Message: "Some Example Address"},
		},
		{
			name: "thousands separator",
			uri:  "mbgl:" + testAddr + "?amount=1,000&label=Some Example",
			err:  ErrInvalidAmount,
		},
		{
			name: "thousands separator with decimals",
			uri:  "mbgl:" + testAddr + "?amount=1,000.0&label=Some Example",
			err:  ErrInvalidAmount,
		},
		{
			name: "instant send",
			uri: "mbgl:" + testAddr + "?amount=100&label=Some Example" +
				"&message=Some Example Message&IS=1",
			want: Request{
				Amount:         10000000000,
				Label:          "Some Example",
				Message:        "Some Example Message",
				UseInstantSend: true,
			},
		},
		{
			name: "invalid instant send flag",
			uri: "mbgl:" + testAddr + "?amount=100&label=Some Example" +
				"&message=Some Example Message&IS=Something Invalid",
			want: Request{
				Amount:  10000000000,
				Label:   "Some Example",
				Message: "Some Example Message",
			},
		},
		{
			name: "instant send only",
			uri:  "mbgl:" + testAddr + "?IS=1",
			want: Request{UseInstantSend: true},
		},
		{
			name: "instant send off",
			uri:  "mbgl:" + testAddr + "?IS=0",
		},
		{
			name: "address only",
			uri:  "mbgl:" + testAddr,
		},
		{
			name: "upper case scheme and escaped label",
			uri:  "MBGL:" + testAddr + "?label=Some%20Example",
			want: Request{Label: "Some Example"},
		},
		{
			name: "other scheme",
			uri:  "bitcoin:" + testAddr,
			err:  ErrInvalidScheme,
		},
		{
			name: "bad checksum",
			uri:  "mbgl:MN7sh43pV9cYbKHLArXxYcaTxPkwYz3Qmn",
			err:  ErrInvalidAddress,
		},
		{
			name: "no address",
			uri:  "mbgl:?amount=1",
			err:  ErrInvalidAddress,
		},
	}

	for _, test := range tests {
		req, err := Parse(test.uri, chaincfg.MainNetParams)
		if test.err != nil {
			require.Error(t, err, test.name)
			require.True(t, errors.Is(err, test.err), "%s: got %v, want %v",
				test.name, err, test.err)
			continue
		}
		require.NoError(t, err, test.name)
		require.Equal(t, testAddr, req.Address.EncodeAddress(), test.name)

		test.want.Address = req.Address
		require.Equal(t, test.want, *req, test.name)
	}
}

// TestParseWrongNetwork ensures main network addresses are rejected for the
// test network.
func TestParseWrongNetwork(t *testing.T) {
	t.Parallel()

	_, err := Parse("mbgl:"+testAddr, chaincfg.TestNetParams)
	require.True(t, errors.Is(err, ErrInvalidAddress), "got %v", err)
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		want      btcutil.Amount
		shouldErr bool
	}{
		{in: "0", want: 0},
		{in: "1", want: btcutil.SatoshiPerBitcoin},
		{in: "1.", want: btcutil.SatoshiPerBitcoin},
		{in: ".5", want: 50000000},
		{in: "0.00000001", want: 1},
		{in: "1.001", want: 100100000},
		{in: "92233720368.54775807", shouldErr: true},
		{in: "21000000", want: 21000000 * btcutil.SatoshiPerBitcoin},
		{in: "0000000000000000000001", want: btcutil.SatoshiPerBitcoin},
		{in: "0.000000001", shouldErr: true},
		{in: "1.2.3", shouldErr: true},
		{in: "1,000", shouldErr: true},
		{in: "-1", shouldErr: true},
		{in: "+1", shouldErr: true},
		{in: "1e8", shouldErr: true},
		{in: "NaN", shouldErr: true},
		{in: "Inf", shouldErr: true},
		{in: "0x10", shouldErr: true},
		{in: " 1", shouldErr: true},
		{in: ".", shouldErr: true},
		{in: "", shouldErr: true},
		{in: "9999999999.99999999", want: 999999999999999999},
		{in: "10000000000", shouldErr: true},
	}

	for _, test := range tests {
		got, err := ParseAmount(test.in)
		if test.shouldErr {
			require.True(t, errors.Is(err, ErrInvalidAmount), "%q: got %v", test.in, err)
			continue
		}
		require.NoError(t, err, test.in)
		require.Equal(t, test.want, got, test.in)
	}
}
