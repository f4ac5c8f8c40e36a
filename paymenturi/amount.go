// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paymenturi

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/pkg/errors"
)

const (
	// amountDecimals is the number of fractional digits of one coin.
	amountDecimals = 8

	// maxAmountDigits bounds the digits of an amount in satoshi so it
	// fits an int64.
	maxAmountDigits = 18
)

// ParseAmount parses a decimal coin amount such as "1.001".  Only digits and a
// single decimal point are accepted, with at most eight fractional digits.
// Thousands separators, signs and exponents are rejected.
func ParseAmount(s string) (btcutil.Amount, error) {
	whole, frac, hasPoint := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q has no digits", s)
	}
	if hasPoint && strings.Contains(frac, ".") {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q has more than one "+
			"decimal point", s)
	}
	if len(frac) > amountDecimals {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q has more than %d "+
			"decimals", s, amountDecimals)
	}

	digits := whole + frac + strings.Repeat("0", amountDecimals-len(frac))
	digits = strings.TrimLeft(digits, "0")
	if len(digits) > maxAmountDigits {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q is too large", s)
	}

	var satoshi int64
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, errors.Wrapf(ErrInvalidAmount, "%q contains %q", s, r)
		}
		satoshi = satoshi*10 + int64(r-'0')
	}
	return btcutil.Amount(satoshi), nil
}
