// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package paymenturi parses "mbgl:" payment request URIs.
//
// A payment URI names the receiving address and optionally an amount, a label
// for the address, a message describing the payment and whether the payment
// should use instant send:
//
//	mbgl:<address>[?amount=<coins>][&label=<label>][&message=<message>][&IS=1]
//
// Parameters prefixed with "req-" are required: a URI carrying a required
// parameter the parser doesn't understand is rejected.  Other unknown
// parameters are ignored.
package paymenturi

import (
	"net/url"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/pkg/errors"

	"github.com/mobitglobal/mobitd/chaincfg"
)

// Scheme is the URI scheme of payment requests.
const Scheme = "mbgl"

// requiredPrefix marks a parameter the receiver must understand.
const requiredPrefix = "req-"

var (
	// ErrInvalidScheme indicates a URI that isn't a payment URI.
	ErrInvalidScheme = errors.New("not a " + Scheme + " URI")

	// ErrInvalidAddress indicates a payment address that doesn't decode
	// for the network.
	ErrInvalidAddress = errors.New("invalid payment address")

	// ErrInvalidAmount indicates a malformed amount parameter.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrUnknownRequiredParam indicates a required parameter that isn't
	// understood.
	ErrUnknownRequiredParam = errors.New("unknown required parameter")
)

// Request is a parsed payment request.
type Request struct {
	// Address receives the payment.
	Address btcutil.Address

	// Amount is the requested amount, zero when unspecified.
	Amount btcutil.Amount

	// Label names the receiving address.
	Label string

	// Message describes the payment.
	Message string

	// UseInstantSend is set when the request asks for an instant send
	// payment.
	UseInstantSend bool
}

// Parse parses a payment URI whose address belongs to the passed network.
func Parse(uri string, params *chaincfg.Params) (*Request, error) {
	rest, ok := trimScheme(uri)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidScheme, "uri %q", uri)
	}

	rawAddr, rawQuery, _ := strings.Cut(rest, "?")
	addrStr, err := url.PathUnescape(rawAddr)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%q: %s", rawAddr, err)
	}
	net := params.BtcdParams()
	addr, err := btcutil.DecodeAddress(addrStr, net)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%q: %s", addrStr, err)
	}
	if !addr.IsForNet(net) {
		return nil, errors.Wrapf(ErrInvalidAddress, "%q is not a %s "+
			"network address", addrStr, params.Name)
	}

	req := &Request{Address: addr}
	if rawQuery == "" {
		return req, nil
	}

	for _, param := range strings.Split(rawQuery, "&") {
		if param == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(param, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %q", rawKey)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, errors.Wrapf(err, "value of parameter %q", key)
		}

		required := strings.HasPrefix(key, requiredPrefix)
		key = strings.TrimPrefix(key, requiredPrefix)

		switch key {
		case "label":
			req.Label = value

		case "message":
			req.Message = value

		case "amount":
			if value == "" {
				continue
			}
			amount, err := ParseAmount(value)
			if err != nil {
				return nil, err
			}
			req.Amount = amount

		case "IS":
			req.UseInstantSend = value == "1"

		default:
			if required {
				return nil, errors.Wrapf(ErrUnknownRequiredParam,
					"%q", requiredPrefix+key)
			}
		}
	}

	return req, nil
}

// trimScheme strips the case-insensitive scheme and the optional "//" that
// follows it.
func trimScheme(uri string) (string, bool) {
	prefix := Scheme + ":"
	if len(uri) < len(prefix) || !strings.EqualFold(uri[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimPrefix(uri[len(prefix):], "//"), true
}
