// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// chainparams prints the consensus parameters of a mobitd network, checks
// blocks against its checkpoints and parses payment URIs for it.
//
// Usage:
//
//	chainparams [--testnet|--regtest] [--dump] [--checkpoint=<height>:<hash>]...
//	    [--uri=<mbgl uri>]
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/mobitglobal/mobitd/chaincfg"
	"github.com/mobitglobal/mobitd/paymenturi"
)

// errCheckpointMismatch is returned when a checked block conflicts with a
// checkpoint.
var errCheckpointMismatch = errors.New("block conflicts with a checkpoint")

// dumpConfig is used to dump the full network parameters.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                4,
}

func realMain() error {
	cfg, help, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if help {
		return nil
	}

	if !cfg.NoFileLogging {
		err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
		if err != nil {
			return err
		}
		defer logRotator.Close()
	}

	if err := chaincfg.SelectActive(cfg.netName); err != nil {
		return err
	}
	params := chaincfg.ActiveProfile()

	printSummary(os.Stdout, params)
	if cfg.Dump {
		dumpConfig.Fdump(os.Stdout, params)
	}

	var mismatch bool
	for _, c := range cfg.checkpoints {
		if !checkCheckpoint(os.Stdout, params, c) {
			mismatch = true
		}
	}

	if cfg.URI != "" {
		req, err := paymenturi.Parse(cfg.URI, params)
		if err != nil {
			return errors.Wrap(err, "unable to parse payment uri")
		}
		printRequest(os.Stdout, req)
	}

	if mismatch {
		return errCheckpointMismatch
	}
	return nil
}

// printSummary writes the identity, genesis, deployments and checkpoints of
// the network.
func printSummary(w io.Writer, params *chaincfg.Params) {
	c := &params.Consensus
	magic := params.MessageStart()

	fmt.Fprintf(w, "Network:          %s\n", params.Name)
	fmt.Fprintf(w, "Magic:            %x\n", magic[:])
	fmt.Fprintf(w, "Default port:     %s\n", params.DefaultPort)
	fmt.Fprintf(w, "Genesis:          %v\n", params.GenesisHash)
	fmt.Fprintf(w, "Genesis merkle:   %v\n", params.GenesisBlock.Header.MerkleRoot)
	fmt.Fprintf(w, "Pow limit bits:   %08x\n", c.PowLimitBits)
	fmt.Fprintf(w, "Retarget:         %v until %d, %v until %d, %v after\n",
		chaincfg.PowOriginal, c.KGWHeight, chaincfg.PowKGW, c.DGWHeight,
		chaincfg.PowDGW)
	fmt.Fprintf(w, "Activation:       %d of %d blocks\n",
		c.RuleChangeActivationThreshold, c.MinerConfirmationWindow)

	for _, d := range c.Deployments.AllDeployments() {
		if d.AlwaysActive() {
			fmt.Fprintf(w, "Deployment:       %-10s bit %2d always active\n",
				d.Name, d.BitNumber)
			continue
		}
		fmt.Fprintf(w, "Deployment:       %-10s bit %2d from %d to %d, "+
			"%d of %d blocks\n", d.Name, d.BitNumber, d.StartTime,
			d.ExpireTime, d.Threshold, d.WindowSize)
	}

	for _, checkpoint := range params.Checkpoints.Checkpoints() {
		fmt.Fprintf(w, "Checkpoint:       %d %v\n", checkpoint.Height,
			checkpoint.Hash)
	}
}

// checkCheckpoint reports whether the block passed on the command line is
// consistent with the checkpoints of the network.
func checkCheckpoint(w io.Writer, params *chaincfg.Params, c checkpointArg) bool {
	if params.Checkpoints.Validate(c.height, c.hash) {
		if _, ok := params.Checkpoints.Lookup(c.height); ok {
			fmt.Fprintf(w, "Block %d %v: matches checkpoint\n", c.height, c.hash)
		} else {
			fmt.Fprintf(w, "Block %d %v: no checkpoint at this height\n",
				c.height, c.hash)
		}
		return true
	}

	want, _ := params.Checkpoints.Lookup(c.height)
	mainLog.Warnf("Block %d %v conflicts with checkpoint %v", c.height,
		c.hash, want)
	fmt.Fprintf(w, "Block %d %v: REJECTED, checkpoint is %v\n", c.height,
		c.hash, want)
	return false
}

// printRequest writes the fields of a parsed payment request.
func printRequest(w io.Writer, req *paymenturi.Request) {
	fmt.Fprintf(w, "Address:          %s\n", req.Address.EncodeAddress())
	if req.Amount != 0 {
		fmt.Fprintf(w, "Amount:           %.8f MBGL\n", req.Amount.ToBTC())
	}
	if req.Label != "" {
		fmt.Fprintf(w, "Label:            %s\n", req.Label)
	}
	if req.Message != "" {
		fmt.Fprintf(w, "Message:          %s\n", req.Message)
	}
	fmt.Fprintf(w, "Instant send:     %v\n", req.UseInstantSend)
}

func main() {
	if err := realMain(); err != nil {
		mainLog.Errorf("%v", err)
		os.Exit(1)
	}
}
