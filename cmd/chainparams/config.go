// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The Mobit Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel    = "info"
	defaultLogDirname  = "logs"
	defaultLogFilename = "chainparams.log"
)

var (
	defaultHomeDir = btcutil.AppDataDir("mobitd", false)
	defaultLogDir  = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for chainparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TestNet        bool     `long:"testnet" description:"Use the test network"`
	RegressionTest bool     `long:"regtest" description:"Use the regression test network"`
	Checkpoints    []string `long:"checkpoint" description:"Check a block against the checkpoints of the network in the form '<height>:<hash>'"`
	URI            string   `long:"uri" description:"Parse a payment URI for the network"`
	Dump           bool     `long:"dump" description:"Dump every parameter of the network"`
	LogDir         string   `long:"logdir" description:"Directory to log output"`
	NoFileLogging  bool     `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel     string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	netName     string
	checkpoints []checkpointArg
}

// checkpointArg is a block to check against the checkpoints.
type checkpointArg struct {
	height int32
	hash   *chainhash.Hash
}

// networkName returns the name of the network selected by the network flags.
// The main network is used when none is given.
func (cfg *config) networkName() (string, error) {
	name := "main"
	numNets := 0
	if cfg.TestNet {
		numNets++
		name = "test"
	}
	if cfg.RegressionTest {
		numNets++
		name = "regtest"
	}
	if numNets > 1 {
		return "", errors.New("the testnet and regtest params can't be " +
			"used together -- choose one of the two")
	}
	return name, nil
}

// parseCheckpoint parses a '<height>:<hash>' argument.
func parseCheckpoint(arg string) (checkpointArg, error) {
	heightStr, hashStr, ok := strings.Cut(arg, ":")
	if !ok {
		return checkpointArg{}, errors.Errorf("checkpoint %q is not in the "+
			"form '<height>:<hash>'", arg)
	}

	height, err := strconv.ParseInt(heightStr, 10, 32)
	if err != nil || height < 0 {
		return checkpointArg{}, errors.Errorf("checkpoint %q has an "+
			"invalid height", arg)
	}

	hash, err := chainhash.NewHashFromStr(hashStr)
	if err != nil {
		return checkpointArg{}, errors.Wrapf(err, "checkpoint %q has an "+
			"invalid hash", arg)
	}
	if len(hashStr) != chainhash.MaxHashStringSize {
		return checkpointArg{}, errors.Errorf("checkpoint %q hash must "+
			"have %d hex digits", arg, chainhash.MaxHashStringSize)
	}

	return checkpointArg{height: int32(height), hash: hash}, nil
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	// Convert the subsystemLoggers map keys to a slice.
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsystems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			return errors.Errorf("the specified debug level [%v] is "+
				"invalid", debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return errors.Errorf("the specified debug level contains an "+
				"invalid subsystem/level pair [%v]", logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			return errors.Errorf("the specified subsystem [%v] is "+
				"invalid -- supported subsystems %v", subsysID,
				supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			return errors.Errorf("the specified debug level [%v] is "+
				"invalid", logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options and validate them
//
// The returned help flag is set when usage was requested with -h or the
// subsystem list with --debuglevel=show.  Both have been printed already.
func loadConfig(args []string) (*config, bool, error) {
	cfg := config{
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, true, nil
		}
		return nil, false, err
	}

	cfg.netName, err = cfg.networkName()
	if err != nil {
		return nil, false, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		mainLog.Infof("Supported subsystems %v", supportedSubsystems())
		return nil, true, nil
	}
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, false, err
	}

	for _, arg := range cfg.Checkpoints {
		c, err := parseCheckpoint(arg)
		if err != nil {
			return nil, false, err
		}
		cfg.checkpoints = append(cfg.checkpoints, c)
	}

	// Logs of each network go to their own directory.
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), cfg.netName)

	return &cfg, false, nil
}

// cleanAndExpandPath expands a leading ~ and cleans the path.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}
	return filepath.Clean(path)
}
