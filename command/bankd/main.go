// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/checkbankd/background"
	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/locktable"
	"github.com/bitmark-inc/checkbankd/rpc"
	"github.com/bitmark-inc/checkbankd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// start the data storage
	log.Info("initialise storage")
	store, err := storage.Open(logger.New("storage"), &theConfiguration.Database)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	// one lock table for every ledger operation in this process
	locks := locktable.New()

	log.Info("initialise ledger")
	theLedger := ledger.New(logger.New("ledger"), store, locks)
	err = theLedger.Initialise()
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}

	if "" != theConfiguration.MinterContractAddress {
		err = theLedger.SetMinterContractAddress(theConfiguration.MinterContractAddress)
		if nil != err {
			log.Criticalf("minter contract address error: %s", err)
			exitwithstatus.Message("minter contract address error: %s", err)
		}
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theLedger) {
		return
	}

	// background processes
	watchdog := ledger.NewWatchdog(
		logger.New("watchdog"),
		locks,
		time.Duration(theConfiguration.Locks.Warning)*time.Second,
		time.Duration(theConfiguration.Locks.Interval)*time.Second,
	)

	watcher, err := newConfigWatcher(configurationFile, logger.New(watcherLoggerPrefix), reloadConfiguration)
	if nil != err {
		log.Criticalf("configuration watcher error: %s", err)
		exitwithstatus.Message("configuration watcher error: %s", err)
	}

	processes := background.Processes{
		watchdog,
		watcher,
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, theLedger, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// apply the settings that can change without a restart
func reloadConfiguration(configuration *Configuration) error {
	return rpc.SetRate(configuration.ClientRPC.Rate, configuration.ClientRPC.Burst)
}
