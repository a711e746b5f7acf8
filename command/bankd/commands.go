// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/rpc/certificate"
	"github.com/bitmark-inc/checkbankd/util"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

		fingerprint, err := certificateFingerprint(certificateFilename)
		if nil != err {
			fmt.Printf("fingerprint of: %q error: %s\n", certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("SHA3-256 fingerprint: %s\n", fingerprint)

	case "start", "run":
		return false // continue processing

	case "accounts", "numbers":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)   - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convenience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  accounts                            - print every account as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  numbers                             - print the account number list\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration commands
//
// return:
//   true  if command was handled
//   false if the daemon should start
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		if err := printJson(options); nil != err {
			exitwithstatus.Message("print configuration error: %s", err)
		}
		return true

	default:
		return false
	}
}

// data command handler
//
// the ledger is open and initialised
//
// return:
//   true  if command was handled
//   false if the daemon should start
func processDataCommand(log *logger.L, arguments []string, l *ledger.Ledger) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "accounts":
		accounts, err := l.GetAllAccounts()
		if nil != err {
			log.Errorf("accounts error: %s", err)
			exitwithstatus.Message("accounts error: %s", err)
		}
		if err := printJson(accounts); nil != err {
			exitwithstatus.Message("print accounts error: %s", err)
		}

	case "numbers":
		numbers, err := l.GetAccountNumbers()
		if nil != err {
			log.Errorf("numbers error: %s", err)
			exitwithstatus.Message("numbers error: %s", err)
		}
		if err := printJson(numbers); nil != err {
			exitwithstatus.Message("print numbers error: %s", err)
		}

	default:
		return false
	}

	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

// fingerprint of the first certificate in a PEM file
func certificateFingerprint(certificateFilename string) (util.FingerprintBytes, error) {
	var fingerprint util.FingerprintBytes

	data, err := os.ReadFile(certificateFilename)
	if nil != err {
		return fingerprint, err
	}
	block, _ := pem.Decode(data)
	if nil == block {
		return fingerprint, fmt.Errorf("no PEM data in: %q", certificateFilename)
	}
	return util.Fingerprint(block.Bytes), nil
}

func printJson(message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	fmt.Printf("%s\n", b)
	return nil
}
