// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/checkbankd/configuration"
	"github.com/bitmark-inc/checkbankd/rpc/listeners"
	"github.com/bitmark-inc/checkbankd/storage"
	"github.com/bitmark-inc/checkbankd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "checkbank.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "bankd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
	defaultRate       = 200
	defaultBurst      = 100
	defaultRetries    = 5

	defaultLockWarning  = 30 // seconds
	defaultLockInterval = 10 // seconds
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// LocksType - lock watchdog settings in seconds
type LocksType struct {
	Warning  int `gluamapper:"warning" json:"warning"`
	Interval int `gluamapper:"interval" json:"interval"`
}

// Configuration - the whole bankd.conf
type Configuration struct {
	DataDirectory         string                     `gluamapper:"data_directory" json:"data_directory"`
	PidFile               string                     `gluamapper:"pidfile" json:"pidfile"`
	MinterContractAddress string                     `gluamapper:"minter_contract_address" json:"minter_contract_address"`
	Database              storage.Configuration      `gluamapper:"database" json:"database"`
	ClientRPC             listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Locks                 LocksType                  `gluamapper:"locks" json:"locks"`
	Logging               logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: storage.Configuration{
			Backend:   storage.BackendLevelDB,
			Directory: defaultDatabaseDirectory,
			Name:      defaultDatabaseName,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
			Rate:               defaultRate,
			Burst:              defaultBurst,
			Retries:            defaultRetries,
		},

		Locks: LocksType{
			Warning:  defaultLockWarning,
			Interval: defaultLockInterval,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Database.Backend = strings.ToLower(options.Database.Backend)

	if "" != options.MinterContractAddress && !common.IsHexAddress(options.MinterContractAddress) {
		return nil, fmt.Errorf("minter contract address: %q is not valid", options.MinterContractAddress)
	}

	if options.Locks.Warning <= 0 {
		options.Locks.Warning = defaultLockWarning
	}
	if options.Locks.Interval <= 0 {
		options.Locks.Interval = defaultLockInterval
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	// a blank certificate and key serve plain TCP
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator
	mustNotBePaths := []*string{
		&options.Database.Name,
		&options.Logging.File,
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f) {
		case "", ".":
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f)
		}
	}

	// create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
