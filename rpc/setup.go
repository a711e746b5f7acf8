// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"

	"github.com/bitmark-inc/logger"
	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/rpc/certificate"
	"github.com/bitmark-inc/checkbankd/rpc/listeners"
	"github.com/bitmark-inc/checkbankd/rpc/server"
	"github.com/bitmark-inc/checkbankd/util"
)

const (
	tlsName = "client_rpc"

	defaultRate  = 200.0
	defaultBurst = 100
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	limiter  *rate.Limiter
	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection count shared by all listeners
var connectionCountRPC atomic.Uint64

// Initialise - start the RPC listeners serving the ledger
func Initialise(configuration *listeners.RPCConfiguration, l *ledger.Ledger, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	var tlsConfig *tls.Config
	var fingerprint util.FingerprintBytes
	if "" != configuration.Certificate || "" != configuration.PrivateKey {
		var err error
		tlsConfig, fingerprint, err = certificate.Get(log, tlsName, configuration.Certificate, configuration.PrivateKey)
		if nil != err {
			log.Errorf("certificate error: %s", err)
			return err
		}
	}

	globalData.limiter = rate.NewLimiter(limitOrDefault(configuration.Rate, configuration.Burst))

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		server.Create(log, l, globalData.limiter, configuration.Retries, version, &connectionCountRPC),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Addresses - the addresses currently being served
func Addresses() []string {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil
	}
	return globalData.listener.Addresses()
}

// SetRate - change request throttling without restarting the listeners
func SetRate(r float64, burst int) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	limit, b := limitOrDefault(r, burst)
	globalData.limiter.SetLimit(limit)
	globalData.limiter.SetBurst(b)
	globalData.log.Infof("rate: %v  burst: %d", limit, b)

	return nil
}

func limitOrDefault(r float64, burst int) (rate.Limit, int) {
	if r <= 0 {
		r = defaultRate
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return rate.Limit(r), burst
}
