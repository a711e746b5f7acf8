// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - the Node RPC service, daemon status
package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/locktable"
	"github.com/bitmark-inc/checkbankd/rpc/ratelimit"
)

// Status - the ledger values reported by Info
type Status interface {
	GetAccountNumbers() ([]uint64, error)
	MintedCheckTotal() (uint64, error)
	MinterContractAddress() (string, error)
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Status  Status
	Locks   *locktable.Table
	counter *atomic.Uint64
}

// New - create the service
func New(log *logger.L, status Status, locks *locktable.Table, limiter *rate.Limiter, start time.Time, version string, counter *atomic.Uint64) *Node {
	return &Node{
		Log:     log,
		Limiter: limiter,
		Start:   start,
		Version: version,
		Status:  status,
		Locks:   locks,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version               string `json:"version"`
	Uptime                string `json:"uptime"`
	RPCs                  uint64 `json:"rpcs"`
	Accounts              int    `json:"accounts"`
	MintedCheckTotal      uint64 `json:"mintedCheckTotal"`
	MinterContractAddress string `json:"minterContractAddress,omitempty"`
	LocksHeld             int    `json:"locksHeld"`
	LocksContended        uint64 `json:"locksContended"`
}

// Info - return some information about this daemon
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	numbers, err := node.Status.GetAccountNumbers()
	if nil != err {
		return err
	}
	total, err := node.Status.MintedCheckTotal()
	if nil != err {
		return err
	}

	// minter is optional
	minter, err := node.Status.MinterContractAddress()
	if nil != err && fault.ErrMinterAddressNotFound != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Load()
	reply.Accounts = len(numbers)
	reply.MintedCheckTotal = total
	reply.MinterContractAddress = minter
	reply.LocksHeld = node.Locks.Count()
	reply.LocksContended = node.Locks.Contended()
	return nil
}
