// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register every RPC service on one server
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/rpc/bank"
	"github.com/bitmark-inc/checkbankd/rpc/node"
)

// Create - a server with the Bank and Node services
func Create(log *logger.L, l *ledger.Ledger, limiter *rate.Limiter, retries uint64, version string, rpcCount *atomic.Uint64) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(bank.New(log, l, limiter, retries))
	_ = server.Register(node.New(log, l, l.Locks(), limiter, start, version, rpcCount))

	return server
}
