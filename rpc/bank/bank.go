// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bank - the Bank RPC service
package bank

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/ledger"
)

//go:generate mockgen -source=bank.go -destination=../mocks/ledger.go -package=mocks

// Ledger - the ledger operations served over RPC
type Ledger interface {
	CreateAccount(*ledger.CreateRequest) (uint64, error)
	GetAccount(uint64) (*ledger.Account, error)
	GetAccountByEthereumAddress(string) (*ledger.Account, error)
	GetAccountByName(string) (*ledger.Account, error)
	GetAllAccounts() ([]*ledger.Account, error)
	GetAccountNumbers() ([]uint64, error)
	Balance(uint64) (int64, error)
	Deposit(uint64, int64) (int64, error)
	Withdraw(uint64, int64) (int64, error)
	AddCheckNumber(uint64, ledger.CheckId) ([]ledger.CheckId, error)
	MintedCheckTotal() (uint64, error)
	MinterContractAddress() (string, error)
}

const (
	MaximumListCount = 100

	defaultRetries       = 5
	initialRetryInterval = 10 * time.Millisecond
	maximumRetryInterval = 250 * time.Millisecond
)

// Bank - type for the RPC
type Bank struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
	Retries uint64
}

// New - create the service
//
// the limiter is shared with the caller so it can be adjusted while
// running; calls that find their account locked are retried up to
// retries times
func New(log *logger.L, l Ledger, limiter *rate.Limiter, retries uint64) *Bank {
	if 0 == retries {
		retries = defaultRetries
	}
	return &Bank{
		Log:     log,
		Limiter: limiter,
		Ledger:  l,
		Retries: retries,
	}
}

// retry an operation while it fails with a locked error
func (bank *Bank) retry(name string, operation func() error) error {
	attempts := 0

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialRetryInterval
	b.MaxInterval = maximumRetryInterval

	err := backoff.Retry(func() error {
		attempts += 1
		err := operation()
		if nil == err || fault.IsErrLocked(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithMaxRetries(b, bank.Retries))

	if attempts > 1 {
		bank.Log.Debugf("%s: attempts: %d  error: %v", name, attempts, err)
	}
	return err
}
