// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/rpc/ratelimit"
)

// BalanceReply - balance of an account
type BalanceReply struct {
	AccountNumber uint64 `json:"accountNumber"`
	Balance       int64  `json:"balance"`
}

// Balance - current balance
func (bank *Bank) Balance(arguments *AccountArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	balance, err := bank.Ledger.Balance(arguments.AccountNumber)
	if nil != err {
		return err
	}
	reply.AccountNumber = arguments.AccountNumber
	reply.Balance = balance
	return nil
}

// AmountArguments - arguments for deposit and withdraw
type AmountArguments struct {
	AccountNumber uint64 `json:"accountNumber"`
	Amount        int64  `json:"amount"`
}

// Deposit - add funds
func (bank *Bank) Deposit(arguments *AmountArguments, reply *BalanceReply) error {
	return bank.adjust("Bank.Deposit", bank.Ledger.Deposit, arguments, reply)
}

// Withdraw - remove funds
func (bank *Bank) Withdraw(arguments *AmountArguments, reply *BalanceReply) error {
	return bank.adjust("Bank.Withdraw", bank.Ledger.Withdraw, arguments, reply)
}

func (bank *Bank) adjust(name string, operation func(uint64, int64) (int64, error), arguments *AmountArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	bank.Log.Infof("%s: %+v", name, arguments)

	return bank.retry(name, func() error {
		balance, err := operation(arguments.AccountNumber, arguments.Amount)
		if nil != err {
			return err
		}
		reply.AccountNumber = arguments.AccountNumber
		reply.Balance = balance
		return nil
	})
}

// CheckArguments - arguments for RPC
type CheckArguments struct {
	AccountNumber uint64         `json:"accountNumber"`
	CheckId       ledger.CheckId `json:"checkId"`
}

// CheckReply - checks recorded against an account
type CheckReply struct {
	AccountNumber uint64           `json:"accountNumber"`
	ChecksWritten []ledger.CheckId `json:"checksWritten"`
}

// AddCheck - record a minted check
func (bank *Bank) AddCheck(arguments *CheckArguments, reply *CheckReply) error {
	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	bank.Log.Infof("Bank.AddCheck: %+v", arguments)

	return bank.retry("Bank.AddCheck", func() error {
		checks, err := bank.Ledger.AddCheckNumber(arguments.AccountNumber, arguments.CheckId)
		if nil != err {
			return err
		}
		reply.AccountNumber = arguments.AccountNumber
		reply.ChecksWritten = checks
		return nil
	})
}
