// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/storage"
)

// Balance - current balance of an account
func (l *Ledger) Balance(accountNumber uint64) (int64, error) {
	account, err := l.GetAccount(accountNumber)
	if nil != err {
		return 0, err
	}
	return account.Balance, nil
}

// Withdraw - remove funds from an account, returning the new balance
func (l *Ledger) Withdraw(accountNumber uint64, amount int64) (int64, error) {
	return l.adjust("withdraw", accountNumber, amount, func(balance int64) (int64, error) {
		if balance < amount {
			return 0, fault.ErrInsufficientFunds
		}
		return balance - amount, nil
	})
}

// Deposit - add funds to an account, returning the new balance
func (l *Ledger) Deposit(accountNumber uint64, amount int64) (int64, error) {
	return l.adjust("deposit", accountNumber, amount, func(balance int64) (int64, error) {
		if balance > math.MaxInt64-amount {
			return 0, fault.ErrBalanceOverflow
		}
		return balance + amount, nil
	})
}

// check preconditions, then apply f to the balance under the account lock
func (l *Ledger) adjust(operation string, accountNumber uint64, amount int64, f func(int64) (int64, error)) (int64, error) {
	if _, err := l.GetAccount(accountNumber); nil != err {
		return 0, err
	}
	if amount <= 0 {
		return 0, fault.ErrInvalidAmount
	}

	var balance int64
	err := l.locks.With(storage.AccountKey(accountNumber).String(), func() error {
		// re-read, the record may have changed since the existence check
		account, err := l.GetAccount(accountNumber)
		if nil != err {
			return err
		}

		balance, err = f(account.Balance)
		if nil != err {
			return err
		}
		account.Balance = balance

		return storage.PutRecord(l.store, storage.AccountKey(accountNumber), account)
	})
	if nil != err {
		l.log.Debugf("%s: %d  account: %d  error: %s", operation, amount, accountNumber, err)
		return 0, err
	}

	l.log.Infof("%s: %d  account: %d  balance: %d", operation, amount, accountNumber, balance)
	return balance, nil
}
