// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/storage"
)

// CreateAccount - allocate the next account number and store a new
// account under it
//
// fails with fault.ErrLocked if another creation is in progress
func (l *Ledger) CreateAccount(request *CreateRequest) (uint64, error) {
	if request.InitialBalance < 0 {
		return 0, fault.ErrInvalidInitialBalance
	}

	account := Account{
		Balance:         request.InitialBalance,
		EthereumAddress: strings.TrimSpace(request.EthereumAddress),
		FirstName:       strings.TrimSpace(request.FirstName),
		LastName:        strings.TrimSpace(request.LastName),
		PhysicalAddress: request.PhysicalAddress,
		ChecksWritten:   []CheckId{},
	}

	var accountNumber uint64
	err := l.locks.With(storage.NextAccountNumber.String(), func() error {
		n, err := l.allocate(&account)
		accountNumber = n
		return err
	})
	if nil != err {
		l.log.Warnf("create account for: %s  error: %s", account.EthereumAddress, err)
		return 0, err
	}

	l.log.Infof("created account: %d  for: %s", accountNumber, account.EthereumAddress)
	return accountNumber, nil
}

// must hold the account number lock
func (l *Ledger) allocate(account *Account) (uint64, error) {
	accountNumber, err := l.nextAccountNumber()
	if nil != err {
		return 0, err
	}

	account.AccountNumber = accountNumber
	if err := storage.PutRecord(l.store, storage.AccountKey(accountNumber), account); nil != err {
		return 0, err
	}

	if err := storage.PutRecord(l.store, storage.NextAccountNumber, accountNumber+1); nil != err {
		return 0, err
	}

	// from here on a failure burns the number
	accountNumbers, err := l.GetAccountNumbers()
	if nil != err {
		return 0, err
	}
	accountNumbers = append(accountNumbers, accountNumber)

	if err := storage.PutRecord(l.store, storage.AccountNumbers, accountNumbers); nil != err {
		return 0, err
	}
	return accountNumber, nil
}
