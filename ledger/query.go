// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/storage"
)

// limit on concurrent store reads while listing accounts
const maximumParallelReads = 16

// GetAccount - read a single account
func (l *Ledger) GetAccount(accountNumber uint64) (*Account, error) {
	account := &Account{}
	err := storage.GetRecord(l.store, storage.AccountKey(accountNumber), account)
	if fault.ErrKeyNotFound == err {
		return nil, fault.ErrAccountNotFound
	}
	if nil != err {
		return nil, err
	}
	return account, nil
}

// GetAccountNumbers - all allocated account numbers in creation order
func (l *Ledger) GetAccountNumbers() ([]uint64, error) {
	accountNumbers := []uint64{}
	err := storage.GetRecord(l.store, storage.AccountNumbers, &accountNumbers)
	if fault.ErrKeyNotFound == err {
		return nil, fault.ErrAccountNumbersNotFound
	}
	if nil != err {
		return nil, err
	}
	return accountNumbers, nil
}

// GetAllAccounts - every account in creation order
//
// accounts are read in parallel and any single failure fails the
// whole list
func (l *Ledger) GetAllAccounts() ([]*Account, error) {
	accountNumbers, err := l.GetAccountNumbers()
	if nil != err {
		return nil, err
	}

	accounts := make([]*Account, len(accountNumbers))

	g := new(errgroup.Group)
	g.SetLimit(maximumParallelReads)
	for i, n := range accountNumbers {
		i, n := i, n
		g.Go(func() error {
			account, err := l.GetAccount(n)
			if nil != err {
				return err
			}
			accounts[i] = account
			return nil
		})
	}
	if err := g.Wait(); nil != err {
		l.log.Errorf("list accounts error: %s", err)
		return nil, err
	}
	return accounts, nil
}

// GetAccountByEthereumAddress - the single account owned by an address
//
// letter case is ignored
func (l *Ledger) GetAccountByEthereumAddress(address string) (*Account, error) {
	address = strings.TrimSpace(address)
	if "" == address {
		return nil, fault.ErrAccountNotFound
	}

	return l.findOne(func(account *Account) bool {
		return sameAddress(account.EthereumAddress, address)
	})
}

// hex addresses compare as 20 bytes so the 0x prefix is optional,
// anything else compares as text
func sameAddress(a string, b string) bool {
	if common.IsHexAddress(a) && common.IsHexAddress(b) {
		return common.HexToAddress(a) == common.HexToAddress(b)
	}
	return strings.EqualFold(a, b)
}

// GetAccountByName - the single account whose first and last names
// match fullName
func (l *Ledger) GetAccountByName(fullName string) (*Account, error) {
	name := normaliseName(fullName)
	if "" == name {
		return nil, fault.ErrAccountNotFound
	}

	return l.findOne(func(account *Account) bool {
		return account.FullName() == name
	})
}

// scan all accounts; exactly one must match
func (l *Ledger) findOne(match func(*Account) bool) (*Account, error) {
	accounts, err := l.GetAllAccounts()
	if nil != err {
		return nil, err
	}

	var found *Account
	for _, account := range accounts {
		if !match(account) {
			continue
		}
		if nil != found {
			return nil, fault.ErrAmbiguousMatch
		}
		found = account
	}
	if nil == found {
		return nil, fault.ErrAccountNotFound
	}
	return found, nil
}
