// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/ledger/fixtures"
	"github.com/bitmark-inc/checkbankd/locktable"
	"github.com/bitmark-inc/checkbankd/storage"
)

func TestGetAllAccountsOrder(t *testing.T) {
	l, _ := newLedger(t)

	names := []string{"Ada", "Grace", "Edsger", "Barbara", "Donald"}
	for _, name := range names {
		newAccount(t, l, fixtures.AddressA, name, "Tester", 0)
	}

	accounts, err := l.GetAllAccounts()
	assert.Nil(t, err, "all accounts")
	assert.Equal(t, len(names), len(accounts), "account count")
	for i, account := range accounts {
		assert.Equal(t, uint64(i+1), account.AccountNumber, "account number")
		assert.Equal(t, names[i], account.FirstName, "first name")
	}
}

func TestGetAllAccountsNoPartialResult(t *testing.T) {
	l, store := newLedger(t)
	newAccount(t, l, fixtures.AddressA, "Ada", "Lovelace", 0)

	// index entry without a record
	_ = store.Put(storage.AccountNumbers, []byte("[1,2]"))

	accounts, err := l.GetAllAccounts()
	assert.Equal(t, fault.ErrAccountNotFound, err, "missing record")
	assert.Nil(t, accounts, "partial list")
}

func TestGetAllAccountsMissingIndex(t *testing.T) {
	l := ledger.New(logger.New(fixtures.LogCategory), storage.NewMemory(), locktable.New())

	_, err := l.GetAllAccounts()
	assert.Equal(t, fault.ErrAccountNumbersNotFound, err, "missing index")
}

func TestGetAccountByEthereumAddress(t *testing.T) {
	l, _ := newLedger(t)
	a := newAccount(t, l, fixtures.AddressA, "Ada", "Lovelace", 0)
	b := newAccount(t, l, fixtures.AddressB, "Grace", "Hopper", 0)

	account, err := l.GetAccountByEthereumAddress(strings.ToLower(fixtures.AddressB))
	assert.Nil(t, err, "lower case lookup")
	assert.Equal(t, b, account.AccountNumber, "account found")

	account, err = l.GetAccountByEthereumAddress(strings.ToUpper(fixtures.AddressA[2:]))
	assert.Nil(t, err, "lookup without prefix")
	assert.Equal(t, a, account.AccountNumber, "account found")

	_, err = l.GetAccountByEthereumAddress(fixtures.AddressC)
	assert.Equal(t, fault.ErrAccountNotFound, err, "no match")

	_, err = l.GetAccountByEthereumAddress("0xA")
	assert.Equal(t, fault.ErrAccountNotFound, err, "short address")

	_, err = l.GetAccountByEthereumAddress(" ")
	assert.Equal(t, fault.ErrAccountNotFound, err, "blank address")

	newAccount(t, l, fixtures.AddressB, "Grace", "Murray", 0)
	_, err = l.GetAccountByEthereumAddress(fixtures.AddressB)
	assert.Equal(t, fault.ErrAmbiguousMatch, err, "duplicate address")
	assert.Equal(t, fault.AmbiguousMatch, fault.KindOf(err), "duplicate address kind")
}

func TestGetAccountByShortAddress(t *testing.T) {
	l, _ := newLedger(t)
	n := newAccount(t, l, "0xA", "Ada", "Lovelace", 0)
	newAccount(t, l, fixtures.AddressA, "Grace", "Hopper", 0)

	account, err := l.GetAccountByEthereumAddress(" 0xa ")
	assert.Nil(t, err, "lookup")
	assert.Equal(t, n, account.AccountNumber, "account found")
	assert.Equal(t, "0xA", account.EthereumAddress, "stored address")
}

func TestGetAccountByName(t *testing.T) {
	l, _ := newLedger(t)
	newAccount(t, l, fixtures.AddressA, "John", "Smith", 0)
	jane := newAccount(t, l, fixtures.AddressB, "Jane", "Smith", 0)

	account, err := l.GetAccountByName("  Jane   Smith ")
	assert.Nil(t, err, "lookup")
	assert.Equal(t, jane, account.AccountNumber, "account found")

	_, err = l.GetAccountByName("Jane Doe")
	assert.Equal(t, fault.ErrAccountNotFound, err, "no match")

	_, err = l.GetAccountByName(" ")
	assert.Equal(t, fault.ErrAccountNotFound, err, "blank name")

	newAccount(t, l, fixtures.AddressC, "John", "Smith", 0)
	_, err = l.GetAccountByName("John Smith")
	assert.Equal(t, fault.ErrAmbiguousMatch, err, "shared name")
}
