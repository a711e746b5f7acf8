// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"errors"
	"os"
	"runtime"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/ledger/fixtures"
	"github.com/bitmark-inc/checkbankd/locktable"
	"github.com/bitmark-inc/checkbankd/storage"
	"github.com/bitmark-inc/checkbankd/storage/mocks"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// an initialised ledger over a fresh memory store
func newLedger(t *testing.T) (*ledger.Ledger, storage.Handle) {
	store := storage.NewMemory()
	l := ledger.New(logger.New(fixtures.LogCategory), store, locktable.New())
	err := l.Initialise()
	assert.Nil(t, err, "initialise")
	return l, store
}

func newAccount(t *testing.T, l *ledger.Ledger, address string, first string, last string, balance int64) uint64 {
	n, err := l.CreateAccount(&ledger.CreateRequest{
		EthereumAddress: address,
		FirstName:       first,
		LastName:        last,
		PhysicalAddress: ledger.PhysicalAddress{
			StreetNumber: "1",
			StreetName:   "Main Street",
			City:         "Springfield",
			State:        "IL",
			ZipCode:      "62701",
		},
		InitialBalance: balance,
	})
	assert.Nil(t, err, "create account")
	return n
}

// retry while the lock is contended
func retry(f func() error) error {
	for {
		err := f()
		if !fault.IsErrLocked(err) {
			return err
		}
		runtime.Gosched()
	}
}

func TestInitialiseDefaults(t *testing.T) {
	l, store := newLedger(t)

	raw, err := store.Get(storage.NextAccountNumber)
	assert.Nil(t, err, "next account number")
	assert.Equal(t, "1", string(raw), "next account number value")

	raw, err = store.Get(storage.AccountNumbers)
	assert.Nil(t, err, "account numbers")
	assert.Equal(t, "[]", string(raw), "account numbers value")

	total, err := l.MintedCheckTotal()
	assert.Nil(t, err, "minted check total")
	assert.Equal(t, uint64(0), total, "minted check total value")
}

func TestInitialiseKeepsExisting(t *testing.T) {
	store := storage.NewMemory()
	_ = store.Put(storage.NextAccountNumber, []byte("42"))
	_ = store.Put(storage.AccountNumbers, []byte("[40,41]"))

	l := ledger.New(logger.New(fixtures.LogCategory), store, locktable.New())
	assert.Nil(t, l.Initialise(), "initialise")
	assert.Nil(t, l.Initialise(), "second initialise")

	raw, _ := store.Get(storage.NextAccountNumber)
	assert.Equal(t, "42", string(raw), "next account number overwritten")

	numbers, err := l.GetAccountNumbers()
	assert.Nil(t, err, "account numbers")
	assert.Equal(t, []uint64{40, 41}, numbers, "account numbers overwritten")
}

func TestInitialiseStoreFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)
	m.EXPECT().Has(storage.NextAccountNumber).Return(false, errors.New("io error")).Times(1)

	l := ledger.New(logger.New(fixtures.LogCategory), m, locktable.New())
	err := l.Initialise()
	assert.Equal(t, fault.Store, fault.KindOf(err), "error kind")
}
