// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/ledger/fixtures"
	"github.com/bitmark-inc/checkbankd/locktable"
	"github.com/bitmark-inc/checkbankd/storage"
	"github.com/bitmark-inc/checkbankd/storage/mocks"
)

func TestDepositWithdrawScenario(t *testing.T) {
	l, _ := newLedger(t)
	n := newAccount(t, l, "0xA", "Ada", "Lovelace", 1000)

	balance, err := l.Balance(n)
	assert.Nil(t, err, "balance")
	assert.Equal(t, int64(1000), balance, "initial balance")

	balance, err = l.Deposit(n, 50)
	assert.Nil(t, err, "deposit")
	assert.Equal(t, int64(1050), balance, "balance after deposit")

	_, err = l.Withdraw(n, 2000)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "overdraw")
	assert.Equal(t, fault.InsufficientFunds, fault.KindOf(err), "overdraw kind")

	balance, err = l.Balance(n)
	assert.Nil(t, err, "balance")
	assert.Equal(t, int64(1050), balance, "balance after failed withdraw")

	balance, err = l.Withdraw(n, 1050)
	assert.Nil(t, err, "withdraw all")
	assert.Equal(t, int64(0), balance, "final balance")
	assert.Equal(t, 0, l.Locks().Count(), "locks held")
}

func TestInvalidAmounts(t *testing.T) {
	l, _ := newLedger(t)
	n := newAccount(t, l, fixtures.AddressA, "Ada", "Lovelace", 100)

	for _, amount := range []int64{0, -1, math.MinInt64} {
		_, err := l.Deposit(n, amount)
		assert.Equal(t, fault.ErrInvalidAmount, err, "deposit: %d", amount)
		assert.Equal(t, fault.InvalidAmount, fault.KindOf(err), "deposit kind: %d", amount)

		_, err = l.Withdraw(n, amount)
		assert.Equal(t, fault.ErrInvalidAmount, err, "withdraw: %d", amount)
	}

	balance, _ := l.Balance(n)
	assert.Equal(t, int64(100), balance, "balance mutated")
}

func TestUnknownAccount(t *testing.T) {
	l, _ := newLedger(t)

	// existence is checked before the amount
	_, err := l.Deposit(99, -5)
	assert.Equal(t, fault.ErrAccountNotFound, err, "deposit")

	_, err = l.Withdraw(99, 5)
	assert.Equal(t, fault.ErrAccountNotFound, err, "withdraw")

	_, err = l.Balance(99)
	assert.Equal(t, fault.NotFound, fault.KindOf(err), "balance")

	assert.Equal(t, 0, l.Locks().Count(), "lock taken for missing account")
}

func TestDepositOverflow(t *testing.T) {
	l, _ := newLedger(t)
	n := newAccount(t, l, fixtures.AddressA, "Ada", "Lovelace", math.MaxInt64-10)

	_, err := l.Deposit(n, 11)
	assert.Equal(t, fault.ErrBalanceOverflow, err, "overflow")
	assert.Equal(t, fault.InvalidAmount, fault.KindOf(err), "overflow kind")

	balance, err := l.Deposit(n, 10)
	assert.Nil(t, err, "deposit to maximum")
	assert.Equal(t, int64(math.MaxInt64), balance, "maximum balance")
}

func TestAccountLocked(t *testing.T) {
	l, _ := newLedger(t)
	n := newAccount(t, l, fixtures.AddressA, "Ada", "Lovelace", 100)

	l.Locks().Acquire(storage.AccountKey(n).String())

	_, err := l.Deposit(n, 1)
	assert.Equal(t, fault.ErrLocked, err, "deposit while locked")

	_, err = l.Withdraw(n, 1)
	assert.Equal(t, fault.Locked, fault.KindOf(err), "withdraw while locked")

	// other accounts are unaffected
	m := newAccount(t, l, fixtures.AddressB, "Grace", "Hopper", 0)
	_, err = l.Deposit(m, 1)
	assert.Nil(t, err, "deposit to other account")

	l.Locks().Release(storage.AccountKey(n).String())
	balance, _ := l.Balance(n)
	assert.Equal(t, int64(100), balance, "balance mutated while locked")
}

func TestConcurrentConservation(t *testing.T) {
	l, _ := newLedger(t)
	const initial = 1000
	n := newAccount(t, l, fixtures.AddressA, "Ada", "Lovelace", initial)

	const workers = 40
	var deposited atomic.Int64
	var withdrawn atomic.Int64

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i += 1 {
		go func(i int) {
			defer wg.Done()
			amount := int64(i%7 + 1)
			if 0 == i%2 {
				err := retry(func() error {
					_, err := l.Deposit(n, amount)
					return err
				})
				if nil == err {
					deposited.Add(amount)
				}
				return
			}
			err := retry(func() error {
				_, err := l.Withdraw(n, amount)
				return err
			})
			if nil == err {
				withdrawn.Add(amount)
			}
		}(i)
	}
	wg.Wait()

	balance, err := l.Balance(n)
	assert.Nil(t, err, "balance")
	assert.Equal(t, initial+deposited.Load()-withdrawn.Load(), balance, "lost update")
	assert.Equal(t, 0, l.Locks().Count(), "locks held")
}

func TestConcurrentWithdrawals(t *testing.T) {
	for round := 0; round < 20; round += 1 {
		l, _ := newLedger(t)
		n := newAccount(t, l, fixtures.AddressA, "Ada", "Lovelace", 100)

		errs := make([]error, 2)
		var wg sync.WaitGroup
		wg.Add(2)
		for i := 0; i < 2; i += 1 {
			go func(i int) {
				defer wg.Done()
				_, errs[i] = l.Withdraw(n, 100)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			switch {
			case nil == err:
				succeeded += 1
			case fault.IsErrLocked(err), fault.IsErrFunds(err):
			default:
				t.Errorf("unexpected error: %s", err)
			}
		}
		assert.Equal(t, 1, succeeded, "round: %d", round)

		balance, _ := l.Balance(n)
		assert.Equal(t, int64(0), balance, "round: %d", round)
	}
}

func TestWithdrawStoreFailureReleasesLock(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)
	failure := errors.New("checksum mismatch")
	record := []byte(`{"accountNumber":3,"balance":40,"ethereumAddress":"","firstName":"","lastName":"","physicalAddress":{},"checksWritten":[]}`)

	m.EXPECT().Get(storage.AccountKey(3)).Return(record, nil).Times(2)
	m.EXPECT().Put(storage.AccountKey(3), gomock.Any()).Return(failure).Times(1)

	locks := locktable.New()
	l := ledger.New(logger.New(fixtures.LogCategory), m, locks)

	_, err := l.Withdraw(3, 10)
	assert.Equal(t, fault.Store, fault.KindOf(err), "error kind")
	assert.False(t, locks.IsHeld(storage.AccountKey(3).String()), "lock leaked")
}

func TestWithdrawReadFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)
	m.EXPECT().Get(storage.AccountKey(3)).Return(nil, errors.New("read error")).Times(1)

	l := ledger.New(logger.New(fixtures.LogCategory), m, locktable.New())

	_, err := l.Withdraw(3, 10)
	assert.Equal(t, fault.Store, fault.KindOf(err), "error kind")
}
