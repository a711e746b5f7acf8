// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/locktable"
	"github.com/bitmark-inc/checkbankd/storage"
)

// first account number issued by a new database
const firstAccountNumber = 1

// Ledger - accounts held in a store
type Ledger struct {
	log   *logger.L
	store storage.Handle
	locks *locktable.Table
}

// New - create a ledger over a store
//
// the lock table may be shared by several ledgers on the same store
func New(log *logger.L, store storage.Handle, locks *locktable.Table) *Ledger {
	return &Ledger{
		log:   log,
		store: store,
		locks: locks,
	}
}

// Locks - the lock table serialising this ledger
func (l *Ledger) Locks() *locktable.Table {
	return l.locks
}

// Initialise - write the default value of any missing bookkeeping record
func (l *Ledger) Initialise() error {
	defaults := []struct {
		key   storage.Key
		value interface{}
	}{
		{storage.NextAccountNumber, uint64(firstAccountNumber)},
		{storage.AccountNumbers, []uint64{}},
		{storage.MintedCheckTotal, uint64(0)},
	}

	for _, d := range defaults {
		found, err := l.store.Has(d.key)
		if nil != err {
			l.log.Errorf("check %q  error: %s", d.key, err)
			return fault.NewStoreError("has", d.key.String(), err)
		}
		if found {
			continue
		}
		if err := storage.PutRecord(l.store, d.key, d.value); nil != err {
			l.log.Errorf("initialise %q  error: %s", d.key, err)
			return err
		}
		l.log.Infof("initialised %q to: %v", d.key, d.value)
	}

	next, err := l.nextAccountNumber()
	if nil != err {
		return err
	}
	l.log.Infof("database ready, next account number: %d", next)
	return nil
}

func (l *Ledger) nextAccountNumber() (uint64, error) {
	var next uint64
	err := storage.GetRecord(l.store, storage.NextAccountNumber, &next)
	if fault.ErrKeyNotFound == err {
		return 0, fault.ErrNextAccountNumberNotFound
	}
	return next, err
}
