// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/bitmark-inc/checkbankd/fault"
)

type badgerHandle struct {
	sync.RWMutex
	db *badger.DB
}

// NewBadger - open (creating if necessary) a Badger store in directory
func NewBadger(directory string, readOnly bool) (Handle, error) {
	opt := badger.DefaultOptions(directory).
		WithReadOnly(readOnly).
		WithLogger(nil)

	db, err := badger.Open(opt)
	if nil != err {
		return nil, err
	}
	return &badgerHandle{db: db}, nil
}

func (h *badgerHandle) Get(key Key) ([]byte, error) {
	h.RLock()
	defer h.RUnlock()
	if nil == h.db {
		return nil, fault.ErrStoreClosed
	}

	var value []byte
	err := h.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key.Bytes())
		if nil != err {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fault.ErrKeyNotFound
	}
	return value, err
}

func (h *badgerHandle) Put(key Key, value []byte) error {
	h.RLock()
	defer h.RUnlock()
	if nil == h.db {
		return fault.ErrStoreClosed
	}
	return h.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key.Bytes(), value)
	})
}

func (h *badgerHandle) Has(key Key) (bool, error) {
	_, err := h.Get(key)
	if errors.Is(err, fault.ErrKeyNotFound) {
		return false, nil
	}
	return nil == err, err
}

func (h *badgerHandle) Close() error {
	h.Lock()
	defer h.Unlock()
	if nil == h.db {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	return err
}
