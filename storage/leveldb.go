// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/checkbankd/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentLevelDBVersion = 0x100

type levelDBHandle struct {
	sync.RWMutex
	db *leveldb.DB
}

// NewLevelDB - open (creating if necessary) a LevelDB store
func NewLevelDB(name string, readOnly bool) (Handle, error) {
	db, version, err := getDB(name, readOnly)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentLevelDBVersion {
		db.Close()
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentLevelDBVersion)
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		if err := putVersion(db, currentLevelDBVersion); nil != err {
			db.Close()
			return nil, err
		}
	}

	return &levelDBHandle{db: db}, nil
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

func (h *levelDBHandle) Get(key Key) ([]byte, error) {
	h.RLock()
	defer h.RUnlock()
	if nil == h.db {
		return nil, fault.ErrStoreClosed
	}
	value, err := h.db.Get(key.Bytes(), nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrKeyNotFound
	}
	return value, err
}

func (h *levelDBHandle) Put(key Key, value []byte) error {
	h.RLock()
	defer h.RUnlock()
	if nil == h.db {
		return fault.ErrStoreClosed
	}
	return h.db.Put(key.Bytes(), value, nil)
}

func (h *levelDBHandle) Has(key Key) (bool, error) {
	h.RLock()
	defer h.RUnlock()
	if nil == h.db {
		return false, fault.ErrStoreClosed
	}
	return h.db.Has(key.Bytes(), nil)
}

func (h *levelDBHandle) Close() error {
	h.Lock()
	defer h.Unlock()
	if nil == h.db {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	return err
}
