// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/json"
	"errors"

	"github.com/bitmark-inc/checkbankd/fault"
)

//go:generate mockgen -source=handle.go -destination=mocks/handle.go -package=mocks

// Handle - access to a key value store
//
// Get returns fault.ErrKeyNotFound if the key is absent; any other
// error is a failure of the store itself
type Handle interface {
	Get(key Key) ([]byte, error)
	Put(key Key, value []byte) error
	Has(key Key) (bool, error)
	Close() error
}

// GetRecord - read a key and decode its JSON value into record
//
// absent keys give fault.ErrKeyNotFound, everything else is wrapped
// as a store error
func GetRecord(h Handle, key Key, record interface{}) error {
	buffer, err := h.Get(key)
	if errors.Is(err, fault.ErrKeyNotFound) {
		return fault.ErrKeyNotFound
	}
	if nil != err {
		return fault.NewStoreError("get", key.String(), err)
	}
	if err := json.Unmarshal(buffer, record); nil != err {
		return fault.NewStoreError("decode", key.String(), err)
	}
	return nil
}

// PutRecord - JSON encode a record and write it to key
func PutRecord(h Handle, key Key, record interface{}) error {
	buffer, err := json.Marshal(record)
	if nil != err {
		return fault.NewStoreError("encode", key.String(), err)
	}
	if err := h.Put(key, buffer); nil != err {
		return fault.NewStoreError("put", key.String(), err)
	}
	return nil
}
