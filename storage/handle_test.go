// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/storage"
	"github.com/bitmark-inc/checkbankd/storage/mocks"
)

type opener func(t *testing.T) storage.Handle

func backends() map[string]opener {
	return map[string]opener{
		"memory": func(t *testing.T) storage.Handle {
			return storage.NewMemory()
		},
		"leveldb": func(t *testing.T) storage.Handle {
			h, err := storage.NewLevelDB(t.TempDir(), false)
			assert.Nil(t, err, "open leveldb")
			return h
		},
		"badger": func(t *testing.T) storage.Handle {
			h, err := storage.NewBadger(t.TempDir(), false)
			assert.Nil(t, err, "open badger")
			return h
		},
		"cached": func(t *testing.T) storage.Handle {
			h, err := storage.NewLevelDB(t.TempDir(), false)
			assert.Nil(t, err, "open leveldb")
			return storage.NewCached(h, 0)
		},
	}
}

func TestGetPutHas(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			h := open(t)
			defer h.Close()

			_, err := h.Get(storage.NextAccountNumber)
			assert.Equal(t, fault.ErrKeyNotFound, err, "absent key")

			found, err := h.Has(storage.NextAccountNumber)
			assert.Nil(t, err, "has absent key")
			assert.False(t, found, "absent key found")

			err = h.Put(storage.NextAccountNumber, []byte("1"))
			assert.Nil(t, err, "put")

			value, err := h.Get(storage.NextAccountNumber)
			assert.Nil(t, err, "get")
			assert.Equal(t, []byte("1"), value, "value")

			found, err = h.Has(storage.NextAccountNumber)
			assert.Nil(t, err, "has")
			assert.True(t, found, "key not found")

			err = h.Put(storage.NextAccountNumber, []byte("2"))
			assert.Nil(t, err, "overwrite")

			value, err = h.Get(storage.NextAccountNumber)
			assert.Nil(t, err, "get after overwrite")
			assert.Equal(t, []byte("2"), value, "overwritten value")
		})
	}
}

func TestClosedStore(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			h := open(t)
			assert.Nil(t, h.Close(), "close")

			_, err := h.Get(storage.AccountKey(1))
			assert.Equal(t, fault.ErrStoreClosed, err, "get after close")

			err = h.Put(storage.AccountKey(1), []byte("{}"))
			assert.Equal(t, fault.ErrStoreClosed, err, "put after close")
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	h := storage.NewMemory()

	value := []byte("abc")
	_ = h.Put(storage.AccountKey(7), value)
	value[0] = 'x'

	stored, _ := h.Get(storage.AccountKey(7))
	assert.Equal(t, []byte("abc"), stored, "put did not copy")

	stored[1] = 'y'
	again, _ := h.Get(storage.AccountKey(7))
	assert.Equal(t, []byte("abc"), again, "get did not copy")
}

func TestAccountKey(t *testing.T) {
	assert.Equal(t, storage.Key("10"), storage.AccountKey(10), "decimal key")
	assert.Equal(t, []byte("nextAccountNumber"), storage.NextAccountNumber.Bytes(), "bytes")
}

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRecords(t *testing.T) {
	h := storage.NewMemory()

	var r record
	err := storage.GetRecord(h, storage.AccountKey(1), &r)
	assert.Equal(t, fault.ErrKeyNotFound, err, "absent record")

	err = storage.PutRecord(h, storage.AccountKey(1), record{Name: "a", Count: 3})
	assert.Nil(t, err, "put record")

	raw, _ := h.Get(storage.AccountKey(1))
	assert.JSONEq(t, `{"name":"a","count":3}`, string(raw), "stored JSON")

	err = storage.GetRecord(h, storage.AccountKey(1), &r)
	assert.Nil(t, err, "get record")
	assert.Equal(t, record{Name: "a", Count: 3}, r, "decoded record")

	_ = h.Put(storage.AccountKey(2), []byte("{not json"))
	err = storage.GetRecord(h, storage.AccountKey(2), &r)
	assert.True(t, fault.IsErrStore(err), "decode failure is a store error")
}

func TestRecordStoreFailures(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)
	failure := errors.New("disk on fire")

	m.EXPECT().Get(storage.MintedCheckTotal).Return(nil, failure).Times(1)
	m.EXPECT().Put(storage.MintedCheckTotal, []byte("5")).Return(failure).Times(1)

	var total int64
	err := storage.GetRecord(m, storage.MintedCheckTotal, &total)
	assert.True(t, fault.IsErrStore(err), "get failure class")
	assert.True(t, errors.Is(err, failure), "get failure cause")

	err = storage.PutRecord(m, storage.MintedCheckTotal, 5)
	assert.True(t, fault.IsErrStore(err), "put failure class")
	assert.Equal(t, `store put "mintedCheckTotal": disk on fire`, err.Error(), "put failure text")
}

func TestCachedFailedPutNotCached(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)
	failure := errors.New("write refused")

	gomock.InOrder(
		m.EXPECT().Get(storage.AccountKey(3)).Return([]byte("old"), nil).Times(1),
		m.EXPECT().Put(storage.AccountKey(3), []byte("new")).Return(failure).Times(1),
		m.EXPECT().Get(storage.AccountKey(3)).Return([]byte("old"), nil).Times(1),
	)

	h := storage.NewCached(m, 0)

	value, err := h.Get(storage.AccountKey(3))
	assert.Nil(t, err, "first get")
	assert.Equal(t, []byte("old"), value, "first value")

	err = h.Put(storage.AccountKey(3), []byte("new"))
	assert.Equal(t, failure, err, "put error")

	value, err = h.Get(storage.AccountKey(3))
	assert.Nil(t, err, "second get")
	assert.Equal(t, []byte("old"), value, "value after failed put")
}

func TestCachedServesReads(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)
	m.EXPECT().Put(storage.AccountNumbers, []byte("[1]")).Return(nil).Times(1)

	h := storage.NewCached(m, 0)
	assert.Nil(t, h.Put(storage.AccountNumbers, []byte("[1]")), "put")

	for i := 0; i < 3; i += 1 {
		value, err := h.Get(storage.AccountNumbers)
		assert.Nil(t, err, "cached get")
		assert.Equal(t, []byte("[1]"), value, "cached value")
	}
}
