// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/checkbankd/fault"
)

type memoryHandle struct {
	sync.RWMutex
	items  map[Key][]byte
	closed bool
}

// NewMemory - a store that only lives as long as the process
func NewMemory() Handle {
	return &memoryHandle{
		items: make(map[Key][]byte),
	}
}

func (h *memoryHandle) Get(key Key) ([]byte, error) {
	h.RLock()
	defer h.RUnlock()
	if h.closed {
		return nil, fault.ErrStoreClosed
	}
	value, ok := h.items[key]
	if !ok {
		return nil, fault.ErrKeyNotFound
	}
	return copyBytes(value), nil
}

func (h *memoryHandle) Put(key Key, value []byte) error {
	h.Lock()
	defer h.Unlock()
	if h.closed {
		return fault.ErrStoreClosed
	}
	h.items[key] = copyBytes(value)
	return nil
}

func (h *memoryHandle) Has(key Key) (bool, error) {
	h.RLock()
	defer h.RUnlock()
	if h.closed {
		return false, fault.ErrStoreClosed
	}
	_, ok := h.items[key]
	return ok, nil
}

func (h *memoryHandle) Close() error {
	h.Lock()
	h.closed = true
	h.Unlock()
	return nil
}

// callers may modify the slices they pass in or receive
func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
