// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type cachedHandle struct {
	backend Handle
	cache   *cache.Cache
}

// NewCached - put a read cache in front of a backend
//
// writes go to the backend first and only update the cache once the
// backend has accepted them; a zero expiry selects the default
func NewCached(backend Handle, expiry time.Duration) Handle {
	if expiry <= 0 {
		expiry = defaultExpiration
	}
	return &cachedHandle{
		backend: backend,
		cache:   cache.New(expiry, defaultTimeout),
	}
}

func (c *cachedHandle) Get(key Key) ([]byte, error) {
	if obj, found := c.cache.Get(key.String()); found {
		return copyBytes(obj.([]byte)), nil
	}

	value, err := c.backend.Get(key)
	if nil != err {
		return nil, err
	}
	c.cache.SetDefault(key.String(), copyBytes(value))
	return value, nil
}

func (c *cachedHandle) Put(key Key, value []byte) error {
	if err := c.backend.Put(key, value); nil != err {
		c.cache.Delete(key.String())
		return err
	}
	c.cache.SetDefault(key.String(), copyBytes(value))
	return nil
}

func (c *cachedHandle) Has(key Key) (bool, error) {
	if _, found := c.cache.Get(key.String()); found {
		return true, nil
	}
	return c.backend.Has(key)
}

func (c *cachedHandle) Close() error {
	c.cache.Flush()
	return c.backend.Close()
}
