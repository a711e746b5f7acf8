// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package locktable - non-blocking advisory locks keyed by string
//
// a lock is either free or held; acquiring a held lock fails at once
// instead of waiting, there is no owner tracking and no timeout, so a
// caller may release a lock it did not acquire
package locktable

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/bitmark-inc/checkbankd/fault"
)

// Table - the set of currently held locks
type Table struct {
	sync.Mutex
	held      map[string]time.Time
	contended atomic.Uint64
}

// Holding - a held lock and the time it was acquired
type Holding struct {
	Id    string
	Since time.Time
}

// New - create an empty lock table
func New() *Table {
	return &Table{
		held: make(map[string]time.Time),
	}
}

// Acquire - take the lock for id if it is free
//
// returns false if already held
func (t *Table) Acquire(id string) bool {
	t.Lock()
	defer t.Unlock()

	if _, ok := t.held[id]; ok {
		t.contended.Inc()
		return false
	}
	t.held[id] = time.Now()
	return true
}

// Release - free the lock for id
//
// returns false if it was not held
func (t *Table) Release(id string) bool {
	t.Lock()
	defer t.Unlock()

	if _, ok := t.held[id]; !ok {
		return false
	}
	delete(t.held, id)
	return true
}

// With - run f while holding the lock for id
//
// fails with fault.ErrLocked without calling f if the lock is held;
// the lock is released when f returns or panics
func (t *Table) With(id string, f func() error) error {
	if !t.Acquire(id) {
		return fault.ErrLocked
	}
	defer t.Release(id)

	return f()
}

// IsHeld - check whether a lock is currently held
func (t *Table) IsHeld(id string) bool {
	t.Lock()
	defer t.Unlock()
	_, ok := t.held[id]
	return ok
}

// Count - number of locks currently held
func (t *Table) Count() int {
	t.Lock()
	defer t.Unlock()
	return len(t.held)
}

// Contended - number of failed acquisitions since creation
func (t *Table) Contended() uint64 {
	return t.contended.Load()
}

// Held - snapshot of held locks, oldest first
func (t *Table) Held() []Holding {
	t.Lock()
	holdings := make([]Holding, 0, len(t.held))
	for id, since := range t.held {
		holdings = append(holdings, Holding{Id: id, Since: since})
	}
	t.Unlock()

	sort.Slice(holdings, func(i, j int) bool {
		if holdings[i].Since.Equal(holdings[j].Since) {
			return holdings[i].Id < holdings[j].Id
		}
		return holdings[i].Since.Before(holdings[j].Since)
	})
	return holdings
}
