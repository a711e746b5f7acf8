// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/checkbankd/background"
	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/ledger/fixtures"
	"github.com/bitmark-inc/checkbankd/locktable"
)

func TestWatchdogCheck(t *testing.T) {
	locks := locktable.New()
	w := ledger.NewWatchdog(logger.New(fixtures.LogCategory), locks, time.Minute, time.Second)

	locks.Acquire("1")
	locks.Acquire("nextAccountNumber")

	stale := w.Check(time.Now())
	assert.Equal(t, 0, len(stale), "fresh locks reported")

	stale = w.Check(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 2, len(stale), "stale locks")
	assert.Equal(t, 2, locks.Count(), "watchdog released locks")
}

func TestWatchdogRun(t *testing.T) {
	locks := locktable.New()
	w := ledger.NewWatchdog(logger.New(fixtures.LogCategory), locks, 0, time.Millisecond)
	locks.Acquire("7")

	p := background.Start(background.Processes{w}, nil)
	time.Sleep(10 * time.Millisecond)
	p.Stop()

	assert.True(t, locks.IsHeld("7"), "lock released")
}
