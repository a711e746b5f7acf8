// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/checkbankd/locktable"
)

// Watchdog - background process that reports locks held too long
//
// locks have no timeout, so a stuck operation would block its account
// until restart; the watchdog only logs, it never releases
type Watchdog struct {
	log       *logger.L
	locks     *locktable.Table
	threshold time.Duration
	interval  time.Duration
}

// NewWatchdog - report locks older than threshold every interval
func NewWatchdog(log *logger.L, locks *locktable.Table, threshold time.Duration, interval time.Duration) *Watchdog {
	return &Watchdog{
		log:       log,
		locks:     locks,
		threshold: threshold,
		interval:  interval,
	}
}

// Run - background loop, args are unused
func (w *Watchdog) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Infof("starting, threshold: %s  interval: %s", w.threshold, w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case now := <-ticker.C:
			w.Check(now)
		}
	}

	w.log.Info("stopped")
	w.log.Flush()
}

// Check - log and return the locks held longer than the threshold
func (w *Watchdog) Check(now time.Time) []locktable.Holding {
	stale := make([]locktable.Holding, 0)
	for _, h := range w.locks.Held() {
		age := now.Sub(h.Since)
		if age < w.threshold {
			// oldest first, the rest are younger
			break
		}
		w.log.Warnf("lock: %q  held for: %s", h.Id, age)
		stale = append(stale, h)
	}
	return stale
}
