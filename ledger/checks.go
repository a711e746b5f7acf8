// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/storage"
)

const (
	totalRetryInterval = time.Millisecond
	totalRetryMaximum  = 50 * time.Millisecond
	totalRetryElapsed  = 5 * time.Second
)

// AddCheckNumber - record a minted check against an account
//
// a check can be recorded only once per account; only the account
// lock is held so checks on different accounts proceed concurrently
func (l *Ledger) AddCheckNumber(accountNumber uint64, checkId CheckId) ([]CheckId, error) {
	checkId = CheckId(strings.TrimSpace(checkId.String()))
	if "" == checkId {
		return nil, fault.ErrInvalidCheckIdentifier
	}

	key := storage.AccountKey(accountNumber)

	var checksWritten []CheckId
	err := l.locks.With(key.String(), func() error {
		account, err := l.GetAccount(accountNumber)
		if nil != err {
			return err
		}
		if account.HasCheck(checkId) {
			return fault.ErrDuplicateCheck
		}

		account.ChecksWritten = append(account.ChecksWritten, checkId)
		if err := storage.PutRecord(l.store, key, account); nil != err {
			return err
		}
		checksWritten = account.ChecksWritten
		return nil
	})
	if nil != err {
		l.log.Warnf("add check: %s  account: %d  error: %s", checkId, accountNumber, err)
		return nil, err
	}

	l.log.Infof("add check: %s  account: %d", checkId, accountNumber)

	// the check is recorded; a failure here only leaves the total short
	if err := l.incrementMintedCheckTotal(); nil != err {
		l.log.Errorf("minted check total not incremented for check: %s  error: %s", checkId, err)
	}
	return checksWritten, nil
}

// wait out other increments, each holds the lock for one read and
// one write
func (l *Ledger) incrementMintedCheckTotal() error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = totalRetryInterval
	b.MaxInterval = totalRetryMaximum
	b.MaxElapsedTime = totalRetryElapsed

	return backoff.Retry(func() error {
		err := l.locks.With(storage.MintedCheckTotal.String(), func() error {
			total, err := l.MintedCheckTotal()
			if nil != err {
				return err
			}
			return storage.PutRecord(l.store, storage.MintedCheckTotal, total+1)
		})
		if nil == err || fault.IsErrLocked(err) {
			return err
		}
		return backoff.Permanent(err)
	}, b)
}

// MintedCheckTotal - number of checks recorded across all accounts
func (l *Ledger) MintedCheckTotal() (uint64, error) {
	var total uint64
	err := storage.GetRecord(l.store, storage.MintedCheckTotal, &total)
	if fault.ErrKeyNotFound == err {
		return 0, fault.ErrMintedCheckTotalNotFound
	}
	return total, err
}
