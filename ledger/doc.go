// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - bank accounts, balances and recorded checks
//
// all state lives in a storage.Handle; concurrent mutation of the same
// account, of the account number counter or of the minted check total
// is prevented by advisory locks from a locktable.Table which is
// keyed by the storage key being protected
//
// a lock is never waited for: a contended operation fails at once
// with fault.ErrLocked and the caller decides whether to retry
//
// there are no multi key transactions, so a store failure part way
// through account creation can leave the counter advanced without a
// matching index entry; that number is simply never used
package ledger
