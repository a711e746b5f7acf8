// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the ledger's key value store
//
// Each backend provides atomic single key Get and Put and nothing
// more: there are no multi-key transactions.  Values are JSON records
// produced by the ledger, keys are either one of the fixed record names
// or the decimal form of an account number.
//
// Layout:
//
//   nextAccountNumber       - next account number to allocate
//                             data: integer
//   accountNumbers          - every allocated account number, in allocation order
//                             data: [integer]
//   mintedCheckTotal        - count of check identifiers recorded
//                             data: integer
//   minterContractAddress   - address of the deployed check minting contract
//                             data: string
//   <account number>        - one account
//                             data: {accountNumber, balance, ethereumAddress,
//                                    firstName, lastName, physicalAddress,
//                                    checksWritten}
//
// Backends:
//
//   leveldb  - on-disk LevelDB, tagged with a database version record
//   badger   - on-disk Badger
//   memory   - process memory only, lost on exit
//
// The persistent backends can be fronted by an expiring read cache.
package storage
