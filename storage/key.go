// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"strconv"
)

// Key - a store key
type Key string

// fixed record names
const (
	NextAccountNumber     Key = "nextAccountNumber"
	AccountNumbers        Key = "accountNumbers"
	MintedCheckTotal      Key = "mintedCheckTotal"
	MinterContractAddress Key = "minterContractAddress"
)

// AccountKey - the key of an account record
func AccountKey(accountNumber uint64) Key {
	return Key(strconv.FormatUint(accountNumber, 10))
}

// String - the key as text
func (k Key) String() string {
	return string(k)
}

// Bytes - the key as stored by byte oriented backends
func (k Key) Bytes() []byte {
	return []byte(k)
}
