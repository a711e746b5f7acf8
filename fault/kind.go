// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// Kind - the class of a ledger failure
type Kind int

// ledger failure kinds
const (
	None Kind = iota
	NotFound
	InvalidAmount
	InvalidArgument
	InsufficientFunds
	Locked
	DuplicateCheck
	AmbiguousMatch
	Store
	Other
)

var kindNames = [...]string{
	None:              "None",
	NotFound:          "NotFound",
	InvalidAmount:     "InvalidAmount",
	InvalidArgument:   "InvalidArgument",
	InsufficientFunds: "InsufficientFunds",
	Locked:            "Locked",
	DuplicateCheck:    "DuplicateCheck",
	AmbiguousMatch:    "AmbiguousMatch",
	Store:             "StoreError",
	Other:             "Other",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// KindOf - classify an error
//
// a store failure takes precedence since it may wrap any other class
func KindOf(err error) Kind {
	switch {
	case nil == err:
		return None
	case IsErrStore(err):
		return Store
	case IsErrNotFound(err):
		return NotFound
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidInitialBalance),
		errors.Is(err, ErrBalanceOverflow):
		return InvalidAmount
	case IsErrInvalid(err):
		return InvalidArgument
	case IsErrFunds(err):
		return InsufficientFunds
	case IsErrLocked(err):
		return Locked
	case errors.Is(err, ErrDuplicateCheck):
		return DuplicateCheck
	case IsErrAmbiguous(err):
		return AmbiguousMatch
	}
	return Other
}

// every fixed error, used to recover the error instance from its text
// on the far side of an RPC connection
var known = []error{
	ErrAccountNotFound,
	ErrAccountNumbersNotFound,
	ErrAmbiguousMatch,
	ErrBalanceOverflow,
	ErrDuplicateCheck,
	ErrInsufficientFunds,
	ErrInvalidAccountNumber,
	ErrInvalidAmount,
	ErrInvalidCheckIdentifier,
	ErrInvalidCount,
	ErrInvalidEthereumAddress,
	ErrInvalidInitialBalance,
	ErrInvalidLookup,
	ErrKeyNotFound,
	ErrLocked,
	ErrMintedCheckTotalNotFound,
	ErrMinterAddressNotFound,
	ErrNextAccountNumberNotFound,
	ErrRateLimiting,
}

// FromMessage - map an error message back to the matching error
// instance, unrecognised messages are returned as a plain error
func FromMessage(message string) error {
	for _, e := range known {
		if e.Error() == message {
			return e
		}
	}
	return errors.New(message)
}
