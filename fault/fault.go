// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AmbiguousError GenericError
type ExistsError GenericError
type FundsError GenericError
type InvalidError GenericError
type LockedError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound              = NotFoundError("account not found")
	ErrAccountNumbersNotFound       = NotFoundError("account number list not found")
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrAmbiguousMatch               = AmbiguousError("lookup did not match exactly one account")
	ErrBalanceOverflow              = InvalidError("balance would overflow")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrDuplicateCheck               = ExistsError("check already recorded for account")
	ErrInsufficientFunds            = FundsError("insufficient funds")
	ErrInvalidAccountNumber         = InvalidError("invalid account number")
	ErrInvalidAmount                = InvalidError("amount must be positive")
	ErrInvalidCheckIdentifier       = InvalidError("invalid check identifier")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidEthereumAddress       = InvalidError("invalid ethereum address")
	ErrInvalidInitialBalance        = InvalidError("initial balance must not be negative")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidLookup                = InvalidError("lookup requires exactly one of address or name")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidStorageBackend        = InvalidError("invalid storage backend")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrKeyNotFound                  = NotFoundError("key not found")
	ErrLocked                       = LockedError("resource is locked, retry later")
	ErrMintedCheckTotalNotFound     = NotFoundError("minted check total not found")
	ErrMinterAddressNotFound        = NotFoundError("minter contract address not found")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNextAccountNumberNotFound    = NotFoundError("next account number not found")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrStoreClosed                  = ProcessError("store is closed")
)

// the error interface methods
func (e GenericError) Error() string   { return string(e) }
func (e AmbiguousError) Error() string { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e FundsError) Error() string     { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LockedError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// StoreError - a key value store get/put failed for a reason opaque to
// the ledger
type StoreError struct {
	Op  string
	Key string
	Err error
}

// NewStoreError - wrap a failure from the underlying store
func NewStoreError(op string, key string, err error) error {
	return &StoreError{Op: op, Key: key, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %q: %s", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// determine the class of an error
func IsErrAmbiguous(e error) bool { var t AmbiguousError; return errors.As(e, &t) }
func IsErrExists(e error) bool    { var t ExistsError; return errors.As(e, &t) }
func IsErrFunds(e error) bool     { var t FundsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool   { var t InvalidError; return errors.As(e, &t) }
func IsErrLocked(e error) bool    { var t LockedError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool  { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool   { var t ProcessError; return errors.As(e, &t) }
func IsErrStore(e error) bool     { var t *StoreError; return errors.As(e, &t) }
