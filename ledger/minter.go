// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/storage"
)

// MinterContractAddress - address of the contract that mints checks
func (l *Ledger) MinterContractAddress() (string, error) {
	var address string
	err := storage.GetRecord(l.store, storage.MinterContractAddress, &address)
	if fault.ErrKeyNotFound == err {
		return "", fault.ErrMinterAddressNotFound
	}
	return address, err
}

// SetMinterContractAddress - record the deployed minter contract
func (l *Ledger) SetMinterContractAddress(address string) error {
	if !common.IsHexAddress(address) {
		return fault.ErrInvalidEthereumAddress
	}
	checksummed := common.HexToAddress(address).Hex()

	return l.locks.With(storage.MinterContractAddress.String(), func() error {
		if err := storage.PutRecord(l.store, storage.MinterContractAddress, checksummed); nil != err {
			return err
		}
		l.log.Infof("minter contract address: %s", checksummed)
		return nil
	})
}
