// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - type to hold a certificate fingerprint
type FingerprintBytes [32]byte

// Fingerprint - SHA3-256 of a DER encoded certificate
//
// the client pins the daemon certificate by this value
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}

// String - fingerprint as hex
func (f FingerprintBytes) String() string {
	return hex.EncodeToString(f[:])
}
