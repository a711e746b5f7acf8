// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS certificates for the RPC listener
package certificate

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/util"
)

const validity = 10 * 365 * 24 * time.Hour

// Get - load a certificate and key from files
//
// returns the TLS configuration and the certificate fingerprint
func Get(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, util.FingerprintBytes, error) {
	var fin util.FingerprintBytes

	if !util.EnsureFileExists(certificateFileName) {
		log.Errorf("%s certificate: %q does not exist", name, certificateFileName)
		return nil, fin, os.ErrNotExist
	}
	if !util.EnsureFileExists(keyFileName) {
		log.Errorf("%s private key: %q does not exist", name, keyFileName)
		return nil, fin, os.ErrNotExist
	}

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = util.Fingerprint(keyPair.Certificate[0])
	return tlsConfiguration, fin, nil
}

// MakeSelfSigned - create a self-signed certificate and key
//
// neither file may already exist
func MakeSelfSigned(name string, certificateFileName string, keyFileName string, override bool, extraHosts []string) error {
	if util.EnsureFileExists(certificateFileName) {
		return fault.ErrCertificateFileAlreadyExists
	}
	if util.EnsureFileExists(keyFileName) {
		return fault.ErrKeyFileAlreadyExists
	}

	org := "bankd self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = os.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = os.WriteFile(keyFileName, key, 0600); err != nil {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}
