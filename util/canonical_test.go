// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/util"
)

func TestCanonical(t *testing.T) {
	testData := map[string]string{
		"127.0.0.1:1234":    "127.0.0.1:1234",
		" 127.0.0.1:1 ":     "127.0.0.1:1",
		"127.0.0.1:65535":   "127.0.0.1:65535",
		"0.0.0.0:2130":      "0.0.0.0:2130",
		"[::1]:1234":        "[::1]:1234",
		"[::]:1234":         "[::]:1234",
		"[0:0::0:0]:1234":   "[::]:1234",
		"[0:0:0:0::1]:1234": "[::1]:1234",
	}

	for d, expected := range testData {
		c, err := util.CanonicalIPandPort(d)
		assert.Nil(t, err, "address: %q", d)
		assert.Equal(t, expected, c, "address: %q", d)
	}
}

func TestCanonicalIP(t *testing.T) {
	testData := []string{
		"127.1:1234",
		"256.0.0.0:1234",
		"0.0.0.256:1234",
		"[]:1234",
		"[as34::]:1234",
		"*:1234",
		"127.0.0.1",
	}

	for _, d := range testData {
		_, err := util.CanonicalIPandPort(d)
		assert.Equal(t, fault.ErrInvalidIPAddress, err, "address: %q", d)
	}
}

func TestCanonicalPort(t *testing.T) {
	testData := []string{
		"127.0.0.1:0",
		"127.0.0.1:65536",
		"127.0.0.1:-1",
		"127.0.0.1:http",
	}

	for _, d := range testData {
		_, err := util.CanonicalIPandPort(d)
		assert.Equal(t, fault.ErrInvalidPortNumber, err, "address: %q", d)
	}
}
