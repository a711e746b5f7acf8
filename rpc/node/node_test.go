// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/ledger/fixtures"
	"github.com/bitmark-inc/checkbankd/locktable"
	"github.com/bitmark-inc/checkbankd/rpc/mocks"
	"github.com/bitmark-inc/checkbankd/rpc/node"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestNodeInfo(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLedger(ctl)
	m.EXPECT().GetAccountNumbers().Return([]uint64{1, 2, 3}, nil).Times(1)
	m.EXPECT().MintedCheckTotal().Return(uint64(7), nil).Times(1)
	m.EXPECT().MinterContractAddress().Return(fixtures.AddressB, nil).Times(1)

	locks := locktable.New()
	assert.True(t, locks.Acquire("1"), "acquire")
	assert.False(t, locks.Acquire("1"), "contended acquire")

	count := atomic.NewUint64(4)
	n := node.New(logger.New(fixtures.LogCategory), m, locks, rate.NewLimiter(100, 100), time.Now().Add(-time.Minute), "2.1", count)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info")
	assert.Equal(t, "2.1", reply.Version, "version")
	assert.Equal(t, uint64(4), reply.RPCs, "rpcs")
	assert.Equal(t, 3, reply.Accounts, "accounts")
	assert.Equal(t, uint64(7), reply.MintedCheckTotal, "minted")
	assert.Equal(t, fixtures.AddressB, reply.MinterContractAddress, "minter")
	assert.Equal(t, 1, reply.LocksHeld, "locks held")
	assert.Equal(t, uint64(1), reply.LocksContended, "locks contended")
	assert.NotEqual(t, "", reply.Uptime, "uptime")
}

func TestNodeInfoWithoutMinter(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLedger(ctl)
	m.EXPECT().GetAccountNumbers().Return([]uint64{}, nil).Times(1)
	m.EXPECT().MintedCheckTotal().Return(uint64(0), nil).Times(1)
	m.EXPECT().MinterContractAddress().Return("", fault.ErrMinterAddressNotFound).Times(1)

	n := node.New(logger.New(fixtures.LogCategory), m, locktable.New(), rate.NewLimiter(100, 100), time.Now(), "2.1", atomic.NewUint64(0))

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info")
	assert.Equal(t, "", reply.MinterContractAddress, "minter")
}

func TestNodeInfoStoreFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failure := errors.New("read failed")
	m := mocks.NewMockLedger(ctl)
	m.EXPECT().GetAccountNumbers().Return(nil, failure).Times(1)

	n := node.New(logger.New(fixtures.LogCategory), m, locktable.New(), rate.NewLimiter(100, 100), time.Now(), "2.1", atomic.NewUint64(0))

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, failure, err, "failure passed through")
}
