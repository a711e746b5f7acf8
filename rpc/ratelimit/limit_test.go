// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "request: %d", i)
	}
}

func TestLimitZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(10, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(limiter), "zero burst")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 20, 50), "valid count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 50), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 51, 50), "count above maximum")
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 101, 200), "count above burst")
}
