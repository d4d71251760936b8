// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - pace operations against a token bucket
//
// a nil check is left to the caller so the cost of an unlimited
// workload stays at a single pointer comparison
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/aaset/fault"
)

// Limit - delay until the limiter allows one more operation
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - delay until the limiter allows a batch of operations
//
// count must be in the range 1..maximum where maximum is not more
// than the limiter burst size
func LimitN(limiter *rate.Limiter, count int, maximum int) error {
	if count <= 0 || count > maximum {
		return fault.ErrInvalidCount
	}
	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
