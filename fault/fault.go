// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrConfigurationIsNotTable   = InvalidError("configuration must return a table")
	ErrInvalidCheckInterval      = InvalidError("check interval is invalid")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidDataDirectory      = InvalidError("data directory is invalid")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidOperationMix       = InvalidError("operation mix must total one hundred")
	ErrInvalidRateLimit          = InvalidError("rate limit is invalid")
	ErrInvalidReportInterval     = InvalidError("report interval is invalid")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidValueRange         = InvalidError("value range is invalid")
	ErrNotFoundConfigFile        = NotFoundError("config file is not found")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrRateLimiting              = ProcessError("rate limiting")
	ErrRequiredConfigFile        = InvalidError("config file is required")
	ErrUnexpectedNumericArgument = InvalidError("numeric argument is invalid")
	ErrVerifyFailed              = ProcessError("verification failed")
	ErrWorkloadAlreadyRunning    = ProcessError("workload is already running")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
