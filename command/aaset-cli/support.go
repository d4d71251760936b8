// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/aaset/fault"
)

var (
	ErrRequiredValues = fault.InvalidError("at least one value is required")
)

// gather the working values from the command arguments, a single
// "-" reads whitespace separated tokens from standard input instead
func readTokens(c *cli.Context) ([]string, error) {
	args := []string(c.Args())
	if 1 == len(args) && "-" == args[0] {
		data, err := ioutil.ReadAll(os.Stdin)
		if nil != err {
			return nil, err
		}
		args = strings.Fields(string(data))
	}
	if 0 == len(args) {
		return nil, ErrRequiredValues
	}
	return args, nil
}

// parse every token as an unsigned integer
func toNumbers(tokens []string) ([]uint64, error) {
	numbers := make([]uint64, len(tokens))
	for i, token := range tokens {
		n, err := strconv.ParseUint(token, 10, 64)
		if nil != err {
			return nil, fault.ErrUnexpectedNumericArgument
		}
		numbers[i] = n
	}
	return numbers, nil
}
