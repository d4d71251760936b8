// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/aaset/configuration"
	"github.com/bitmark-inc/aaset/fault"
	"github.com/bitmark-inc/aaset/workload"
)

// default values
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultPidFile       = "" // no PID file
	defaultReportTime    = "1m"

	defaultLogDirectory = "log"
	defaultLogFile      = "aaset-soak.log"
	defaultLogCount     = 10          // number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logSize> bytes
	defaultLogLevel     = "error"
)

// Configuration - the soak daemon configuration
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	ReportTime    string               `gluamapper:"report_time" json:"report_time"`
	Scenario      workload.Scenario    `gluamapper:"scenario" json:"scenario"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// ReportInterval - the parsed progress report cadence
func (c *Configuration) ReportInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.ReportTime)
	if nil != err {
		return 0, err
	}
	if d < time.Second {
		return 0, fault.ErrInvalidReportInterval
	}
	return d, nil
}

// ensureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// getConfiguration - read and validate the configuration file
//
// a data_directory of "." selects the directory containing the
// configuration file
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       defaultPidFile,
		ReportTime:    defaultReportTime,
		Scenario:      workload.DefaultScenario(),
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	fileInfo, err := os.Stat(options.DataDirectory)
	if nil != err {
		return nil, err
	}
	if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDataDirectory
	}

	// force relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths are only resolved when not blank
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = ensureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if the log file is not a simple file name i.e. must not
	// contain a path separator
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Path: %q is not a plain file name", options.Logging.File)
	}

	// ensure the log directory exists
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}
