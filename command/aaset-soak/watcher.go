// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/aaset/fault"
)

// WatcherChannel - notifications from the configuration file watcher
//
// both channels have capacity one, further events are discarded
// while a notification is still pending
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

// FileWatcher - watch one file for change and removal
type FileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	channels WatcherChannel
	filePath string
}

// newFileWatcher - set up watching for a file that must already exist
func newFileWatcher(targetFile string, log *logger.L, channels WatcherChannel) (*FileWatcher, error) {

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file: %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundConfigFile
	}

	return &FileWatcher{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
	}, nil
}

// Start - begin forwarding events, returns after the watch is added
func (w *FileWatcher) Start() error {

	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go func() {
		for {
			event := <-w.watcher.Events
			w.log.Infof("file event: %v", event)

			if isRemoveEvent(event) {
				w.log.Errorf("file: %s removed, stop", w.filePath)
				w.send(w.channels.remove, "remove")
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("file: %s not match, discard event", event.Name)
				continue
			}

			if isChangeEvent(event) {
				w.log.Info("sending configuration change event")
				w.send(w.channels.change, "change")
			}
		}
	}()

	return nil
}

// send - non-blocking notify, a full channel already holds a
// pending notification
func (w *FileWatcher) send(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Infof("event channel: %s full, discard event", name)
	}
}

func isRemoveEvent(event fsnotify.Event) bool {
	return "" == event.Name || fsnotify.Remove == event.Op&fsnotify.Remove
}

func isChangeEvent(event fsnotify.Event) bool {
	return fsnotify.Write == event.Op&fsnotify.Write ||
		fsnotify.Chmod == event.Op&fsnotify.Chmod
}
