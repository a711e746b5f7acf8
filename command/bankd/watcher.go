// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	watcherLoggerPrefix = "config-watcher"

	// editors often write a file in several steps
	settleDelay = time.Second
)

// reload is called with each successfully parsed configuration
type reloadFunc func(*Configuration) error

// configWatcher - background process that re-reads the configuration
// file whenever it changes
type configWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	reload   reloadFunc
	settle   time.Duration
}

func newConfigWatcher(fileName string, log *logger.L, reload reloadFunc) (*configWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	// watch the directory so a file replaced by rename is still seen
	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		watcher.Close()
		log.Errorf("watcher add error: %s", err)
		return nil, err
	}

	return &configWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		reload:   reload,
		settle:   settleDelay,
	}, nil
}

// Run - background loop, args are unused
func (w *configWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Infof("watching: %q", w.filePath)

	var pending <-chan time.Time

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)
			if watcherEventFileChange(event) {
				pending = time.After(w.settle)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)

		case <-pending:
			pending = nil
			w.refresh()
		}
	}

	_ = w.watcher.Close()
	w.log.Info("stopped")
	w.log.Flush()
}

func (w *configWatcher) refresh() {
	configuration, err := getConfiguration(w.filePath)
	if nil != err {
		w.log.Errorf("failed to read configuration from: %q  error: %s", w.filePath, err)
		return
	}
	if err := w.reload(configuration); nil != err {
		w.log.Errorf("reload error: %s", err)
		return
	}
	w.log.Info("configuration reloaded")
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
