// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/checkbankd/fault"
)

// names of the supported backends
const (
	BackendLevelDB = "leveldb"
	BackendBadger  = "badger"
	BackendMemory  = "memory"
)

// Configuration - database settings
type Configuration struct {
	Backend   string `gluamapper:"backend" json:"backend"`
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
	ReadOnly  bool   `gluamapper:"read_only" json:"read_only"`

	// seconds a value stays in the read cache, zero disables the cache
	CacheExpiry int `gluamapper:"cache_expiry" json:"cache_expiry"`
}

// Open - create the configured store
func Open(log *logger.L, conf *Configuration) (Handle, error) {
	var handle Handle

	backend := conf.Backend
	if "" == backend {
		backend = BackendLevelDB
	}

	switch backend {
	case BackendLevelDB, BackendBadger:
		path := filepath.Join(conf.Directory, conf.Name)
		if !conf.ReadOnly {
			if err := os.MkdirAll(conf.Directory, 0o700); nil != err {
				log.Errorf("create directory: %q  error: %s", conf.Directory, err)
				return nil, err
			}
		}

		var err error
		if BackendLevelDB == backend {
			handle, err = NewLevelDB(path, conf.ReadOnly)
		} else {
			handle, err = NewBadger(path, conf.ReadOnly)
		}
		if nil != err {
			log.Errorf("open %s database: %q  error: %s", backend, path, err)
			return nil, err
		}
		log.Infof("opened %s database: %q", backend, path)

	case BackendMemory:
		handle = NewMemory()
		log.Warn("memory database: data is lost on exit")

	default:
		log.Errorf("unknown backend: %q", backend)
		return nil, fault.ErrInvalidStorageBackend
	}

	if conf.CacheExpiry > 0 && BackendMemory != backend {
		expiry := time.Duration(conf.CacheExpiry) * time.Second
		log.Infof("read cache expiry: %s", expiry)
		handle = NewCached(handle, expiry)
	}

	return handle, nil
}
