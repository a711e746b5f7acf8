// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - accept JSON-RPC connections
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	"go.uber.org/atomic"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/util"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	Rate               float64  `gluamapper:"rate" json:"rate"`
	Burst              int      `gluamapper:"burst" json:"burst"`
	Retries            uint64   `gluamapper:"retries" json:"retries"`
}

// Listener - a running set of RPC listen sockets
type Listener interface {
	Serve() error
	Addresses() []string
	Close()
}

type rpcListener struct {
	sync.Mutex
	serving         sync.WaitGroup
	log             *logger.L
	listeners       []net.Listener
	count           *atomic.Uint64
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// NewRPC - validate the configuration and prepare a listener
//
// a nil tlsConfig serves plain TCP
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *atomic.Uint64,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint util.FingerprintBytes,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	if nil == tlsConfig {
		log.Warnf("%s: TLS disabled", logName)
	} else {
		log.Infof("%s: SHA3-256 fingerprint: %s", logName, certificateFingerprint)
	}

	r := &rpcListener{
		log:            log,
		maxConnections: configuration.MaximumConnections,
		server:         server,
		count:          count,
		tlsConfig:      tlsConfig,
	}

	// validate all listen addresses
	var err error
	r.ipType, r.listenIPAndPort, err = parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	return r, nil
}

// Serve - open every listen address and start accepting
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)

		var l net.Listener
		var err error
		if nil == r.tlsConfig {
			l, err = net.Listen(r.ipType[i], listen)
		} else {
			l, err = tls.Listen(r.ipType[i], listen, r.tlsConfig)
		}
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, l)

		r.serving.Add(1)
		go func(l net.Listener) {
			defer r.serving.Done()
			doServeRPC(l, r.server, r.maxConnections, r.log, r.count)
		}(l)
	}
	return nil
}

// Addresses - the bound addresses, which differ from the configured
// ones when port zero was requested
func (r *rpcListener) Addresses() []string {
	r.Lock()
	defer r.Unlock()

	addresses := make([]string, len(r.listeners))
	for i, l := range r.listeners {
		addresses[i] = l.Addr().String()
	}
	return addresses
}

// Close - stop accepting connections and wait for the accept loops
// to exit
func (r *rpcListener) Close() {
	r.Lock()
	r.closeAll()
	r.Unlock()

	r.serving.Wait()
}

func (r *rpcListener) closeAll() {
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *atomic.Uint64) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			log.Infof("rpc accept terminated: %s", err)
			break
		}
		if count.Inc() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Dec()
			}()
		} else {
			count.Dec()
			log.Warnf("connection limit reached, rejected: %s", conn.RemoteAddr())
			_ = conn.Close()
		}
	}
	_ = listen.Close()
}

// return network types and canonical addresses
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	canonical := make([]string, len(addrs))
	for i, listen := range addrs {
		listen = strings.TrimSpace(listen)
		network := "tcp4"

		// "*:PORT" listens on tcp4 and tcp6
		if strings.HasPrefix(listen, "*:") {
			listen = "[::]:" + listen[2:]
			network = "tcp"
		} else if strings.HasPrefix(listen, "[") {
			network = "tcp6"
		}

		c, err := util.CanonicalIPandPort(listen)
		if nil != err {
			log.Errorf("rpc server listen: %q  error: %s", addrs[i], err)
			return nil, nil, err
		}
		networks[i] = network
		canonical[i] = c
	}

	return networks, canonical, nil
}
