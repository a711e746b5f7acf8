// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the bankd JSON RPC services
package rpccalls

import (
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/util"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// Options - how to reach a bankd
type Options struct {
	Connect     string // HOST:PORT
	Plain       bool   // TCP without TLS
	Fingerprint string // optional hex SHA3-256 of the server certificate
}

// NewClient - create a RPC connection to a bankd
func NewClient(options Options, verbose bool, handle io.Writer) (*Client, error) {
	var conn net.Conn
	var err error

	if options.Plain {
		conn, err = net.Dial("tcp", options.Connect)
	} else {
		// self signed certificates are the norm, so the only
		// verification is the optional fingerprint pin
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		var tlsConn *tls.Conn
		tlsConn, err = tls.Dial("tcp", options.Connect, tlsConfig)
		if nil == err {
			conn = tlsConn
			err = checkFingerprint(tlsConn, options.Fingerprint)
			if nil != err {
				conn.Close()
			}
		}
	}
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the bankd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// make a call and convert any error text back to a fault value
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if err := c.printJson(method+" request", arguments); nil != err {
		return err
	}
	if err := c.client.Call(method, arguments, reply); nil != err {
		return fault.FromMessage(err.Error())
	}
	return c.printJson(method+" reply", reply)
}

func checkFingerprint(conn *tls.Conn, expected string) error {
	expected = strings.ToLower(strings.TrimSpace(expected))
	if "" == expected {
		return nil
	}
	if _, err := hex.DecodeString(expected); nil != err {
		return fmt.Errorf("fingerprint: %q is not hex", expected)
	}

	certificates := conn.ConnectionState().PeerCertificates
	if 0 == len(certificates) {
		return fmt.Errorf("server sent no certificate")
	}
	actual := util.Fingerprint(certificates[0].Raw).String()
	if actual != expected {
		return fmt.Errorf("certificate fingerprint: %s does not match: %s", actual, expected)
	}
	return nil
}
