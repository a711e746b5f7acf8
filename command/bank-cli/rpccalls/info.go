// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/checkbankd/rpc/node"
)

// GetInfo - request status from bankd (must be matching version)
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetInfoCompat - request status from bankd (any version)
func (c *Client) GetInfoCompat() (map[string]interface{}, error) {
	var reply map[string]interface{}
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}
