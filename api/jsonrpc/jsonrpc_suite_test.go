// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc_test

import (
	"testing"

	ginkgo "github.com/onsi/ginkgo/v2"
)

func TestJSONRPC(t *testing.T) {
	ginkgo.RunSpecs(t, "hypercounter jsonrpc test suites")
}
