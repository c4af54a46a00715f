// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package requester sends JSON-RPC 2.0 requests to a single endpoint.
package requester

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/rpc/v2/json2"
)

var ErrBadStatus = errors.New("unexpected status code")

type EndpointRequester struct {
	cli  *http.Client
	uri  string
	base string
}

// New returns a requester for the service [base] served at [uri].
func New(uri string, base string) *EndpointRequester {
	return &EndpointRequester{
		cli:  http.DefaultClient,
		uri:  uri,
		base: base,
	}
}

// SendRequest calls [base].[method] with [params] and decodes the result
// into [reply]. An error returned by the remote method is returned as a
// *json2.Error.
func (e *EndpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
) error {
	if params == nil {
		params = struct{}{}
	}
	body, err := json2.EncodeClientRequest(e.base+"."+method, params)
	if err != nil {
		return fmt.Errorf("failed to encode client params: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.uri, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.cli.Do(req)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %d: %s", ErrBadStatus, resp.StatusCode, bytes.TrimSpace(b))
	}
	return json2.DecodeClientResponse(resp.Body, reply)
}
