// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/hypercounter/actions"
	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/consts"
	"github.com/ava-labs/hypercounter/runtime"
)

// Caller executes contract calls.
type Caller interface {
	Call(ctx context.Context, info *runtime.CallInfo) (*runtime.Result, error)
}

// Response is printed, one JSON object per line, for every step.
type Response struct {
	// The index of the step that generated this response.
	ID     int    `json:"id"`
	Method string `json:"method"`
	// The decoded output of the call.
	Output interface{} `json:"output,omitempty"`
	Logs   []string    `json:"logs,omitempty"`
	// The error message if available.
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type Runner struct {
	log      logging.Logger
	caller   Caller
	contract codec.Address
	out      io.Writer
}

func NewRunner(log logging.Logger, caller Caller, contract codec.Address, out io.Writer) *Runner {
	return &Runner{
		log:      log,
		caller:   caller,
		contract: contract,
		out:      out,
	}
}

// Run verifies [p] and executes its steps in order. A failed call does not
// stop the plan unless a step requires otherwise; the first unmet
// requirement stops it with [ErrAssertionFailed].
func (r *Runner) Run(ctx context.Context, p *Plan) error {
	if err := p.Verify(); err != nil {
		return err
	}
	defaultActor, err := parseActor(p.Actor, consts.LocalActor)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	r.log.Info("running plan",
		zap.String("name", p.Name),
		zap.String("description", p.Description),
	)
	for i, step := range p.Steps {
		r.log.Info("running step",
			zap.Int("step", i),
			zap.String("description", step.Description),
			zap.String("method", step.Method),
			zap.Any("params", step.Params),
		)
		resp, value, err := r.runStep(ctx, i, &step, defaultActor)
		if err != nil {
			return err
		}
		if err := r.print(resp); err != nil {
			return err
		}
		if err := checkRequire(i, step.Require, resp, value); err != nil {
			return err
		}
	}
	return nil
}

// runStep returns the step response and, for methods returning the counter
// value, that value.
func (r *Runner) runStep(ctx context.Context, i int, step *Step, defaultActor codec.Address) (*Response, *int8, error) {
	actor, err := parseActor(step.Actor, defaultActor)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
	}
	params, err := createCallParams(step.Params)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
	}

	resp := &Response{ID: i, Method: step.Method}
	result, err := r.caller.Call(ctx, &runtime.CallInfo{
		Contract: r.contract,
		Actor:    actor,
		Method:   step.Method,
		Params:   params,
	})
	if result != nil {
		resp.Logs = result.Logs
		resp.Timestamp = result.Timestamp
	}
	if err != nil {
		resp.Error = err.Error()
		return resp, nil, nil
	}

	var value *int8
	switch step.Method {
	case actions.GetValue, actions.Increment, actions.Decrement, actions.Reset,
		actions.RecordNote, actions.SetLocalID:
		v, err := codec.Unmarshal[int8](result.Output)
		if err != nil {
			return nil, nil, err
		}
		value = &v
		resp.Output = v
	case actions.GetNote:
		resp.Output, err = codec.Unmarshal[actions.NoteResult](result.Output)
	case actions.GetLocalID:
		resp.Output, err = codec.Unmarshal[string](result.Output)
	case actions.GetAccountID:
		resp.Output, err = codec.Unmarshal[codec.Address](result.Output)
	}
	return resp, value, err
}

func checkRequire(i int, require *Require, resp *Response, value *int8) error {
	if require == nil {
		return nil
	}
	failed := resp.Error != ""
	if require.Error != nil && *require.Error != failed {
		if failed {
			return fmt.Errorf("%w: step %d: unexpected error: %s", ErrAssertionFailed, i, resp.Error)
		}
		return fmt.Errorf("%w: step %d: expected an error", ErrAssertionFailed, i)
	}
	if require.Result == nil {
		return nil
	}
	if value == nil {
		return fmt.Errorf("%w: step %d: %s returned no value", ErrAssertionFailed, i, resp.Method)
	}
	ok, err := validateAssertion(int64(*value), require.Result)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: step %d: %d %s %s", ErrAssertionFailed, i, *value, require.Result.Operator, require.Result.Value)
	}
	return nil
}

// createCallParams borsh encodes the step parameters.
func createCallParams(params []Parameter) ([]byte, error) {
	if len(params) == 0 {
		return nil, nil
	}
	// every method takes at most one parameter
	param := params[0]
	s, ok := param.Value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFailedParamTypeCast, param.Type)
	}
	switch param.Type {
	case String:
		return codec.Marshal(s)
	case Address:
		addr, err := codec.StringToAddress(s)
		if err != nil {
			return nil, err
		}
		return codec.Marshal(addr)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidParamType, param.Type)
	}
}

func parseActor(s string, fallback codec.Address) (codec.Address, error) {
	if s == "" {
		return fallback, nil
	}
	return codec.StringToAddress(s)
}

func (r *Runner) print(resp *Response) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, string(b))
	return err
}
