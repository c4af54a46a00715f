// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package plan runs scripted sequences of contract calls and checks their
// results.
package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/hypercounter/actions"
)

type Plan struct {
	// The name of the plan.
	Name string `json:"name" yaml:"name"`
	// A description of the plan.
	Description string `json:"description" yaml:"description"`
	// Address of the caller of each step that doesn't name one.
	Actor string `json:"actor" yaml:"actor"`
	// Steps to perform in order.
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	// Description of the step. (required)
	Description string `json:"description" yaml:"description"`
	// The contract method to call. (required)
	Method string `json:"method" yaml:"method"`
	// Optional caller of this step.
	Actor string `json:"actor,omitempty" yaml:"actor,omitempty"`
	// The parameters to pass to the method.
	Params []Parameter `json:"params,omitempty" yaml:"params,omitempty"`
	// Define required assertions against this step.
	Require *Require `json:"require,omitempty" yaml:"require,omitempty"`
}

type Parameter struct {
	// The optional name of the parameter. This is only used for readability.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// The type of the parameter. (required)
	Type Type `json:"type" yaml:"type"`
	// The value of the parameter. (required)
	Value interface{} `json:"value" yaml:"value"`
}

type Type string

const (
	String  Type = "string"
	Address Type = "address"
)

// paramTypes lists the parameters each method takes.
var paramTypes = map[string][]Type{
	actions.GetValue:         nil,
	actions.Increment:        nil,
	actions.Decrement:        nil,
	actions.Reset:            nil,
	actions.RecordNote:       {String},
	actions.GetNote:          {Address},
	actions.SetLocalID:       {String},
	actions.GetLocalID:       nil,
	actions.GetAccountID:     nil,
	actions.DisplayAccountID: nil,
}

type Require struct {
	// Whether the call must fail. Unset means either outcome is accepted.
	Error *bool `json:"error,omitempty" yaml:"error,omitempty"`
	// Assertion against the counter value returned by the step.
	Result *ResultAssertion `json:"result,omitempty" yaml:"result,omitempty"`
}

type ResultAssertion struct {
	// The operator to use for the assertion.
	Operator string `json:"operator" yaml:"operator"`
	// The value to compare against.
	Value string `json:"value" yaml:"value"`
}

// UnmarshalJSON accepts the value as a JSON string or number, matching the
// scalars a YAML plan can carry.
func (r *ResultAssertion) UnmarshalJSON(b []byte) error {
	var raw struct {
		Operator string          `json:"operator"`
		Value    json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.Operator = raw.Operator
	r.Value = ""
	if len(raw.Value) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw.Value))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		r.Value = v
	case json.Number:
		r.Value = v.String()
	default:
		return fmt.Errorf("%w: result value %s", ErrInvalidPlan, raw.Value)
	}
	return nil
}

type Operator string

const (
	NumericGt Operator = ">"
	NumericLt Operator = "<"
	NumericGe Operator = ">="
	NumericLe Operator = "<="
	NumericEq Operator = "=="
	NumericNe Operator = "!="
)

// Parse decodes a JSON or YAML plan.
func Parse(b []byte) (*Plan, error) {
	var p Plan
	switch {
	case isJSON(b):
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, err
		}
	case isYAML(b):
		if err := yaml.Unmarshal(b, &p); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidConfigFormat
	}
	return &p, nil
}

// Verify checks that every step calls a known method with the parameters it
// takes.
func (p *Plan) Verify() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, "no steps found")
	}
	for i, step := range p.Steps {
		types, ok := paramTypes[step.Method]
		if !ok {
			return fmt.Errorf("%w %d: unknown method %q", ErrInvalidStep, i, step.Method)
		}
		if len(step.Params) != len(types) {
			return fmt.Errorf("%w %d: %s takes %d params, got %d", ErrInvalidStep, i, step.Method, len(types), len(step.Params))
		}
		for j, param := range step.Params {
			if param.Type != types[j] {
				return fmt.Errorf("%w %d %w: expected %s, got %s", ErrInvalidStep, i, ErrInvalidParamType, types[j], param.Type)
			}
		}
		if step.Require != nil && step.Require.Result != nil {
			switch Operator(step.Require.Result.Operator) {
			case NumericGt, NumericLt, NumericGe, NumericLe, NumericEq, NumericNe:
			default:
				return fmt.Errorf("%w %d %w: %q", ErrInvalidStep, i, ErrInvalidOperator, step.Require.Result.Operator)
			}
		}
	}
	return nil
}

// validateAssertion reports whether [actual] satisfies [assertion].
func validateAssertion(actual int64, assertion *ResultAssertion) (bool, error) {
	value, err := strconv.ParseInt(assertion.Value, 10, 64)
	if err != nil {
		return false, err
	}

	switch Operator(assertion.Operator) {
	case NumericGt:
		return actual > value, nil
	case NumericLt:
		return actual < value, nil
	case NumericGe:
		return actual >= value, nil
	case NumericLe:
		return actual <= value, nil
	case NumericEq:
		return actual == value, nil
	case NumericNe:
		return actual != value, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidOperator, assertion.Operator)
	}
}

func isJSON(b []byte) bool {
	s := strings.TrimSpace(string(b))
	if !strings.HasPrefix(s, "{") {
		return false
	}
	var js map[string]interface{}
	return json.Unmarshal([]byte(s), &js) == nil
}

func isYAML(b []byte) bool {
	var y map[string]interface{}
	return yaml.Unmarshal(b, &y) == nil
}
