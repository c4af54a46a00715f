// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"reflect"

	"github.com/near/borsh-go"
)

// Marshal encodes value with borsh, the layout contract records and call
// params use on the wire and in storage.
func Marshal[T any](value T) ([]byte, error) {
	if isNil(value) {
		return nil, ErrNilValue
	}
	return borsh.Serialize(value)
}

// Unmarshal decodes a borsh encoded T. Input that decodes to T but carries
// extra bytes is rejected.
func Unmarshal[T any](data []byte) (T, error) {
	var result T
	if err := borsh.Deserialize(&result, data); err != nil {
		return result, err
	}
	// a borsh value re-encodes to the length it was decoded from
	reencoded, err := borsh.Serialize(result)
	if err != nil {
		return result, err
	}
	if len(reencoded) != len(data) {
		return result, fmt.Errorf("%w: %d", ErrTrailingBytes, len(data)-len(reencoded))
	}
	return result, nil
}

func isNil[T any](t T) bool {
	v := reflect.ValueOf(t)
	if !v.IsValid() {
		return true
	}
	kind := v.Kind()
	return (kind == reflect.Ptr || kind == reflect.Interface) && v.IsNil()
}
