// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
)

const (
	AddressLen  = 33
	checksumLen = 4
)

// Address identifies an account: either a caller or a deployed contract.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// CreateAddress returns [Address] made from concatenating
// [typeID] with [id].
func CreateAddress(typeID uint8, id ids.ID) Address {
	var a Address
	a[0] = typeID
	copy(a[1:], id[:])
	return a
}

// StringToAddress parses the checksummed hex form produced by [Address.String].
func StringToAddress(s string) (Address, error) {
	b, err := LoadHex(s, AddressLen+checksumLen)
	if err != nil {
		return EmptyAddress, err
	}
	raw, sum := b[:AddressLen], b[AddressLen:]
	if !bytes.Equal(sum, hashing.Checksum(raw, checksumLen)) {
		return EmptyAddress, ErrBadChecksum
	}
	return Address(raw), nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	b := make([]byte, 0, AddressLen+checksumLen)
	b = append(b, a[:]...)
	b = append(b, hashing.Checksum(a[:], checksumLen)...)
	return "0x" + ToHex(b)
}

// MarshalText returns the checksummed hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a checksummed hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	addr, err := StringToAddress(string(input))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
