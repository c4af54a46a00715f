// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

const (
	Read     Permissions = 1
	Allocate             = 1<<1 | Read
	Write                = 1<<2 | Read

	None Permissions = 0
	All              = Read | Allocate | Write
)

// Keys maps each touched state key to the permissions a call needed on it.
// Use [Keys.Add] so that adding a key twice unions the permissions instead
// of overwriting them.
type Keys map[string]Permissions

// All acceptable permission options
type Permissions byte

func (k Keys) Add(name string, permission Permissions) {
	k[name] |= permission
}

// Writes reports whether any key required [Write].
func (k Keys) Writes() bool {
	for _, p := range k {
		if p.Has(Write) {
			return true
		}
	}
	return false
}

// Has returns true if [p] has all the permissions that are contained in require
func (p Permissions) Has(require Permissions) bool {
	return require&^p == 0
}

func (p Permissions) String() string {
	switch p {
	case None:
		return "none"
	case Read:
		return "read"
	case Allocate:
		return "allocate"
	case Write:
		return "write"
	case All:
		return "all"
	default:
		return "unknown"
	}
}
