package oid

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrEmpty is returned when an OID is constructed from zero sub-identifiers.
var ErrEmpty = errors.New("oid: empty")

// ErrInvalidPart is returned when a textual OID contains a non-numeric
// or out-of-range sub-identifier.
var ErrInvalidPart = errors.New("oid: invalid part")

// Oid is a non-empty, ordered sequence of 32-bit sub-identifiers.
//
// The zero value is the length-0 OID used to encode the unbounded end of
// a SearchRange on the wire; every other Oid is constructed through New
// or Parse and is guaranteed non-empty.
type Oid struct {
	parts []uint32
}

// New builds an Oid from explicit sub-identifiers. Fails with ErrEmpty if
// parts is empty.
func New(parts ...uint32) (Oid, error) {
	if len(parts) == 0 {
		return Oid{}, ErrEmpty
	}
	cp := make([]uint32, len(parts))
	copy(cp, parts)
	return Oid{parts: cp}, nil
}

// MustNew is like New but panics on error. Intended for package-level
// fixtures and tests, not for decoding untrusted input.
func MustNew(parts ...uint32) Oid {
	o, err := New(parts...)
	if err != nil {
		panic(err)
	}
	return o
}

// Empty returns the length-0 OID.
func Empty() Oid {
	return Oid{}
}

// Parse reads an Oid from dotted-decimal text, e.g. "1.3.6.1.4.1.42".
// A single leading dot is tolerated and stripped.
func Parse(s string) (Oid, error) {
	s = strings.TrimPrefix(s, ".")
	if s == "" {
		return Oid{}, ErrEmpty
	}

	fields := strings.Split(s, ".")
	parts := make([]uint32, len(fields))

	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return Oid{}, errors.Wrapf(ErrInvalidPart, "sub-identifier %q", f)
		}
		parts[i] = uint32(v)
	}

	return Oid{parts: parts}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Oid {
	o, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return o
}

// Len returns the number of sub-identifiers.
func (o Oid) Len() int {
	return len(o.parts)
}

// IsEmpty reports whether o has zero sub-identifiers.
func (o Oid) IsEmpty() bool {
	return len(o.parts) == 0
}

// At returns the sub-identifier at index i. It panics if i is out of range.
func (o Oid) At(i int) uint32 {
	return o.parts[i]
}

// Parts returns a copy of the underlying sub-identifiers.
func (o Oid) Parts() []uint32 {
	cp := make([]uint32, len(o.parts))
	copy(cp, o.parts)
	return cp
}

// String renders the OID as dotted-decimal text.
func (o Oid) String() string {
	if o.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	for i, p := range o.parts {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(uint64(p), 10))
	}
	return sb.String()
}

// Compare returns -1, 0, or 1 as o is less than, equal to, or greater
// than other, under the component-wise total order: shorter sequences
// that are a prefix of longer ones sort first.
func (o Oid) Compare(other Oid) int {
	n := len(o.parts)
	if len(other.parts) < n {
		n = len(other.parts)
	}

	for i := 0; i < n; i++ {
		switch {
		case o.parts[i] < other.parts[i]:
			return -1
		case o.parts[i] > other.parts[i]:
			return 1
		}
	}

	switch {
	case len(o.parts) < len(other.parts):
		return -1
	case len(o.parts) > len(other.parts):
		return 1
	default:
		return 0
	}
}

// Less reports whether o sorts before other.
func (o Oid) Less(other Oid) bool {
	return o.Compare(other) < 0
}

// Equal reports whether o and other have identical sub-identifiers.
func (o Oid) Equal(other Oid) bool {
	return o.Compare(other) == 0
}

// StartsWith reports whether prefix's sub-identifiers are a prefix of o's.
// Every Oid starts with Empty().
func (o Oid) StartsWith(prefix Oid) bool {
	if len(prefix.parts) > len(o.parts) {
		return false
	}
	for i, p := range prefix.parts {
		if o.parts[i] != p {
			return false
		}
	}
	return true
}

// CommonPrefixLen returns the number of leading sub-identifiers o shares
// with other.
func (o Oid) CommonPrefixLen(other Oid) int {
	n := len(o.parts)
	if len(other.parts) < n {
		n = len(other.parts)
	}

	i := 0
	for i < n && o.parts[i] == other.parts[i] {
		i++
	}
	return i
}

// Parent returns o with its final sub-identifier removed, and false if o
// has at most one sub-identifier (no parent within Oid's non-empty
// invariant).
func (o Oid) Parent() (Oid, bool) {
	if len(o.parts) <= 1 {
		return Oid{}, false
	}
	return Oid{parts: append([]uint32(nil), o.parts[:len(o.parts)-1]...)}, true
}

// Child returns o extended by one sub-identifier.
func (o Oid) Child(sub uint32) Oid {
	parts := make([]uint32, len(o.parts)+1)
	copy(parts, o.parts)
	parts[len(o.parts)] = sub
	return Oid{parts: parts}
}

// Truncate returns o's first depth sub-identifiers. If depth >= o.Len()
// it returns o unchanged.
func (o Oid) Truncate(depth int) Oid {
	if depth >= len(o.parts) {
		return o
	}
	return Oid{parts: append([]uint32(nil), o.parts[:depth]...)}
}
