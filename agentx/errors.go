package agentx

import "github.com/pkg/errors"

// ErrShortRead is returned when a decoder runs out of input before a
// required field completes. Recoverable upstream by reading more bytes
// and retrying the whole PDU.
var ErrShortRead = errors.New("agentx: short read")

// ErrMalformed is returned for structural violations: unknown PDU type,
// unknown value type code, an OID longer than 128 sub-identifiers, an
// advertised octet-string length that overruns its payload, or a
// non-zero reserved byte under WithStrictReserved.
var ErrMalformed = errors.New("agentx: malformed pdu")

// ErrUnsupportedVersion is returned when a header's version field is
// not 1.
var ErrUnsupportedVersion = errors.New("agentx: unsupported version")
