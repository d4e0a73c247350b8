package agentx

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// reader is a movable cursor over a caller-supplied byte slice scoped to
// exactly one PDU's header or payload. Every read past the end of buf
// fails with ErrShortRead; no partial field is ever returned.
type reader struct {
	buf            []byte
	pos            int
	strictReserved bool
}

func newReader(buf []byte, strictReserved bool) *reader {
	return &reader{buf: buf, strictReserved: strictReserved}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *reader) require(n int) error {
	if r.remaining() < n {
		return errors.Wrapf(ErrShortRead, "need %d bytes, have %d", n, r.remaining())
	}
	return nil
}

func (r *reader) readUint8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) readUint16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) readUint32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) readUint64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	copy(b, r.buf[r.pos:r.pos+n])
	r.pos += n
	return b, nil
}

func (r *reader) skip(n int) error {
	if err := r.require(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// readReserved consumes n reserved bytes. Under strictReserved it fails
// with ErrMalformed if any of them are non-zero; otherwise it accepts
// whatever the peer sent, per spec: "non-zero reserved byte (decoders
// MAY accept; encoders MUST emit zero)".
func (r *reader) readReserved(n int) error {
	b, err := r.readBytes(n)
	if err != nil {
		return err
	}
	if !r.strictReserved {
		return nil
	}
	for _, v := range b {
		if v != 0 {
			return errors.Wrap(ErrMalformed, "non-zero reserved byte")
		}
	}
	return nil
}
