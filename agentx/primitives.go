package agentx

import (
	"github.com/pkg/errors"

	"github.com/agentxkit/agentx/oid"
)

// encodeOctetString writes a 4-byte length prefix, the bytes, then
// 0..3 zero pad bytes to reach a 4-byte boundary.
func encodeOctetString(w *writer, b []byte) {
	w.writeUint32(uint32(len(b)))
	w.writeBytes(b)
	w.writePad(padLen(len(b)))
}

func decodeOctetString(r *reader) ([]byte, error) {
	length, err := r.readUint32()
	if err != nil {
		return nil, errors.Wrap(err, "octet string length")
	}
	if int(length) > r.remaining() {
		return nil, errors.Wrapf(ErrMalformed, "octet string length %d overruns payload", length)
	}

	b, err := r.readBytes(int(length))
	if err != nil {
		return nil, errors.Wrap(err, "octet string data")
	}

	if err := r.skip(padLen(int(length))); err != nil {
		return nil, errors.Wrap(err, "octet string padding")
	}

	return b, nil
}

func padLen(n int) int {
	return (4 - n%4) % 4
}

const maxOidSubIDs = 128

// encodeOid writes the four-byte OID header (n_subid, prefix, include,
// reserved) followed by the sub-identifiers, applying the [1,3,6,1,x]
// prefix-compression shortcut whenever o starts with that five-element
// prefix.
func encodeOid(w *writer, o oid.Oid, include bool) {
	parts := o.Parts()

	var prefix uint8
	subids := parts

	if len(parts) >= 5 &&
		parts[0] == 1 && parts[1] == 3 && parts[2] == 6 && parts[3] == 1 &&
		parts[4] >= 1 && parts[4] <= 255 {
		prefix = uint8(parts[4])
		subids = parts[5:]
	}

	w.writeUint8(uint8(len(subids)))
	w.writeUint8(prefix)
	if include {
		w.writeUint8(1)
	} else {
		w.writeUint8(0)
	}
	w.writeUint8(0) // reserved

	for _, s := range subids {
		w.writeUint32(s)
	}
}

// decodeOid reads an OID header and its sub-identifiers, returning the
// fully materialized OID and the header's include flag.
func decodeOid(r *reader) (oid.Oid, bool, error) {
	nSubid, err := r.readUint8()
	if err != nil {
		return oid.Oid{}, false, errors.Wrap(err, "oid n_subid")
	}

	prefix, err := r.readUint8()
	if err != nil {
		return oid.Oid{}, false, errors.Wrap(err, "oid prefix")
	}

	includeRaw, err := r.readUint8()
	if err != nil {
		return oid.Oid{}, false, errors.Wrap(err, "oid include")
	}

	if err := r.readReserved(1); err != nil {
		return oid.Oid{}, false, errors.Wrap(err, "oid reserved")
	}

	if nSubid > maxOidSubIDs {
		return oid.Oid{}, false, errors.Wrapf(ErrMalformed, "oid n_subid %d exceeds %d", nSubid, maxOidSubIDs)
	}

	totalLen := int(nSubid)
	if prefix != 0 {
		totalLen += 5
	}
	if totalLen > maxOidSubIDs {
		return oid.Oid{}, false, errors.Wrapf(ErrMalformed, "oid length %d exceeds %d", totalLen, maxOidSubIDs)
	}

	subids := make([]uint32, nSubid)
	for i := range subids {
		v, err := r.readUint32()
		if err != nil {
			return oid.Oid{}, false, errors.Wrap(err, "oid sub-identifier")
		}
		subids[i] = v
	}

	include := includeRaw != 0

	if prefix == 0 && nSubid == 0 {
		return oid.Empty(), include, nil
	}

	var parts []uint32
	if prefix != 0 {
		parts = append([]uint32{1, 3, 6, 1, uint32(prefix)}, subids...)
	} else {
		parts = subids
	}

	o, err := oid.New(parts...)
	if err != nil {
		return oid.Oid{}, false, errors.Wrap(err, "oid")
	}
	return o, include, nil
}

// SearchRange names a sub-range of OID space for Get/GetNext/GetBulk.
// End may be the empty Oid, meaning unbounded.
type SearchRange struct {
	Start   oid.Oid
	End     oid.Oid
	Include bool
}

func encodeSearchRange(w *writer, sr SearchRange) {
	encodeOid(w, sr.Start, sr.Include)
	encodeOid(w, sr.End, false)
}

func decodeSearchRange(r *reader) (SearchRange, error) {
	start, include, err := decodeOid(r)
	if err != nil {
		return SearchRange{}, errors.Wrap(err, "search range start")
	}

	end, _, err := decodeOid(r)
	if err != nil {
		return SearchRange{}, errors.Wrap(err, "search range end")
	}

	return SearchRange{Start: start, End: end, Include: include}, nil
}

// decodeSearchRanges reads SearchRanges until the reader's payload is
// exhausted, resolving spec's varbind/search-range length accounting by
// decoding to the boundary rather than computing it from fixed widths.
func decodeSearchRanges(r *reader) ([]SearchRange, error) {
	var ranges []SearchRange
	for r.remaining() > 0 {
		sr, err := decodeSearchRange(r)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, sr)
	}
	return ranges, nil
}

// VarBind is a (name, value) binding carrying one MIB variable.
type VarBind struct {
	Name  oid.Oid
	Value Value
}

func encodeVarBind(w *writer, vb VarBind) error {
	w.writeUint16(uint16(vb.Value.Type))
	w.writeUint16(0) // reserved
	encodeOid(w, vb.Name, false)
	return encodeValuePayload(w, vb.Value)
}

func decodeVarBind(r *reader) (VarBind, error) {
	typeCode, err := r.readUint16()
	if err != nil {
		return VarBind{}, errors.Wrap(err, "varbind type")
	}

	if err := r.readReserved(2); err != nil {
		return VarBind{}, errors.Wrap(err, "varbind reserved")
	}

	name, _, err := decodeOid(r)
	if err != nil {
		return VarBind{}, errors.Wrap(err, "varbind name")
	}

	value, err := decodeValuePayload(r, ValueType(typeCode))
	if err != nil {
		return VarBind{}, errors.Wrap(err, "varbind value")
	}

	return VarBind{Name: name, Value: value}, nil
}

func decodeVarBinds(r *reader) ([]VarBind, error) {
	var vbs []VarBind
	for r.remaining() > 0 {
		vb, err := decodeVarBind(r)
		if err != nil {
			return nil, err
		}
		vbs = append(vbs, vb)
	}
	return vbs, nil
}

func decodeContext(r *reader, flags Flags) (string, error) {
	if !flags.Has(FlagNonDefaultContext) {
		return "", nil
	}
	b, err := decodeOctetString(r)
	if err != nil {
		return "", errors.Wrap(err, "context")
	}
	return string(b), nil
}

func encodeContext(w *writer, flags Flags, context string) {
	if flags.Has(FlagNonDefaultContext) {
		encodeOctetString(w, []byte(context))
	}
}

func contextFlags(context string) Flags {
	if context != "" {
		return FlagNonDefaultContext
	}
	return 0
}
