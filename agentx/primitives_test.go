package agentx

import (
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/agentxkit/agentx/oid"
)

func TestEncodeDecodeOctetStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"exactMultiple", []byte("test")},
		{"needsPadding", []byte("abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWriter()
			encodeOctetString(w, tt.in)
			assert.Equal(t, 0, len(w.bytes())%4)

			r := newReader(w.bytes(), false)
			out, err := decodeOctetString(r)
			assert.NoError(t, err)
			assert.Equal(t, 0, r.remaining())
			assert.Equal(t, string(tt.in), string(out))
		})
	}
}

func TestDecodeOctetStringOverrunIsMalformed(t *testing.T) {
	w := newWriter()
	w.writeUint32(100)
	w.writeBytes([]byte("short"))

	r := newReader(w.bytes(), false)
	_, err := decodeOctetString(r)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestEncodeDecodeOidRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   oid.Oid
	}{
		{"prefixCompressible", oid.MustParse("1.3.6.1.4.1.42")},
		{"exactPrefixLength", oid.MustParse("1.3.6.1.4")},
		{"notCompressible", oid.MustParse("2.1.3")},
		{"empty", oid.Empty()},
		{"short", oid.MustParse("1.3.6.1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWriter()
			encodeOid(w, tt.in, false)

			r := newReader(w.bytes(), false)
			out, include, err := decodeOid(r)
			assert.NoError(t, err)
			assert.Equal(t, 0, r.remaining())
			assert.False(t, include)
			assert.True(t, tt.in.Equal(out), "got %s want %s", out.String(), tt.in.String())
		})
	}
}

func TestEncodeOidUsesPrefixCompression(t *testing.T) {
	w := newWriter()
	encodeOid(w, oid.MustParse("1.3.6.1.4.1.42"), false)
	buf := w.bytes()

	// n_subid=2, prefix=4, include=0, reserved=0, then two 32-bit subids (1, 42).
	assert.Equal(t, uint8(2), buf[0])
	assert.Equal(t, uint8(4), buf[1])
}

func TestDecodeOidRejectsOversizedSubidCount(t *testing.T) {
	w := newWriter()
	w.writeUint8(200) // n_subid > 128
	w.writeUint8(0)
	w.writeUint8(0)
	w.writeUint8(0)

	r := newReader(w.bytes(), false)
	_, _, err := decodeOid(r)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestEncodeDecodeSearchRangeRoundTrip(t *testing.T) {
	sr := SearchRange{Start: oid.MustParse("1.3.6.1.2.1"), End: oid.Empty(), Include: true}

	w := newWriter()
	encodeSearchRange(w, sr)

	r := newReader(w.bytes(), false)
	out, err := decodeSearchRange(r)
	assert.NoError(t, err)
	assert.True(t, sr.Start.Equal(out.Start))
	assert.True(t, out.End.IsEmpty())
	assert.True(t, out.Include)
}

func TestEncodeDecodeVarBindRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		vb   VarBind
	}{
		{"integer", VarBind{Name: oid.MustParse("1.3.6.1.2.1.1.1.0"), Value: IntegerValue(42)}},
		{"octetString", VarBind{Name: oid.MustParse("1.3.6.1.2.1.1.1.0"), Value: OctetStringValue([]byte("hello"))}},
		{"oid", VarBind{Name: oid.MustParse("1.3.6.1.2.1.1.2.0"), Value: ObjectIdentifierValue(oid.MustParse("1.3.6.1.4.1.42"))}},
		{"counter64", VarBind{Name: oid.MustParse("1.3.6.1.2.1.1.3.0"), Value: Counter64Value(91919111919)}},
		{"endOfMib", VarBind{Name: oid.MustParse("1.3.6.1.2.1.1.4.0"), Value: EndOfMibViewValue()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWriter()
			assert.NoError(t, encodeVarBind(w, tt.vb))
			assert.Equal(t, 0, len(w.bytes())%4)

			r := newReader(w.bytes(), false)
			out, err := decodeVarBind(r)
			assert.NoError(t, err)
			assert.Equal(t, 0, r.remaining())
			assert.Equal(t, tt.vb.Value.Type, out.Value.Type)
			assert.True(t, tt.vb.Name.Equal(out.Name))
		})
	}
}

func TestDecodeVarBindUnknownTypeCodeIsMalformed(t *testing.T) {
	w := newWriter()
	w.writeUint16(9999)
	w.writeUint16(0)
	encodeOid(w, oid.MustParse("1.3.6.1"), false)

	r := newReader(w.bytes(), false)
	_, err := decodeVarBind(r)
	assert.ErrorIs(t, err, ErrMalformed)
}
