package agentx

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	h := NewHeader(PduOpen, 0, 1, 2, 3)
	h.PayloadLength = 16

	w := newWriter()
	h.encode(w)
	assert.Equal(t, HeaderLength, len(w.bytes()))

	decoded, err := DecodeHeader(w.bytes())
	assert.NoError(t, err)
	assert.Equal(t, h, decoded)
	assert.True(t, decoded.Flags.Has(FlagNetworkByteOrder))
}

func TestDecodeHeaderShortRead(t *testing.T) {
	_, err := DecodeHeader(make([]byte, 10))
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestDecodeHeaderUnsupportedVersion(t *testing.T) {
	buf := make([]byte, HeaderLength)
	buf[0] = 2
	_, err := DecodeHeader(buf)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecodeHeaderUnknownPduType(t *testing.T) {
	buf := make([]byte, HeaderLength)
	buf[0] = 1
	buf[1] = 99
	_, err := DecodeHeader(buf)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeHeaderStrictReservedRejectsNonZero(t *testing.T) {
	buf := make([]byte, HeaderLength)
	buf[0] = 1
	buf[1] = uint8(PduPing)
	buf[3] = 0xFF // reserved byte

	_, err := DecodeHeader(buf, WithStrictReserved(true))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = DecodeHeader(buf)
	assert.NoError(t, err)
}

func TestFlagsHas(t *testing.T) {
	f := FlagNonDefaultContext | FlagNetworkByteOrder
	assert.True(t, f.Has(FlagNonDefaultContext))
	assert.True(t, f.Has(FlagNetworkByteOrder))
	assert.False(t, f.Has(FlagNewIndex))
}
