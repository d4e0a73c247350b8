package agentx

import "github.com/pkg/errors"

// PduType identifies the kind of PDU a header introduces.
type PduType uint8

// The AgentX PDU types, numbered as RFC 2741 §6.1 defines them.
const (
	PduOpen       PduType = 1
	PduClose      PduType = 2
	PduRegister   PduType = 3
	PduUnregister PduType = 4
	PduGet        PduType = 5
	PduGetNext    PduType = 6
	PduGetBulk    PduType = 7
	PduTestSet    PduType = 8
	PduCommitSet  PduType = 9
	PduUndoSet    PduType = 10
	PduCleanupSet PduType = 11
	PduNotify     PduType = 12
	PduPing       PduType = 13
	PduResponse   PduType = 18
)

func (t PduType) valid() bool {
	switch t {
	case PduOpen, PduClose, PduRegister, PduUnregister, PduGet, PduGetNext, PduGetBulk,
		PduTestSet, PduCommitSet, PduUndoSet, PduCleanupSet, PduNotify, PduPing, PduResponse:
		return true
	default:
		return false
	}
}

// Flags holds the header's per-PDU flag bits.
type Flags uint8

// Header flag bits.
const (
	FlagInstanceRegistration Flags = 1 << 0
	FlagNewIndex             Flags = 1 << 1
	FlagAnyIndex             Flags = 1 << 2
	FlagNonDefaultContext    Flags = 1 << 3
	FlagNetworkByteOrder     Flags = 1 << 4
)

// Has reports whether bit is set in f.
func (f Flags) Has(bit Flags) bool {
	return f&bit != 0
}

const (
	// HeaderLength is the fixed size of an AgentX header in bytes.
	HeaderLength = 20

	protocolVersion uint8 = 1
)

// Header is the fixed 20-byte frame every AgentX PDU begins with.
type Header struct {
	Version       uint8
	PduType       PduType
	Flags         Flags
	SessionID     uint32
	TransactionID uint32
	PacketID      uint32
	PayloadLength uint32
}

// NewHeader builds a Header for pduType, forcing NETWORK_BYTE_ORDER on
// as every encoder in this package must.
func NewHeader(pduType PduType, flags Flags, sessionID, transactionID, packetID uint32) Header {
	return Header{
		Version:       protocolVersion,
		PduType:       pduType,
		Flags:         flags | FlagNetworkByteOrder,
		SessionID:     sessionID,
		TransactionID: transactionID,
		PacketID:      packetID,
	}
}

func (h Header) encode(w *writer) {
	w.writeUint8(h.Version)
	w.writeUint8(uint8(h.PduType))
	w.writeUint8(uint8(h.Flags))
	w.writeUint8(0) // reserved
	w.writeUint32(h.SessionID)
	w.writeUint32(h.TransactionID)
	w.writeUint32(h.PacketID)
	w.writeUint32(h.PayloadLength)
}

// DecodeHeader parses the fixed 20-byte header from the front of buf.
// It fails with ErrShortRead if fewer than HeaderLength bytes are
// available, ErrUnsupportedVersion if the version field isn't 1, and
// ErrMalformed if pdu_type isn't one of the enumerated types.
func DecodeHeader(buf []byte, opts ...CodecOption) (Header, error) {
	if len(buf) < HeaderLength {
		return Header{}, errors.Wrapf(ErrShortRead, "header: need %d bytes, have %d", HeaderLength, len(buf))
	}

	cfg := resolveOptions(opts)
	r := newReader(buf, cfg.StrictReserved)

	version, err := r.readUint8()
	if err != nil {
		return Header{}, errors.Wrap(err, "header: version")
	}
	if version != protocolVersion {
		return Header{}, errors.Wrapf(ErrUnsupportedVersion, "version %d", version)
	}

	pduTypeRaw, err := r.readUint8()
	if err != nil {
		return Header{}, errors.Wrap(err, "header: pdu type")
	}

	flagsRaw, err := r.readUint8()
	if err != nil {
		return Header{}, errors.Wrap(err, "header: flags")
	}

	if err := r.readReserved(1); err != nil {
		return Header{}, errors.Wrap(err, "header: reserved")
	}

	sessionID, err := r.readUint32()
	if err != nil {
		return Header{}, errors.Wrap(err, "header: session id")
	}

	transactionID, err := r.readUint32()
	if err != nil {
		return Header{}, errors.Wrap(err, "header: transaction id")
	}

	packetID, err := r.readUint32()
	if err != nil {
		return Header{}, errors.Wrap(err, "header: packet id")
	}

	payloadLength, err := r.readUint32()
	if err != nil {
		return Header{}, errors.Wrap(err, "header: payload length")
	}

	pduType := PduType(pduTypeRaw)
	if !pduType.valid() {
		return Header{}, errors.Wrapf(ErrMalformed, "unknown pdu type %d", pduTypeRaw)
	}

	return Header{
		Version:       version,
		PduType:       pduType,
		Flags:         Flags(flagsRaw),
		SessionID:     sessionID,
		TransactionID: transactionID,
		PacketID:      packetID,
		PayloadLength: payloadLength,
	}, nil
}
