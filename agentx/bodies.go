package agentx

import (
	"github.com/pkg/errors"

	"github.com/agentxkit/agentx/oid"
)

// finalize measures body, wraps it in an encoded header with
// payload_length set, and concatenates the two. Every Encode* function
// in this file funnels through here so payload_length is never set by
// hand.
func finalize(pduType PduType, flags Flags, sessionID, transactionID, packetID uint32, body *writer) []byte {
	payload := body.bytes()

	header := NewHeader(pduType, flags, sessionID, transactionID, packetID)
	header.PayloadLength = uint32(len(payload))

	hw := newWriter()
	header.encode(hw)

	return append(hw.bytes(), payload...)
}

func requireExhausted(r *reader, what string) error {
	if r.remaining() != 0 {
		return errors.Wrapf(ErrMalformed, "%s: %d trailing bytes", what, r.remaining())
	}
	return nil
}

// OpenBody is the body of an Open PDU: a subagent announcing itself to
// the master.
type OpenBody struct {
	Timeout     uint8
	AgentID     oid.Oid
	Description string
}

// EncodeOpen builds a complete Open PDU.
func EncodeOpen(sessionID, transactionID, packetID uint32, body OpenBody) []byte {
	w := newWriter()
	w.writeUint8(body.Timeout)
	w.writePad(3)
	encodeOid(w, body.AgentID, false)
	encodeOctetString(w, []byte(body.Description))
	return finalize(PduOpen, 0, sessionID, transactionID, packetID, w)
}

// DecodeOpen decodes an Open PDU body.
func DecodeOpen(header Header, payload []byte, opts ...CodecOption) (OpenBody, error) {
	cfg := resolveOptions(opts)
	r := newReader(payload, cfg.StrictReserved)

	timeout, err := r.readUint8()
	if err != nil {
		return OpenBody{}, errors.Wrap(err, "open: timeout")
	}
	if err := r.readReserved(3); err != nil {
		return OpenBody{}, errors.Wrap(err, "open: reserved")
	}

	agentID, _, err := decodeOid(r)
	if err != nil {
		return OpenBody{}, errors.Wrap(err, "open: agent id")
	}

	desc, err := decodeOctetString(r)
	if err != nil {
		return OpenBody{}, errors.Wrap(err, "open: description")
	}

	if err := requireExhausted(r, "open"); err != nil {
		return OpenBody{}, err
	}

	return OpenBody{Timeout: timeout, AgentID: agentID, Description: string(desc)}, nil
}

// CloseReason is the carried reason code of a Close PDU.
type CloseReason uint8

// Close reasons, RFC 2741 §6.6.
const (
	CloseOther         CloseReason = 1
	CloseParseError    CloseReason = 2
	CloseProtocolError CloseReason = 3
	CloseTimeouts      CloseReason = 4
	CloseShutdown      CloseReason = 5
	CloseByManager     CloseReason = 6
)

// CloseBody is the body of a Close PDU.
type CloseBody struct {
	Reason CloseReason
}

// EncodeClose builds a complete Close PDU.
func EncodeClose(sessionID, transactionID, packetID uint32, body CloseBody) []byte {
	w := newWriter()
	w.writeUint8(uint8(body.Reason))
	w.writePad(3)
	return finalize(PduClose, 0, sessionID, transactionID, packetID, w)
}

// DecodeClose decodes a Close PDU body. An unrecognized reason code
// decodes as CloseOther.
func DecodeClose(header Header, payload []byte, opts ...CodecOption) (CloseBody, error) {
	cfg := resolveOptions(opts)
	r := newReader(payload, cfg.StrictReserved)

	reasonRaw, err := r.readUint8()
	if err != nil {
		return CloseBody{}, errors.Wrap(err, "close: reason")
	}
	if err := r.readReserved(3); err != nil {
		return CloseBody{}, errors.Wrap(err, "close: reserved")
	}
	if err := requireExhausted(r, "close"); err != nil {
		return CloseBody{}, err
	}

	reason := CloseReason(reasonRaw)
	switch reason {
	case CloseOther, CloseParseError, CloseProtocolError, CloseTimeouts, CloseShutdown, CloseByManager:
	default:
		reason = CloseOther
	}

	return CloseBody{Reason: reason}, nil
}

// RegisterBody is the body of a Register PDU: a subagent claiming
// responsibility for a subtree.
type RegisterBody struct {
	Context    string
	Timeout    uint8
	Priority   uint8
	RangeSubid uint8
	Subtree    oid.Oid
	UpperBound uint32 // meaningful iff RangeSubid != 0
}

// EncodeRegister builds a complete Register PDU.
func EncodeRegister(sessionID, transactionID, packetID uint32, body RegisterBody) []byte {
	flags := contextFlags(body.Context)

	w := newWriter()
	encodeContext(w, flags, body.Context)
	w.writeUint8(body.Timeout)
	w.writeUint8(body.Priority)
	w.writeUint8(body.RangeSubid)
	w.writeUint8(0) // reserved
	encodeOid(w, body.Subtree, false)
	if body.RangeSubid != 0 {
		w.writeUint32(body.UpperBound)
	}

	return finalize(PduRegister, flags, sessionID, transactionID, packetID, w)
}

// DecodeRegister decodes a Register PDU body.
func DecodeRegister(header Header, payload []byte, opts ...CodecOption) (RegisterBody, error) {
	cfg := resolveOptions(opts)
	r := newReader(payload, cfg.StrictReserved)

	context, err := decodeContext(r, header.Flags)
	if err != nil {
		return RegisterBody{}, errors.Wrap(err, "register")
	}

	timeout, err := r.readUint8()
	if err != nil {
		return RegisterBody{}, errors.Wrap(err, "register: timeout")
	}
	priority, err := r.readUint8()
	if err != nil {
		return RegisterBody{}, errors.Wrap(err, "register: priority")
	}
	rangeSubid, err := r.readUint8()
	if err != nil {
		return RegisterBody{}, errors.Wrap(err, "register: range subid")
	}
	if err := r.readReserved(1); err != nil {
		return RegisterBody{}, errors.Wrap(err, "register: reserved")
	}

	subtree, _, err := decodeOid(r)
	if err != nil {
		return RegisterBody{}, errors.Wrap(err, "register: subtree")
	}

	var upperBound uint32
	if rangeSubid != 0 {
		upperBound, err = r.readUint32()
		if err != nil {
			return RegisterBody{}, errors.Wrap(err, "register: upper bound")
		}
	}

	if err := requireExhausted(r, "register"); err != nil {
		return RegisterBody{}, err
	}

	return RegisterBody{
		Context: context, Timeout: timeout, Priority: priority,
		RangeSubid: rangeSubid, Subtree: subtree, UpperBound: upperBound,
	}, nil
}

// UnregisterBody is the body of an Unregister PDU.
type UnregisterBody struct {
	Context    string
	Priority   uint8
	RangeSubid uint8
	Subtree    oid.Oid
	UpperBound uint32 // meaningful iff RangeSubid != 0
}

// EncodeUnregister builds a complete Unregister PDU.
func EncodeUnregister(sessionID, transactionID, packetID uint32, body UnregisterBody) []byte {
	flags := contextFlags(body.Context)

	w := newWriter()
	encodeContext(w, flags, body.Context)
	w.writeUint8(0) // reserved
	w.writeUint8(body.Priority)
	w.writeUint8(body.RangeSubid)
	w.writeUint8(0) // reserved
	encodeOid(w, body.Subtree, false)
	if body.RangeSubid != 0 {
		w.writeUint32(body.UpperBound)
	}

	return finalize(PduUnregister, flags, sessionID, transactionID, packetID, w)
}

// DecodeUnregister decodes an Unregister PDU body.
func DecodeUnregister(header Header, payload []byte, opts ...CodecOption) (UnregisterBody, error) {
	cfg := resolveOptions(opts)
	r := newReader(payload, cfg.StrictReserved)

	context, err := decodeContext(r, header.Flags)
	if err != nil {
		return UnregisterBody{}, errors.Wrap(err, "unregister")
	}

	if err := r.readReserved(1); err != nil {
		return UnregisterBody{}, errors.Wrap(err, "unregister: reserved")
	}
	priority, err := r.readUint8()
	if err != nil {
		return UnregisterBody{}, errors.Wrap(err, "unregister: priority")
	}
	rangeSubid, err := r.readUint8()
	if err != nil {
		return UnregisterBody{}, errors.Wrap(err, "unregister: range subid")
	}
	if err := r.readReserved(1); err != nil {
		return UnregisterBody{}, errors.Wrap(err, "unregister: reserved")
	}

	subtree, _, err := decodeOid(r)
	if err != nil {
		return UnregisterBody{}, errors.Wrap(err, "unregister: subtree")
	}

	var upperBound uint32
	if rangeSubid != 0 {
		upperBound, err = r.readUint32()
		if err != nil {
			return UnregisterBody{}, errors.Wrap(err, "unregister: upper bound")
		}
	}

	if err := requireExhausted(r, "unregister"); err != nil {
		return UnregisterBody{}, err
	}

	return UnregisterBody{
		Context: context, Priority: priority,
		RangeSubid: rangeSubid, Subtree: subtree, UpperBound: upperBound,
	}, nil
}

// GetBody is the body of a Get or GetNext PDU.
type GetBody struct {
	Context string
	Ranges  []SearchRange
}

// EncodeGet builds a complete Get PDU.
func EncodeGet(sessionID, transactionID, packetID uint32, body GetBody) []byte {
	return encodeRangesPDU(PduGet, sessionID, transactionID, packetID, body.Context, body.Ranges)
}

// DecodeGet decodes a Get PDU body.
func DecodeGet(header Header, payload []byte, opts ...CodecOption) (GetBody, error) {
	return decodeRangesPDU(header, payload, "get", opts...)
}

// EncodeGetNext builds a complete GetNext PDU.
func EncodeGetNext(sessionID, transactionID, packetID uint32, body GetBody) []byte {
	return encodeRangesPDU(PduGetNext, sessionID, transactionID, packetID, body.Context, body.Ranges)
}

// DecodeGetNext decodes a GetNext PDU body.
func DecodeGetNext(header Header, payload []byte, opts ...CodecOption) (GetBody, error) {
	return decodeRangesPDU(header, payload, "get-next", opts...)
}

func encodeRangesPDU(pduType PduType, sessionID, transactionID, packetID uint32, context string, ranges []SearchRange) []byte {
	flags := contextFlags(context)

	w := newWriter()
	encodeContext(w, flags, context)
	for _, sr := range ranges {
		encodeSearchRange(w, sr)
	}

	return finalize(pduType, flags, sessionID, transactionID, packetID, w)
}

func decodeRangesPDU(header Header, payload []byte, what string, opts ...CodecOption) (GetBody, error) {
	cfg := resolveOptions(opts)
	r := newReader(payload, cfg.StrictReserved)

	context, err := decodeContext(r, header.Flags)
	if err != nil {
		return GetBody{}, errors.Wrap(err, what)
	}

	ranges, err := decodeSearchRanges(r)
	if err != nil {
		return GetBody{}, errors.Wrapf(err, "%s: ranges", what)
	}

	return GetBody{Context: context, Ranges: ranges}, nil
}

// GetBulkBody is the body of a GetBulk PDU.
type GetBulkBody struct {
	Context        string
	NonRepeaters   uint16
	MaxRepetitions uint16
	Ranges         []SearchRange
}

// EncodeGetBulk builds a complete GetBulk PDU.
func EncodeGetBulk(sessionID, transactionID, packetID uint32, body GetBulkBody) []byte {
	flags := contextFlags(body.Context)

	w := newWriter()
	encodeContext(w, flags, body.Context)
	w.writeUint16(body.NonRepeaters)
	w.writeUint16(body.MaxRepetitions)
	for _, sr := range body.Ranges {
		encodeSearchRange(w, sr)
	}

	return finalize(PduGetBulk, flags, sessionID, transactionID, packetID, w)
}

// DecodeGetBulk decodes a GetBulk PDU body.
func DecodeGetBulk(header Header, payload []byte, opts ...CodecOption) (GetBulkBody, error) {
	cfg := resolveOptions(opts)
	r := newReader(payload, cfg.StrictReserved)

	context, err := decodeContext(r, header.Flags)
	if err != nil {
		return GetBulkBody{}, errors.Wrap(err, "getbulk")
	}

	nonRepeaters, err := r.readUint16()
	if err != nil {
		return GetBulkBody{}, errors.Wrap(err, "getbulk: non repeaters")
	}
	maxRepetitions, err := r.readUint16()
	if err != nil {
		return GetBulkBody{}, errors.Wrap(err, "getbulk: max repetitions")
	}

	ranges, err := decodeSearchRanges(r)
	if err != nil {
		return GetBulkBody{}, errors.Wrap(err, "getbulk: ranges")
	}

	return GetBulkBody{
		Context: context, NonRepeaters: nonRepeaters,
		MaxRepetitions: maxRepetitions, Ranges: ranges,
	}, nil
}

// TestSetBody is the body of a TestSet PDU.
type TestSetBody struct {
	Context  string
	VarBinds []VarBind
}

// EncodeTestSet builds a complete TestSet PDU.
func EncodeTestSet(sessionID, transactionID, packetID uint32, body TestSetBody) ([]byte, error) {
	flags := contextFlags(body.Context)

	w := newWriter()
	encodeContext(w, flags, body.Context)
	for _, vb := range body.VarBinds {
		if err := encodeVarBind(w, vb); err != nil {
			return nil, errors.Wrap(err, "testset: varbind")
		}
	}

	return finalize(PduTestSet, flags, sessionID, transactionID, packetID, w), nil
}

// DecodeTestSet decodes a TestSet PDU body.
func DecodeTestSet(header Header, payload []byte, opts ...CodecOption) (TestSetBody, error) {
	cfg := resolveOptions(opts)
	r := newReader(payload, cfg.StrictReserved)

	context, err := decodeContext(r, header.Flags)
	if err != nil {
		return TestSetBody{}, errors.Wrap(err, "testset")
	}

	varbinds, err := decodeVarBinds(r)
	if err != nil {
		return TestSetBody{}, errors.Wrap(err, "testset: varbinds")
	}

	return TestSetBody{Context: context, VarBinds: varbinds}, nil
}

// CommitSetBody is the body of a CommitSet PDU: context only, no
// payload fields.
type CommitSetBody struct {
	Context string
}

// UndoSetBody is the body of an UndoSet PDU.
type UndoSetBody struct {
	Context string
}

// CleanupSetBody is the body of a CleanupSet PDU.
type CleanupSetBody struct {
	Context string
}

// PingBody is the body of a Ping PDU.
type PingBody struct {
	Context string
}

// EncodeCommitSet builds a complete CommitSet PDU.
func EncodeCommitSet(sessionID, transactionID, packetID uint32, body CommitSetBody) []byte {
	return encodeContextOnlyPDU(PduCommitSet, sessionID, transactionID, packetID, body.Context)
}

// DecodeCommitSet decodes a CommitSet PDU body.
func DecodeCommitSet(header Header, payload []byte, opts ...CodecOption) (CommitSetBody, error) {
	context, err := decodeContextOnlyPDU(header, payload, "commitset", opts...)
	return CommitSetBody{Context: context}, err
}

// EncodeUndoSet builds a complete UndoSet PDU.
func EncodeUndoSet(sessionID, transactionID, packetID uint32, body UndoSetBody) []byte {
	return encodeContextOnlyPDU(PduUndoSet, sessionID, transactionID, packetID, body.Context)
}

// DecodeUndoSet decodes an UndoSet PDU body.
func DecodeUndoSet(header Header, payload []byte, opts ...CodecOption) (UndoSetBody, error) {
	context, err := decodeContextOnlyPDU(header, payload, "undoset", opts...)
	return UndoSetBody{Context: context}, err
}

// EncodeCleanupSet builds a complete CleanupSet PDU.
func EncodeCleanupSet(sessionID, transactionID, packetID uint32, body CleanupSetBody) []byte {
	return encodeContextOnlyPDU(PduCleanupSet, sessionID, transactionID, packetID, body.Context)
}

// DecodeCleanupSet decodes a CleanupSet PDU body.
func DecodeCleanupSet(header Header, payload []byte, opts ...CodecOption) (CleanupSetBody, error) {
	context, err := decodeContextOnlyPDU(header, payload, "cleanupset", opts...)
	return CleanupSetBody{Context: context}, err
}

// EncodePing builds a complete Ping PDU.
func EncodePing(sessionID, transactionID, packetID uint32, body PingBody) []byte {
	return encodeContextOnlyPDU(PduPing, sessionID, transactionID, packetID, body.Context)
}

// DecodePing decodes a Ping PDU body.
func DecodePing(header Header, payload []byte, opts ...CodecOption) (PingBody, error) {
	context, err := decodeContextOnlyPDU(header, payload, "ping", opts...)
	return PingBody{Context: context}, err
}

func encodeContextOnlyPDU(pduType PduType, sessionID, transactionID, packetID uint32, context string) []byte {
	flags := contextFlags(context)
	w := newWriter()
	encodeContext(w, flags, context)
	return finalize(pduType, flags, sessionID, transactionID, packetID, w)
}

func decodeContextOnlyPDU(header Header, payload []byte, what string, opts ...CodecOption) (string, error) {
	cfg := resolveOptions(opts)
	r := newReader(payload, cfg.StrictReserved)

	context, err := decodeContext(r, header.Flags)
	if err != nil {
		return "", errors.Wrap(err, what)
	}

	if err := requireExhausted(r, what); err != nil {
		return "", err
	}

	return context, nil
}

// NotifyBody is the body of a Notify PDU.
type NotifyBody struct {
	Context  string
	VarBinds []VarBind
}

// EncodeNotify builds a complete Notify PDU.
func EncodeNotify(sessionID, transactionID, packetID uint32, body NotifyBody) ([]byte, error) {
	flags := contextFlags(body.Context)

	w := newWriter()
	encodeContext(w, flags, body.Context)
	for _, vb := range body.VarBinds {
		if err := encodeVarBind(w, vb); err != nil {
			return nil, errors.Wrap(err, "notify: varbind")
		}
	}

	return finalize(PduNotify, flags, sessionID, transactionID, packetID, w), nil
}

// DecodeNotify decodes a Notify PDU body.
func DecodeNotify(header Header, payload []byte, opts ...CodecOption) (NotifyBody, error) {
	cfg := resolveOptions(opts)
	r := newReader(payload, cfg.StrictReserved)

	context, err := decodeContext(r, header.Flags)
	if err != nil {
		return NotifyBody{}, errors.Wrap(err, "notify")
	}

	varbinds, err := decodeVarBinds(r)
	if err != nil {
		return NotifyBody{}, errors.Wrap(err, "notify: varbinds")
	}

	return NotifyBody{Context: context, VarBinds: varbinds}, nil
}

// ResponseError is the error code carried by a Response PDU. Codes
// outside the enumerated set are preserved round-trip as opaque
// integers.
type ResponseError uint16

// Response error codes, RFC 2741 §7.2.5 and extensions.
const (
	ResponseNoError               ResponseError = 0
	ResponseOpenFailed            ResponseError = 256
	ResponseNotOpen               ResponseError = 257
	ResponseIndexWrongType        ResponseError = 258
	ResponseIndexAlreadyAllocated ResponseError = 259
	ResponseIndexNoneAvailable    ResponseError = 260
	ResponseIndexNotAllocated     ResponseError = 261
	ResponseUnsupportedContext    ResponseError = 262
	ResponseDuplicateRegistration ResponseError = 263
	ResponseUnknownRegistration   ResponseError = 264
	ResponseUnknownAgentCaps      ResponseError = 265
	ResponseParseError            ResponseError = 266
	ResponseRequestDenied         ResponseError = 267
	ResponseProcessingError       ResponseError = 268
)

// ResponseBody is the body of a Response PDU.
type ResponseBody struct {
	SysUpTime uint32
	Error     ResponseError
	Index     uint16
	VarBinds  []VarBind
}

// IsError reports whether the response carries a non-zero error code.
func (b ResponseBody) IsError() bool {
	return b.Error != ResponseNoError
}

// EncodeResponse builds a complete Response PDU.
func EncodeResponse(sessionID, transactionID, packetID uint32, body ResponseBody) ([]byte, error) {
	w := newWriter()
	w.writeUint32(body.SysUpTime)
	w.writeUint16(uint16(body.Error))
	w.writeUint16(body.Index)
	for _, vb := range body.VarBinds {
		if err := encodeVarBind(w, vb); err != nil {
			return nil, errors.Wrap(err, "response: varbind")
		}
	}

	return finalize(PduResponse, 0, sessionID, transactionID, packetID, w), nil
}

// DecodeResponse decodes a Response PDU body. Variable-length varbinds
// are read until the payload is exhausted rather than by computing an
// expected count from fixed-width arithmetic, so the cursor always
// lands exactly on the payload boundary or the decode fails.
func DecodeResponse(header Header, payload []byte, opts ...CodecOption) (ResponseBody, error) {
	cfg := resolveOptions(opts)
	r := newReader(payload, cfg.StrictReserved)

	sysUpTime, err := r.readUint32()
	if err != nil {
		return ResponseBody{}, errors.Wrap(err, "response: sys uptime")
	}
	errCode, err := r.readUint16()
	if err != nil {
		return ResponseBody{}, errors.Wrap(err, "response: error")
	}
	index, err := r.readUint16()
	if err != nil {
		return ResponseBody{}, errors.Wrap(err, "response: index")
	}

	varbinds, err := decodeVarBinds(r)
	if err != nil {
		return ResponseBody{}, errors.Wrap(err, "response: varbinds")
	}

	return ResponseBody{
		SysUpTime: sysUpTime, Error: ResponseError(errCode),
		Index: index, VarBinds: varbinds,
	}, nil
}

// Body is the decoded result of DecodePDU: one of the *Body types above.
type Body interface{}

type bodyDecoderFunc func(Header, []byte, ...CodecOption) (Body, error)

func asBody[T any](fn func(Header, []byte, ...CodecOption) (T, error)) bodyDecoderFunc {
	return func(h Header, payload []byte, opts ...CodecOption) (Body, error) {
		return fn(h, payload, opts...)
	}
}

var bodyDecoders = map[PduType]bodyDecoderFunc{
	PduOpen:       asBody(DecodeOpen),
	PduClose:      asBody(DecodeClose),
	PduRegister:   asBody(DecodeRegister),
	PduUnregister: asBody(DecodeUnregister),
	PduGet:        asBody(DecodeGet),
	PduGetNext:    asBody(DecodeGetNext),
	PduGetBulk:    asBody(DecodeGetBulk),
	PduTestSet:    asBody(DecodeTestSet),
	PduCommitSet:  asBody(DecodeCommitSet),
	PduUndoSet:    asBody(DecodeUndoSet),
	PduCleanupSet: asBody(DecodeCleanupSet),
	PduNotify:     asBody(DecodeNotify),
	PduPing:       asBody(DecodePing),
	PduResponse:   asBody(DecodeResponse),
}

// DecodePDU dispatches on header.PduType to decode payload into the
// matching body type, returned as Body — a type switch on the concrete
// *Body types in this file recovers the original shape.
func DecodePDU(header Header, payload []byte, opts ...CodecOption) (Body, error) {
	decode, ok := bodyDecoders[header.PduType]
	if !ok {
		return nil, errors.Wrapf(ErrMalformed, "unknown pdu type %d", header.PduType)
	}
	return decode(header, payload, opts...)
}
