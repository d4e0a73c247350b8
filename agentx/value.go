package agentx

import (
	"fmt"
	"net"
	"strconv"

	"github.com/pkg/errors"

	"github.com/agentxkit/agentx/oid"
)

// ValueType is the 16-bit AgentX type code carried by a VarBind.
type ValueType uint16

// SMI value type codes, as AgentX encodes them on the wire.
const (
	TypeInteger          ValueType = 2
	TypeOctetString      ValueType = 4
	TypeNull             ValueType = 5
	TypeObjectIdentifier ValueType = 6
	TypeIPAddress        ValueType = 64
	TypeCounter32        ValueType = 65
	TypeGauge32          ValueType = 66
	TypeTimeTicks        ValueType = 67
	TypeOpaque           ValueType = 68
	TypeCounter64        ValueType = 70
	TypeNoSuchObject     ValueType = 128
	TypeNoSuchInstance   ValueType = 129
	TypeEndOfMibView     ValueType = 130
)

func (t ValueType) String() string {
	switch t {
	case TypeInteger:
		return "Integer"
	case TypeOctetString:
		return "OctetString"
	case TypeNull:
		return "Null"
	case TypeObjectIdentifier:
		return "ObjectIdentifier"
	case TypeIPAddress:
		return "IpAddress"
	case TypeCounter32:
		return "Counter32"
	case TypeGauge32:
		return "Gauge32"
	case TypeTimeTicks:
		return "TimeTicks"
	case TypeOpaque:
		return "Opaque"
	case TypeCounter64:
		return "Counter64"
	case TypeNoSuchObject:
		return "NoSuchObject"
	case TypeNoSuchInstance:
		return "NoSuchInstance"
	case TypeEndOfMibView:
		return "EndOfMibView"
	default:
		return fmt.Sprintf("ValueType(%d)", uint16(t))
	}
}

// Value is a tagged union over the SMI types a VarBind can carry. The
// zero Value is not meaningful; construct one with the typed
// constructors below.
type Value struct {
	Type    ValueType
	payload interface{}
}

// IntegerValue builds an Integer value.
func IntegerValue(v int32) Value { return Value{Type: TypeInteger, payload: v} }

// OctetStringValue builds an OctetString value.
func OctetStringValue(v []byte) Value { return Value{Type: TypeOctetString, payload: v} }

// NullValue builds a Null value.
func NullValue() Value { return Value{Type: TypeNull} }

// ObjectIdentifierValue builds an ObjectIdentifier value.
func ObjectIdentifierValue(v oid.Oid) Value { return Value{Type: TypeObjectIdentifier, payload: v} }

// IPAddressValue builds an IpAddress value from a 4-byte IPv4 address.
func IPAddressValue(v net.IP) Value { return Value{Type: TypeIPAddress, payload: v} }

// Counter32Value builds a Counter32 value.
func Counter32Value(v uint32) Value { return Value{Type: TypeCounter32, payload: v} }

// Gauge32Value builds a Gauge32 value.
func Gauge32Value(v uint32) Value { return Value{Type: TypeGauge32, payload: v} }

// TimeTicksValue builds a TimeTicks value.
func TimeTicksValue(v uint32) Value { return Value{Type: TypeTimeTicks, payload: v} }

// OpaqueValue builds an Opaque value.
func OpaqueValue(v []byte) Value { return Value{Type: TypeOpaque, payload: v} }

// Counter64Value builds a Counter64 value.
func Counter64Value(v uint64) Value { return Value{Type: TypeCounter64, payload: v} }

// NoSuchObjectValue builds a NoSuchObject exception value.
func NoSuchObjectValue() Value { return Value{Type: TypeNoSuchObject} }

// NoSuchInstanceValue builds a NoSuchInstance exception value.
func NoSuchInstanceValue() Value { return Value{Type: TypeNoSuchInstance} }

// EndOfMibViewValue builds an EndOfMibView exception value.
func EndOfMibViewValue() Value { return Value{Type: TypeEndOfMibView} }

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.Type {
	case TypeInteger:
		return strconv.FormatInt(int64(v.payload.(int32)), 10)
	case TypeOctetString:
		return string(v.payload.([]byte))
	case TypeNull:
		return "Null"
	case TypeObjectIdentifier:
		return v.payload.(oid.Oid).String()
	case TypeIPAddress:
		return v.payload.(net.IP).String()
	case TypeCounter32, TypeGauge32, TypeTimeTicks:
		return strconv.FormatUint(uint64(v.payload.(uint32)), 10)
	case TypeOpaque:
		return fmt.Sprintf("%x", v.payload.([]byte))
	case TypeCounter64:
		return strconv.FormatUint(v.payload.(uint64), 10)
	case TypeNoSuchObject:
		return "No such Object"
	case TypeNoSuchInstance:
		return "No such Instance"
	case TypeEndOfMibView:
		return "End of Mib View"
	default:
		return fmt.Sprintf("unrecognised value type %d", v.Type)
	}
}

// Int returns the value as a signed integer. Value type must be
// Integer; it panics otherwise.
func (v Value) Int() int32 {
	if v.Type != TypeInteger {
		panic(fmt.Errorf("agentx: Int called on non-integer value type %s", v.Type))
	}
	return v.payload.(int32)
}

// Bytes returns the value's raw bytes. Value type must be OctetString
// or Opaque; it panics otherwise.
func (v Value) Bytes() []byte {
	switch v.Type { // nolint: exhaustive
	case TypeOctetString, TypeOpaque:
		return v.payload.([]byte)
	}
	panic(fmt.Errorf("agentx: Bytes called on non-octet-string value type %s", v.Type))
}

// OID returns the value's OID payload. Value type must be
// ObjectIdentifier; it panics otherwise.
func (v Value) OID() oid.Oid {
	if v.Type != TypeObjectIdentifier {
		panic(fmt.Errorf("agentx: OID called on non-oid value type %s", v.Type))
	}
	return v.payload.(oid.Oid)
}

// IP returns the value's IPv4 address. Value type must be IpAddress; it
// panics otherwise.
func (v Value) IP() net.IP {
	if v.Type != TypeIPAddress {
		panic(fmt.Errorf("agentx: IP called on non-ip-address value type %s", v.Type))
	}
	return v.payload.(net.IP)
}

// Uint32 returns the value as an unsigned 32-bit integer. Value type
// must be Counter32, Gauge32, or TimeTicks; it panics otherwise.
func (v Value) Uint32() uint32 {
	switch v.Type { // nolint: exhaustive
	case TypeCounter32, TypeGauge32, TypeTimeTicks:
		return v.payload.(uint32)
	}
	panic(fmt.Errorf("agentx: Uint32 called on non-32-bit value type %s", v.Type))
}

// Uint64 returns the value as an unsigned 64-bit integer. Value type
// must be Counter64; it panics otherwise.
func (v Value) Uint64() uint64 {
	if v.Type != TypeCounter64 {
		panic(fmt.Errorf("agentx: Uint64 called on non-counter64 value type %s", v.Type))
	}
	return v.payload.(uint64)
}

func encodeValuePayload(w *writer, v Value) error {
	switch v.Type {
	case TypeInteger:
		w.writeUint32(uint32(v.payload.(int32)))
	case TypeOctetString:
		encodeOctetString(w, v.payload.([]byte))
	case TypeNull, TypeNoSuchObject, TypeNoSuchInstance, TypeEndOfMibView:
		// no payload
	case TypeObjectIdentifier:
		encodeOid(w, v.payload.(oid.Oid), false)
	case TypeIPAddress:
		encodeOctetString(w, v.payload.(net.IP).To4())
	case TypeCounter32, TypeGauge32, TypeTimeTicks:
		w.writeUint32(v.payload.(uint32))
	case TypeOpaque:
		encodeOctetString(w, v.payload.([]byte))
	case TypeCounter64:
		w.writeUint64(v.payload.(uint64))
	default:
		return errors.Wrapf(ErrMalformed, "unknown value type code %d", v.Type)
	}
	return nil
}

func decodeValuePayload(r *reader, t ValueType) (Value, error) {
	switch t {
	case TypeInteger:
		v, err := r.readUint32()
		if err != nil {
			return Value{}, errors.Wrap(err, "integer value")
		}
		return IntegerValue(int32(v)), nil

	case TypeOctetString:
		b, err := decodeOctetString(r)
		if err != nil {
			return Value{}, errors.Wrap(err, "octet string value")
		}
		return OctetStringValue(b), nil

	case TypeNull:
		return NullValue(), nil

	case TypeObjectIdentifier:
		o, _, err := decodeOid(r)
		if err != nil {
			return Value{}, errors.Wrap(err, "oid value")
		}
		return ObjectIdentifierValue(o), nil

	case TypeIPAddress:
		b, err := decodeOctetString(r)
		if err != nil {
			return Value{}, errors.Wrap(err, "ip address value")
		}
		if len(b) != 4 {
			return Value{}, errors.Wrapf(ErrMalformed, "ip address length %d", len(b))
		}
		return IPAddressValue(net.IP(b)), nil

	case TypeCounter32:
		v, err := r.readUint32()
		if err != nil {
			return Value{}, errors.Wrap(err, "counter32 value")
		}
		return Counter32Value(v), nil

	case TypeGauge32:
		v, err := r.readUint32()
		if err != nil {
			return Value{}, errors.Wrap(err, "gauge32 value")
		}
		return Gauge32Value(v), nil

	case TypeTimeTicks:
		v, err := r.readUint32()
		if err != nil {
			return Value{}, errors.Wrap(err, "timeticks value")
		}
		return TimeTicksValue(v), nil

	case TypeOpaque:
		b, err := decodeOctetString(r)
		if err != nil {
			return Value{}, errors.Wrap(err, "opaque value")
		}
		return OpaqueValue(b), nil

	case TypeCounter64:
		v, err := r.readUint64()
		if err != nil {
			return Value{}, errors.Wrap(err, "counter64 value")
		}
		return Counter64Value(v), nil

	case TypeNoSuchObject:
		return NoSuchObjectValue(), nil

	case TypeNoSuchInstance:
		return NoSuchInstanceValue(), nil

	case TypeEndOfMibView:
		return EndOfMibViewValue(), nil

	default:
		return Value{}, errors.Wrapf(ErrMalformed, "unknown value type code %d", t)
	}
}
