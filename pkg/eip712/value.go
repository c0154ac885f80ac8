package eip712

import (
	"encoding/json"
	"fmt"
	gomath "math"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

// EncodeValue returns the 32-byte encoding of value under the declared type.
// Dynamic types (string, bytes, arrays) and structs are encoded by their hash.
func EncodeValue(typ string, value any, types Types) ([]byte, error) {
	if isNil(value) {
		return nil, sigerr.New(sigerr.KindMissingFieldValue, "nil value for type %s", typ)
	}

	if elem, length, ok := parseArrayType(typ); ok {
		return encodeArray(typ, elem, length, value, types)
	}

	switch typ {
	case "address":
		return encodeAddress(value)
	case "string":
		s, ok := value.(string)
		if !ok {
			return nil, invalidValue(typ, value)
		}
		return crypto.Keccak256([]byte(s)), nil
	case "bytes":
		b, err := decodeBytes(typ, value)
		if err != nil {
			return nil, err
		}
		return crypto.Keccak256(b), nil
	case "bool":
		return encodeBool(value)
	}

	if size, ok := fixedBytesSize(typ); ok {
		return encodeFixedBytes(typ, size, value)
	}
	if bits, signed, ok := integerType(typ); ok {
		return encodeInteger(typ, bits, signed, value)
	}
	if _, ok := types[typ]; ok {
		m, ok := value.(map[string]any)
		if !ok {
			return nil, invalidValue(typ, value)
		}
		h, err := HashStruct(typ, m, types)
		if err != nil {
			return nil, err
		}
		return h.Bytes(), nil
	}

	return nil, sigerr.New(sigerr.KindUnknownType, "unsupported type %s", typ)
}

// encodeArray hashes the concatenated element encodings. A positive length
// requires exactly that many elements.
func encodeArray(typ, elem string, length int, value any, types Types) ([]byte, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, invalidValue(typ, value)
	}
	if length >= 0 && rv.Len() != length {
		return nil, sigerr.New(sigerr.KindInvalidFieldValue, "%s expects %d elements, got %d", typ, length, rv.Len())
	}

	buf := make([]byte, 0, common.HashLength*rv.Len())
	for i := 0; i < rv.Len(); i++ {
		encoded, err := EncodeValue(elem, rv.Index(i).Interface(), types)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		buf = append(buf, encoded...)
	}
	return crypto.Keccak256(buf), nil
}

func encodeAddress(value any) ([]byte, error) {
	switch v := value.(type) {
	case common.Address:
		return common.LeftPadBytes(v.Bytes(), 32), nil
	case *common.Address:
		return common.LeftPadBytes(v.Bytes(), 32), nil
	case string:
		digits := strings.ToLower(trim0x(v))
		if digits == "" || len(digits) > 2*common.AddressLength {
			return nil, sigerr.New(sigerr.KindInvalidFieldValue, "address %q must have 1 to 40 hex digits", v)
		}
		digits = strings.Repeat("0", 2*common.AddressLength-len(digits)) + digits
		b, err := hexutil.Decode("0x" + digits)
		if err != nil {
			return nil, sigerr.Wrap(sigerr.KindInvalidHexEncoding, err, "address %q", v)
		}
		return common.LeftPadBytes(b, 32), nil
	default:
		return nil, invalidValue("address", value)
	}
}

func encodeBool(value any) ([]byte, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Bool {
		return nil, invalidValue("bool", value)
	}
	slot := make([]byte, 32)
	if rv.Bool() {
		slot[31] = 1
	}
	return slot, nil
}

func encodeFixedBytes(typ string, size int, value any) ([]byte, error) {
	var b []byte
	switch v := value.(type) {
	case common.Hash:
		b = v.Bytes()
	default:
		decoded, err := decodeBytes(typ, value)
		if err != nil {
			return nil, err
		}
		b = decoded
	}
	if len(b) > size {
		return nil, sigerr.New(sigerr.KindInvalidFieldValue, "%s value has %d bytes", typ, len(b))
	}
	return common.RightPadBytes(b, 32), nil
}

func decodeBytes(typ string, value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case hexutil.Bytes:
		return v, nil
	case string:
		b, err := hexutil.Decode(v)
		if err != nil {
			return nil, sigerr.Wrap(sigerr.KindInvalidHexEncoding, err, "%s value %q", typ, v)
		}
		return b, nil
	default:
		return nil, invalidValue(typ, value)
	}
}

func encodeInteger(typ string, bits int, signed bool, value any) ([]byte, error) {
	n, err := toBigInt(typ, value)
	if err != nil {
		return nil, err
	}
	if !fitsWidth(n, bits, signed) {
		return nil, sigerr.New(sigerr.KindInvalidFieldValue, "value of %d bits out of range for %s", n.BitLen(), typ)
	}
	// FromBig yields the two's complement form for negative values.
	u, _ := uint256.FromBig(n)
	slot := u.Bytes32()
	return slot[:], nil
}

func fitsWidth(n *big.Int, bits int, signed bool) bool {
	if !signed {
		return n.Sign() >= 0 && n.BitLen() <= bits
	}
	if n.Sign() >= 0 {
		return n.BitLen() <= bits-1
	}
	// -2^(bits-1) is the smallest representable value.
	magnitude := new(big.Int).Neg(n)
	return magnitude.Sub(magnitude, big.NewInt(1)).BitLen() <= bits-1
}

func toBigInt(typ string, value any) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case *math.HexOrDecimal256:
		return new(big.Int).Set((*big.Int)(v)), nil
	case *uint256.Int:
		return v.ToBig(), nil
	case float64:
		if gomath.IsInf(v, 0) || gomath.IsNaN(v) || v != gomath.Trunc(v) {
			return nil, sigerr.New(sigerr.KindInvalidFieldValue, "%s value %v is not an integer", typ, v)
		}
		n, _ := new(big.Float).SetFloat64(v).Int(nil)
		return n, nil
	case json.Number:
		return parseInteger(typ, v.String())
	case string:
		return parseInteger(typ, v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), nil
	}
	return nil, invalidValue(typ, value)
}

// maxIntegerText bounds the length of textual integers. The widest value,
// 2^256-1, takes 78 decimal digits.
const maxIntegerText = 128

// maxIntegerBits is the magnitude bound of any supported integer type; int256
// reaches -2^255 and uint256 reaches 2^256-1.
const maxIntegerBits = 256

// parseInteger accepts decimal and 0x-prefixed hex text, optionally negative,
// as well as integral decimal notation such as "1e18".
func parseInteger(typ, s string) (*big.Int, error) {
	text := strings.TrimSpace(s)
	if len(text) > maxIntegerText {
		return nil, sigerr.New(sigerr.KindInvalidFieldValue, "%s value has %d characters, at most %d allowed", typ, len(text), maxIntegerText)
	}
	negative := strings.HasPrefix(text, "-")
	digits := strings.TrimPrefix(text, "-")
	if digits == "" {
		return nil, sigerr.New(sigerr.KindInvalidFieldValue, "empty %s value", typ)
	}
	if hasSign(digits) || hasSign(trim0x(digits)) {
		return nil, sigerr.New(sigerr.KindInvalidFieldValue, "cannot parse %q as %s", s, typ)
	}

	n, ok := math.ParseBig256(digits)
	if !ok {
		f, _, err := big.ParseFloat(digits, 10, 512, big.ToNearestEven)
		if err != nil {
			return nil, sigerr.New(sigerr.KindInvalidFieldValue, "cannot parse %q as %s", s, typ)
		}
		if f.MantExp(nil) > maxIntegerBits+1 {
			return nil, sigerr.New(sigerr.KindInvalidFieldValue, "value out of range for %s", typ)
		}
		if !f.IsInt() {
			return nil, sigerr.New(sigerr.KindInvalidFieldValue, "cannot parse %q as %s", s, typ)
		}
		n, _ = f.Int(nil)
	}
	if negative {
		n.Neg(n)
	}
	return n, nil
}

func hasSign(s string) bool {
	return strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+")
}

func invalidValue(typ string, value any) error {
	return sigerr.New(sigerr.KindInvalidFieldValue, "cannot encode %T as %s", value, typ)
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
