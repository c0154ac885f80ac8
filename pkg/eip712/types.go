// Package eip712 computes EIP-712 typed structured data digests.
//
// The encoder works on arbitrary, caller-supplied schemas: struct types may
// reference each other (including themselves) and arrays of any supported
// type. See https://eips.ethereum.org/EIPS/eip-712.
package eip712

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

// DomainTypeName is the reserved name of the domain struct type.
const DomainTypeName = "EIP712Domain"

// Field is a single member of a struct type declaration.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Types maps struct type names to their fields in declaration order.
type Types map[string][]Field

// Message is the value of a struct type, keyed by field name.
type Message = map[string]any

// TypedData is a complete signing request in the eth_signTypedData_v4 shape.
type TypedData struct {
	Types       Types   `json:"types"`
	PrimaryType string  `json:"primaryType"`
	Domain      Domain  `json:"domain"`
	Message     Message `json:"message"`
}

// Validate checks that every field type is a primitive, a declared struct, or
// an array of either.
func (t Types) Validate() error {
	for _, name := range slices.Sorted(maps.Keys(t)) {
		if name == "" {
			return sigerr.New(sigerr.KindUnknownType, "empty type name")
		}
		for _, field := range t[name] {
			if field.Name == "" {
				return sigerr.New(sigerr.KindInvalidFieldValue, "type %s declares a field with an empty name", name)
			}
			if !t.isKnown(field.Type) {
				return sigerr.New(sigerr.KindUnknownType, "type %s of field %s.%s is not declared", field.Type, name, field.Name)
			}
		}
	}
	return nil
}

func (t Types) isKnown(typ string) bool {
	if elem, _, ok := parseArrayType(typ); ok {
		return t.isKnown(elem)
	}
	if isPrimitive(typ) {
		return true
	}
	_, ok := t[typ]
	return ok
}

// PrimaryType returns the single declared type, other than EIP712Domain, that
// no other type references.
func PrimaryType(types Types) (string, error) {
	if len(types) == 0 {
		return "", sigerr.New(sigerr.KindNoPrimaryType, "type map is empty")
	}

	referenced := make(map[string]bool)
	for name, fields := range types {
		for _, field := range fields {
			if base := baseType(field.Type); base != name {
				referenced[base] = true
			}
		}
	}

	var roots []string
	for name := range types {
		if name == DomainTypeName || referenced[name] {
			continue
		}
		roots = append(roots, name)
	}

	switch len(roots) {
	case 1:
		return roots[0], nil
	case 0:
		return "", sigerr.New(sigerr.KindNoPrimaryType, "every declared type is referenced by another type")
	default:
		slices.Sort(roots)
		return "", sigerr.New(sigerr.KindNoPrimaryType, "ambiguous primary type, candidates: %s", strings.Join(roots, ", "))
	}
}

func (t Types) clone() Types {
	out := make(Types, len(t)+1)
	maps.Copy(out, t)
	return out
}

// baseType strips every trailing array suffix: "Person[2][]" -> "Person".
func baseType(typ string) string {
	for {
		elem, _, ok := parseArrayType(typ)
		if !ok {
			return typ
		}
		typ = elem
	}
}

// parseArrayType splits "T[]" into ("T", -1) and "T[n]" into ("T", n).
func parseArrayType(typ string) (elem string, length int, ok bool) {
	if !strings.HasSuffix(typ, "]") {
		return "", 0, false
	}
	open := strings.LastIndex(typ, "[")
	if open <= 0 {
		return "", 0, false
	}
	size := typ[open+1 : len(typ)-1]
	if size == "" {
		return typ[:open], -1, true
	}
	n, err := strconv.Atoi(size)
	if err != nil || n <= 0 || strconv.Itoa(n) != size {
		return "", 0, false
	}
	return typ[:open], n, true
}

func isPrimitive(typ string) bool {
	switch typ {
	case "address", "bool", "string", "bytes":
		return true
	}
	if _, ok := fixedBytesSize(typ); ok {
		return true
	}
	_, _, ok := integerType(typ)
	return ok
}

// fixedBytesSize parses "bytesN" for 1 <= N <= 32.
func fixedBytesSize(typ string) (int, bool) {
	rest, ok := strings.CutPrefix(typ, "bytes")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 32 || strconv.Itoa(n) != rest {
		return 0, false
	}
	return n, true
}

// integerType parses "uintN" and "intN" for N in 8..256, step 8. Bare "uint"
// and "int" are 256 bits wide.
func integerType(typ string) (bits int, signed bool, ok bool) {
	rest, isUint := strings.CutPrefix(typ, "uint")
	if !isUint {
		rest, ok = strings.CutPrefix(typ, "int")
		if !ok {
			return 0, false, false
		}
		signed = true
	}
	if rest == "" {
		return 256, signed, true
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 8 || n > 256 || n%8 != 0 || strconv.Itoa(n) != rest {
		return 0, false, false
	}
	return n, signed, true
}
