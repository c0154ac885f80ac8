package eip712

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

// EncodeType renders the canonical type string of name: its own declaration
// followed by every struct type it depends on, sorted by name.
//
//	Mail(Person from,Person to,string contents)Person(string name,address wallet)
func EncodeType(name string, types Types) (string, error) {
	if _, ok := types[name]; !ok {
		return "", sigerr.New(sigerr.KindUnknownType, "type %s not found", name)
	}

	deps := make(map[string]struct{})
	collectDependencies(name, types, deps)
	delete(deps, name)

	var b strings.Builder
	for _, typeName := range append([]string{name}, slices.Sorted(maps.Keys(deps))...) {
		b.WriteString(typeName)
		b.WriteByte('(')
		for i, field := range types[typeName] {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(field.Type)
			b.WriteByte(' ')
			b.WriteString(field.Name)
		}
		b.WriteByte(')')
	}
	return b.String(), nil
}

// collectDependencies walks struct references depth first. Types already in
// deps are not revisited, so self-referential schemas terminate.
func collectDependencies(typeName string, types Types, deps map[string]struct{}) {
	if _, seen := deps[typeName]; seen {
		return
	}
	fields, ok := types[typeName]
	if !ok {
		return
	}
	deps[typeName] = struct{}{}
	for _, field := range fields {
		collectDependencies(baseType(field.Type), types, deps)
	}
}

// HashType returns keccak256(EncodeType(name, types)).
func HashType(name string, types Types) (common.Hash, error) {
	encoded, err := EncodeType(name, types)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash([]byte(encoded)), nil
}

// HashStruct returns keccak256(typeHash || enc(field_1) || ... || enc(field_n))
// with fields taken in declaration order.
func HashStruct(name string, value map[string]any, types Types) (common.Hash, error) {
	typeHash, err := HashType(name, types)
	if err != nil {
		return common.Hash{}, err
	}

	fields := types[name]
	buf := make([]byte, 0, common.HashLength*(len(fields)+1))
	buf = append(buf, typeHash.Bytes()...)
	for _, field := range fields {
		v, ok := value[field.Name]
		if !ok || isNil(v) {
			return common.Hash{}, sigerr.New(sigerr.KindMissingFieldValue, "missing value for field %s.%s", name, field.Name)
		}
		encoded, err := EncodeValue(field.Type, v, types)
		if err != nil {
			return common.Hash{}, fmt.Errorf("%s.%s: %w", name, field.Name, err)
		}
		buf = append(buf, encoded...)
	}
	return crypto.Keccak256Hash(buf), nil
}
