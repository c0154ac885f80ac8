package eip712

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
)

// Domain is the EIP-712 domain descriptor. A nil field is absent and takes no
// part in the domain type or the domain separator; a non-nil pointer to a
// zero value is present.
type Domain struct {
	Name              *string               `json:"name,omitempty"`
	Version           *string               `json:"version,omitempty"`
	ChainID           *math.HexOrDecimal256 `json:"chainId,omitempty"`
	VerifyingContract *string               `json:"verifyingContract,omitempty"`
	Salt              *string               `json:"salt,omitempty"`
}

// NewDomain returns a domain with name, version, chainId and verifyingContract
// all present.
func NewDomain(name, version string, chainID int64, verifyingContract string) Domain {
	return Domain{
		Name:              &name,
		Version:           &version,
		ChainID:           math.NewHexOrDecimal256(chainID),
		VerifyingContract: &verifyingContract,
	}
}

// Type synthesizes the EIP712Domain field list from the present fields, in
// the canonical order name, version, chainId, verifyingContract, salt.
func (d Domain) Type() []Field {
	fields := make([]Field, 0, 5)
	if d.Name != nil {
		fields = append(fields, Field{Name: "name", Type: "string"})
	}
	if d.Version != nil {
		fields = append(fields, Field{Name: "version", Type: "string"})
	}
	if d.ChainID != nil {
		fields = append(fields, Field{Name: "chainId", Type: "uint256"})
	}
	if d.VerifyingContract != nil {
		fields = append(fields, Field{Name: "verifyingContract", Type: "address"})
	}
	if d.Salt != nil {
		fields = append(fields, Field{Name: "salt", Type: "bytes32"})
	}
	return fields
}

// Map returns the present fields as a struct value.
func (d Domain) Map() map[string]any {
	m := make(map[string]any, 5)
	if d.Name != nil {
		m["name"] = *d.Name
	}
	if d.Version != nil {
		m["version"] = *d.Version
	}
	if d.ChainID != nil {
		m["chainId"] = (*big.Int)(d.ChainID)
	}
	if d.VerifyingContract != nil {
		m["verifyingContract"] = *d.VerifyingContract
	}
	if d.Salt != nil {
		m["salt"] = *d.Salt
	}
	return m
}
