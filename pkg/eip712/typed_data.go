package eip712

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

// Digests holds the intermediate and final hashes of a typed data request.
type Digests struct {
	PrimaryType     string
	DomainSeparator common.Hash
	StructHash      common.Hash
	Digest          common.Hash
}

// HashTypedData returns keccak256(0x19 0x01 || domainSeparator || hashStruct(message)).
//
// An empty primaryType is derived with PrimaryType. If types does not declare
// EIP712Domain, the domain type is synthesized from the fields the domain sets.
func HashTypedData(domain Domain, types Types, primaryType string, message map[string]any) (common.Hash, error) {
	return TypedData{
		Types:       types,
		PrimaryType: primaryType,
		Domain:      domain,
		Message:     message,
	}.Hash()
}

// Hash returns the signing digest of td.
func (td TypedData) Hash() (common.Hash, error) {
	d, err := td.Digests()
	if err != nil {
		return common.Hash{}, err
	}
	return d.Digest, nil
}

// Digests computes the domain separator, the message struct hash and the
// signing digest of td.
func (td TypedData) Digests() (Digests, error) {
	if len(td.Types) == 0 {
		return Digests{}, sigerr.New(sigerr.KindNoPrimaryType, "type map is empty")
	}

	primary := td.PrimaryType
	if primary == "" {
		var err error
		if primary, err = PrimaryType(td.Types); err != nil {
			return Digests{}, err
		}
	}

	types := withDomainType(td.Types, td.Domain)
	if err := types.Validate(); err != nil {
		return Digests{}, err
	}
	if _, ok := types[primary]; !ok {
		return Digests{}, sigerr.New(sigerr.KindUnknownType, "primary type %s is not declared", primary)
	}

	domainSeparator, err := HashStruct(DomainTypeName, td.Domain.Map(), types)
	if err != nil {
		return Digests{}, fmt.Errorf("domain: %w", err)
	}
	structHash, err := HashStruct(primary, td.Message, types)
	if err != nil {
		return Digests{}, fmt.Errorf("message: %w", err)
	}

	return Digests{
		PrimaryType:     primary,
		DomainSeparator: domainSeparator,
		StructHash:      structHash,
		Digest:          crypto.Keccak256Hash([]byte{0x19, 0x01}, domainSeparator.Bytes(), structHash.Bytes()),
	}, nil
}

// DomainSeparator returns hashStruct(EIP712Domain, domain). types may be nil.
func DomainSeparator(domain Domain, types Types) (common.Hash, error) {
	return HashStruct(DomainTypeName, domain.Map(), withDomainType(types, domain))
}

// withDomainType returns a copy of types that declares EIP712Domain. A
// declaration supplied by the caller is kept as is.
func withDomainType(types Types, domain Domain) Types {
	out := types.clone()
	if _, ok := out[DomainTypeName]; !ok {
		out[DomainTypeName] = domain.Type()
	}
	return out
}
