package eip712_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahwlsqja/go-sigverify/pkg/eip712"
	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

func TestHashTypedData_Mail(t *testing.T) {
	digest, err := eip712.HashTypedData(mailDomain(), mailTypes(), "Mail", mailMessage())
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash(mailDigest), digest)
}

func TestTypedData_Digests(t *testing.T) {
	td := eip712.TypedData{
		Types:       mailTypes(),
		PrimaryType: "Mail",
		Domain:      mailDomain(),
		Message:     mailMessage(),
	}

	d, err := td.Digests()
	require.NoError(t, err)
	assert.Equal(t, "Mail", d.PrimaryType)
	assert.Equal(t, common.HexToHash(mailDomainSeparator), d.DomainSeparator)
	assert.Equal(t, common.HexToHash(mailStructHash), d.StructHash)
	assert.Equal(t, common.HexToHash(mailDigest), d.Digest)
}

func TestDomainSeparator(t *testing.T) {
	got, err := eip712.DomainSeparator(mailDomain(), nil)
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash(mailDomainSeparator), got)
}

func TestHashTypedData_MatchesGoEthereum(t *testing.T) {
	tests := []struct {
		name        string
		domain      eip712.Domain
		types       eip712.Types
		primaryType string
		message     map[string]any
		expected    string
	}{
		{
			name:        "mail",
			domain:      mailDomain(),
			types:       mailTypes(),
			primaryType: "Mail",
			message:     mailMessage(),
			expected:    mailDigest,
		},
		{
			name:        "name and version with chain id",
			domain:      sampleDomain(),
			types:       sampleTypes(),
			primaryType: "Message",
			message:     sampleMessage(),
			expected:    sampleDigest,
		},
		{
			name:   "array of structs",
			domain: eip712.NewDomain("Ether Mail", "1", 1, "0xcccccccccccccccccccccccccccccccccccccccc"),
			types: eip712.Types{
				"Person": {{Name: "name", Type: "string"}, {Name: "wallet", Type: "address"}},
				"Group":  {{Name: "name", Type: "string"}, {Name: "members", Type: "Person[]"}},
			},
			primaryType: "Group",
			message: map[string]any{
				"name": "Test Group",
				"members": []any{
					map[string]any{"name": "Alice", "wallet": "0x742d35cc1c3c72ae4d5e4f0e3d1e3c7e5e8c1a2b"},
					map[string]any{"name": "Bob", "wallet": "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"},
				},
			},
			expected: groupDigest,
		},
		{
			name:        "domain with salt",
			domain:      saltedDomain(),
			types:       sampleTypes(),
			primaryType: "Message",
			message:     sampleMessage(),
			expected:    sampleSaltDigest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eip712.HashTypedData(tt.domain, tt.types, tt.primaryType, tt.message)
			require.NoError(t, err)
			assert.Equal(t, common.HexToHash(tt.expected), got)

			reference, _, err := apitypes.TypedDataAndHash(toAPITypes(tt.domain, tt.types, tt.primaryType, tt.message))
			require.NoError(t, err)
			assert.Equal(t, common.BytesToHash(reference), got)
		})
	}
}

// toAPITypes converts a request into go-ethereum's signer representation.
func toAPITypes(domain eip712.Domain, types eip712.Types, primaryType string, message map[string]any) apitypes.TypedData {
	out := apitypes.TypedData{
		Types:       apitypes.Types{},
		PrimaryType: primaryType,
		Message:     message,
	}
	for name, fields := range types {
		for _, f := range fields {
			out.Types[name] = append(out.Types[name], apitypes.Type{Name: f.Name, Type: f.Type})
		}
	}
	for _, f := range domain.Type() {
		out.Types[eip712.DomainTypeName] = append(out.Types[eip712.DomainTypeName], apitypes.Type{Name: f.Name, Type: f.Type})
	}
	if domain.Name != nil {
		out.Domain.Name = *domain.Name
	}
	if domain.Version != nil {
		out.Domain.Version = *domain.Version
	}
	if domain.ChainID != nil {
		out.Domain.ChainId = domain.ChainID
	}
	if domain.VerifyingContract != nil {
		out.Domain.VerifyingContract = *domain.VerifyingContract
	}
	if domain.Salt != nil {
		out.Domain.Salt = *domain.Salt
	}
	return out
}

func TestHashTypedData_Salt(t *testing.T) {
	got, err := eip712.HashTypedData(saltedDomain(), sampleTypes(), "Message", sampleMessage())
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash(sampleSaltDigest), got)

	withoutSalt, err := eip712.HashTypedData(sampleDomain(), sampleTypes(), "Message", sampleMessage())
	require.NoError(t, err)
	assert.NotEqual(t, withoutSalt, got)
}

func TestHashTypedData_MinimalDomain(t *testing.T) {
	domain := eip712.Domain{Name: ptr("Test")}
	types := eip712.Types{"Message": {{Name: "content", Type: "string"}}}

	got, err := eip712.HashTypedData(domain, types, "Message", map[string]any{"content": "test"})
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash(minimalDomainDigest), got)
}

func TestHashTypedData_Deterministic(t *testing.T) {
	first, err := eip712.HashTypedData(sampleDomain(), sampleTypes(), "Message", sampleMessage())
	require.NoError(t, err)

	for range 10 {
		again, err := eip712.HashTypedData(sampleDomain(), sampleTypes(), "Message", sampleMessage())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestHashTypedData_Sensitivity(t *testing.T) {
	base, err := eip712.HashTypedData(sampleDomain(), sampleTypes(), "Message", sampleMessage())
	require.NoError(t, err)

	otherChain := sampleDomain()
	otherChain.ChainID = math.NewHexOrDecimal256(137)

	otherContent := sampleMessage()
	otherContent["content"] = "Hello World!"

	reordered := eip712.Types{
		"Message": {
			{Name: "timestamp", Type: "uint256"},
			{Name: "content", Type: "string"},
		},
	}

	tests := []struct {
		name    string
		domain  eip712.Domain
		types   eip712.Types
		message map[string]any
	}{
		{name: "chain id", domain: otherChain, types: sampleTypes(), message: sampleMessage()},
		{name: "message content", domain: sampleDomain(), types: sampleTypes(), message: otherContent},
		{name: "field order", domain: sampleDomain(), types: reordered, message: sampleMessage()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eip712.HashTypedData(tt.domain, tt.types, "Message", tt.message)
			require.NoError(t, err)
			assert.NotEqual(t, base, got)
		})
	}
}

func TestHashTypedData_NumericForms(t *testing.T) {
	base, err := eip712.HashTypedData(sampleDomain(), sampleTypes(), "Message", sampleMessage())
	require.NoError(t, err)

	for _, ts := range []any{1234567890, "0x499602d2", float64(1234567890), big.NewInt(1234567890), json.Number("1234567890")} {
		msg := sampleMessage()
		msg["timestamp"] = ts

		got, err := eip712.HashTypedData(sampleDomain(), sampleTypes(), "Message", msg)
		require.NoError(t, err)
		assert.Equal(t, base, got, "timestamp %v", ts)
	}
}

func TestHashTypedData_DerivesPrimaryType(t *testing.T) {
	d, err := eip712.TypedData{
		Types:   mailTypes(),
		Domain:  mailDomain(),
		Message: mailMessage(),
	}.Digests()
	require.NoError(t, err)
	assert.Equal(t, "Mail", d.PrimaryType)
	assert.Equal(t, common.HexToHash(mailDigest), d.Digest)
}

func TestHashTypedData_CallerDeclaredDomainType(t *testing.T) {
	types := mailTypes()
	types[eip712.DomainTypeName] = mailDomain().Type()

	got, err := eip712.HashTypedData(mailDomain(), types, "Mail", mailMessage())
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash(mailDigest), got)

	reordered := mailTypes()
	reordered[eip712.DomainTypeName] = []eip712.Field{
		{Name: "version", Type: "string"},
		{Name: "name", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	}
	other, err := eip712.HashTypedData(mailDomain(), reordered, "Mail", mailMessage())
	require.NoError(t, err)
	assert.NotEqual(t, got, other)

	extra := mailTypes()
	extra[eip712.DomainTypeName] = append(mailDomain().Type(), eip712.Field{Name: "salt", Type: "bytes32"})
	_, err = eip712.HashTypedData(mailDomain(), extra, "Mail", mailMessage())
	require.Error(t, err)
	assert.ErrorIs(t, err, sigerr.ErrMissingFieldValue)
	assert.Contains(t, err.Error(), "domain")
}

func TestHashTypedData_DoesNotMutateTypes(t *testing.T) {
	types := mailTypes()

	_, err := eip712.HashTypedData(mailDomain(), types, "Mail", mailMessage())
	require.NoError(t, err)
	assert.NotContains(t, types, eip712.DomainTypeName)
}

func TestHashTypedData_Errors(t *testing.T) {
	tests := []struct {
		name        string
		types       eip712.Types
		primaryType string
		message     map[string]any
		expected    error
	}{
		{
			name:        "empty type map",
			types:       eip712.Types{},
			primaryType: "Mail",
			message:     mailMessage(),
			expected:    sigerr.ErrNoPrimaryType,
		},
		{
			name:        "undeclared primary type",
			types:       mailTypes(),
			primaryType: "Letter",
			message:     mailMessage(),
			expected:    sigerr.ErrUnknownType,
		},
		{
			name: "undeclared field type",
			types: eip712.Types{
				"Mail": {{Name: "from", Type: "Person"}},
			},
			primaryType: "Mail",
			message:     mailMessage(),
			expected:    sigerr.ErrUnknownType,
		},
		{
			name:        "missing message field",
			types:       mailTypes(),
			primaryType: "Mail",
			message:     map[string]any{"from": mailMessage()["from"], "to": mailMessage()["to"]},
			expected:    sigerr.ErrMissingFieldValue,
		},
		{
			name: "ambiguous primary type",
			types: eip712.Types{
				"A": {{Name: "x", Type: "uint8"}},
				"B": {{Name: "y", Type: "uint8"}},
			},
			message:  map[string]any{"x": 1},
			expected: sigerr.ErrNoPrimaryType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eip712.HashTypedData(mailDomain(), tt.types, tt.primaryType, tt.message)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestTypedData_UnmarshalJSON(t *testing.T) {
	payload := `{
		"types": {
			"EIP712Domain": [
				{"name": "name", "type": "string"},
				{"name": "version", "type": "string"},
				{"name": "chainId", "type": "uint256"},
				{"name": "verifyingContract", "type": "address"}
			],
			"Person": [
				{"name": "name", "type": "string"},
				{"name": "wallet", "type": "address"}
			],
			"Mail": [
				{"name": "from", "type": "Person"},
				{"name": "to", "type": "Person"},
				{"name": "contents", "type": "string"}
			]
		},
		"primaryType": "Mail",
		"domain": {
			"name": "Ether Mail",
			"version": "1",
			"chainId": 1,
			"verifyingContract": "0xCcCCccccCCCCcCCCCCCcCcCccCcCCCcCcccccccC"
		},
		"message": {
			"from": {"name": "Cow", "wallet": "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"},
			"to": {"name": "Bob", "wallet": "0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB"},
			"contents": "Hello, Bob!"
		}
	}`

	var td eip712.TypedData
	require.NoError(t, json.Unmarshal([]byte(payload), &td))
	assert.Nil(t, td.Domain.Salt)

	digest, err := td.Hash()
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash(mailDigest), digest)
}
