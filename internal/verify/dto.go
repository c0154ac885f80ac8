package verify

import (
	"github.com/ahwlsqja/go-sigverify/pkg/eip712"
)

// ============================================================================
// Request DTOs
// ============================================================================

// Message encodings accepted by HashMessageRequest.
const (
	EncodingUTF8 = "utf8"
	EncodingHex  = "hex"
)

// VerifyMessageRequest represents the request body for personal message verification.
// Message is a pointer so that an empty message is distinguishable from a missing one.
type VerifyMessageRequest struct {
	Address   string  `json:"address" binding:"required" example:"0x663918F51479A1dD832929199296843d09d0f71a"`
	Message   *string `json:"message" binding:"required" example:"Hello from fresh test"`
	Signature string  `json:"signature" binding:"required" example:"0xda689ba088beb48ceafea291888c4ad87f6cb3d9b2e45a4e8bf742b56ff8fa2f3f5fa686956810fe30171761489282af3a6e8047fd74591f81f822477be21e771b"`
}

// VerifyTypedDataRequest represents the request body for EIP-712 verification
type VerifyTypedDataRequest struct {
	Address   string            `json:"address" binding:"required" example:"0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"`
	Signature string            `json:"signature" binding:"required"`
	TypedData *eip712.TypedData `json:"typedData" binding:"required"`
}

// RecoverMessageRequest represents the request body for personal message signer recovery
type RecoverMessageRequest struct {
	Message   *string `json:"message" binding:"required" example:"Hello from fresh test"`
	Signature string  `json:"signature" binding:"required"`
}

// RecoverTypedDataRequest represents the request body for EIP-712 signer recovery
type RecoverTypedDataRequest struct {
	Signature string            `json:"signature" binding:"required"`
	TypedData *eip712.TypedData `json:"typedData" binding:"required"`
}

// HashMessageRequest represents the request body for personal message hashing.
// With encoding "hex" the message is 0x-prefixed hex of the raw bytes.
type HashMessageRequest struct {
	Message  *string `json:"message" binding:"required" example:"Hello World"`
	Encoding string  `json:"encoding,omitempty" binding:"omitempty,oneof=utf8 hex" example:"utf8"`
}

// HashTypedDataRequest represents the request body for EIP-712 hashing
type HashTypedDataRequest struct {
	TypedData *eip712.TypedData `json:"typedData" binding:"required"`
}

// ChecksumRequest represents the request body for EIP-55 checksum rendering
type ChecksumRequest struct {
	Address string `json:"address" binding:"required" example:"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// VerifyResponse carries the fail-closed verification result
type VerifyResponse struct {
	Valid bool `json:"valid" example:"true"`
}

// RecoverResponse carries a recovered signer and the digest it signed
type RecoverResponse struct {
	Address string `json:"address" example:"0x663918F51479A1dD832929199296843d09d0f71a"`
	Digest  string `json:"digest" example:"0x7afc00b648ba055f861d44b46afb0f0a571bf85531a071e386746c1e9c10373c"`
}

// HashMessageResponse carries a personal message digest
type HashMessageResponse struct {
	Digest string `json:"digest" example:"0xa1de988600a42c4b4ab089b619297c17d53cffae5d5120d82d8a92d0bb3b78f2"`
}

// HashTypedDataResponse carries the EIP-712 digest and its components
type HashTypedDataResponse struct {
	Digest          string `json:"digest" example:"0xbe609aee343fb3c4b28e1df9e632fca64fcfaede20f02e86244efddf30957bd2"`
	DomainSeparator string `json:"domainSeparator" example:"0xf2cee375fa42b42143804025fc449deafd50cc031ca257e0b194a650a912090f"`
	StructHash      string `json:"structHash" example:"0xc52c0ee5d84264471806290a3f2c4cecfc5490626bf912d01f240d7a274b371e"`
	PrimaryType     string `json:"primaryType" example:"Mail"`
}

// ChecksumResponse carries the EIP-55 rendering of an address
type ChecksumResponse struct {
	Address    string `json:"address" example:"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"`
	IsChecksum bool   `json:"is_checksum" example:"false"`
}

// ============================================================================
// Converters
// ============================================================================

// ToHashTypedDataResponse converts eip712.Digests to HashTypedDataResponse
func ToHashTypedDataResponse(d eip712.Digests) *HashTypedDataResponse {
	return &HashTypedDataResponse{
		Digest:          d.Digest.Hex(),
		DomainSeparator: d.DomainSeparator.Hex(),
		StructHash:      d.StructHash.Hex(),
		PrimaryType:     d.PrimaryType,
	}
}
