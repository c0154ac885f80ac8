// Package ethsig hashes EIP-191 personal messages, recovers secp256k1 signers
// and verifies Ethereum signatures over personal messages and EIP-712 typed
// data.
//
// Low-level functions (HashPersonalMessage, RecoverAddress, ToChecksumAddress,
// the Check functions) report failures as *sigerr.Error values. VerifyMessage
// and VerifyTypedData collapse every failure to false.
package ethsig

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

// Keccak256 hashes the concatenation of data.
func Keccak256(data ...[]byte) common.Hash {
	return crypto.Keccak256Hash(data...)
}

// HexToBytes decodes hex text with or without a 0x prefix.
func HexToBytes(s string) ([]byte, error) {
	b, err := hexutil.Decode("0x" + trim0x(s))
	if err != nil {
		return nil, sigerr.Wrap(sigerr.KindInvalidHexEncoding, err, "decode %q", s)
	}
	return b, nil
}

// BytesToHex renders b as 0x-prefixed lowercase hex.
func BytesToHex(b []byte) string {
	return hexutil.Encode(b)
}

// ParseDigest parses a 0x-prefixed, 64 hex character digest.
func ParseDigest(s string) (common.Hash, error) {
	if !has0xPrefix(s) || len(s) != 2+2*common.HashLength {
		return common.Hash{}, sigerr.New(sigerr.KindInvalidHexEncoding, "digest must be 0x followed by %d hex characters", 2*common.HashLength)
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, sigerr.Wrap(sigerr.KindInvalidHexEncoding, err, "digest %q", s)
	}
	return common.BytesToHash(b), nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func trim0x(s string) string {
	if has0xPrefix(s) {
		return s[2:]
	}
	return s
}
