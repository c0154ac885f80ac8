package ethsig

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

// signatureHexLength is the textual length of a 65 byte r || s || v signature.
const signatureHexLength = 2 + 2*crypto.SignatureLength

// RecoverAddress returns the checksummed address that produced signature over
// digest. The recovery byte may be 0/1 or 27/28.
func RecoverAddress(digest common.Hash, signature string) (string, error) {
	sig, err := parseSignature(signature)
	if err != nil {
		return "", err
	}

	pub, err := crypto.Ecrecover(digest.Bytes(), sig)
	if err != nil {
		return "", sigerr.Wrap(sigerr.KindRecoveryFailed, err, "")
	}
	return PublicKeyToAddress(pub)
}

// parseSignature decodes signature and normalizes its recovery id to 0 or 1.
func parseSignature(signature string) ([]byte, error) {
	if !strings.HasPrefix(signature, "0x") || len(signature) != signatureHexLength {
		return nil, sigerr.New(sigerr.KindInvalidSignatureFormat, "expected 0x followed by %d hex characters, got %d characters", signatureHexLength-2, len(signature))
	}
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return nil, sigerr.Wrap(sigerr.KindInvalidHexEncoding, err, "signature")
	}

	v := sig[crypto.RecoveryIDOffset]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return nil, sigerr.New(sigerr.KindInvalidSignatureFormat, "recovery id %d", sig[crypto.RecoveryIDOffset])
	}
	sig[crypto.RecoveryIDOffset] = v
	return sig, nil
}

// PublicKeyToAddress derives the checksummed address of a 65 byte uncompressed
// secp256k1 public key.
func PublicKeyToAddress(pub []byte) (string, error) {
	if len(pub) != 65 || pub[0] != 0x04 {
		return "", sigerr.New(sigerr.KindInvalidPublicKeyEncoding, "expected 65 bytes with 0x04 tag, got %d bytes", len(pub))
	}
	key, err := crypto.UnmarshalPubkey(pub)
	if err != nil {
		return "", sigerr.Wrap(sigerr.KindInvalidPublicKeyEncoding, err, "")
	}
	return crypto.PubkeyToAddress(*key).Hex(), nil
}
