package ethsig_test

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahwlsqja/go-sigverify/pkg/ethsig"
	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

func TestRecoverAddress_Fixture(t *testing.T) {
	got, err := ethsig.RecoverAddress(ethsig.HashPersonalMessage(freshMessage), freshSignature)
	require.NoError(t, err)
	assert.Equal(t, "0x663918F51479A1dD832929199296843d09d0f71a", got)
}

func TestRecoverAddress_RawRecoveryID(t *testing.T) {
	raw := freshSignature[:len(freshSignature)-2] + "00"

	got, err := ethsig.RecoverAddress(ethsig.HashPersonalMessage(freshMessage), raw)
	require.NoError(t, err)
	assert.True(t, strings.EqualFold(freshSigner, got))
}

func TestRecoverAddress_SignedDigest(t *testing.T) {
	key := devKey(t)
	digest := crypto.Keccak256Hash([]byte("arbitrary digest"))

	sig, err := crypto.Sign(digest.Bytes(), key)
	require.NoError(t, err)

	// Both the raw 0/1 and the 27/28 recovery byte are accepted.
	raw, err := ethsig.RecoverAddress(digest, hexutil.Encode(sig))
	require.NoError(t, err)
	assert.Equal(t, devAddress, raw)

	legacy, err := ethsig.RecoverAddress(digest, sign(t, key, digest))
	require.NoError(t, err)
	assert.Equal(t, devAddress, legacy)
}

func TestRecoverAddress_Errors(t *testing.T) {
	digest := ethsig.HashPersonalMessage(freshMessage)
	body := freshSignature[2:]

	tests := []struct {
		name      string
		signature string
		expected  error
	}{
		{name: "empty", signature: "", expected: sigerr.ErrInvalidSignatureFormat},
		{name: "prefix only", signature: "0x", expected: sigerr.ErrInvalidSignatureFormat},
		{name: "missing prefix", signature: body + "00", expected: sigerr.ErrInvalidSignatureFormat},
		{name: "upper case prefix", signature: "0X" + body, expected: sigerr.ErrInvalidSignatureFormat},
		{name: "too short", signature: freshSignature[:131], expected: sigerr.ErrInvalidSignatureFormat},
		{name: "too long", signature: freshSignature + "00", expected: sigerr.ErrInvalidSignatureFormat},
		{name: "non hex", signature: "0x" + strings.Repeat("zz", 65), expected: sigerr.ErrInvalidHexEncoding},
		{name: "recovery id 2", signature: freshSignature[:130] + "02", expected: sigerr.ErrInvalidSignatureFormat},
		{name: "recovery id 29", signature: freshSignature[:130] + "1d", expected: sigerr.ErrInvalidSignatureFormat},
		{name: "zero r and s", signature: "0x" + strings.Repeat("00", 64) + "1b", expected: sigerr.ErrRecoveryFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ethsig.RecoverAddress(digest, tt.signature)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestPublicKeyToAddress(t *testing.T) {
	key := devKey(t)

	got, err := ethsig.PublicKeyToAddress(crypto.FromECDSAPub(&key.PublicKey))
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex(), got)
	assert.Equal(t, devAddress, got)
}

func TestPublicKeyToAddress_Invalid(t *testing.T) {
	key := devKey(t)
	pub := crypto.FromECDSAPub(&key.PublicKey)

	compressedTag := append([]byte{0x02}, pub[1:]...)

	for name, in := range map[string][]byte{
		"empty":       nil,
		"missing tag": pub[1:],
		"wrong tag":   compressedTag,
		"compressed":  crypto.CompressPubkey(&key.PublicKey),
	} {
		_, err := ethsig.PublicKeyToAddress(in)
		assert.ErrorIs(t, err, sigerr.ErrInvalidPublicKeyEncoding, name)
	}
}

func TestRecoverAddress_DigestIsLowerHex(t *testing.T) {
	d := ethsig.HashPersonalMessage(freshMessage)
	assert.Equal(t, strings.ToLower(d.Hex()), d.Hex())
	assert.Len(t, d.Hex(), 2+2*common.HashLength)
}
