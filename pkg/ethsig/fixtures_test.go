package ethsig_test

import (
	"crypto/ecdsa"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/ahwlsqja/go-sigverify/pkg/eip712"
)

const (
	freshMessage   = "Hello from fresh test"
	freshSigner    = "0x663918f51479a1dd832929199296843d09d0f71a"
	freshSignature = "0xda689ba088beb48ceafea291888c4ad87f6cb3d9b2e45a4e8bf742b56ff8fa2f3f5fa686956810fe30171761489282af3a6e8047fd74591f81f822477be21e771b"

	// Hardhat's first development account.
	devKeyHex  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	cowAddress = "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"
	mailDigest = "0xbe609aee343fb3c4b28e1df9e632fca64fcfaede20f02e86244efddf30957bd2"
)

func devKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := crypto.HexToECDSA(devKeyHex)
	require.NoError(t, err)
	return key
}

// cowKey is keccak256("cow"), the signer of the EIP-712 Mail example.
func cowKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := crypto.ToECDSA(crypto.Keccak256([]byte("cow")))
	require.NoError(t, err)
	return key
}

// sign returns a 0x-prefixed signature with the recovery byte shifted to 27/28.
func sign(t *testing.T, key *ecdsa.PrivateKey, digest common.Hash) string {
	t.Helper()
	sig, err := crypto.Sign(digest.Bytes(), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig)
}

func mailTypedData() eip712.TypedData {
	return eip712.TypedData{
		Types: eip712.Types{
			"Person": {
				{Name: "name", Type: "string"},
				{Name: "wallet", Type: "address"},
			},
			"Mail": {
				{Name: "from", Type: "Person"},
				{Name: "to", Type: "Person"},
				{Name: "contents", Type: "string"},
			},
		},
		PrimaryType: "Mail",
		Domain:      eip712.NewDomain("Ether Mail", "1", 1, "0xCcCCccccCCCCcCCCCCCcCcCccCcCCCcCcccccccC"),
		Message: map[string]any{
			"from":     map[string]any{"name": "Cow", "wallet": cowAddress},
			"to":       map[string]any{"name": "Bob", "wallet": "0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB"},
			"contents": "Hello, Bob!",
		},
	}
}
