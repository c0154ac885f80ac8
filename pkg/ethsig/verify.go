package ethsig

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ahwlsqja/go-sigverify/pkg/eip712"
	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

// Signer is a recovered address together with the digest it signed.
type Signer struct {
	Address string
	Digest  common.Hash
}

// CheckMessage returns nil if address produced signature over the personal
// message hash of message.
func CheckMessage(address, message, signature string) error {
	return checkSigner(address, HashPersonalMessage(message), signature)
}

// CheckTypedData returns nil if address produced signature over the EIP-712
// digest of data.
func CheckTypedData(address, signature string, data eip712.TypedData) error {
	digest, err := data.Hash()
	if err != nil {
		return err
	}
	return checkSigner(address, digest, signature)
}

// VerifyMessage reports whether address signed message. Any failure,
// including malformed input, yields false.
func VerifyMessage(address, message, signature string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return CheckMessage(address, message, signature) == nil
}

// VerifyTypedData reports whether address signed the typed data. Any failure,
// including an invalid schema or message, yields false.
func VerifyTypedData(address, signature string, domain eip712.Domain, types eip712.Types, primaryType string, message map[string]any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return CheckTypedData(address, signature, eip712.TypedData{
		Types:       types,
		PrimaryType: primaryType,
		Domain:      domain,
		Message:     message,
	}) == nil
}

// RecoverMessageSigner recovers the signer of a personal message.
func RecoverMessageSigner(message, signature string) (Signer, error) {
	return recoverSigner(HashPersonalMessage(message), signature)
}

// RecoverTypedDataSigner recovers the signer of EIP-712 typed data.
func RecoverTypedDataSigner(data eip712.TypedData, signature string) (Signer, error) {
	digest, err := data.Hash()
	if err != nil {
		return Signer{}, err
	}
	return recoverSigner(digest, signature)
}

func recoverSigner(digest common.Hash, signature string) (Signer, error) {
	addr, err := RecoverAddress(digest, signature)
	if err != nil {
		return Signer{}, err
	}
	return Signer{Address: addr, Digest: digest}, nil
}

func checkSigner(address string, digest common.Hash, signature string) error {
	expected, err := ToChecksumAddress(address)
	if err != nil {
		return err
	}
	recovered, err := RecoverAddress(digest, signature)
	if err != nil {
		return err
	}
	if !strings.EqualFold(recovered, expected) {
		return sigerr.New(sigerr.KindSignerMismatch, "recovered %s, expected %s", recovered, expected)
	}
	return nil
}
