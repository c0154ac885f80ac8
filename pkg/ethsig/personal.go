package ethsig

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const personalMessagePrefix = "\x19Ethereum Signed Message:\n"

// HashPersonalMessage returns the EIP-191 version 0x45 digest of message, the
// hash personal_sign and eth_sign produce. The length prefix counts bytes, not
// characters.
func HashPersonalMessage(message string) common.Hash {
	return HashPersonalMessageBytes([]byte(message))
}

// HashPersonalMessageBytes is HashPersonalMessage over raw bytes.
func HashPersonalMessageBytes(data []byte) common.Hash {
	return crypto.Keccak256Hash(
		[]byte(personalMessagePrefix),
		[]byte(strconv.Itoa(len(data))),
		data,
	)
}
