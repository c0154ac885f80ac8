package ethsig

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

// ToChecksumAddress renders address in EIP-55 mixed case. The input is
// case-insensitive and the 0x prefix is optional.
func ToChecksumAddress(address string) (string, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}

// IsChecksumAddress reports whether address is 0x-prefixed and cased exactly
// as ToChecksumAddress renders it.
func IsChecksumAddress(address string) bool {
	if !has0xPrefix(address) || address[1] != 'x' {
		return false
	}
	checksummed, err := ToChecksumAddress(address)
	return err == nil && checksummed == address
}

// ParseAddress parses 40 hex characters with an optional 0x prefix.
func ParseAddress(address string) (common.Address, error) {
	if len(trim0x(address)) != 2*common.AddressLength || !common.IsHexAddress(address) {
		return common.Address{}, sigerr.New(sigerr.KindInvalidAddress, "%q is not 40 hex characters", address)
	}
	return common.HexToAddress(address), nil
}
