package eip712_test

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/ahwlsqja/go-sigverify/pkg/eip712"
)

const (
	mailEncodedType      = "Mail(Person from,Person to,string contents)Person(string name,address wallet)"
	mailTypeHash         = "0xa0cedeb2dc280ba39b857546d74f5549c3a1d7bdc2dd96bf881f76108e23dac2"
	mailDomainSeparator  = "0xf2cee375fa42b42143804025fc449deafd50cc031ca257e0b194a650a912090f"
	mailStructHash       = "0xc52c0ee5d84264471806290a3f2c4cecfc5490626bf912d01f240d7a274b371e"
	mailDigest           = "0xbe609aee343fb3c4b28e1df9e632fca64fcfaede20f02e86244efddf30957bd2"
	sampleDigest         = "0x2ae179b4c1c3fc6b9a1e8885591b497b4d37e79d880c8a795325672c2db57f44"
	sampleSaltDigest     = "0x3c2b2ad4ebf52e75bd8d1a05b241e1575448f6d12e757af496cfa33b5adf5dfa"
	minimalDomainDigest  = "0x1c25471a035f06b5f9f132938a4f81b7a43b1c2e8b9efb26a0b0b2f5368afaae"
	groupDigest          = "0x8ac6a5671ece9152c8ec9f7e1e1dc3ac0cd65e40899e875cf0cc0531f4a88ca9"
	nodeStructHash       = "0x3a0d2413ec3440d0b7421bee3d890f102274d4ab91b275f0c91b733c4565fd66"
	mixedStructHash      = "0x05114a99e640cdd50c1859aa107a6804d3da63b19600fa1fa756ee55695016bb"
	mailVerifyingAddress = "0xCcCCccccCCCCcCCCCCCcCcCccCcCCCcCcccccccC"
)

func ptr[T any](v T) *T { return &v }

func mailDomain() eip712.Domain {
	return eip712.NewDomain("Ether Mail", "1", 1, mailVerifyingAddress)
}

func mailTypes() eip712.Types {
	return eip712.Types{
		"Person": {
			{Name: "name", Type: "string"},
			{Name: "wallet", Type: "address"},
		},
		"Mail": {
			{Name: "from", Type: "Person"},
			{Name: "to", Type: "Person"},
			{Name: "contents", Type: "string"},
		},
	}
}

func mailMessage() map[string]any {
	return map[string]any{
		"from": map[string]any{
			"name":   "Cow",
			"wallet": "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826",
		},
		"to": map[string]any{
			"name":   "Bob",
			"wallet": "0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB",
		},
		"contents": "Hello, Bob!",
	}
}

func sampleDomain() eip712.Domain {
	return eip712.Domain{
		Name:    ptr("Test App"),
		Version: ptr("1"),
		ChainID: math.NewHexOrDecimal256(1),
	}
}

func saltedDomain() eip712.Domain {
	d := sampleDomain()
	d.Salt = ptr("0x" + strings.Repeat("ab", 32))
	return d
}

func sampleTypes() eip712.Types {
	return eip712.Types{
		"Message": {
			{Name: "content", Type: "string"},
			{Name: "timestamp", Type: "uint256"},
		},
	}
}

func sampleMessage() map[string]any {
	return map[string]any{
		"content":   "Hello World",
		"timestamp": "1234567890",
	}
}
