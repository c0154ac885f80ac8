package ethsig

import (
	"go.uber.org/zap"

	"github.com/ahwlsqja/go-sigverify/pkg/eip712"
	"github.com/ahwlsqja/go-sigverify/pkg/sigerr"
)

// Verifier defines signature verification and signer recovery.
type Verifier interface {
	// VerifyMessage verifies an EIP-191 personal message signature.
	VerifyMessage(address, message, signature string) bool

	// VerifyTypedData verifies an EIP-712 typed data signature.
	VerifyTypedData(address, signature string, data eip712.TypedData) bool

	// RecoverMessageSigner recovers the signer of a personal message.
	RecoverMessageSigner(message, signature string) (Signer, error)

	// RecoverTypedDataSigner recovers the signer of typed data.
	RecoverTypedDataSigner(data eip712.TypedData, signature string) (Signer, error)
}

// EthVerifier implements Verifier using go-ethereum's secp256k1 recovery.
type EthVerifier struct {
	logger *zap.Logger
}

// Compile-time interface compliance check
var _ Verifier = (*EthVerifier)(nil)

// NewEthVerifier creates a new verifier
func NewEthVerifier(logger *zap.Logger) *EthVerifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EthVerifier{logger: logger}
}

func (v *EthVerifier) VerifyMessage(address, message, signature string) bool {
	err := v.guard(func() error { return CheckMessage(address, message, signature) })
	if err != nil {
		v.logFailure("personal message verification failed", address, err)
		return false
	}
	return true
}

func (v *EthVerifier) VerifyTypedData(address, signature string, data eip712.TypedData) bool {
	err := v.guard(func() error { return CheckTypedData(address, signature, data) })
	if err != nil {
		v.logFailure("typed data verification failed", address, err)
		return false
	}
	return true
}

func (v *EthVerifier) RecoverMessageSigner(message, signature string) (Signer, error) {
	signer, err := RecoverMessageSigner(message, signature)
	if err != nil {
		v.logFailure("personal message recovery failed", "", err)
	}
	return signer, err
}

func (v *EthVerifier) RecoverTypedDataSigner(data eip712.TypedData, signature string) (Signer, error) {
	var signer Signer
	err := v.guard(func() error {
		var err error
		signer, err = RecoverTypedDataSigner(data, signature)
		return err
	})
	if err != nil {
		v.logFailure("typed data recovery failed", "", err)
	}
	return signer, err
}

// guard turns a panic raised while encoding caller-supplied values into an
// INVALID_FIELD_VALUE error.
func (v *EthVerifier) guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("recovered panic during signature check", zap.Any("panic", r))
			err = sigerr.New(sigerr.KindInvalidFieldValue, "malformed input")
		}
	}()
	return fn()
}

func (v *EthVerifier) logFailure(msg, address string, err error) {
	fields := []zap.Field{zap.Error(err)}
	if kind, ok := sigerr.KindOf(err); ok {
		fields = append(fields, zap.String("kind", string(kind)))
	}
	if address != "" {
		fields = append(fields, zap.String("address", address))
	}
	v.logger.Debug(msg, fields...)
}
