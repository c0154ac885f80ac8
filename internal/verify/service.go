package verify

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ahwlsqja/go-sigverify/internal/common/errors"
	"github.com/ahwlsqja/go-sigverify/pkg/ethsig"
)

// Service handles signature hashing, recovery and verification requests
type Service struct {
	verifier        ethsig.Verifier
	maxMessageBytes int
	logger          *zap.Logger
}

// NewService creates a new verification service
func NewService(verifier ethsig.Verifier, maxMessageBytes int, logger *zap.Logger) *Service {
	return &Service{
		verifier:        verifier,
		maxMessageBytes: maxMessageBytes,
		logger:          logger,
	}
}

// VerifyMessage reports whether the claimed address signed the personal message.
// Only an oversized message yields an error; every other failure is valid=false.
func (s *Service) VerifyMessage(req *VerifyMessageRequest) (*VerifyResponse, error) {
	if err := s.checkMessageSize(*req.Message); err != nil {
		return nil, err
	}

	valid := s.verifier.VerifyMessage(req.Address, *req.Message, req.Signature)
	s.logger.Info("personal message verification completed",
		zap.String("address", req.Address),
		zap.Bool("valid", valid),
	)
	return &VerifyResponse{Valid: valid}, nil
}

// VerifyTypedData reports whether the claimed address signed the typed data.
func (s *Service) VerifyTypedData(req *VerifyTypedDataRequest) *VerifyResponse {
	valid := s.verifier.VerifyTypedData(req.Address, req.Signature, *req.TypedData)
	s.logger.Info("typed data verification completed",
		zap.String("address", req.Address),
		zap.String("primary_type", req.TypedData.PrimaryType),
		zap.Bool("valid", valid),
	)
	return &VerifyResponse{Valid: valid}
}

// RecoverMessage recovers the signer of a personal message
func (s *Service) RecoverMessage(req *RecoverMessageRequest) (*RecoverResponse, error) {
	if err := s.checkMessageSize(*req.Message); err != nil {
		return nil, err
	}

	signer, err := s.verifier.RecoverMessageSigner(*req.Message, req.Signature)
	if err != nil {
		return nil, err
	}
	return &RecoverResponse{Address: signer.Address, Digest: signer.Digest.Hex()}, nil
}

// RecoverTypedData recovers the signer of EIP-712 typed data
func (s *Service) RecoverTypedData(req *RecoverTypedDataRequest) (*RecoverResponse, error) {
	signer, err := s.verifier.RecoverTypedDataSigner(*req.TypedData, req.Signature)
	if err != nil {
		return nil, err
	}
	return &RecoverResponse{Address: signer.Address, Digest: signer.Digest.Hex()}, nil
}

// HashMessage computes the personal message digest
func (s *Service) HashMessage(req *HashMessageRequest) (*HashMessageResponse, error) {
	data := []byte(*req.Message)
	if req.Encoding == EncodingHex {
		decoded, err := ethsig.HexToBytes(*req.Message)
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("message: %v", err)).WithError(err)
		}
		data = decoded
	}
	if len(data) > s.maxMessageBytes {
		return nil, s.messageTooLarge(len(data))
	}

	return &HashMessageResponse{Digest: ethsig.HashPersonalMessageBytes(data).Hex()}, nil
}

// HashTypedData computes the EIP-712 digest with its domain separator and struct hash
func (s *Service) HashTypedData(req *HashTypedDataRequest) (*HashTypedDataResponse, error) {
	d, err := req.TypedData.Digests()
	if err != nil {
		s.logger.Debug("typed data hashing failed", zap.Error(err))
		return nil, err
	}
	return ToHashTypedDataResponse(d), nil
}

// Checksum renders an address in EIP-55 form
func (s *Service) Checksum(req *ChecksumRequest) (*ChecksumResponse, error) {
	checksummed, err := ethsig.ToChecksumAddress(req.Address)
	if err != nil {
		return nil, err
	}
	return &ChecksumResponse{
		Address:    checksummed,
		IsChecksum: ethsig.IsChecksumAddress(req.Address),
	}, nil
}

func (s *Service) checkMessageSize(message string) error {
	if len(message) > s.maxMessageBytes {
		return s.messageTooLarge(len(message))
	}
	return nil
}

func (s *Service) messageTooLarge(size int) *errors.AppError {
	return errors.InvalidInput(fmt.Sprintf("Message exceeds %d bytes", s.maxMessageBytes)).
		WithDetails(map[string]any{
			"limit": s.maxMessageBytes,
			"size":  size,
		})
}
