package verify

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahwlsqja/go-sigverify/internal/common/errors"
	"github.com/ahwlsqja/go-sigverify/internal/common/middleware"
)

// Handler handles HTTP requests for signature operations
type Handler struct {
	service *Service
}

// NewHandler creates a new verification handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers signature routes on the router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	verify := rg.Group("/verify")
	{
		verify.POST("/message", h.VerifyMessage)
		verify.POST("/typed-data", h.VerifyTypedData)
	}

	recoverGroup := rg.Group("/recover")
	{
		recoverGroup.POST("/message", h.RecoverMessage)
		recoverGroup.POST("/typed-data", h.RecoverTypedData)
	}

	hash := rg.Group("/hash")
	{
		hash.POST("/message", h.HashMessage)
		hash.POST("/typed-data", h.HashTypedData)
	}

	rg.POST("/address/checksum", h.Checksum)
}

// bind decodes the JSON body into req and renders the failure if any.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			middleware.RespondError(c, errors.PayloadTooLarge(maxErr.Limit))
			return false
		}
		middleware.RespondError(c, errors.InvalidInput(err.Error()))
		return false
	}
	return true
}

// VerifyMessage godoc
// @Summary Verify a personal message signature
// @Description Checks an EIP-191 personal_sign signature against the claimed address. Malformed signatures and addresses yield valid=false.
// @Tags verify
// @Accept json
// @Produce json
// @Param request body VerifyMessageRequest true "Address, message and signature"
// @Success 200 {object} middleware.SuccessResponse{data=VerifyResponse} "Verification result"
// @Failure 400 {object} middleware.ErrorResponse "Invalid input"
// @Failure 413 {object} middleware.ErrorResponse "Request body too large"
// @Router /api/v1/verify/message [post]
func (h *Handler) VerifyMessage(c *gin.Context) {
	var req VerifyMessageRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.service.VerifyMessage(&req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	middleware.RespondOK(c, result)
}

// VerifyTypedData godoc
// @Summary Verify an EIP-712 signature
// @Description Checks an eth_signTypedData_v4 signature against the claimed address. Schema errors and malformed signatures yield valid=false.
// @Tags verify
// @Accept json
// @Produce json
// @Param request body VerifyTypedDataRequest true "Address, signature and typed data"
// @Success 200 {object} middleware.SuccessResponse{data=VerifyResponse} "Verification result"
// @Failure 400 {object} middleware.ErrorResponse "Invalid input"
// @Failure 413 {object} middleware.ErrorResponse "Request body too large"
// @Router /api/v1/verify/typed-data [post]
func (h *Handler) VerifyTypedData(c *gin.Context) {
	var req VerifyTypedDataRequest
	if !bind(c, &req) {
		return
	}

	middleware.RespondOK(c, h.service.VerifyTypedData(&req))
}

// RecoverMessage godoc
// @Summary Recover a personal message signer
// @Description Recovers the checksummed address that signed an EIP-191 personal message
// @Tags recover
// @Accept json
// @Produce json
// @Param request body RecoverMessageRequest true "Message and signature"
// @Success 200 {object} middleware.SuccessResponse{data=RecoverResponse} "Recovered signer"
// @Failure 400 {object} middleware.ErrorResponse "Invalid input"
// @Failure 422 {object} middleware.ErrorResponse "Malformed signature or recovery failure"
// @Router /api/v1/recover/message [post]
func (h *Handler) RecoverMessage(c *gin.Context) {
	var req RecoverMessageRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.service.RecoverMessage(&req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	middleware.RespondOK(c, result)
}

// RecoverTypedData godoc
// @Summary Recover an EIP-712 signer
// @Description Recovers the checksummed address that signed EIP-712 typed data
// @Tags recover
// @Accept json
// @Produce json
// @Param request body RecoverTypedDataRequest true "Signature and typed data"
// @Success 200 {object} middleware.SuccessResponse{data=RecoverResponse} "Recovered signer"
// @Failure 400 {object} middleware.ErrorResponse "Invalid input"
// @Failure 422 {object} middleware.ErrorResponse "Invalid schema, malformed signature or recovery failure"
// @Router /api/v1/recover/typed-data [post]
func (h *Handler) RecoverTypedData(c *gin.Context) {
	var req RecoverTypedDataRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.service.RecoverTypedData(&req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	middleware.RespondOK(c, result)
}

// HashMessage godoc
// @Summary Hash a personal message
// @Description Computes the EIP-191 personal_sign digest
// @Tags hash
// @Accept json
// @Produce json
// @Param request body HashMessageRequest true "Message"
// @Success 200 {object} middleware.SuccessResponse{data=HashMessageResponse} "Digest"
// @Failure 400 {object} middleware.ErrorResponse "Invalid input"
// @Router /api/v1/hash/message [post]
func (h *Handler) HashMessage(c *gin.Context) {
	var req HashMessageRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.service.HashMessage(&req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	middleware.RespondOK(c, result)
}

// HashTypedData godoc
// @Summary Hash EIP-712 typed data
// @Description Computes the signing digest, domain separator and struct hash of typed data
// @Tags hash
// @Accept json
// @Produce json
// @Param request body HashTypedDataRequest true "Typed data"
// @Success 200 {object} middleware.SuccessResponse{data=HashTypedDataResponse} "Digests"
// @Failure 400 {object} middleware.ErrorResponse "Invalid input"
// @Failure 422 {object} middleware.ErrorResponse "Invalid schema or message"
// @Router /api/v1/hash/typed-data [post]
func (h *Handler) HashTypedData(c *gin.Context) {
	var req HashTypedDataRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.service.HashTypedData(&req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	middleware.RespondOK(c, result)
}

// Checksum godoc
// @Summary Checksum an address
// @Description Renders an address in EIP-55 mixed case
// @Tags address
// @Accept json
// @Produce json
// @Param request body ChecksumRequest true "Address"
// @Success 200 {object} middleware.SuccessResponse{data=ChecksumResponse} "Checksummed address"
// @Failure 400 {object} middleware.ErrorResponse "Invalid input"
// @Failure 422 {object} middleware.ErrorResponse "Not a 40 hex character address"
// @Router /api/v1/address/checksum [post]
func (h *Handler) Checksum(c *gin.Context) {
	var req ChecksumRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.service.Checksum(&req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	middleware.RespondOK(c, result)
}
