package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ahwlsqja/go-sigverify/pkg/eip712"
	"github.com/ahwlsqja/go-sigverify/pkg/ethsig"
)

// Known-answer vectors for the readiness self test.
const (
	selfTestMessage   = "Hello from fresh test"
	selfTestSigner    = "0x663918f51479a1dd832929199296843d09d0f71a"
	selfTestSignature = "0xda689ba088beb48ceafea291888c4ad87f6cb3d9b2e45a4e8bf742b56ff8fa2f3f5fa686956810fe30171761489282af3a6e8047fd74591f81f822477be21e771b"
	selfTestMailHash  = "0xbe609aee343fb3c4b28e1df9e632fca64fcfaede20f02e86244efddf30957bd2"
)

// SelfTest checks the hashing and recovery primitives against known answers.
type SelfTest func() map[string]string

// HealthHandler handles health check endpoints
type HealthHandler struct {
	selfTest SelfTest
	logger   *zap.Logger
}

// NewHealthHandler creates a new HealthHandler. A nil selfTest runs
// DefaultSelfTest.
func NewHealthHandler(selfTest SelfTest, logger *zap.Logger) *HealthHandler {
	if selfTest == nil {
		selfTest = DefaultSelfTest
	}
	return &HealthHandler{
		selfTest: selfTest,
		logger:   logger,
	}
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ReadyResponse represents readiness check response
type ReadyResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks"`
}

// Health godoc
// @Summary Health check
// @Description Returns server health status
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready godoc
// @Summary Readiness check
// @Description Runs known-answer tests for personal message recovery and EIP-712 hashing
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := h.selfTest()

	response := ReadyResponse{Status: "ok", Checks: checks}
	statusCode := http.StatusOK
	for name, result := range checks {
		if result != "ok" {
			h.logger.Error("self test failed", zap.String("check", name), zap.String("result", result))
			response.Status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}
	}

	c.JSON(statusCode, response)
}

// DefaultSelfTest recovers a fixed personal_sign signature and recomputes the
// EIP-712 Mail example digest.
func DefaultSelfTest() map[string]string {
	checks := map[string]string{
		"personal_sign": "ok",
		"eip712":        "ok",
	}

	signer, err := ethsig.RecoverMessageSigner(selfTestMessage, selfTestSignature)
	if err != nil {
		checks["personal_sign"] = err.Error()
	} else if !strings.EqualFold(signer.Address, selfTestSigner) {
		checks["personal_sign"] = "unexpected signer " + signer.Address
	}

	digest, err := eip712.HashTypedData(
		eip712.NewDomain("Ether Mail", "1", 1, "0xCcCCccccCCCCcCCCCCCcCcCccCcCCCcCcccccccC"),
		eip712.Types{
			"Person": {{Name: "name", Type: "string"}, {Name: "wallet", Type: "address"}},
			"Mail":   {{Name: "from", Type: "Person"}, {Name: "to", Type: "Person"}, {Name: "contents", Type: "string"}},
		},
		"Mail",
		map[string]any{
			"from":     map[string]any{"name": "Cow", "wallet": "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"},
			"to":       map[string]any{"name": "Bob", "wallet": "0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB"},
			"contents": "Hello, Bob!",
		},
	)
	if err != nil {
		checks["eip712"] = err.Error()
	} else if digest.Hex() != selfTestMailHash {
		checks["eip712"] = "unexpected digest " + digest.Hex()
	}

	return checks
}
