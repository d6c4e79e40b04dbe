package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"checkout-be/internal/logger"

	"go.uber.org/zap"
)

const (
	capturePath       = "/v1/captures"
	idempotencyHeader = "Idempotency-Key"
)

type captureRequest struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
}

type captureResponse struct {
	Status string `json:"status"`
}

type gateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGateway builds the HTTP capture adapter for the payment provider.
func NewGateway(apiKey, baseURL string) Capturer {
	if apiKey == "" {
		logger.L().Warn("payment API key is empty")
	}

	return &gateway{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *gateway) Capture(ctx context.Context, orderID string, amount int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", orderID),
		zap.Int64("amount", amount),
	)

	body, err := json.Marshal(captureRequest{OrderID: orderID, Amount: amount})
	if err != nil {
		return fmt.Errorf("encode capture request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+capturePath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build capture request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	// The order id keys the capture, so a provider-side retry of the same
	// order cannot double-charge.
	req.Header.Set(idempotencyHeader, orderID)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("capture request failed", zap.Error(err))
		return fmt.Errorf("capture request for order %s: %w", orderID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error("capture rejected by provider",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response", raw),
		)
		return fmt.Errorf("capture for order %s rejected with status %d", orderID, resp.StatusCode)
	}

	var cr captureResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return fmt.Errorf("decode capture response for order %s: %w", orderID, err)
	}
	if cr.Status != "SUCCEEDED" {
		log.Error("capture not succeeded", zap.String("provider_status", cr.Status))
		return fmt.Errorf("capture for order %s returned status %s", orderID, cr.Status)
	}

	log.Info("capture succeeded")
	return nil
}
