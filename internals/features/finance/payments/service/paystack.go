package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

/* =========================================================
   Paystack client
========================================================= */

// VerifyResult is the part of the gateway verify response the
// reconciliation core cares about.
type VerifyResult struct {
	Success        bool
	GatewayStatus  string
	AmountSubunits int64
	Raw            map[string]interface{}
}

// InitializeResult carries the redirect target for a new transaction.
type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// PaystackClient talks to the Paystack REST API with a bearer secret key.
type PaystackClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewPaystackClient(baseURL, secretKey string) *PaystackClient {
	return &PaystackClient{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type initializeRequest struct {
	Email       string                 `json:"email"`
	Amount      int64                  `json:"amount"` // smallest currency subunit
	CallbackURL string                 `json:"callback_url,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status string `json:"status"`
		Amount int64  `json:"amount"`
	} `json:"data"`
}

// InitializeTransaction starts a checkout session and returns the
// authorization URL the payer is redirected to.
func (c *PaystackClient) InitializeTransaction(ctx context.Context, email string, amountSubunits int64, callbackURL string, metadata map[string]interface{}) (*InitializeResult, error) {
	body, err := json.Marshal(initializeRequest{
		Email:       email,
		Amount:      amountSubunits,
		CallbackURL: callbackURL,
		Metadata:    metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected gateway status %d: %s", resp.StatusCode, string(b))
	}

	var out initializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if !out.Status {
		return nil, fmt.Errorf("gateway rejected initialize: %s", out.Message)
	}

	return &InitializeResult{
		AuthorizationURL: out.Data.AuthorizationURL,
		AccessCode:       out.Data.AccessCode,
		Reference:        out.Data.Reference,
	}, nil
}

// VerifyTransaction asks the gateway for the final state of a reference.
// A transport failure is a transport failure, not a failed payment: the
// caller maps it to ErrGatewayUnavailable and records nothing.
func (c *PaystackClient) VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	endpoint := c.baseURL + "/transaction/verify/" + url.PathEscape(reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return nil, fmt.Errorf("unexpected gateway status %d: %s", resp.StatusCode, string(raw))
	}

	var out verifyResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	var rawMap map[string]interface{}
	_ = json.Unmarshal(raw, &rawMap)

	return &VerifyResult{
		Success:        out.Status && out.Data.Status == "success",
		GatewayStatus:  out.Data.Status,
		AmountSubunits: out.Data.Amount,
		Raw:            rawMap,
	}, nil
}
