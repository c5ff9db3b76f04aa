// Package payments wraps the Paystack REST API for premium subscriptions.
// Only the boundary calls the app needs are implemented: initialize, verify
// and webhook signature checks. Subscription state itself lives in the
// database, not here.
package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultBaseURL = "https://api.paystack.co"

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// KoboAmount converts a naira amount to kobo (Paystack's integer unit).
// Decimal arithmetic avoids float drift on values like 1999.99.
func KoboAmount(naira float64) int64 {
	return decimal.NewFromFloat(naira).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

type initializeRequest struct {
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
	Currency  string `json:"currency"`
}

// Authorization is the checkout handle returned by transaction initialize.
type Authorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type initializeResponse struct {
	Status  bool          `json:"status"`
	Message string        `json:"message"`
	Data    Authorization `json:"data"`
}

// VerifiedTransaction is the subset of the verify payload the app acts on.
type VerifiedTransaction struct {
	Status     string `json:"status"`
	Reference  string `json:"reference"`
	AmountKobo int64  `json:"amount"`
	PaidAt     string `json:"paid_at"`
	Channel    string `json:"channel"`
}

type verifyResponse struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Data    VerifiedTransaction `json:"data"`
}

// InitializeTransaction starts a Paystack checkout for amountNaira and
// returns the hosted authorization URL the user is redirected to.
func (c *Client) InitializeTransaction(ctx context.Context, email string, amountNaira float64, reference string) (*Authorization, error) {
	reqBody := initializeRequest{
		Email:     email,
		Amount:    KoboAmount(amountNaira),
		Reference: reference,
		Currency:  "NGN",
	}

	var resp initializeResponse
	if err := c.post(ctx, "/transaction/initialize", reqBody, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, fmt.Errorf("paystack initialize failed: %s", resp.Message)
	}
	return &resp.Data, nil
}

// VerifyTransaction fetches the settled state of a checkout by reference.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifiedTransaction, error) {
	var resp verifyResponse
	if err := c.get(ctx, "/transaction/verify/"+reference, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, fmt.Errorf("paystack verify failed: %s", resp.Message)
	}
	return &resp.Data, nil
}

// VerifyWebhookSignature checks the x-paystack-signature header: an
// HMAC-SHA512 hex digest of the raw body keyed with the secret key.
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(c.secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// WebhookEvent is the envelope Paystack posts to the webhook endpoint.
type WebhookEvent struct {
	Event string              `json:"event"`
	Data  VerifiedTransaction `json:"data"`
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("paystack error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode paystack response: %w", err)
	}
	return nil
}
