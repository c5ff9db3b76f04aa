package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestKoboAmount(t *testing.T) {
	cases := []struct {
		naira    float64
		expected int64
	}{
		{1500, 150000},
		{1999.99, 199999},
		{0.01, 1},
		{0, 0},
		{250.5, 25050},
	}

	for _, tc := range cases {
		if got := KoboAmount(tc.naira); got != tc.expected {
			t.Fatalf("KoboAmount(%v) = %d, want %d", tc.naira, got, tc.expected)
		}
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	c := NewClient(DefaultBaseURL, "sk_test_secret")
	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1"}}`)

	mac := hmac.New(sha512.New, []byte("sk_test_secret"))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	if !c.VerifyWebhookSignature(body, valid) {
		t.Fatal("valid signature rejected")
	}
	if c.VerifyWebhookSignature(body, "deadbeef") {
		t.Fatal("invalid signature accepted")
	}
	if c.VerifyWebhookSignature([]byte("tampered"), valid) {
		t.Fatal("signature accepted for tampered body")
	}
}

func TestInitializeTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/initialize" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_secret" {
			t.Fatalf("authorization = %q", got)
		}

		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["amount"].(float64) != 150000 {
			t.Fatalf("amount = %v, want 150000 kobo", req["amount"])
		}
		if req["currency"] != "NGN" {
			t.Fatalf("currency = %v, want NGN", req["currency"])
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]string{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code":       "abc123",
				"reference":         req["reference"].(string),
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "sk_test_secret")
	auth, err := c.InitializeTransaction(context.Background(), "ada@example.com", 1500, "ref-42")
	if err != nil {
		t.Fatalf("InitializeTransaction error: %v", err)
	}
	if auth.AuthorizationURL != "https://checkout.paystack.com/abc123" {
		t.Fatalf("authorization url = %q", auth.AuthorizationURL)
	}
	if auth.Reference != "ref-42" {
		t.Fatalf("reference = %q, want ref-42", auth.Reference)
	}
}

func TestVerifyTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/ref-42" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]interface{}{
				"status":    "success",
				"reference": "ref-42",
				"amount":    150000,
				"channel":   "card",
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "sk_test_secret")
	verified, err := c.VerifyTransaction(context.Background(), "ref-42")
	if err != nil {
		t.Fatalf("VerifyTransaction error: %v", err)
	}
	if verified.Status != "success" {
		t.Fatalf("status = %q, want success", verified.Status)
	}
	if verified.AmountKobo != 150000 {
		t.Fatalf("amount = %d, want 150000", verified.AmountKobo)
	}
}

func TestVerifyTransactionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  false,
			"message": "Transaction reference not found",
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "sk_test_secret")
	if _, err := c.VerifyTransaction(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown reference")
	}
}
