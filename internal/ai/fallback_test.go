package ai

import (
	"testing"
	"time"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

var fallbackNow = time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input    string
		expected float64
	}{
		{"i spent ₦500 on suya", 500},
		{"paid 1,234.50 naira for fuel", 1234.50},
		{"ngn 96.00 for data", 96.00},
		{"spent 2k on lunch", 2000},
		{"bought rice 750", 750},
	}

	for _, tc := range cases {
		if got := parseAmount(tc.input); got != tc.expected {
			t.Fatalf("parseAmount(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"on 2026-08-15 i paid rent", "2026-08-15"},
		{"paid on 15/08/2026", "2026-08-15"},
		{"spent money yesterday", "2026-08-30"},
		{"bought data today", "2026-08-31"},
		{"no date here", ""},
	}

	for _, tc := range cases {
		if got := parseDate(tc.input, fallbackNow); got != tc.expected {
			t.Fatalf("parseDate(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestFallbackParseExpense(t *testing.T) {
	result := FallbackParse("I spent ₦500 on suya today", fallbackNow)

	if result.Intent != "log_transaction" {
		t.Fatalf("intent = %q, want log_transaction", result.Intent)
	}
	if result.Transaction == nil {
		t.Fatal("transaction is nil")
	}
	if result.Transaction.Amount != 500 {
		t.Fatalf("amount = %v, want 500", result.Transaction.Amount)
	}
	if result.Transaction.Type != models.TypeExpense {
		t.Fatalf("type = %q, want expense", result.Transaction.Type)
	}
	if result.Transaction.Category != "Food & Drinks" {
		t.Fatalf("category = %q, want Food & Drinks", result.Transaction.Category)
	}
	if result.Transaction.TxnDate != "2026-08-31" {
		t.Fatalf("txn_date = %q, want 2026-08-31", result.Transaction.TxnDate)
	}
}

func TestFallbackParseIncome(t *testing.T) {
	result := FallbackParse("salary alert, got paid 150k", fallbackNow)

	if result.Intent != "log_transaction" {
		t.Fatalf("intent = %q, want log_transaction", result.Intent)
	}
	if result.Transaction.Type != models.TypeIncome {
		t.Fatalf("type = %q, want income", result.Transaction.Type)
	}
	if result.Transaction.Amount != 150000 {
		t.Fatalf("amount = %v, want 150000", result.Transaction.Amount)
	}
	if result.Transaction.Category != "Salary" {
		t.Fatalf("category = %q, want Salary", result.Transaction.Category)
	}
	// No date word in the message: defaults to today.
	if result.Transaction.TxnDate != "2026-08-31" {
		t.Fatalf("txn_date = %q, want 2026-08-31", result.Transaction.TxnDate)
	}
}

func TestFallbackParseUnknown(t *testing.T) {
	result := FallbackParse("how far", fallbackNow)
	if result.Intent != "unknown" {
		t.Fatalf("intent = %q, want unknown", result.Intent)
	}
	if result.Reply == "" {
		t.Fatal("reply is empty")
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{`{"intent":"advice"}`, `{"intent":"advice"}`},
		{"Here you go:\n```json\n{\"intent\":\"advice\"}\n```", `{"intent":"advice"}`},
		{"sure! {\"a\": {\"b\": 1}} thanks", `{"a": {"b": 1}}`},
		{"no json here", ""},
	}

	for _, tc := range cases {
		if got := extractJSON(tc.input); got != tc.expected {
			t.Fatalf("extractJSON(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
