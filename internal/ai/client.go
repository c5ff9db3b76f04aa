// Package ai talks to Gemini for the money coach chat and for receipt image
// analysis, with a regex fallback parser for when the model is unreachable or
// returns something unusable.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

type Client struct {
	genai *genai.Client
	model string
}

// CoachResult is the structured outcome of one coach exchange.
type CoachResult struct {
	Intent      string                `json:"intent"` // log_transaction | suggest_goal | advice | unknown
	Reply       string                `json:"reply"`
	Transaction *SuggestedTransaction `json:"transaction,omitempty"`
	Goal        *SuggestedGoal        `json:"goal,omitempty"`
	Confidence  float64               `json:"confidence,omitempty"`
}

// SuggestedTransaction is a transaction proposed by the coach or extracted
// from a receipt. It becomes a normal record only after acceptance.
type SuggestedTransaction struct {
	TxnDate     string  `json:"txn_date"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// SuggestedGoal is a savings goal proposed by the coach.
type SuggestedGoal struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	Deadline     string  `json:"deadline,omitempty"`
}

// ReceiptAnalysis is the structured result of analyzing a receipt or product
// image.
type ReceiptAnalysis struct {
	Amount      float64 `json:"amount"`
	TxnDate     string  `json:"txn_date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Merchant    string  `json:"merchant"`
	Confidence  float64 `json:"confidence"`
}

// Context carries the financial picture the coach grounds its replies in.
// All values are computed by the caller; this package never reads the store.
type Context struct {
	Balance       float64
	DailyBurnRate float64
	DaysRemaining *int
	Status        string
	Recent        []models.TransactionView
	Goals         []models.SavingsGoalView
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{genai: cl, model: model}, nil
}

// Coach sends one user message plus financial context to the model and
// returns its structured reply. Callers should fall back to FallbackParse
// when this errors.
func (c *Client) Coach(ctx context.Context, message string, fc Context) (*CoachResult, error) {
	today := time.Now().Format("2006-01-02")
	prompt := fmt.Sprintf(CoachPromptTemplate, buildContextBlock(fc), today, message)

	raw, err := c.generate(ctx, []*genai.Part{{Text: prompt}})
	if err != nil {
		return nil, err
	}

	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON found in coach response")
	}

	var result CoachResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("failed to parse coach JSON: %w", err)
	}
	return &result, nil
}

// AnalyzeReceipt sends a receipt or product photo to the model and extracts a
// suggested expense.
func (c *Client) AnalyzeReceipt(ctx context.Context, image []byte, mimeType string) (*ReceiptAnalysis, error) {
	today := time.Now().Format("2006-01-02")
	prompt := fmt.Sprintf(ReceiptPromptTemplate, today)

	raw, err := c.generate(ctx, []*genai.Part{
		{Text: prompt},
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
	})
	if err != nil {
		return nil, err
	}

	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON found in receipt response")
	}

	var analysis ReceiptAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse receipt JSON: %w", err)
	}
	return &analysis, nil
}

func (c *Client) generate(ctx context.Context, parts []*genai.Part) (string, error) {
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// extractJSON pulls the outermost JSON object out of a model response,
// tolerating markdown fences and surrounding prose.
func extractJSON(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
