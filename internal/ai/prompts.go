package ai

import (
	"fmt"
	"strings"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

// CoachPromptTemplate drives the money coach chat. The model sees the user's
// financial context and must answer with raw JSON only.
const CoachPromptTemplate = `You are CashDey, a friendly Nigerian personal-finance coach.
Users write informal Nigerian English (sometimes Pidgin) about money: logging
expenses and income, asking for advice, or setting savings goals. Amounts are
in Nigerian Naira (NGN).

You MUST respond with ONLY raw JSON. No explanation. No markdown.

Supported intents:
- "log_transaction": user reports spending or receiving money.
- "suggest_goal": user wants to start saving toward something.
- "advice": user asks a question about their finances; answer from the context below.
- "unknown": cannot confidently interpret the message.

When intent = "log_transaction", use this JSON format:

{
  "intent": "log_transaction",
  "reply": "short friendly confirmation in plain English",
  "transaction": {
    "txn_date": "YYYY-MM-DD",
    "amount": number,
    "type": "expense" | "income",
    "category": one of the categories listed below,
    "description": "string"
  },
  "confidence": 0.0 to 1.0
}

Expense categories: "Food & Drinks", "Transport", "Data & Airtime", "Rent & Housing",
"Bills & Utilities", "Shopping", "Health", "Education", "Entertainment",
"Family & Friends", "Other".
Income categories: "Salary", "Business", "Freelance", "Gift", "Investment", "Other".

When intent = "suggest_goal", use this JSON format:

{
  "intent": "suggest_goal",
  "reply": "short friendly pitch for the goal",
  "goal": {
    "name": "string",
    "target_amount": number,
    "deadline": "YYYY-MM-DD or null"
  },
  "confidence": 0.0 to 1.0
}

When intent = "advice", respond with:

{
  "intent": "advice",
  "reply": "2-4 sentences of concrete advice grounded in the financial context"
}

If you really cannot understand, respond with:

{
  "intent": "unknown",
  "reply": "one short sentence asking the user to rephrase"
}

NEVER invent amounts the user did not state. When a required field is missing,
use null.

Financial context for this user:
%s

Today's date is: %s

User message:
%s`

// ReceiptPromptTemplate extracts a single expense from a receipt or product
// photo.
const ReceiptPromptTemplate = `You are a strict JSON parser for Nigerian shop receipts, POS slips,
bank transfer screenshots and product photos. Amounts are in Nigerian Naira.

You MUST respond with ONLY raw JSON. No explanation. No markdown.

Use this JSON format:

{
  "amount": number or null,
  "txn_date": "YYYY-MM-DD or null",
  "category": "Food & Drinks" | "Transport" | "Data & Airtime" | "Rent & Housing" | "Bills & Utilities" | "Shopping" | "Health" | "Education" | "Entertainment" | "Family & Friends" | "Other",
  "description": "short description of the purchase",
  "merchant": "merchant or sender name, or null",
  "confidence": 0.0 to 1.0
}

Rules:
- For a receipt with several line items, use the grand total.
- For a product photo without a visible price, set amount to null.
- Only fill fields when the information is clearly present or strongly implied.
- Set confidence based on how certain you are.

Today's date is: %s`

// buildContextBlock renders the financial context the coach grounds its
// replies in.
func buildContextBlock(fc Context) string {
	var b strings.Builder

	fmt.Fprintf(&b, "- Current balance: NGN %.2f\n", fc.Balance)
	fmt.Fprintf(&b, "- Average daily spend (30-day window): NGN %.2f\n", fc.DailyBurnRate)
	if fc.DaysRemaining != nil {
		fmt.Fprintf(&b, "- Days until balance runs out at this rate: %d\n", *fc.DaysRemaining)
	} else {
		b.WriteString("- Days until balance runs out: not applicable (no spending recorded)\n")
	}
	fmt.Fprintf(&b, "- Survival status: %s\n", fc.Status)

	if len(fc.Recent) > 0 {
		b.WriteString("- Recent transactions:\n")
		for _, tx := range fc.Recent {
			fmt.Fprintf(&b, "  - %s %s NGN %.2f (%s) %s\n", tx.TxnDate, tx.Type, tx.Amount, tx.Category, tx.Description)
		}
	}

	if len(fc.Goals) > 0 {
		b.WriteString("- Savings goals:\n")
		for _, g := range fc.Goals {
			line := fmt.Sprintf("  - %s: NGN %.2f of NGN %.2f", g.Name, g.CurrentAmount, g.TargetAmount)
			if g.Deadline != "" {
				line += " by " + g.Deadline
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// replyForSuggestion builds the confirmation text for a fallback-parsed
// transaction when the model is unavailable.
func replyForSuggestion(tx *SuggestedTransaction) string {
	verb := "Logged"
	if tx.Type == models.TypeIncome {
		verb = "Recorded"
	}
	reply := fmt.Sprintf("%s NGN %.2f", verb, tx.Amount)
	if tx.Category != "" {
		reply += " under " + tx.Category
	}
	return reply + "."
}
