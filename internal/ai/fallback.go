package ai

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

var (
	currencyPrefixRegex = regexp.MustCompile(`(?i)(?:₦|ngn)\s*(\d[\d,]*(?:\.\d+)?)`)
	currencySuffixRegex = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*(?:naira|ngn)`)
	thousandsRegex      = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)k\b`)
	bareAmountRegex     = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
	dateISORegex        = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	dateSlashRegex      = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)
)

// FallbackParse interprets a chat message with regexes when the model call
// fails. It only attempts the log_transaction intent; anything without a
// recognizable amount comes back as unknown.
func FallbackParse(message string, now time.Time) *CoachResult {
	lower := strings.ToLower(message)

	amount := parseAmount(lower)
	if amount == 0 {
		return &CoachResult{
			Intent: "unknown",
			Reply:  "I didn't catch that. Try something like 'I spent ₦500 on suya today'.",
		}
	}

	txnType := parseType(lower)
	tx := &SuggestedTransaction{
		TxnDate:     parseDate(lower, now),
		Amount:      amount,
		Type:        txnType,
		Category:    parseCategory(lower, txnType),
		Description: strings.TrimSpace(message),
	}
	if tx.TxnDate == "" {
		tx.TxnDate = now.Format("2006-01-02")
	}

	return &CoachResult{
		Intent:      "log_transaction",
		Reply:       replyForSuggestion(tx),
		Transaction: tx,
		Confidence:  0.2,
	}
}

func parseAmount(text string) float64 {
	if matches := currencyPrefixRegex.FindStringSubmatch(text); len(matches) > 1 {
		return parseNumber(matches[1])
	}
	if matches := currencySuffixRegex.FindStringSubmatch(text); len(matches) > 1 {
		return parseNumber(matches[1])
	}
	if matches := thousandsRegex.FindStringSubmatch(text); len(matches) > 1 {
		return parseNumber(matches[1]) * 1000
	}
	if matches := bareAmountRegex.FindAllString(text, -1); len(matches) > 0 {
		return parseNumber(matches[len(matches)-1])
	}
	return 0
}

func parseNumber(value string) float64 {
	value = strings.ReplaceAll(value, ",", "")
	num, _ := strconv.ParseFloat(value, 64)
	return num
}

func parseDate(text string, now time.Time) string {
	if matches := dateISORegex.FindStringSubmatch(text); len(matches) == 4 {
		return matches[1] + "-" + matches[2] + "-" + matches[3]
	}

	if matches := dateSlashRegex.FindStringSubmatch(text); len(matches) == 4 {
		day, _ := strconv.Atoi(matches[1])
		month, _ := strconv.Atoi(matches[2])
		year, _ := strconv.Atoi(matches[3])
		if day == 0 || month == 0 || month > 12 {
			return ""
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}

	if strings.Contains(text, "yesterday") {
		return now.AddDate(0, 0, -1).Format("2006-01-02")
	}
	if strings.Contains(text, "today") || strings.Contains(text, "just now") {
		return now.Format("2006-01-02")
	}

	return ""
}

func parseType(text string) string {
	incomeWords := []string{"salary", "got paid", "received", "credited", "earned", "income", "sold", "alert"}
	for _, w := range incomeWords {
		if strings.Contains(text, w) {
			return models.TypeIncome
		}
	}
	return models.TypeExpense
}

func parseCategory(text, txnType string) string {
	if txnType == models.TypeIncome {
		switch {
		case strings.Contains(text, "salary"):
			return "Salary"
		case strings.Contains(text, "sold") || strings.Contains(text, "business"):
			return "Business"
		case strings.Contains(text, "freelance") || strings.Contains(text, "gig"):
			return "Freelance"
		case strings.Contains(text, "gift") || strings.Contains(text, "dash"):
			return "Gift"
		default:
			return "Other"
		}
	}

	switch {
	case containsAny(text, "food", "ate", "eat", "lunch", "dinner", "breakfast", "suya", "jollof", "restaurant", "chop"):
		return "Food & Drinks"
	case containsAny(text, "transport", "bus", "uber", "bolt", "okada", "keke", "danfo", "fuel", "petrol"):
		return "Transport"
	case containsAny(text, "data", "airtime", "recharge", "mtn", "glo", "airtel", "9mobile"):
		return "Data & Airtime"
	case containsAny(text, "rent", "landlord", "accommodation"):
		return "Rent & Housing"
	case containsAny(text, "nepa", "electricity", "bill", "dstv", "gotv", "water", "internet"):
		return "Bills & Utilities"
	case containsAny(text, "market", "shopping", "shoprite", "bought"):
		return "Shopping"
	case containsAny(text, "hospital", "pharmacy", "drug", "medicine"):
		return "Health"
	case containsAny(text, "school", "tuition", "textbook", "course"):
		return "Education"
	case containsAny(text, "movie", "cinema", "club", "betting", "bet9ja"):
		return "Entertainment"
	default:
		return "Other"
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
