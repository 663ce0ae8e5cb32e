package extract

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"taxwise/internal/domain"
)

const fallbackConfidence = 60

// Analyzer is the non-LLM heuristic path: it buckets tabular transactions by
// keyword and annualizes the per-month totals.
type Analyzer struct {
	annualizeMonths int
}

// NewAnalyzer builds an Analyzer. months is the yearly scale applied to
// per-month bucket totals; non-positive values fall back to 12.
func NewAnalyzer(months int) *Analyzer {
	if months <= 0 {
		months = 12
	}
	return &Analyzer{annualizeMonths: months}
}

var (
	investmentWords = []string{"ppf", "elss", "sip", "investment", "mutual fund"}
	insuranceWords  = []string{"insurance", "premium", "mediclaim"}
	loanWords       = []string{"emi", "loan", "interest"}
)

// dateLayouts are the transaction date formats recognized when counting
// statement months.
var dateLayouts = []string{"2006-01-02", "2006/01/02", "02/01/2006", "02-01-2006"}

// Analyze derives financial values from a normalized record without any
// model call. Rows are bucketed on description and category keywords;
// bucket totals are normalized by the number of statement months observed
// in the date column, then scaled to a yearly figure. Rows without a
// recognizable date count as a single month.
func (a *Analyzer) Analyze(rec *domain.NormalizedRecord) domain.StructuredAnalysis {
	var income, investments, insurance, loanInterest float64
	monthsSeen := map[string]struct{}{}

	for _, row := range rec.Rows {
		if key, ok := monthOf(columnValue(row, "date")); ok {
			monthsSeen[key] = struct{}{}
		}

		amount, ok := parseSignedAmount(columnValue(row, "amount"))
		if !ok {
			continue
		}
		description := strings.ToLower(columnValue(row, "description"))
		category := strings.ToLower(columnValue(row, "category"))

		switch {
		case amount > 0 && (strings.Contains(description, "salary") || strings.Contains(category, "income")):
			income += amount
		case amount < 0 && containsAny(description, category, investmentWords):
			investments += -amount
		case amount < 0 && containsAny(description, category, insuranceWords):
			insurance += -amount
		case amount < 0 && containsAny(description, category, loanWords):
			loanInterest += -amount
		}
	}

	observed := float64(len(monthsSeen))
	if observed == 0 {
		observed = 1
	}
	factor := float64(a.annualizeMonths) / observed
	values := domain.ExtractedValues{
		AnnualIncome:     income * factor,
		Investments80C:   investments * factor,
		HealthInsurance:  insurance * factor,
		HomeLoanInterest: loanInterest * factor,
	}

	class := domain.ClassUnknown
	if rec.HasTabularContent() {
		class = domain.ClassBankStatement
	}

	log.Printf("extract.Analyze: heuristic pass over %d rows, %.0f statement months, x%d annualization",
		len(rec.Rows), observed, a.annualizeMonths)

	return domain.StructuredAnalysis{
		Status:     domain.StatusFallbackSuccess,
		Class:      class,
		Confidence: fallbackConfidence,
		Narrative: fmt.Sprintf(
			"Heuristic analysis of %s content: bucketed %d transactions over %.0f statement months and scaled the totals to %d months.",
			rec.ContentType, len(rec.Rows), observed, a.annualizeMonths),
		Values: values,
	}
}

// monthOf extracts a year-month key from a transaction date cell.
func monthOf(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.Format("2006-01"), true
		}
	}
	return "", false
}

// columnValue looks a column up case-insensitively; tabular sources disagree
// on header casing.
func columnValue(row domain.TabularRow, name string) string {
	if v, ok := row[name]; ok {
		return v
	}
	for k, v := range row {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// parseSignedAmount parses a transaction amount that may carry a sign,
// currency marker, and grouping separators.
func parseSignedAmount(s string) (float64, bool) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func containsAny(description, category string, words []string) bool {
	for _, w := range words {
		if strings.Contains(description, w) || strings.Contains(category, w) {
			return true
		}
	}
	return false
}
