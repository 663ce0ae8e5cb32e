// Package format projects a structured analysis into the shapes the
// downstream tax and credit flows consume. It is a pure projection with no
// I/O and no failure mode.
package format

import (
	"unicode/utf8"

	"taxwise/internal/domain"
)

const (
	defaultAge            = 30
	defaultPaymentHistory = "unknown"
	maxInsightChars       = 500
)

// Format projects the analysis into tax data, a credit profile, and a
// readiness summary. Fields the extraction cannot source keep documented
// defaults.
func Format(analysis domain.StructuredAnalysis) domain.FormattedOutput {
	v := analysis.Values

	tax := domain.TaxData{
		AnnualIncome:     v.AnnualIncome,
		Investments80C:   v.Investments80C,
		HealthInsurance:  v.HealthInsurance,
		HomeLoanInterest: v.HomeLoanInterest,
		HRAClaimed:       v.HRAClaimed,
		OtherDeductions:  map[string]float64{},
	}

	credit := domain.CreditProfile{
		CurrentScore:       int(v.CurrentScore),
		PaymentHistory:     defaultPaymentHistory,
		CreditCards:        int(v.CreditCards),
		CurrentUtilization: v.CreditUtilization,
		Age:                defaultAge,
		Income:             v.AnnualIncome,
	}

	summary := domain.Summary{
		Class:                  analysis.Class,
		Confidence:             analysis.Confidence,
		ProcessingNotes:        analysis.ParsingIssue,
		ReadyForTaxAnalysis:    v.AnnualIncome > 0,
		ReadyForCreditAnalysis: v.CreditCards > 0 || v.CurrentScore > 0,
	}

	return domain.FormattedOutput{
		Tax:      tax,
		Credit:   credit,
		Summary:  summary,
		Insights: truncateInsights(analysis.Narrative),
	}
}

// truncateInsights cuts the narrative at the insight budget, backing up to
// a rune boundary so a multi-byte character is never split.
func truncateInsights(narrative string) string {
	if len(narrative) <= maxInsightChars {
		return narrative
	}
	cut := maxInsightChars
	for cut > 0 && !utf8.RuneStart(narrative[cut]) {
		cut--
	}
	return narrative[:cut] + "..."
}
