package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxwise/internal/domain"
	"taxwise/internal/extract"
)

func monthlyStatement() *domain.NormalizedRecord {
	return &domain.NormalizedRecord{
		ContentType: domain.KindCSV,
		Columns:     []string{"date", "description", "amount", "category"},
		Rows: []domain.TabularRow{
			{"date": "2024-01-01", "description": "SALARY CREDIT ACME CORP", "amount": "85,000", "category": "Income"},
			{"date": "2024-01-05", "description": "PPF CONTRIBUTION", "amount": "-15000", "category": "Investment"},
			{"date": "2024-01-10", "description": "HEALTH INSURANCE PREMIUM", "amount": "-2000", "category": "Insurance"},
			{"date": "2024-01-15", "description": "HOME LOAN EMI", "amount": "-10000", "category": "Loan"},
			{"date": "2024-01-20", "description": "GROCERY STORE", "amount": "-4500", "category": "Shopping"},
		},
		Method: domain.MethodCSVDecode,
	}
}

func TestAnalyze_AnnualizesMonthlyTotals(t *testing.T) {
	analyzer := extract.NewAnalyzer(12)

	analysis := analyzer.Analyze(monthlyStatement())

	assert.Equal(t, domain.StatusFallbackSuccess, analysis.Status)
	assert.Equal(t, domain.ClassBankStatement, analysis.Class)
	assert.Equal(t, 60, analysis.Confidence)

	assert.Equal(t, 1020000.0, analysis.Values.AnnualIncome)
	assert.Equal(t, 180000.0, analysis.Values.Investments80C)
	assert.Equal(t, 24000.0, analysis.Values.HealthInsurance)
	assert.Equal(t, 120000.0, analysis.Values.HomeLoanInterest)
	assert.Equal(t, 0.0, analysis.Values.CurrentScore)
}

func TestAnalyze_NormalizesByObservedMonths(t *testing.T) {
	rec := &domain.NormalizedRecord{
		ContentType: domain.KindCSV,
		Columns:     []string{"date", "description", "amount", "category"},
		Rows: []domain.TabularRow{
			{"date": "2024-01-01", "description": "SALARY CREDIT", "amount": "85000", "category": "Income"},
			{"date": "2024-01-05", "description": "PPF CONTRIBUTION", "amount": "-15000", "category": "Investment"},
			{"date": "2024-02-01", "description": "SALARY CREDIT", "amount": "85000", "category": "Income"},
			{"date": "2024-02-05", "description": "PPF CONTRIBUTION", "amount": "-15000", "category": "Investment"},
		},
		Method: domain.MethodCSVDecode,
	}

	analysis := extract.NewAnalyzer(12).Analyze(rec)

	assert.Equal(t, 1020000.0, analysis.Values.AnnualIncome)
	assert.Equal(t, 180000.0, analysis.Values.Investments80C)
}

func TestAnalyze_UndatedRowsCountAsOneMonth(t *testing.T) {
	rec := &domain.NormalizedRecord{
		ContentType: domain.KindCSV,
		Columns:     []string{"description", "amount", "category"},
		Rows: []domain.TabularRow{
			{"description": "SALARY CREDIT", "amount": "85000", "category": "Income"},
		},
		Method: domain.MethodCSVDecode,
	}

	analysis := extract.NewAnalyzer(12).Analyze(rec)

	assert.Equal(t, 1020000.0, analysis.Values.AnnualIncome)
}

func TestAnalyze_ConfigurableMultiplier(t *testing.T) {
	analyzer := extract.NewAnalyzer(6)

	analysis := analyzer.Analyze(monthlyStatement())

	assert.Equal(t, 510000.0, analysis.Values.AnnualIncome)
	assert.Equal(t, 90000.0, analysis.Values.Investments80C)
}

func TestAnalyze_NonPositiveMultiplierDefaultsToTwelve(t *testing.T) {
	analyzer := extract.NewAnalyzer(0)

	analysis := analyzer.Analyze(monthlyStatement())

	assert.Equal(t, 1020000.0, analysis.Values.AnnualIncome)
}

func TestAnalyze_CaseInsensitiveColumns(t *testing.T) {
	rec := &domain.NormalizedRecord{
		ContentType: domain.KindCSV,
		Columns:     []string{"Date", "Description", "Amount", "Category"},
		Rows: []domain.TabularRow{
			{"Date": "2024-01-01", "Description": "Salary credit", "Amount": "₹50,000", "Category": "income"},
		},
		Method: domain.MethodCSVDecode,
	}

	analysis := extract.NewAnalyzer(12).Analyze(rec)

	assert.Equal(t, 600000.0, analysis.Values.AnnualIncome)
}

func TestAnalyze_NoRows(t *testing.T) {
	rec := &domain.NormalizedRecord{
		ContentType: domain.KindText,
		TextContent: "plain text without transactions",
		Method:      domain.MethodTextDecode,
	}

	analysis := extract.NewAnalyzer(12).Analyze(rec)

	assert.Equal(t, domain.StatusFallbackSuccess, analysis.Status)
	assert.Equal(t, domain.ClassUnknown, analysis.Class)
	assert.True(t, analysis.Values.IsZero())
}

func TestAnalyze_IgnoresUnparseableAmounts(t *testing.T) {
	rec := &domain.NormalizedRecord{
		ContentType: domain.KindCSV,
		Columns:     []string{"description", "amount", "category"},
		Rows: []domain.TabularRow{
			{"description": "SALARY", "amount": "n/a", "category": "income"},
			{"description": "SALARY", "amount": "40000", "category": "income"},
		},
		Method: domain.MethodCSVDecode,
	}

	analysis := extract.NewAnalyzer(12).Analyze(rec)

	assert.Equal(t, 480000.0, analysis.Values.AnnualIncome)
}
