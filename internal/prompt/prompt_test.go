package prompt_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"taxwise/internal/domain"
	"taxwise/internal/prompt"
)

func TestSystemPrompt_CarriesValueContract(t *testing.T) {
	p := prompt.SystemPrompt()

	assert.Contains(t, p, prompt.SentinelHeader)
	assert.Contains(t, p, "ANNUAL_INCOME")
	assert.Contains(t, p, "CURRENT_CIBIL_SCORE")
	assert.Contains(t, p, "CREDIT_UTILIZATION")
}

func TestBuildAnalysisPrompt_TextContent(t *testing.T) {
	rec := &domain.NormalizedRecord{
		ContentType: domain.KindPDF,
		TextContent: "Form 16 for FY 2023-24, gross salary 12,00,000",
		Method:      domain.MethodPDFText,
	}

	p := prompt.BuildAnalysisPrompt(rec, "form16.pdf", domain.KindPDF)

	assert.Contains(t, p, "form16.pdf")
	assert.Contains(t, p, "PDF")
	assert.Contains(t, p, "gross salary 12,00,000")
	assert.Contains(t, p, prompt.SentinelHeader)
}

func TestBuildAnalysisPrompt_TruncatesLongContent(t *testing.T) {
	rec := &domain.NormalizedRecord{
		ContentType: domain.KindText,
		TextContent: strings.Repeat("a", 10000),
		Method:      domain.MethodTextDecode,
	}

	p := prompt.BuildAnalysisPrompt(rec, "big.txt", domain.KindText)

	assert.Contains(t, p, strings.Repeat("a", 4000)+"...")
	assert.NotContains(t, p, strings.Repeat("a", 4001))
}

func TestBuildAnalysisPrompt_TruncationKeepsRunesIntact(t *testing.T) {
	// 2000 rupee signs are 6000 bytes; the 4000-byte cut lands mid-rune.
	rec := &domain.NormalizedRecord{
		ContentType: domain.KindText,
		TextContent: strings.Repeat("₹", 2000),
		Method:      domain.MethodTextDecode,
	}

	p := prompt.BuildAnalysisPrompt(rec, "rupees.txt", domain.KindText)

	assert.True(t, utf8.ValidString(p))
	assert.NotContains(t, p, "�")
}

func TestBuildAnalysisPrompt_TabularSummary(t *testing.T) {
	rec := &domain.NormalizedRecord{
		ContentType: domain.KindCSV,
		Columns:     []string{"date", "amount"},
		Rows: []domain.TabularRow{
			{"date": "2024-01-01", "amount": "85000"},
		},
		Preview: []domain.TabularRow{
			{"date": "2024-01-01", "amount": "85000"},
		},
		Method: domain.MethodCSVDecode,
	}

	p := prompt.BuildAnalysisPrompt(rec, "stmt.csv", domain.KindCSV)

	assert.Contains(t, p, "Tabular document with 1 transactions")
	assert.Contains(t, p, "date, amount")
	assert.Contains(t, p, "date=2024-01-01, amount=85000")
}

func TestBuildAnalysisPrompt_EmptyRecord(t *testing.T) {
	rec := &domain.NormalizedRecord{
		ContentType: domain.KindPNG,
		Method:      domain.MethodOCRSkipped,
	}

	p := prompt.BuildAnalysisPrompt(rec, "scan.png", domain.KindPNG)

	assert.Contains(t, p, "[no content extracted]")
}

func TestBuildOCRPrompt_RequestsVerbatimExtraction(t *testing.T) {
	p := prompt.BuildOCRPrompt()

	assert.Contains(t, p, "Extract ALL TEXT")
	assert.Contains(t, p, "Do not interpret or calculate")
}
