// Package prompt builds the instruction strings sent to the completion
// provider. Builders are pure: identical inputs always produce identical
// prompt text.
package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"taxwise/internal/domain"
)

// maxContentChars bounds how much document content is embedded in a prompt.
const maxContentChars = 4000

// SentinelHeader opens the machine-parseable block the extractor depends on.
const SentinelHeader = "EXTRACTED_VALUES:"

// sentinelContract is the fixed-format block contract shared by the system
// and analysis prompts. Values must be numeric only; the response extractor
// parses exactly these keys.
const sentinelContract = `CRITICAL: At the end of your response, provide clear extracted values in this format:
EXTRACTED_VALUES:
ANNUAL_INCOME: [number only, no currency symbols or separators]
INVESTMENTS_80C: [number only]
HEALTH_INSURANCE: [number only]
HOME_LOAN_INTEREST: [number only]
HRA_CLAIMED: [number only]
CURRENT_CIBIL_SCORE: [number only, 0 if not available]
CREDIT_CARDS: [number only]
CREDIT_UTILIZATION: [number only, percentage]`

// SystemPrompt returns the system instruction for financial document analysis.
func SystemPrompt() string {
	return `You are a financial document analysis specialist for Indian financial systems.

DOCUMENT TYPES YOU PROCESS:
1. Bank Statements: transaction history, balances, salary credits, EMI payments, investments
2. Tax Documents (Form 16, ITR, investment certificates): income details, TDS, 80C/80D/24B deductions
3. Credit Reports (CIBIL/Experian/Equifax): credit score, payment history, card details, utilization
4. Investment Statements (Mutual Fund, PPF, ELSS): amounts, categories, tax-saving instruments
5. Salary Slips: monthly/annual income, PF contributions, HRA and allowance details

INDIAN FINANCIAL CONTEXT:
- Understand Indian tax sections (80C, 80D, 24B, HRA)
- Recognize Indian bank formats and transaction codes
- Identify common investment instruments (PPF, ELSS, NSC, LIC)
- Process Indian credit bureau formats (CIBIL, Experian)

Be precise with number extraction and provide confidence scores for extracted values.

` + sentinelContract
}

// BuildAnalysisPrompt turns a normalized record plus document metadata into
// the analysis instruction sent to the model. Embedded content is truncated
// at a fixed maximum length to bound request size.
func BuildAnalysisPrompt(rec *domain.NormalizedRecord, filename string, kind domain.DocumentKind) string {
	summary := contentSummary(rec)

	return fmt.Sprintf(`FINANCIAL DOCUMENT ANALYSIS REQUEST:

Document Info:
- Filename: %s
- Type: %s
- Content: %s

ANALYSIS REQUIRED:

1. DOCUMENT CLASSIFICATION: identify the document type (Bank Statement, Tax Document, Credit Report, Investment Statement, Salary Slip, or Other Financial Document).

2. DATA EXTRACTION FOR TAX ANALYSIS: annual income from all sources; Section 80C investments (PPF, ELSS, NSC, LIC, tax-saving FDs); health insurance premiums (80D); home loan interest (24B); HRA claimed; other deductions (80CCD, 80E).

3. DATA EXTRACTION FOR CREDIT ANALYSIS: current CIBIL score if mentioned; payment history; number of credit cards; total credit limit; credit utilization percentage; active loans; missed payments; age of oldest account in months; recent inquiries.

IMPORTANT INSTRUCTIONS:
- Extract EXACT amounts from the document
- Convert monthly figures to annual where needed
- If information is missing, mark it as 0 or "unknown"

%s`, filename, strings.ToUpper(string(kind)), summary, sentinelContract)
}

// BuildOCRPrompt returns the instruction used when delegating raster image
// text extraction to the model. It requests verbatim extraction only.
func BuildOCRPrompt() string {
	return `Extract ALL TEXT from this financial document image (bank statement, credit report, tax document, or investment statement).

INSTRUCTIONS:
1. Extract ALL visible numbers and text exactly as shown
2. Include account numbers, amounts, dates, names
3. Do not interpret or calculate, just extract raw text
4. Maintain structure where possible and note any tables or sections clearly

Return the extracted text preserving the original layout.`
}

// contentSummary picks the most informative representation of the record and
// truncates it.
func contentSummary(rec *domain.NormalizedRecord) string {
	if rec.TextContent != "" {
		return truncate(rec.TextContent, maxContentChars)
	}
	if rec.HasTabularContent() {
		var b strings.Builder
		fmt.Fprintf(&b, "Tabular document with %d transactions, columns: %s",
			len(rec.Rows), strings.Join(rec.Columns, ", "))
		if len(rec.Preview) > 0 {
			b.WriteString("\nSample transactions:")
			for _, row := range rec.Preview {
				b.WriteString("\n  ")
				b.WriteString(renderRow(row, rec.Columns))
			}
		}
		return truncate(b.String(), maxContentChars)
	}
	return "[no content extracted]"
}

// renderRow renders one tabular row as "col=value" pairs in column order.
func renderRow(row domain.TabularRow, columns []string) string {
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, col+"="+row[col])
	}
	return strings.Join(parts, ", ")
}

// truncate cuts s at maxLen bytes, backing up to a rune boundary so a
// multi-byte character (₹ in statement text) is never split.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
