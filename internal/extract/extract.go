// Package extract parses free-text completion replies back into typed
// financial fields. Extraction is an explicit ordered chain of strategies;
// the first strategy that yields a populated result wins, and nothing in
// this package ever returns an error.
package extract

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"taxwise/internal/domain"
)

// defaultConfidence applies when the reply carries no confidence phrase.
const defaultConfidence = 75

// sentinelBlockRe locates the machine-parseable values block: header through
// the first blank line or end of text.
var sentinelBlockRe = regexp.MustCompile(`(?is)EXTRACTED_VALUES?:?\s*(.*?)(?:\n\n|\z)`)

// sentinelFieldRes match one KEY: value line each within the sentinel block.
// Values may carry thousands separators (including Indian-style grouping)
// and an optional decimal part.
var sentinelFieldRes = map[string]*regexp.Regexp{
	"annual_income":      regexp.MustCompile(`(?i)ANNUAL_INCOME[:\s]*([0-9][0-9,]*\.?[0-9]*)`),
	"investments_80c":    regexp.MustCompile(`(?i)INVESTMENTS?_80C[:\s]*([0-9][0-9,]*\.?[0-9]*)`),
	"health_insurance":   regexp.MustCompile(`(?i)HEALTH_INSURANCE[:\s]*([0-9][0-9,]*\.?[0-9]*)`),
	"home_loan_interest": regexp.MustCompile(`(?i)HOME_LOAN_INTEREST[:\s]*([0-9][0-9,]*\.?[0-9]*)`),
	"hra_claimed":        regexp.MustCompile(`(?i)HRA_CLAIMED[:\s]*([0-9][0-9,]*\.?[0-9]*)`),
	"current_score":      regexp.MustCompile(`(?i)CURRENT_CIBIL_SCORE[:\s]*([0-9][0-9,]*\.?[0-9]*)`),
	"credit_cards":       regexp.MustCompile(`(?i)CREDIT_CARDS[:\s]*([0-9][0-9,]*\.?[0-9]*)`),
	"credit_utilization": regexp.MustCompile(`(?i)CREDIT_UTILIZATION[:\s]*([0-9][0-9.,]*)`),
}

// loosePatterns is the secondary whole-text scan: prioritized
// natural-language patterns per field, first match wins. Patterns run
// against lower-cased text.
var loosePatterns = map[string][]*regexp.Regexp{
	"annual_income": {
		regexp.MustCompile(`annual income[:\s]*₹?\s*([0-9][0-9,]*)`),
		regexp.MustCompile(`yearly income[:\s]*₹?\s*([0-9][0-9,]*)`),
		regexp.MustCompile(`total income[:\s]*₹?\s*([0-9][0-9,]*)`),
	},
	"investments_80c": {
		regexp.MustCompile(`section 80c[^0-9]*₹?\s*([0-9][0-9,]*)`),
		regexp.MustCompile(`80c[^0-9]*₹?\s*([0-9][0-9,]*)`),
		regexp.MustCompile(`ppf[^0-9]*₹?\s*([0-9][0-9,]*)`),
	},
	"health_insurance": {
		regexp.MustCompile(`health insurance[^0-9]*₹?\s*([0-9][0-9,]*)`),
		regexp.MustCompile(`80d[^0-9]*₹?\s*([0-9][0-9,]*)`),
		regexp.MustCompile(`medical insurance[^0-9]*₹?\s*([0-9][0-9,]*)`),
	},
	"home_loan_interest": {
		regexp.MustCompile(`home loan interest[^0-9]*₹?\s*([0-9][0-9,]*)`),
		regexp.MustCompile(`24b[^0-9]*₹?\s*([0-9][0-9,]*)`),
	},
	"hra_claimed": {
		regexp.MustCompile(`hra[^0-9]*₹?\s*([0-9][0-9,]*)`),
	},
	"current_score": {
		regexp.MustCompile(`cibil score[^0-9]*([0-9]+)`),
		regexp.MustCompile(`credit score[^0-9]*([0-9]+)`),
		regexp.MustCompile(`score[^0-9]*([0-9]{3})`),
	},
	"credit_cards": {
		regexp.MustCompile(`credit cards?[^0-9]*([0-9]+)`),
	},
	"credit_utilization": {
		regexp.MustCompile(`utilization[^0-9]*([0-9]+\.?[0-9]*)\s*%`),
	},
}

// classificationPhrases is the ordered priority list for document type
// detection; the first phrase found in the lower-cased reply wins.
var classificationPhrases = []struct {
	phrases []string
	class   domain.DocumentClass
}{
	{[]string{"bank statement"}, domain.ClassBankStatement},
	{[]string{"tax document", "form 16"}, domain.ClassTaxDocument},
	{[]string{"credit report", "cibil"}, domain.ClassCreditReport},
	{[]string{"salary slip"}, domain.ClassSalarySlip},
	{[]string{"investment"}, domain.ClassInvestmentStatement},
}

var confidenceRe = regexp.MustCompile(`confidence[:\s]*([0-9]+)\s*%`)

// strategy is one step of the extraction chain. ok reports whether the
// strategy produced a usable (non-empty) result.
type strategy struct {
	name string
	run  func(text string) (values domain.ExtractedValues, ok bool)
}

// chain is the ordered extractor chain: the structured sentinel block first,
// then the loose whole-text scan. A sentinel block whose fields all resolve
// to zero does not count as a match, so a zero-heavy reply falls through to
// the loose scan.
var chain = []strategy{
	{name: "sentinel_block", run: extractSentinel},
	{name: "loose_scan", run: extractLoose},
}

// ParseCompletion parses the raw completion reply into a structured
// analysis. It never fails: unparseable input yields all-zero values with
// status partial and the issue recorded as metadata.
func ParseCompletion(text string) domain.StructuredAnalysis {
	analysis := domain.StructuredAnalysis{
		Status:     domain.StatusSuccess,
		Class:      classify(text),
		Confidence: confidence(text),
		Narrative:  text,
	}

	if strings.TrimSpace(text) == "" {
		analysis.Status = domain.StatusPartial
		analysis.Class = domain.ClassUnknown
		analysis.ParsingIssue = "empty completion text"
		return analysis
	}

	matched := false
	for _, s := range chain {
		values, ok := s.run(text)
		if ok {
			log.Printf("extract.ParseCompletion: strategy %s matched", s.name)
			analysis.Values = values
			matched = true
			break
		}
	}

	if !matched {
		analysis.Status = domain.StatusPartial
		analysis.ParsingIssue = "no extractable values found in completion"
	}

	return analysis
}

// extractSentinel pulls fields from the delimited values block. Reports no
// match when the block is absent or every field resolved to zero.
func extractSentinel(text string) (domain.ExtractedValues, bool) {
	var values domain.ExtractedValues

	m := sentinelBlockRe.FindStringSubmatch(text)
	if m == nil {
		return values, false
	}
	body := m[1]

	for field, re := range sentinelFieldRes {
		fm := re.FindStringSubmatch(body)
		if fm == nil {
			continue
		}
		// One malformed field never aborts the extraction; it stays zero.
		amount, ok := parseAmount(fm[1])
		if !ok {
			log.Printf("extract.extractSentinel: unparseable %s value %q", field, fm[1])
			continue
		}
		setField(&values, field, amount)
	}

	return values, !values.IsZero()
}

// extractLoose scans the whole lower-cased text with natural-language
// patterns, taking the first matching pattern's first match per field.
func extractLoose(text string) (domain.ExtractedValues, bool) {
	var values domain.ExtractedValues
	lower := strings.ToLower(text)

	for field, patterns := range loosePatterns {
		for _, re := range patterns {
			fm := re.FindStringSubmatch(lower)
			if fm == nil {
				continue
			}
			if amount, ok := parseAmount(fm[1]); ok {
				setField(&values, field, amount)
				break
			}
		}
	}

	return values, !values.IsZero()
}

func setField(v *domain.ExtractedValues, field string, amount float64) {
	switch field {
	case "annual_income":
		v.AnnualIncome = amount
	case "investments_80c":
		v.Investments80C = amount
	case "health_insurance":
		v.HealthInsurance = amount
	case "home_loan_interest":
		v.HomeLoanInterest = amount
	case "hra_claimed":
		v.HRAClaimed = amount
	case "current_score":
		v.CurrentScore = amount
	case "credit_cards":
		v.CreditCards = amount
	case "credit_utilization":
		v.CreditUtilization = amount
	}
}

// parseAmount strips grouping separators (including Indian-style 1,20,000)
// and parses a decimal number.
func parseAmount(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	cleaned = strings.TrimSuffix(cleaned, ".")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}

// classify derives the document class by case-insensitive substring search
// over a fixed priority list; first match wins.
func classify(text string) domain.DocumentClass {
	lower := strings.ToLower(text)
	for _, entry := range classificationPhrases {
		for _, phrase := range entry.phrases {
			if strings.Contains(lower, phrase) {
				return entry.class
			}
		}
	}
	return domain.ClassUnknown
}

// confidence extracts a "confidence: NN%" phrase, defaulting when absent.
func confidence(text string) int {
	m := confidenceRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return defaultConfidence
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 || n > 100 {
		return defaultConfidence
	}
	return n
}
