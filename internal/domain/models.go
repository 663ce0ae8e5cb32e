package domain

import (
	"time"

	"github.com/google/uuid"
)

// RawDocument is the immutable pipeline input: a byte blob plus its declared
// filename and kind. It is constructed at the API boundary, consumed once by
// a format parser, and discarded.
type RawDocument struct {
	Content  []byte
	Filename string
	Kind     DocumentKind
}

// TabularRow is one row of tabular content, keyed by column name.
// Column order is carried separately by NormalizedRecord.Columns.
type TabularRow map[string]string

// PageTable holds the text rows of one PDF page; each row is that text
// row's words in reading order.
type PageTable [][]string

// SheetInfo summarizes a single spreadsheet sheet.
type SheetInfo struct {
	Name     string       `json:"name"`
	RowCount int          `json:"row_count"`
	ColCount int          `json:"col_count"`
	Columns  []string     `json:"columns,omitempty"`
	Preview  []TabularRow `json:"preview,omitempty"`
}

// NormalizedRecord is the format-agnostic output of a format parser.
// Parsers are total: on any internal failure they return a record with
// Method set to MethodFailed and Error populated rather than a Go error.
type NormalizedRecord struct {
	ContentType DocumentKind     `json:"content_type"`
	TextContent string           `json:"text_content,omitempty"`
	Columns     []string         `json:"columns,omitempty"`
	Rows        []TabularRow     `json:"rows,omitempty"`
	Preview     []TabularRow     `json:"preview,omitempty"`
	Sheets      []SheetInfo      `json:"sheets,omitempty"`
	Tables      []PageTable      `json:"tables,omitempty"`

	PagesProcessed int `json:"pages_processed,omitempty"`
	TableCount     int `json:"table_count,omitempty"`
	CharCount      int `json:"char_count,omitempty"`
	WordCount      int `json:"word_count,omitempty"`
	ImageSize      int `json:"image_size,omitempty"`

	Method ExtractionMethod `json:"extraction_method"`
	Error  string           `json:"error,omitempty"`
}

// HasTabularContent reports whether the record carries any rows.
func (r *NormalizedRecord) HasTabularContent() bool {
	return len(r.Rows) > 0
}

// ExtractedValues is the fixed mapping of financial fields pulled from a
// document. All values default to zero when unknown and are non-negative.
// CreditUtilization is a percentage; the [0,100] bound is a domain
// convention and is not independently enforced here.
type ExtractedValues struct {
	AnnualIncome      float64 `json:"annual_income"`
	Investments80C    float64 `json:"investments_80c"`
	HealthInsurance   float64 `json:"health_insurance"`
	HomeLoanInterest  float64 `json:"home_loan_interest"`
	HRAClaimed        float64 `json:"hra_claimed"`
	CurrentScore      float64 `json:"current_score"`
	CreditCards       float64 `json:"credit_cards"`
	CreditUtilization float64 `json:"credit_utilization"`
}

// IsZero reports whether every field holds the default zero value.
func (v ExtractedValues) IsZero() bool {
	return v == ExtractedValues{}
}

// StructuredAnalysis wraps ExtractedValues with classification and
// provenance of the structuring stage.
type StructuredAnalysis struct {
	Status       AnalysisStatus  `json:"analysis_status"`
	Class        DocumentClass   `json:"document_type"`
	Confidence   int             `json:"confidence_level"`
	Narrative    string          `json:"narrative"`
	Values       ExtractedValues `json:"extracted_values"`
	ParsingIssue string          `json:"parsing_issue,omitempty"`
}

// TaxData is the projection consumed by the tax calculation flow.
type TaxData struct {
	AnnualIncome     float64            `json:"annual_income"`
	Investments80C   float64            `json:"investments_80c"`
	HealthInsurance  float64            `json:"health_insurance"`
	HomeLoanInterest float64            `json:"home_loan_interest"`
	HRAClaimed       float64            `json:"hra_claimed"`
	OtherDeductions  map[string]float64 `json:"other_deductions"`
}

// CreditProfile is the projection consumed by the credit score analysis flow.
type CreditProfile struct {
	CurrentScore       int     `json:"current_score"`
	PaymentHistory     string  `json:"payment_history"`
	CreditCards        int     `json:"credit_cards"`
	TotalCreditLimit   float64 `json:"total_credit_limit"`
	CurrentUtilization float64 `json:"current_utilization"`
	Loans              int     `json:"loans"`
	MissedPayments     int     `json:"missed_payments"`
	AccountAgeMonths   int     `json:"account_age_months"`
	RecentInquiries    int     `json:"recent_inquiries"`
	Age                int     `json:"age"`
	Income             float64 `json:"income"`
}

// Summary describes readiness of the extracted data for downstream analysis.
type Summary struct {
	Class                  DocumentClass `json:"document_type"`
	Confidence             int           `json:"confidence_level"`
	ProcessingNotes        string        `json:"processing_notes"`
	ReadyForTaxAnalysis    bool          `json:"ready_for_tax_analysis"`
	ReadyForCreditAnalysis bool          `json:"ready_for_cibil_analysis"`
}

// FormattedOutput is the final projection of a StructuredAnalysis.
type FormattedOutput struct {
	Tax      TaxData       `json:"tax_agent_format"`
	Credit   CreditProfile `json:"cibil_agent_format"`
	Summary  Summary       `json:"financial_summary"`
	Insights string        `json:"insights"`
}

// DocumentInfo describes the processed file.
type DocumentInfo struct {
	ID               uuid.UUID    `json:"id"`
	Filename         string       `json:"filename"`
	Kind             DocumentKind `json:"file_type"`
	ProcessingMethod string       `json:"processing_method"`
}

// ProcessResult is the full output of one pipeline run.
type ProcessResult struct {
	Document       DocumentInfo       `json:"document_info"`
	Raw            NormalizedRecord   `json:"raw_data"`
	Analysis       StructuredAnalysis `json:"structured_analysis"`
	Tax            TaxData            `json:"tax_agent_format"`
	Credit         CreditProfile      `json:"cibil_agent_format"`
	Summary        Summary            `json:"financial_summary"`
	Insights       string             `json:"insights"`
	ResponseSource string             `json:"response_source"`
	Timestamp      time.Time          `json:"timestamp"`
}
