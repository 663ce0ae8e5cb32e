package domain

// DocumentKind represents the supported input document types.
type DocumentKind string

const (
	KindCSV   DocumentKind = "csv"
	KindXLSX  DocumentKind = "xlsx"
	KindXLS   DocumentKind = "xls"
	KindPDF   DocumentKind = "pdf"
	KindText  DocumentKind = "txt"
	KindPNG   DocumentKind = "png"
	KindJPG   DocumentKind = "jpg"
	KindJPEG  DocumentKind = "jpeg"
)

// SupportedKinds maps file extensions (without dot) to DocumentKind.
// Anything not in this map is rejected before parser dispatch.
var SupportedKinds = map[string]DocumentKind{
	"csv":  KindCSV,
	"xlsx": KindXLSX,
	"xls":  KindXLS,
	"pdf":  KindPDF,
	"txt":  KindText,
	"png":  KindPNG,
	"jpg":  KindJPG,
	"jpeg": KindJPEG,
}

// IsImage reports whether the kind is a raster image.
func (k DocumentKind) IsImage() bool {
	return k == KindPNG || k == KindJPG || k == KindJPEG
}

// IsSpreadsheet reports whether the kind is an Excel workbook.
func (k DocumentKind) IsSpreadsheet() bool {
	return k == KindXLSX || k == KindXLS
}

// ExtractionMethod identifies which parser path produced a NormalizedRecord.
type ExtractionMethod string

const (
	MethodPDFText     ExtractionMethod = "pdf_text"
	MethodCSVDecode   ExtractionMethod = "csv_decode"
	MethodExcelSheets ExtractionMethod = "excel_sheets"
	MethodTextDecode  ExtractionMethod = "text_decode"
	MethodLLMOCR      ExtractionMethod = "llm_ocr"
	MethodOCRSkipped  ExtractionMethod = "ocr_skipped"
	MethodFailed      ExtractionMethod = "failed"
)

// AnalysisStatus represents the outcome of the structuring stage.
type AnalysisStatus string

const (
	StatusSuccess         AnalysisStatus = "success"
	StatusFallbackSuccess AnalysisStatus = "fallback_success"
	StatusPartial         AnalysisStatus = "partial"
)

// DocumentClass is the classification assigned to a processed document.
type DocumentClass string

const (
	ClassBankStatement       DocumentClass = "bank_statement"
	ClassTaxDocument         DocumentClass = "tax_document"
	ClassCreditReport        DocumentClass = "credit_report"
	ClassSalarySlip          DocumentClass = "salary_slip"
	ClassInvestmentStatement DocumentClass = "investment_statement"
	ClassUnknown             DocumentClass = "unknown"
)
