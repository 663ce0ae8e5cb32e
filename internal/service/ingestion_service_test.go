package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxwise/internal/domain"
	"taxwise/internal/extract"
	"taxwise/internal/ingest"
	"taxwise/internal/llm"
	"taxwise/internal/service"
)

const statementCSV = "date,description,amount,category\n2024-01-01,SALARY CREDIT,85000,Income\n2024-01-05,PPF CONTRIBUTION,-15000,Investment\n"

const llmReply = `This is a Bank Statement. Confidence: 85%

EXTRACTED_VALUES:
ANNUAL_INCOME: 1020000
INVESTMENTS_80C: 180000
HEALTH_INSURANCE: 0
HOME_LOAN_INTEREST: 0
HRA_CLAIMED: 0
CURRENT_CIBIL_SCORE: 0
CREDIT_CARDS: 0
CREDIT_UTILIZATION: 0`

// stubCompleter is a canned port.Completer for the pipeline tests.
type stubCompleter struct {
	reply     string
	err       error
	available bool
	gotUser   string
}

func (s *stubCompleter) Complete(_ context.Context, _, userPrompt string) (string, error) {
	s.gotUser = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubCompleter) Available() bool { return s.available }

func newService(completer *stubCompleter) *service.IngestionService {
	if completer == nil {
		return service.NewIngestionService(nil, ingest.NewIngestor(nil), extract.NewAnalyzer(12))
	}
	return service.NewIngestionService(completer, ingest.NewIngestor(completer), extract.NewAnalyzer(12))
}

func TestProcessDocument_LLMPath(t *testing.T) {
	completer := &stubCompleter{reply: llmReply, available: true}
	svc := newService(completer)

	result, err := svc.ProcessDocument(context.Background(), []byte(statementCSV), "statement.csv", "")

	require.NoError(t, err)
	assert.Equal(t, "llm", result.ResponseSource)
	assert.Equal(t, domain.StatusSuccess, result.Analysis.Status)
	assert.Equal(t, domain.ClassBankStatement, result.Analysis.Class)
	assert.Equal(t, 1020000.0, result.Tax.AnnualIncome)
	assert.Equal(t, 180000.0, result.Tax.Investments80C)
	assert.NotEqual(t, uuid.Nil, result.Document.ID)
	assert.Equal(t, domain.KindCSV, result.Document.Kind)
	assert.Equal(t, "csv_decode", result.Document.ProcessingMethod)
	assert.False(t, result.Timestamp.IsZero())

	// The prompt carries the parsed document content.
	assert.Contains(t, completer.gotUser, "SALARY CREDIT")
}

func TestProcessDocument_HeuristicPathWithoutCompleter(t *testing.T) {
	svc := newService(nil)

	result, err := svc.ProcessDocument(context.Background(), []byte(statementCSV), "statement.csv", "")

	require.NoError(t, err)
	assert.Equal(t, "heuristic", result.ResponseSource)
	assert.Equal(t, domain.StatusFallbackSuccess, result.Analysis.Status)
	assert.Equal(t, 1020000.0, result.Tax.AnnualIncome)
	assert.Equal(t, 180000.0, result.Tax.Investments80C)
}

func TestProcessDocument_HeuristicPathWhenUnavailable(t *testing.T) {
	svc := newService(&stubCompleter{available: false})

	result, err := svc.ProcessDocument(context.Background(), []byte(statementCSV), "statement.csv", "")

	require.NoError(t, err)
	assert.Equal(t, "heuristic", result.ResponseSource)
}

func TestProcessDocument_UnsupportedExtension(t *testing.T) {
	svc := newService(nil)

	_, err := svc.ProcessDocument(context.Background(), []byte("data"), "archive.zip", "")

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestProcessDocument_TypeHintOverridesExtension(t *testing.T) {
	svc := newService(nil)

	result, err := svc.ProcessDocument(context.Background(), []byte(statementCSV), "upload.bin", "csv")

	require.NoError(t, err)
	assert.Equal(t, domain.KindCSV, result.Document.Kind)
}

func TestProcessDocument_UpstreamErrorPropagates(t *testing.T) {
	upstream := llm.NewUpstreamError("groq", 500, "server error")
	svc := newService(&stubCompleter{err: upstream, available: true})

	_, err := svc.ProcessDocument(context.Background(), []byte(statementCSV), "statement.csv", "")

	assert.ErrorIs(t, err, upstream)
}

func TestLastData_BeforeAnyDocument(t *testing.T) {
	svc := newService(nil)

	_, err := svc.LastTaxData()
	assert.ErrorIs(t, err, domain.ErrNoResult)

	_, err = svc.LastCreditData()
	assert.ErrorIs(t, err, domain.ErrNoResult)
}

func TestLastData_ReflectsMostRecentResult(t *testing.T) {
	svc := newService(&stubCompleter{reply: llmReply, available: true})

	_, err := svc.ProcessDocument(context.Background(), []byte(statementCSV), "statement.csv", "")
	require.NoError(t, err)

	tax, err := svc.LastTaxData()
	require.NoError(t, err)
	assert.Equal(t, 1020000.0, tax.AnnualIncome)

	credit, err := svc.LastCreditData()
	require.NoError(t, err)
	assert.Equal(t, 1020000.0, credit.Income)
	assert.Equal(t, 30, credit.Age)
}

func TestResolveKind(t *testing.T) {
	cases := []struct {
		filename string
		hint     string
		want     domain.DocumentKind
		wantErr  bool
	}{
		{"a.csv", "", domain.KindCSV, false},
		{"a.XLSX", "", domain.KindXLSX, false},
		{"scan.jpeg", "", domain.KindJPEG, false},
		{"noext", "pdf", domain.KindPDF, false},
		{"a.csv", "txt", domain.KindText, false},
		{"noext", "", "", true},
		{"a.zip", "", "", true},
		{"report.docx", "", "", true},
	}

	for _, tc := range cases {
		kind, err := service.ResolveKind(tc.filename, tc.hint)
		if tc.wantErr {
			assert.ErrorIs(t, err, domain.ErrUnsupportedFormat, "filename: %s", tc.filename)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tc.want, kind)
	}
}
