// Package service contains the business logic layer. Services coordinate
// parsers, the completion provider, and the response extractor; transport
// concerns stay in the handlers.
package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"taxwise/internal/domain"
	"taxwise/internal/extract"
	"taxwise/internal/format"
	"taxwise/internal/port"
	"taxwise/internal/prompt"
)

// IngestionService runs the full document pipeline: kind resolution, format
// parsing, structuring (LLM or heuristic), and projection. It also retains
// the most recent result for the follow-up tax and credit lookups.
type IngestionService struct {
	completer port.Completer
	ingestor  port.DocumentIngestor
	analyzer  *extract.Analyzer

	mu   sync.RWMutex
	last *domain.FormattedOutput
}

// NewIngestionService creates an IngestionService. completer may be nil, in
// which case every request takes the heuristic path.
func NewIngestionService(completer port.Completer, ingestor port.DocumentIngestor, analyzer *extract.Analyzer) *IngestionService {
	return &IngestionService{
		completer: completer,
		ingestor:  ingestor,
		analyzer:  analyzer,
	}
}

// ResolveKind maps an explicit type hint, or failing that the filename
// extension, to a supported document kind.
func ResolveKind(filename, typeHint string) (domain.DocumentKind, error) {
	ext := strings.ToLower(strings.TrimSpace(typeHint))
	if ext == "" {
		ext = strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	}
	kind, ok := domain.SupportedKinds[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	return kind, nil
}

// ProcessDocument runs one document through the pipeline and retains its
// projections for the last-result lookups.
func (s *IngestionService) ProcessDocument(ctx context.Context, content []byte, filename, typeHint string) (*domain.ProcessResult, error) {
	kind, err := ResolveKind(filename, typeHint)
	if err != nil {
		return nil, err
	}

	doc := domain.RawDocument{Content: content, Filename: filename, Kind: kind}
	rec := s.ingestor.Ingest(ctx, doc)

	var (
		analysis       domain.StructuredAnalysis
		responseSource string
	)
	if s.completer != nil && s.completer.Available() {
		reply, err := s.completer.Complete(ctx, prompt.SystemPrompt(), prompt.BuildAnalysisPrompt(&rec, filename, kind))
		if err != nil {
			return nil, err
		}
		analysis = extract.ParseCompletion(reply)
		responseSource = "llm"
	} else {
		analysis = s.analyzer.Analyze(&rec)
		responseSource = "heuristic"
	}

	out := format.Format(analysis)

	s.mu.Lock()
	s.last = &out
	s.mu.Unlock()

	log.Printf("service.ProcessDocument: %s (%s) -> status=%s class=%s source=%s",
		filename, kind, analysis.Status, analysis.Class, responseSource)

	return &domain.ProcessResult{
		Document: domain.DocumentInfo{
			ID:               uuid.New(),
			Filename:         filename,
			Kind:             kind,
			ProcessingMethod: string(rec.Method),
		},
		Raw:            rec,
		Analysis:       analysis,
		Tax:            out.Tax,
		Credit:         out.Credit,
		Summary:        out.Summary,
		Insights:       out.Insights,
		ResponseSource: responseSource,
		Timestamp:      time.Now().UTC(),
	}, nil
}

// LastTaxData returns the tax projection of the most recently processed
// document.
func (s *IngestionService) LastTaxData() (domain.TaxData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return domain.TaxData{}, domain.ErrNoResult
	}
	return s.last.Tax, nil
}

// LastCreditData returns the credit projection of the most recently
// processed document.
func (s *IngestionService) LastCreditData() (domain.CreditProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return domain.CreditProfile{}, domain.ErrNoResult
	}
	return s.last.Credit, nil
}
