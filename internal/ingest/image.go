package ingest

import (
	"context"
	"fmt"
	"log"

	"taxwise/internal/domain"
	"taxwise/internal/prompt"
)

// notProcessedText is the sentinel content returned when no completer is
// configured for image OCR.
const notProcessedText = "[llm not available - image uploaded but OCR not processed]"

// parseImage delegates text extraction to the completion provider with a
// verbatim-OCR instruction. With no completer configured it returns a
// sentinel "not processed" record instead of failing.
func (i *Ingestor) parseImage(ctx context.Context, doc domain.RawDocument) domain.NormalizedRecord {
	rec := domain.NormalizedRecord{
		ContentType: doc.Kind,
		ImageSize:   len(doc.Content),
	}

	if i.completer == nil || !i.completer.Available() {
		rec.TextContent = notProcessedText
		rec.Method = domain.MethodOCRSkipped
		return rec
	}

	ocrText, err := i.completer.Complete(ctx, prompt.SystemPrompt(), prompt.BuildOCRPrompt())
	if err != nil {
		log.Printf("ingest.parseImage: llm ocr failed: %v", err)
		rec.Method = domain.MethodFailed
		rec.Error = fmt.Sprintf("llm ocr failed: %v", err)
		return rec
	}

	rec.TextContent = ocrText
	rec.CharCount = len(ocrText)
	rec.Method = domain.MethodLLMOCR
	return rec
}
