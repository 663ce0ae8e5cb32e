package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"taxwise/internal/domain"
	"taxwise/internal/service"
)

// IngestionHandler handles document analysis endpoints.
type IngestionHandler struct {
	svc           *service.IngestionService
	maxFileSizeMB int64
}

// NewIngestionHandler creates a new IngestionHandler.
func NewIngestionHandler(svc *service.IngestionService, maxFileSizeMB int64) *IngestionHandler {
	return &IngestionHandler{svc: svc, maxFileSizeMB: maxFileSizeMB}
}

// Analyze handles POST /api/v1/documents/analyze. The document arrives as a
// multipart "file" part with an optional "type" field overriding the
// extension-based kind detection.
func (h *IngestionHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return
	}

	if fileHeader.Size > h.maxFileSizeMB*1024*1024 {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	content, err := readAll(fileHeader)
	if err != nil {
		HandleError(c, fmt.Errorf("reading upload: %w", err))
		return
	}
	if len(content) == 0 {
		HandleError(c, domain.ErrMissingFile)
		return
	}

	typeHint := c.PostForm("type")

	result, err := h.svc.ProcessDocument(c.Request.Context(), content, fileHeader.Filename, typeHint)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// LastTax handles GET /api/v1/documents/last/tax.
func (h *IngestionHandler) LastTax(c *gin.Context) {
	tax, err := h.svc.LastTaxData()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tax)
}

// LastCredit handles GET /api/v1/documents/last/credit.
func (h *IngestionHandler) LastCredit(c *gin.Context) {
	credit, err := h.svc.LastCreditData()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, credit)
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
