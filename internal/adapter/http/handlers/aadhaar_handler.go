package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"paysadmin/internal/adapter/http/middleware"
	"paysadmin/internal/usecase"
	"paysadmin/pkg"

	"github.com/gin-gonic/gin"
)

// AadhaarHandler streams KYC documents for inline viewing or download.

type AadhaarHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewAadhaarHandler(uc usecase.IDocumentUseCase) *AadhaarHandler {
	return &AadhaarHandler{usecase: uc}
}

// GetDocument serves the document bytes with the classified content type.
// With ?download=1 the response carries an attachment disposition named after
// the watermark query parameter (the owning user's unique id).
func (h *AadhaarHandler) GetDocument(c *gin.Context) {
	documentPath := strings.TrimPrefix(c.Param("document_path"), "/")

	doc, err := h.usecase.Fetch(c.Request.Context(), middleware.UpstreamToken(c), documentPath)
	if err != nil {
		log.Printf("[aadhaar][handler] fetch failed path=%s err=%v", documentPath, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if c.Query("download") == "1" {
		filename := h.usecase.DownloadFilename(c.Query("watermark"), doc.Kind)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentPath):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid document path", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
