package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paysadmin/internal/domain/entities"
	"paysadmin/internal/usecase/interfaces"
)

var ErrInvalidDocumentPath = errors.New("invalid document path")

// IDocumentUseCase serves Aadhaar KYC documents for inline viewing and
// download.

type IDocumentUseCase interface {
	Fetch(ctx context.Context, token, documentPath string) (entities.AadhaarDocument, error)
	DownloadFilename(watermark string, kind entities.DocumentKind) string
}

type DocumentUseCase struct {
	gateway interfaces.IPaysGateway
	now     func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(gateway interfaces.IPaysGateway) *DocumentUseCase {
	return &DocumentUseCase{gateway: gateway, now: time.Now}
}

func (u *DocumentUseCase) Fetch(ctx context.Context, token, documentPath string) (entities.AadhaarDocument, error) {
	if strings.TrimSpace(token) == "" {
		return entities.AadhaarDocument{}, ErrNotAuthenticated
	}
	documentPath = strings.TrimSpace(documentPath)
	if documentPath == "" {
		return entities.AadhaarDocument{}, ErrInvalidDocumentPath
	}
	return u.gateway.FetchAadhaar(ctx, token, documentPath)
}

// DownloadFilename builds the attachment name used for document downloads,
// watermarked with the owning user's unique id.
func (u *DocumentUseCase) DownloadFilename(watermark string, kind entities.DocumentKind) string {
	ext := "jpg"
	if kind == entities.DocumentPDF {
		ext = "pdf"
	}
	if strings.TrimSpace(watermark) == "" {
		watermark = "19pays"
	}
	return fmt.Sprintf("aadhaar_%s_%d.%s", watermark, u.now().UnixMilli(), ext)
}
