package ocr

import (
	"context"
	"fmt"

	"smartpass-service/pkg/logger"

	"github.com/otiai10/gosseract/v2"
)

// TesseractService recognizes boarding pass text with a local tesseract
// installation.
type TesseractService struct {
	languages []string
	logger    logger.Logger
}

// NewTesseractService creates a new tesseract OCR service
func NewTesseractService(languages []string, logger logger.Logger) *TesseractService {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &TesseractService{
		languages: languages,
		logger:    logger,
	}
}

// ExtractText recognizes text in the image. A fresh client per call keeps the
// service safe for concurrent scans.
func (s *TesseractService) ExtractText(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(s.languages...); err != nil {
		return "", fmt.Errorf("failed to set OCR languages: %w", err)
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract recognition failed: %w", err)
	}

	s.logger.Info("OCR extraction completed",
		"engine", "tesseract",
		"imageBytes", len(image),
		"textLength", len(text))

	return text, nil
}
