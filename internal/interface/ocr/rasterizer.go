package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"smartpass-service/pkg/logger"

	fitz "github.com/gen2brain/go-fitz"
)

// PDFRasterizer renders the first page of an uploaded PDF boarding pass into
// PNG bytes for the OCR engine. Only the first page is ever considered.
type PDFRasterizer struct {
	logger logger.Logger
}

// NewPDFRasterizer creates a new PDF rasterizer
func NewPDFRasterizer(logger logger.Logger) *PDFRasterizer {
	return &PDFRasterizer{
		logger: logger,
	}
}

// CanHandle reports whether this decoder accepts the content type
func (r *PDFRasterizer) CanHandle(contentType string) bool {
	return contentType == "application/pdf"
}

// Decode rasterizes the first page
func (r *PDFRasterizer) Decode(ctx context.Context, data []byte) ([]byte, error) {
	return r.RasterizeFirstPage(data)
}

// RasterizeFirstPage renders page one of the document as PNG bytes.
func (r *PDFRasterizer) RasterizeFirstPage(pdf []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdf)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("failed to render first page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode page image: %w", err)
	}

	r.logger.Info("Rasterized PDF first page",
		"pages", doc.NumPage(),
		"imageBytes", buf.Len())

	return buf.Bytes(), nil
}

// ImagePassthrough accepts photo uploads as-is.
type ImagePassthrough struct{}

// NewImagePassthrough creates the passthrough decoder for photo uploads
func NewImagePassthrough() *ImagePassthrough {
	return &ImagePassthrough{}
}

// CanHandle reports whether this decoder accepts the content type
func (d *ImagePassthrough) CanHandle(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	return false
}

// Decode returns the image bytes unchanged
func (d *ImagePassthrough) Decode(ctx context.Context, data []byte) ([]byte, error) {
	return data, nil
}
