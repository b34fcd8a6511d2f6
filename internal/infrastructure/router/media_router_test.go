package router

import (
	"context"
	"testing"

	"smartpass-service/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type pngDecoder struct{}

func (pngDecoder) CanHandle(contentType string) bool { return contentType == "image/png" }

func (pngDecoder) Decode(ctx context.Context, data []byte) ([]byte, error) { return data, nil }

type pdfDecoder struct{}

func (pdfDecoder) CanHandle(contentType string) bool { return contentType == "application/pdf" }

func (pdfDecoder) Decode(ctx context.Context, data []byte) ([]byte, error) { return data, nil }

type anyDecoder struct{}

func (anyDecoder) CanHandle(contentType string) bool { return true }

func (anyDecoder) Decode(ctx context.Context, data []byte) ([]byte, error) { return data, nil }

func TestGetDecoderRoutesByContentType(t *testing.T) {
	r := NewMediaRouter(logger.NewLogger())
	r.Register(pngDecoder{})
	r.Register(pdfDecoder{})

	assert.IsType(t, pngDecoder{}, r.GetDecoder("image/png"))
	assert.IsType(t, pdfDecoder{}, r.GetDecoder("application/pdf"))
}

func TestGetDecoderUnsupportedType(t *testing.T) {
	r := NewMediaRouter(logger.NewLogger())
	r.Register(pngDecoder{})

	assert.Nil(t, r.GetDecoder("text/plain"))
}

func TestGetDecoderFirstRegisteredWins(t *testing.T) {
	r := NewMediaRouter(logger.NewLogger())
	r.Register(pngDecoder{})
	r.Register(anyDecoder{})

	assert.IsType(t, pngDecoder{}, r.GetDecoder("image/png"))
	assert.IsType(t, anyDecoder{}, r.GetDecoder("application/pdf"))
}
