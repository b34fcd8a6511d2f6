package router

import (
	"context"

	"smartpass-service/pkg/logger"
)

// MediaDecoder normalizes one upload content type into image bytes the OCR
// engine accepts.
type MediaDecoder interface {
	CanHandle(contentType string) bool
	Decode(ctx context.Context, data []byte) ([]byte, error)
}

// MediaRouter routes uploads to the appropriate decoder based on content type
type MediaRouter struct {
	decoders []MediaDecoder
	logger   logger.Logger
}

// NewMediaRouter creates a new media router
func NewMediaRouter(logger logger.Logger) *MediaRouter {
	return &MediaRouter{
		decoders: make([]MediaDecoder, 0),
		logger:   logger,
	}
}

// Register registers a decoder for specific content types
func (r *MediaRouter) Register(decoder MediaDecoder) {
	r.decoders = append(r.decoders, decoder)
	r.logger.Info("Registered media decoder", "decoder", decoder)
}

// GetDecoder returns the appropriate decoder for a given content type, or
// nil when the type is unsupported.
func (r *MediaRouter) GetDecoder(contentType string) MediaDecoder {
	for _, decoder := range r.decoders {
		if decoder.CanHandle(contentType) {
			return decoder
		}
	}
	return nil
}
