package repository

import "context"

// TextRecognizer turns an image into a raw OCR transcript. The recognition
// engine is a black box behind this interface.
type TextRecognizer interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}
