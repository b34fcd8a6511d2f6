package ocr

import (
	"context"
	"encoding/base64"
	"fmt"

	"smartpass-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

// VisionService recognizes boarding pass text with the Google Vision API.
type VisionService struct {
	visionService *vision.Service
	logger        logger.Logger
}

// NewVisionService creates a new Vision OCR service
func NewVisionService(ctx context.Context, tokenSource oauth2.TokenSource, logger logger.Logger) (*VisionService, error) {
	service, err := vision.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision service: %w", err)
	}

	return &VisionService{
		visionService: service,
		logger:        logger,
	}, nil
}

// ExtractText runs TEXT_DETECTION over the image and returns the transcript.
// An image with no detectable text yields an empty transcript, not an error.
func (s *VisionService) ExtractText(ctx context.Context, image []byte) (string, error) {
	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{
			{
				Image: &vision.Image{
					Content: base64.StdEncoding.EncodeToString(image),
				},
				Features: []*vision.Feature{
					{Type: "TEXT_DETECTION"},
				},
			},
		},
	}

	resp, err := s.visionService.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("vision annotate failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return "", fmt.Errorf("vision returned no responses")
	}

	annotation := resp.Responses[0]
	if annotation.Error != nil {
		return "", fmt.Errorf("vision error: %s", annotation.Error.Message)
	}

	if annotation.FullTextAnnotation == nil {
		s.logger.Warn("No text detected in image", "imageBytes", len(image))
		return "", nil
	}

	text := annotation.FullTextAnnotation.Text
	s.logger.Info("OCR extraction completed",
		"engine", "vision",
		"imageBytes", len(image),
		"textLength", len(text))

	return text, nil
}
