package oauth

import (
	"context"
	"fmt"
	"os"

	"smartpass-service/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	vision "google.golang.org/api/vision/v1"
)

// GoogleOAuth authenticates the Vision API with a service account key file
type GoogleOAuth struct {
	credentialsFile string
	logger          logger.Logger
}

// NewGoogleOAuth creates a new Google OAuth handler
func NewGoogleOAuth(credentialsFile string, logger logger.Logger) *GoogleOAuth {
	return &GoogleOAuth{
		credentialsFile: credentialsFile,
		logger:          logger,
	}
}

// GetTokenSource returns a token source that can be used with the Vision API
func (o *GoogleOAuth) GetTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(o.credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, vision.CloudVisionScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}

	o.logger.Info("Service account loaded", "clientEmail", jwtConfig.Email)
	return jwtConfig.TokenSource(ctx), nil
}
