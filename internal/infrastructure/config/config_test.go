package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "smartpass", cfg.MongoDB)
	assert.Equal(t, "tesseract", cfg.OCREngine)
	assert.Equal(t, "eng", cfg.OCRLanguages)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OCR_ENGINE", "vision")
	t.Setenv("MAX_UPLOAD_MB", "25")
	t.Setenv("PUSH_ENDPOINT", "https://push.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "vision", cfg.OCREngine)
	assert.Equal(t, 25, cfg.MaxUploadMB)
	assert.Equal(t, "https://push.example.com", cfg.PushEndpoint)
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.MaxUploadMB)
}
