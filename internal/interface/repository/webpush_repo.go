package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"smartpass-service/internal/domain/entity"
	"smartpass-service/internal/domain/repository"
	"smartpass-service/pkg/logger"
)

// WebPushRepository delivers reminders through an external push gateway
type WebPushRepository struct {
	logger      logger.Logger
	baseURL     string
	bearerToken string
	client      *http.Client
}

// NewWebPushRepository creates a new web push repository
func NewWebPushRepository(baseURL, bearerToken string, logger logger.Logger) repository.NotificationRepository {
	return &WebPushRepository{
		logger:      logger,
		baseURL:     baseURL,
		bearerToken: bearerToken,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

type pushMessage struct {
	Title              string `json:"title"`
	Body               string `json:"body"`
	Tag                string `json:"tag"`
	RequireInteraction bool   `json:"requireInteraction,omitempty"`
}

// Deliver posts one notification to the push gateway. The gateway collapses
// repeated deliveries with the same tag into a single visible notification.
func (r *WebPushRepository) Deliver(ctx context.Context, title, body string, opts entity.NotificationOptions) error {
	msg := pushMessage{
		Title:              title,
		Body:               body,
		Tag:                opts.Tag,
		RequireInteraction: opts.RequireInteraction,
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/notifications", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+r.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return fmt.Errorf("push gateway returned status %d: %v", resp.StatusCode, errorBody)
	}

	r.logger.Info("Notification delivered", "tag", opts.Tag, "title", title)
	return nil
}

// RequestPermission probes the push gateway. Auth failures mean the user has
// denied notifications; an unreachable gateway means the platform does not
// support them.
func (r *WebPushRepository) RequestPermission(ctx context.Context) (entity.PermissionStatus, error) {
	url := fmt.Sprintf("%s/api/v1/notifications/permission", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, nil)
	if err != nil {
		return entity.PermissionUnsupported, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+r.bearerToken)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("Push gateway unreachable", "error", err)
		return entity.PermissionUnsupported, nil
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return entity.PermissionDenied, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return entity.PermissionGranted, nil
	default:
		return entity.PermissionUnsupported, fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}
}
