package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"smartpass-service/internal/domain/entity"
	"smartpass-service/internal/domain/repository"
	"smartpass-service/internal/usecase"
	"smartpass-service/pkg/logger"
)

// Server exposes the scan and pass management API
type Server struct {
	processor *usecase.PassProcessor
	notifier  repository.NotificationRepository
	logger    logger.Logger
	maxUpload int64
}

// NewServer creates a new API server
func NewServer(processor *usecase.PassProcessor, notifier repository.NotificationRepository, maxUploadMB int, logger logger.Logger) *Server {
	return &Server{
		processor: processor,
		notifier:  notifier,
		logger:    logger,
		maxUpload: int64(maxUploadMB) << 20,
	}
}

// Register mounts the API routes on the mux
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/passes/scan", s.handleScan)
	mux.HandleFunc("GET /api/v1/passes", s.handleList)
	mux.HandleFunc("GET /api/v1/passes/{id}", s.handleGet)
	mux.HandleFunc("DELETE /api/v1/passes/{id}", s.handleDelete)
	mux.HandleFunc("POST /api/v1/notifications/permission", s.handlePermission)
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	// Strip any charset suffix
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}

	pass, err := s.processor.ProcessScan(r.Context(), contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnsupportedMedia):
			s.writeError(w, http.StatusUnsupportedMediaType, "unsupported media type")
		case errors.Is(err, usecase.ErrNotBoardingPass):
			s.writeError(w, http.StatusUnprocessableEntity, "could not extract boarding pass details")
		default:
			s.logger.Error("Scan failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, "scan failed")
		}
		return
	}

	s.writeJSON(w, http.StatusCreated, pass)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	passes, err := s.processor.ListPasses(r.Context(), limit)
	if err != nil {
		s.logger.Error("Failed to list passes", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list passes")
		return
	}
	if passes == nil {
		passes = []*entity.BoardingPass{}
	}

	s.writeJSON(w, http.StatusOK, passes)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	pass, err := s.processor.GetPass(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "boarding pass not found")
			return
		}
		s.logger.Error("Failed to fetch pass", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to fetch pass")
		return
	}

	s.writeJSON(w, http.StatusOK, pass)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.processor.DeletePass(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "boarding pass not found")
			return
		}
		s.logger.Error("Failed to delete pass", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to delete pass")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePermission(w http.ResponseWriter, r *http.Request) {
	status, err := s.notifier.RequestPermission(r.Context())
	if err != nil {
		s.logger.Error("Permission probe failed", "error", err)
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"permission": string(status)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
