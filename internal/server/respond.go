package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"highfields/internal/apperror"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Detail string                `json:"detail"`
	Errors []apperror.FieldError `json:"errors,omitempty"`
}

type listParams struct {
	Limit uint64 `form:"limit"`
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("unable to write response stream")
	}
}

// decodePayload reads a JSON body into dst and runs struct validation. It writes the
// 400 response itself and reports false when the request should stop.
func (s *Service) decodePayload(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if !s.decodeBody(w, body, dst) {
		return false
	}

	return s.validatePayload(w, dst)
}

func (s *Service) decodeBody(w http.ResponseWriter, body io.Reader, dst any) bool {
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		s.logger.WithError(err).Info("failed to decode json")
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request payload"})
		return false
	}
	return true
}

func (s *Service) validatePayload(w http.ResponseWriter, payload any) bool {
	err := s.validate.Struct(payload)
	if err == nil {
		return true
	}

	fieldErrs := apperror.FieldErrors(err)
	if fieldErrs == nil {
		s.logger.WithError(err).Error("payload validation could not run")
		s.internalServerError(w)
		return false
	}

	s.logger.WithField("field_errors", fieldErrs).Info("validation errors on submission")
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "validation failed", Errors: fieldErrs})
	return false
}

func (s *Service) decodeListParams(w http.ResponseWriter, r *http.Request) (listParams, bool) {
	var params listParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		s.logger.WithError(err).Info("failed to decode query")
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: fmt.Sprintf("invalid query: %v", err)})
		return params, false
	}
	return params, true
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
}

func (s *Service) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Not Found"})
}

func (s *Service) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: "Method Not Allowed"})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Highfields Community Church API - #RISE26"})
}
