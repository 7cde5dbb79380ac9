// Package handler contains the HTTP handlers backing the wallet front-end.
// Every response uses the model.Envelope JSON structure; failures are caught
// at this boundary, logged, and mapped to an error code.
package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/xrpl"
)

// Handler holds the service and logger shared by all endpoints
type Handler struct {
	svc *xrpl.Service
	log *zap.Logger
}

// NewHandler creates a new Handler
func NewHandler(svc *xrpl.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// respondJSON writes the envelope with the given status
func (h *Handler) respondJSON(w http.ResponseWriter, status int, env model.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// respondData writes a successful envelope
func (h *Handler) respondData(w http.ResponseWriter, data interface{}, created bool) {
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.respondJSON(w, status, model.Envelope{OK: true, Data: data, Created: created})
}

// respondError logs the failure and writes a failure envelope with the
// status matching the error code
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := xrpl.CodeOf(err)
	status := statusForCode(code)

	msg := err.Error()
	if code == "" {
		// Unexpected failure: keep the detail in the log, not the response
		msg = "internal server error"
	}
	h.log.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("code", code),
		zap.Error(err))

	h.respondJSON(w, status, model.Envelope{OK: false, Error: msg, Code: code})
}

func statusForCode(code string) int {
	switch code {
	case model.CodeNotInitialized:
		return http.StatusNotFound
	case model.CodeAlreadyInitialized:
		return http.StatusConflict
	case model.CodeInvalidRequest:
		return http.StatusBadRequest
	case model.CodeMissingTrustline:
		return http.StatusUnprocessableEntity
	case model.CodeAuthorizationFailed, model.CodeXRPLRequestFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, model.Envelope{OK: true})
}
