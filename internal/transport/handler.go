package transport

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"checkout-be/internal/checkout"
	"checkout-be/internal/logger"

	"go.uber.org/zap"
)

// The 500 body is fixed; failure detail stays in the operational log.
const internalErrorMessage = "internal server error"

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Handler struct {
	svc checkout.Service
	db  *sql.DB
}

func NewHandler(svc checkout.Service, db *sql.DB) *Handler {
	return &Handler{svc: svc, db: db}
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkout.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "malformed request body")
		return
	}

	order, err := h.svc.Checkout(r.Context(), req)
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Reason)
			return
		}

		logger.FromCtx(r.Context()).Error("checkout request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", internalErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}
