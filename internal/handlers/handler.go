package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codeval-2025.net/internal/core/ports/primary"
	"gitlab.com/codeval-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeval-2025.net/internal/core/services/evaluate"
	"gitlab.com/codeval-2025.net/internal/handlers/response"
)

// EvaluationHandler handles evaluation API requests. The store and cache are
// optional; a nil adapter disables that concern.
type EvaluationHandler struct {
	evalService evaluate.IEvaluationService
	store       secondary.ReportStore
	cache       secondary.ReportCache
	logger      primary.Logger
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(evalService evaluate.IEvaluationService, store secondary.ReportStore, cache secondary.ReportCache, logger primary.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		evalService: evalService,
		store:       store,
		cache:       cache,
		logger:      logger,
	}
}

// RegisterRoutes registers the API routes for EvaluationHandler
func (h *EvaluationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/evaluations", h.Evaluate).Methods("POST")
	router.HandleFunc("/api/evaluations/{submissionId}", h.GetReport).Methods("GET")
	router.HandleFunc("/healthz", h.Health).Methods("GET")
}

// Evaluate handles submission evaluation requests
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "invalid request body", StatusCode: http.StatusBadRequest})
		return
	}
	if err := req.validate(); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest})
		return
	}

	submission := req.toSubmission()
	fingerprint := submission.Fingerprint()

	if h.cache != nil {
		cached, err := h.cache.GetReport(r.Context(), fingerprint)
		if err != nil {
			h.logger.Warn("Report cache lookup failed", "error", err)
		} else if cached != nil {
			response.WriteSuccess(w, EvaluateResponse{
				SubmissionID: cached.SubmissionID,
				Cached:       true,
				Report:       cached,
			})
			return
		}
	}

	report, err := h.evalService.Evaluate(r.Context(), submission)
	if err != nil {
		h.logger.Error("Failed to evaluate submission", "submissionId", submission.ID, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "failed to evaluate submission", StatusCode: http.StatusInternalServerError})
		return
	}

	if h.cache != nil {
		if err := h.cache.PutReport(r.Context(), fingerprint, report); err != nil {
			h.logger.Warn("Failed to cache report", "error", err)
		}
	}
	if h.store != nil {
		if err := h.store.SaveReport(r.Context(), fingerprint, report); err != nil {
			h.logger.Warn("Failed to persist report", "error", err)
		}
	}

	response.WriteSuccess(w, EvaluateResponse{
		SubmissionID: submission.ID,
		Report:       report,
	})
}

// GetReport handles report retrieval requests
func (h *EvaluationHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		response.WriteError(w, response.ErrorMessage{Message: "report persistence is not configured", StatusCode: http.StatusNotFound})
		return
	}

	vars := mux.Vars(r)
	submissionID, err := uuid.Parse(vars["submissionId"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "invalid submission ID", StatusCode: http.StatusBadRequest})
		return
	}

	report, err := h.store.GetReport(r.Context(), submissionID)
	if err != nil {
		h.logger.Error("Failed to get report", "submissionId", submissionID, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "failed to get report", StatusCode: http.StatusInternalServerError})
		return
	}
	if report == nil {
		response.WriteError(w, response.ErrorMessage{Message: "report not found", StatusCode: http.StatusNotFound})
		return
	}

	response.WriteSuccess(w, report)
}

// Health reports liveness
func (h *EvaluationHandler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WriteSuccess(w, map[string]string{"status": "ok"})
}
