package handlers

import (
	"net/http"

	"gitlab.com/codeval-2025.net/internal/handlers/response"
)

// AdmissionLimiter bounds the number of evaluations running at once. Each
// evaluation spawns interpreter processes, so this is the host's resource
// cap; requests beyond the cap are rejected rather than queued.
type AdmissionLimiter struct {
	slots chan struct{}
}

// NewAdmissionLimiter creates a limiter with the given concurrency cap.
func NewAdmissionLimiter(maxConcurrency int) *AdmissionLimiter {
	return &AdmissionLimiter{
		slots: make(chan struct{}, maxConcurrency),
	}
}

// Middleware applies the admission cap to a handler.
func (l *AdmissionLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case l.slots <- struct{}{}:
			defer func() { <-l.slots }()
			next.ServeHTTP(w, r)
		default:
			response.WriteError(w, response.ErrorMessage{
				Message:    "evaluation capacity exhausted, retry later",
				StatusCode: http.StatusTooManyRequests,
			})
		}
	})
}
