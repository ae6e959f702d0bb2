// Package dto holds the response envelopes shared by every resource.
package dto

import (
	"time"
)

// ErrorResponse is the body of every non-2xx response in the default style.
type ErrorResponse struct {
	Status    int            `json:"status"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Path      string         `json:"path"`
	Code      string         `json:"code,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// CountResponse answers a count request.
type CountResponse struct {
	Count int64 `json:"count"`
}

// HealthResponse answers the health probes.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
