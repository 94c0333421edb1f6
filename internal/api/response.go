package api

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type response interface {
	render(w http.ResponseWriter) error
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j jsonResponse) render(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

func jsonData(v any) response {
	return jsonResponse{status: http.StatusOK, body: Envelope{Data: v}}
}

func jsonError(status int, detail *ErrorDetail) response {
	return jsonResponse{status: status, body: Envelope{Error: detail}}
}
