package api

import "github.com/nulzo/model-catalog-api/pkg/schema"

// ListResponse is the envelope for collection endpoints.
type ListResponse struct {
	Object string `json:"object"` // always "list"
	Data   any    `json:"data"`
}

func NewList(data any) ListResponse {
	return ListResponse{Object: "list", Data: data}
}

// AvailabilityResponse reports whether the calling identity can select a
// model, along with the advisory access record from the catalog.
type AvailabilityResponse struct {
	Model        string                   `json:"model"`
	Available    bool                     `json:"available"`
	Availability schema.ModelAvailability `json:"availability"`
}

// ConfigCheckResponse is the result of validating a caller-owned AIConfig
// against the catalog.
type ConfigCheckResponse struct {
	Model     string `json:"model"`
	Known     bool   `json:"known"`     // model id resolves in the catalog
	Available bool   `json:"available"` // selectable with the supplied keys
}

type ErrorResponse struct {
	Code     any            `json:"code,omitempty"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}
