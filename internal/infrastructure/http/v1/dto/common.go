// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// IDResponse is returned from create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is a generic success payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ListResponse wraps list results.
type ListResponse struct {
	Items any `json:"items"`
	Count int `json:"count"`
}

// NewListResponse creates a list response.
func NewListResponse(items any, count int) ListResponse {
	return ListResponse{Items: items, Count: count}
}
