package web

import (
	"mergington/internal/ports/input"
	"mergington/internal/ports/output"
)

// Handler serves the HTTP API using use cases.
type Handler struct {
	activityUseCase input.ActivityUseCase
	authUseCase     input.AuthUseCase
	translator      output.T
}

// NewHandler creates a Handler.
func NewHandler(
	activityUseCase input.ActivityUseCase,
	authUseCase input.AuthUseCase,
	translator output.T,
) *Handler {
	return &Handler{
		activityUseCase: activityUseCase,
		authUseCase:     authUseCase,
		translator:      translator,
	}
}
