package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mds-eth/battle-pokemon-backend/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// It provides consistent error handling across all handlers.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrPokemonNotFound):
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Code:       "NOT_FOUND",
			Message:    "pokemon not found",
		}
	case errors.Is(err, usecase.ErrInvalidID):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_ID",
			Message:    "invalid pokemon id",
		}
	case errors.Is(err, usecase.ErrSelfBattle):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "SELF_BATTLE",
			Message:    "a pokemon cannot battle itself",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP
// response. Validation errors carry their field violations in the payload;
// everything else goes through MapUsecaseError.
func HandleUsecaseError(c *gin.Context, err error) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		respondValidationError(c, verr.Violations)
		return
	}

	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}
