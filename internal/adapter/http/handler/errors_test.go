package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mds-eth/battle-pokemon-backend/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
		expectedMessage    string
	}{
		{
			name:               "pokemon not found",
			err:                usecase.ErrPokemonNotFound,
			expectedStatusCode: http.StatusNotFound,
			expectedCode:       "NOT_FOUND",
			expectedMessage:    "pokemon not found",
		},
		{
			name:               "invalid id",
			err:                usecase.ErrInvalidID,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_ID",
			expectedMessage:    "invalid pokemon id",
		},
		{
			name:               "self battle",
			err:                usecase.ErrSelfBattle,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "SELF_BATTLE",
			expectedMessage:    "a pokemon cannot battle itself",
		},
		{
			name:               "unknown error",
			err:                errors.New("some unknown error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
			expectedMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapUsecaseError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, result.StatusCode)
			assert.Equal(t, tt.expectedCode, result.Code)
			assert.Equal(t, tt.expectedMessage, result.Message)
		})
	}
}

func TestHandleUsecaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
	}{
		{
			name:               "pokemon not found",
			err:                usecase.ErrPokemonNotFound,
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "self battle",
			err:                usecase.ErrSelfBattle,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "internal error",
			err:                errors.New("internal"),
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleUsecaseError(c, tt.err)

			assert.Equal(t, tt.expectedStatusCode, w.Code)
		})
	}

	t.Run("validation error carries the violations", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleUsecaseError(c, &usecase.ValidationError{
			Violations: []usecase.FieldViolation{
				{Field: "trainer", Message: "trainer name is required"},
			},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		assert.Contains(t, w.Body.String(), "trainer name is required")
	})
}

func TestHandleInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleInvalidID(c, "pokemon id")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid pokemon id")
}
