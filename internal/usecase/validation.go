package usecase

import (
	"fmt"
	"strings"

	"github.com/mds-eth/battle-pokemon-backend/internal/domain/entity"
)

// FieldViolation describes a single field-level validation failure
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the violations found in a request payload
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		messages[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// ValidateCreate checks a creation payload. An empty result means valid.
func ValidateCreate(input *CreatePokemonInput) []FieldViolation {
	var violations []FieldViolation

	if input.Species == "" {
		violations = append(violations, FieldViolation{
			Field:   "species",
			Message: "species is required",
		})
	} else if _, ok := entity.ParseSpecies(input.Species); !ok {
		violations = append(violations, FieldViolation{
			Field:   "species",
			Message: fmt.Sprintf("invalid species, must be one of: %s", speciesList()),
		})
	}

	if input.Trainer == "" {
		violations = append(violations, FieldViolation{
			Field:   "trainer",
			Message: "trainer name is required",
		})
	}

	return violations
}

// ValidateUpdate checks an update payload. The trainer name is optional but
// must be non-empty when present; nothing else is settable.
func ValidateUpdate(input *UpdatePokemonInput) []FieldViolation {
	var violations []FieldViolation

	if input.Trainer != nil && *input.Trainer == "" {
		violations = append(violations, FieldViolation{
			Field:   "trainer",
			Message: "trainer name must not be empty",
		})
	}

	return violations
}

func speciesList() string {
	names := make([]string, len(entity.AllSpecies))
	for i, s := range entity.AllSpecies {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
