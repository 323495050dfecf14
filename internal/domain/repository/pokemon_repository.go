package repository

import (
	"context"

	"github.com/mds-eth/battle-pokemon-backend/internal/domain/entity"
)

// PokemonRepository defines the interface for Pokemon data operations
type PokemonRepository interface {
	// Create persists a new Pokemon and assigns its ID
	Create(ctx context.Context, pokemon *entity.Pokemon) error

	// List retrieves all stored Pokemon
	List(ctx context.Context) ([]*entity.Pokemon, error)

	// GetByID retrieves a Pokemon by its ID, returning nil when absent
	GetByID(ctx context.Context, id int64) (*entity.Pokemon, error)

	// Update persists changes to an existing Pokemon
	Update(ctx context.Context, pokemon *entity.Pokemon) error

	// Delete removes a Pokemon by ID, reporting whether a record existed
	Delete(ctx context.Context, id int64) (bool, error)
}
