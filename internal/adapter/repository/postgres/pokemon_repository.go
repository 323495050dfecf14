package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mds-eth/battle-pokemon-backend/internal/domain/entity"
	"github.com/mds-eth/battle-pokemon-backend/internal/domain/repository"
)

type pokemonRepository struct {
	db *gorm.DB
}

// NewPokemonRepository creates a new pokemon repository
func NewPokemonRepository(db *gorm.DB) repository.PokemonRepository {
	return &pokemonRepository{db: db}
}

func (r *pokemonRepository) Create(ctx context.Context, pokemon *entity.Pokemon) error {
	return r.db.WithContext(ctx).Create(pokemon).Error
}

func (r *pokemonRepository) List(ctx context.Context) ([]*entity.Pokemon, error) {
	var pokemons []*entity.Pokemon
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&pokemons).Error
	if err != nil {
		return nil, err
	}
	return pokemons, nil
}

func (r *pokemonRepository) GetByID(ctx context.Context, id int64) (*entity.Pokemon, error) {
	var pokemon entity.Pokemon
	err := r.db.WithContext(ctx).First(&pokemon, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pokemon, nil
}

func (r *pokemonRepository) Update(ctx context.Context, pokemon *entity.Pokemon) error {
	return r.db.WithContext(ctx).Save(pokemon).Error
}

func (r *pokemonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Pokemon{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
