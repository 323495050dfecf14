package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/mds-eth/battle-pokemon-backend/internal/domain/entity"
	"github.com/mds-eth/battle-pokemon-backend/internal/domain/repository"
	"github.com/mds-eth/battle-pokemon-backend/internal/domain/service"
	"github.com/mds-eth/battle-pokemon-backend/internal/infrastructure/metrics"
)

// Error definitions for pokemon usecase
var (
	ErrPokemonNotFound = errors.New("pokemon not found")
	ErrInvalidID       = errors.New("invalid pokemon id")
	ErrSelfBattle      = errors.New("a pokemon cannot battle itself")
)

// CreatePokemonInput represents the input for creating a pokemon
type CreatePokemonInput struct {
	Species string `json:"species"`
	Trainer string `json:"trainer"`
}

// UpdatePokemonInput represents the input for updating a pokemon. Only the
// trainer name is settable through the public update path.
type UpdatePokemonInput struct {
	Trainer *string `json:"trainer"`
}

// PokemonOutput represents the output for pokemon operations
type PokemonOutput struct {
	ID        int64  `json:"id"`
	Species   string `json:"species"`
	Trainer   string `json:"trainer"`
	Level     int    `json:"level"`
	HP        int    `json:"hp"`
	Attack    int    `json:"attack"`
	Defense   int    `json:"defense"`
	Speed     int    `json:"speed"`
	CreatedAt string `json:"created_at"`
}

// BattleOutput represents the outcome of a battle
type BattleOutput struct {
	Winner CombatantOutput `json:"winner"`
	Loser  CombatantOutput `json:"loser"`
}

// CombatantOutput is one side of a battle outcome. Level is the post-battle
// level; 0 means the pokemon was eliminated.
type CombatantOutput struct {
	ID      int64  `json:"id"`
	Species string `json:"species"`
	Trainer string `json:"trainer"`
	Level   int    `json:"level"`
}

// PokemonUsecase defines the interface for pokemon business logic
type PokemonUsecase interface {
	Create(ctx context.Context, input *CreatePokemonInput) (*PokemonOutput, error)
	List(ctx context.Context) ([]*PokemonOutput, error)
	GetByID(ctx context.Context, id int64) (*PokemonOutput, error)
	Update(ctx context.Context, id int64, input *UpdatePokemonInput) error
	Delete(ctx context.Context, id int64) error
	Battle(ctx context.Context, idA, idB int64) (*BattleOutput, error)
}

type pokemonUsecase struct {
	pokemonRepo repository.PokemonRepository
	resolver    *service.BattleResolver
}

// NewPokemonUsecase creates a new pokemon usecase
func NewPokemonUsecase(pokemonRepo repository.PokemonRepository, resolver *service.BattleResolver) PokemonUsecase {
	return &pokemonUsecase{
		pokemonRepo: pokemonRepo,
		resolver:    resolver,
	}
}

func (u *pokemonUsecase) Create(ctx context.Context, input *CreatePokemonInput) (*PokemonOutput, error) {
	if violations := ValidateCreate(input); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	// Membership was just validated, so the parse cannot miss.
	species, _ := entity.ParseSpecies(input.Species)
	pokemon := entity.NewPokemon(species, input.Trainer)

	if err := u.pokemonRepo.Create(ctx, pokemon); err != nil {
		return nil, err
	}

	return toPokemonOutput(pokemon), nil
}

func (u *pokemonUsecase) List(ctx context.Context) ([]*PokemonOutput, error) {
	pokemons, err := u.pokemonRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	outputs := make([]*PokemonOutput, len(pokemons))
	for i, p := range pokemons {
		outputs[i] = toPokemonOutput(p)
	}
	return outputs, nil
}

func (u *pokemonUsecase) GetByID(ctx context.Context, id int64) (*PokemonOutput, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	pokemon, err := u.pokemonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pokemon == nil {
		return nil, ErrPokemonNotFound
	}

	return toPokemonOutput(pokemon), nil
}

func (u *pokemonUsecase) Update(ctx context.Context, id int64, input *UpdatePokemonInput) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if violations := ValidateUpdate(input); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	pokemon, err := u.pokemonRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pokemon == nil {
		return ErrPokemonNotFound
	}

	if input.Trainer == nil {
		return nil
	}

	pokemon.Trainer = *input.Trainer
	return u.pokemonRepo.Update(ctx, pokemon)
}

func (u *pokemonUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	deleted, err := u.pokemonRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPokemonNotFound
	}
	return nil
}

// Battle fetches both participants, delegates the decision to the battle
// resolver, then applies the level changes: the winner is always updated,
// the loser is updated or, when eliminated, permanently removed.
//
// The fetch-then-write pair is not serialized per ID; two concurrent
// battles over the same pokemon can apply a stale level.
func (u *pokemonUsecase) Battle(ctx context.Context, idA, idB int64) (*BattleOutput, error) {
	if idA <= 0 || idB <= 0 {
		return nil, ErrInvalidID
	}
	if idA == idB {
		return nil, ErrSelfBattle
	}

	pokemonA, err := u.pokemonRepo.GetByID(ctx, idA)
	if err != nil {
		return nil, err
	}
	pokemonB, err := u.pokemonRepo.GetByID(ctx, idB)
	if err != nil {
		return nil, err
	}
	if pokemonA == nil || pokemonB == nil {
		return nil, ErrPokemonNotFound
	}

	outcome := u.resolver.Resolve(pokemonA, pokemonB)

	winner, loser := pokemonA, pokemonB
	if outcome.Winner.ID == pokemonB.ID {
		winner, loser = pokemonB, pokemonA
	}

	winner.Level = outcome.Winner.Level
	if err := u.pokemonRepo.Update(ctx, winner); err != nil {
		return nil, err
	}

	if outcome.Eliminated {
		if _, err := u.pokemonRepo.Delete(ctx, loser.ID); err != nil {
			return nil, err
		}
		metrics.EliminationsTotal.Inc()
	} else {
		loser.Level = outcome.Loser.Level
		if err := u.pokemonRepo.Update(ctx, loser); err != nil {
			return nil, err
		}
	}

	metrics.BattlesTotal.Inc()

	return &BattleOutput{
		Winner: toCombatantOutput(outcome.Winner),
		Loser:  toCombatantOutput(outcome.Loser),
	}, nil
}

func toPokemonOutput(p *entity.Pokemon) *PokemonOutput {
	return &PokemonOutput{
		ID:        p.ID,
		Species:   string(p.Species),
		Trainer:   p.Trainer,
		Level:     p.Level,
		HP:        p.HP,
		Attack:    p.Attack,
		Defense:   p.Defense,
		Speed:     p.Speed,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toCombatantOutput(c service.Combatant) CombatantOutput {
	return CombatantOutput{
		ID:      c.ID,
		Species: string(c.Species),
		Trainer: c.Trainer,
		Level:   c.Level,
	}
}
