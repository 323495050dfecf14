package service

import (
	"github.com/mds-eth/battle-pokemon-backend/internal/domain/entity"
)

// ChanceSource supplies uniform random values in [0,1). Production wires a
// pseudorandom generator; tests script the sequence.
type ChanceSource interface {
	Float64() float64
}

// Combatant is a snapshot of one side of a battle outcome.
type Combatant struct {
	ID      int64          `json:"id"`
	Species entity.Species `json:"species"`
	Trainer string         `json:"trainer"`
	Level   int            `json:"level"`
}

// Outcome is the ephemeral result of one battle resolution. It is never
// persisted as its own entity; the caller applies the level changes.
type Outcome struct {
	Winner     Combatant `json:"winner"`
	Loser      Combatant `json:"loser"`
	Eliminated bool      `json:"-"`
}

// BattleResolver decides battles by level-weighted chance. It computes the
// next state only; it never touches storage.
type BattleResolver struct {
	rng ChanceSource
}

// NewBattleResolver creates a resolver backed by the given chance source
func NewBattleResolver(rng ChanceSource) *BattleResolver {
	return &BattleResolver{rng: rng}
}

// Resolve determines the winner of a battle between a and b. The chance of
// a winning is a.Level/(a.Level+b.Level), so higher-level combatants are
// favored but never certain. The winner gains a level; the loser drops one,
// floored to 0, and Eliminated reports whether it reached the floor.
//
// Both participants must be distinct stored records with level >= 1; the
// caller enforces that before invoking.
func (r *BattleResolver) Resolve(a, b *entity.Pokemon) Outcome {
	totalLevel := a.Level + b.Level
	winChanceA := float64(a.Level) / float64(totalLevel)

	winner, loser := b, a
	if r.rng.Float64() < winChanceA {
		winner, loser = a, b
	}

	winnerLevel := winner.Level + 1
	loserLevel := loser.Level - 1
	eliminated := loserLevel <= 0
	if eliminated {
		loserLevel = 0
	}

	return Outcome{
		Winner: Combatant{
			ID:      winner.ID,
			Species: winner.Species,
			Trainer: winner.Trainer,
			Level:   winnerLevel,
		},
		Loser: Combatant{
			ID:      loser.ID,
			Species: loser.Species,
			Trainer: loser.Trainer,
			Level:   loserLevel,
		},
		Eliminated: eliminated,
	}
}
