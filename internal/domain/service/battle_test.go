package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mds-eth/battle-pokemon-backend/internal/domain/entity"
)

// scriptedChance replays a fixed sequence of draws
type scriptedChance struct {
	values []float64
	index  int
}

func (s *scriptedChance) Float64() float64 {
	v := s.values[s.index%len(s.values)]
	s.index++
	return v
}

func newPokemon(id int64, species entity.Species, trainer string, level int) *entity.Pokemon {
	p := entity.NewPokemon(species, trainer)
	p.ID = id
	p.Level = level
	return p
}

func TestBattleResolver_Resolve(t *testing.T) {
	t.Run("first participant wins when draw is below its level share", func(t *testing.T) {
		a := newPokemon(1, entity.SpeciesPikachu, "Ash", 3)
		b := newPokemon(2, entity.SpeciesMewtwo, "Giovanni", 1)

		// a's win chance is 3/4; a draw of 0.5 falls below it
		resolver := NewBattleResolver(&scriptedChance{values: []float64{0.5}})
		outcome := resolver.Resolve(a, b)

		assert.Equal(t, int64(1), outcome.Winner.ID)
		assert.Equal(t, 4, outcome.Winner.Level)
		assert.Equal(t, int64(2), outcome.Loser.ID)
		assert.Equal(t, 0, outcome.Loser.Level)
		assert.True(t, outcome.Eliminated)
	})

	t.Run("second participant wins when draw reaches the share", func(t *testing.T) {
		a := newPokemon(1, entity.SpeciesPikachu, "Ash", 3)
		b := newPokemon(2, entity.SpeciesMewtwo, "Giovanni", 2)

		// a's win chance is 3/5; a draw of 0.8 exceeds it
		resolver := NewBattleResolver(&scriptedChance{values: []float64{0.8}})
		outcome := resolver.Resolve(a, b)

		assert.Equal(t, int64(2), outcome.Winner.ID)
		assert.Equal(t, 3, outcome.Winner.Level)
		assert.Equal(t, int64(1), outcome.Loser.ID)
		assert.Equal(t, 2, outcome.Loser.Level)
		assert.False(t, outcome.Eliminated)
	})

	t.Run("loser level floors at zero and is marked eliminated", func(t *testing.T) {
		a := newPokemon(1, entity.SpeciesPikachu, "Ash", 1)
		b := newPokemon(2, entity.SpeciesMewtwo, "Giovanni", 1)

		resolver := NewBattleResolver(&scriptedChance{values: []float64{0.0}})
		outcome := resolver.Resolve(a, b)

		assert.Equal(t, int64(1), outcome.Winner.ID)
		assert.Equal(t, 2, outcome.Winner.Level)
		assert.Equal(t, 0, outcome.Loser.Level)
		assert.True(t, outcome.Eliminated)
	})

	t.Run("snapshots carry species and trainer", func(t *testing.T) {
		a := newPokemon(7, entity.SpeciesCharizard, "Red", 5)
		b := newPokemon(9, entity.SpeciesPikachu, "Ash", 5)

		resolver := NewBattleResolver(&scriptedChance{values: []float64{0.1}})
		outcome := resolver.Resolve(a, b)

		assert.Equal(t, entity.SpeciesCharizard, outcome.Winner.Species)
		assert.Equal(t, "Red", outcome.Winner.Trainer)
		assert.Equal(t, entity.SpeciesPikachu, outcome.Loser.Species)
		assert.Equal(t, "Ash", outcome.Loser.Trainer)
	})
}

func TestBattleResolver_WinRateConvergence(t *testing.T) {
	// With levels 1 vs 3 the first participant should win roughly 25% of
	// the time. Uses the production chance source, so bound generously.
	resolver := NewBattleResolver(NewRandSource())

	const trials = 20000
	wins := 0
	for i := 0; i < trials; i++ {
		a := newPokemon(1, entity.SpeciesPikachu, "Ash", 1)
		b := newPokemon(2, entity.SpeciesMewtwo, "Giovanni", 3)
		if resolver.Resolve(a, b).Winner.ID == 1 {
			wins++
		}
	}

	rate := float64(wins) / float64(trials)
	assert.InDelta(t, 0.25, rate, 0.03)
}
