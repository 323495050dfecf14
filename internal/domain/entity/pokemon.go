package entity

import (
	"time"
)

// Pokemon represents a stored Pokemon record. Base stats are assigned once
// at creation from the species stat table; level is the only combat-relevant
// field that changes afterwards.
type Pokemon struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Species   Species   `json:"species" gorm:"type:varchar(20);not null"`
	Trainer   string    `json:"trainer" gorm:"type:varchar(100);not null"`
	Level     int       `json:"level" gorm:"not null;default:1"`
	HP        int       `json:"hp" gorm:"not null"`
	Attack    int       `json:"attack" gorm:"not null"`
	Defense   int       `json:"defense" gorm:"not null"`
	Speed     int       `json:"speed" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (Pokemon) TableName() string {
	return "pokemons"
}

// NewPokemon creates a level-1 Pokemon with base stats drawn from the
// species stat table.
func NewPokemon(species Species, trainer string) *Pokemon {
	stats := species.BaseStats()
	return &Pokemon{
		Species: species,
		Trainer: trainer,
		Level:   1,
		HP:      stats.HP,
		Attack:  stats.Attack,
		Defense: stats.Defense,
		Speed:   stats.Speed,
	}
}
