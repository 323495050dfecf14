package entity

// Species is the fixed category of a Pokemon record. The set is closed:
// creation requests naming anything else are rejected by validation.
type Species string

const (
	SpeciesPikachu   Species = "pikachu"
	SpeciesCharizard Species = "charizard"
	SpeciesMewtwo    Species = "mewtwo"
)

// AllSpecies lists every valid species, in the order referenced by
// validation messages.
var AllSpecies = []Species{SpeciesPikachu, SpeciesCharizard, SpeciesMewtwo}

// Stats holds the base combat stats assigned at creation.
type Stats struct {
	HP      int
	Attack  int
	Defense int
	Speed   int
}

// ParseSpecies converts a raw string into a Species. The second return
// value reports membership in the closed set.
func ParseSpecies(s string) (Species, bool) {
	switch Species(s) {
	case SpeciesPikachu, SpeciesCharizard, SpeciesMewtwo:
		return Species(s), true
	}
	return "", false
}

// BaseStats returns the fixed stat block for the species. The default block
// is a defensive fallback only; validated input never reaches it.
func (s Species) BaseStats() Stats {
	switch s {
	case SpeciesPikachu:
		return Stats{HP: 35, Attack: 55, Defense: 40, Speed: 90}
	case SpeciesCharizard:
		return Stats{HP: 78, Attack: 84, Defense: 78, Speed: 100}
	case SpeciesMewtwo:
		return Stats{HP: 106, Attack: 110, Defense: 90, Speed: 130}
	default:
		return Stats{HP: 50, Attack: 50, Defense: 50, Speed: 50}
	}
}
