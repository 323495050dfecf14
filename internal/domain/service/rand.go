package service

import "math/rand"

type randSource struct{}

// NewRandSource returns a ChanceSource backed by math/rand
func NewRandSource() ChanceSource {
	return randSource{}
}

func (randSource) Float64() float64 {
	return rand.Float64()
}
