package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mds-eth/battle-pokemon-backend/internal/usecase"
)

// PokemonHandler handles pokemon-related HTTP requests
type PokemonHandler struct {
	pokemonUC usecase.PokemonUsecase
}

// NewPokemonHandler creates a new pokemon handler
func NewPokemonHandler(pokemonUC usecase.PokemonUsecase) *PokemonHandler {
	return &PokemonHandler{pokemonUC: pokemonUC}
}

// CreatePokemon handles POST /pokemons
func (h *PokemonHandler) CreatePokemon(c *gin.Context) {
	var input usecase.CreatePokemonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	output, err := h.pokemonUC.Create(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, output)
}

// ListPokemons handles GET /pokemons
func (h *PokemonHandler) ListPokemons(c *gin.Context) {
	outputs, err := h.pokemonUC.List(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, outputs)
}

// GetPokemon handles GET /pokemons/:id
func (h *PokemonHandler) GetPokemon(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		HandleInvalidID(c, "pokemon id")
		return
	}

	output, err := h.pokemonUC.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// UpdatePokemon handles PUT /pokemons/:id
func (h *PokemonHandler) UpdatePokemon(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		HandleInvalidID(c, "pokemon id")
		return
	}

	var input usecase.UpdatePokemonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.pokemonUC.Update(c.Request.Context(), id, &input); err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondNoContent(c)
}

// DeletePokemon handles DELETE /pokemons/:id
func (h *PokemonHandler) DeletePokemon(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		HandleInvalidID(c, "pokemon id")
		return
	}

	if err := h.pokemonUC.Delete(c.Request.Context(), id); err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondNoContent(c)
}

// Battle handles POST /pokemons/battle/:idA/:idB
func (h *PokemonHandler) Battle(c *gin.Context) {
	idA, err := ParseIDParam(c, "idA")
	if err != nil {
		HandleInvalidID(c, "pokemon id")
		return
	}
	idB, err := ParseIDParam(c, "idB")
	if err != nil {
		HandleInvalidID(c, "pokemon id")
		return
	}

	output, err := h.pokemonUC.Battle(c.Request.Context(), idA, idB)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}
