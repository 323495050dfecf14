package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mds-eth/battle-pokemon-backend/internal/adapter/http/handler"
	"github.com/mds-eth/battle-pokemon-backend/internal/adapter/http/middleware"
	"github.com/mds-eth/battle-pokemon-backend/internal/adapter/repository/postgres"
	"github.com/mds-eth/battle-pokemon-backend/internal/domain/service"
	"github.com/mds-eth/battle-pokemon-backend/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(db, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize repositories
	pokemonRepo := postgres.NewPokemonRepository(db)

	// Initialize usecases
	resolver := service.NewBattleResolver(service.NewRandSource())
	pokemonUC := usecase.NewPokemonUsecase(pokemonRepo, resolver)

	// Initialize handlers
	pokemonHandler := handler.NewPokemonHandler(pokemonUC)

	// Pokemon routes
	pokemons := router.Group("/pokemons")
	{
		pokemons.POST("", pokemonHandler.CreatePokemon)
		pokemons.GET("", pokemonHandler.ListPokemons)
		pokemons.GET("/:id", pokemonHandler.GetPokemon)
		pokemons.PUT("/:id", pokemonHandler.UpdatePokemon)
		pokemons.DELETE("/:id", pokemonHandler.DeletePokemon)
		pokemons.POST("/battle/:idA/:idB", pokemonHandler.Battle)
	}

	return router
}
