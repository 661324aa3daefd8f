package routes

import (
	"courtside/controllers"
	"courtside/services/store"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, s *store.Store) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	players := api.Group("/players")
	{
		players.POST("", controllers.CreatePlayer(s))
		players.GET("", controllers.GetAllPlayers(s))
		players.GET("/:id", controllers.GetPlayer(s))
		players.PATCH("/:id", controllers.UpdatePlayer(s))
		players.DELETE("/:id", controllers.DeletePlayer(s))
		players.GET("/:id/stats", controllers.GetPlayerStatLines(s))
		players.GET("/:id/injuries", controllers.GetPlayerInjuries(s))
	}

	games := api.Group("/games")
	{
		games.POST("", controllers.CreateGame(s))
		games.GET("", controllers.GetAllGames(s))
		games.GET("/:id", controllers.GetGame(s))
		games.PATCH("/:id", controllers.UpdateGame(s))
		games.DELETE("/:id", controllers.DeleteGame(s))
		games.GET("/:id/stats", controllers.GetGameStatLines(s))
	}

	injuries := api.Group("/injuries")
	{
		// No DELETE: injury records only leave with their player
		injuries.POST("", controllers.CreateInjury(s))
		injuries.GET("/:id", controllers.GetInjury(s))
		injuries.PATCH("/:id", controllers.UpdateInjury(s))
	}

	stats := api.Group("/stats")
	{
		stats.POST("", controllers.CreateStatLine(s))
		stats.GET("/:id", controllers.GetStatLine(s))
		stats.PATCH("/:id", controllers.UpdateStatLine(s))
		stats.DELETE("/:id", controllers.DeleteStatLine(s))
	}
}
