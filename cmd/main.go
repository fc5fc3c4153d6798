package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/stellarisdev/CosmicDefender/api/middleware"
	v1 "github.com/stellarisdev/CosmicDefender/api/v1"
	"github.com/stellarisdev/CosmicDefender/internal/achievement"
	"github.com/stellarisdev/CosmicDefender/internal/apperrors"
	"github.com/stellarisdev/CosmicDefender/internal/game"
	"github.com/stellarisdev/CosmicDefender/internal/leaderboard"
	"github.com/stellarisdev/CosmicDefender/internal/player"
	"github.com/stellarisdev/CosmicDefender/pkg/db"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	if err := db.Init(); err != nil {
		log.Fatalf("error initializing stores: %v", err)
	}
	err = db.DB.AutoMigrate(
		&player.Player{},
		&game.GameSession{},
		&leaderboard.Score{},
		&achievement.Achievement{},
		&achievement.PlayerAchievement{},
	)
	if err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	playerRepo := player.NewGormRepository(db.DB)
	sessionRepo := game.NewGormSessionRepository(db.DB)
	scoreRepo := leaderboard.NewGormScoreRepository(db.DB)
	achievementRepo := achievement.NewGormRepository(db.DB)

	achievementService := achievement.NewService(achievementRepo, achievement.NewEngine())
	if err := achievementService.Seed(); err != nil {
		log.Fatalf("error seeding achievement catalog: %v", err)
	}

	leaderboardService := leaderboard.NewService(scoreRepo, leaderboard.NewRedisBoardCache(db.Rdb))
	playerService := player.NewService(playerRepo)
	gameService := game.NewService(sessionRepo, playerRepo, leaderboardService, achievementService)

	v1.PlayerService = playerService
	v1.GameService = gameService
	v1.LeaderboardService = leaderboardService
	v1.AchievementService = achievementService

	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")

	players := api.Group("/players")
	protectedPlayers := api.Group("/players")
	protectedPlayers.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterPlayerRoutes(players, protectedPlayers)

	games := api.Group("/games")
	games.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterGameRoutes(games)

	v1.RegisterLeaderboardRoutes(api.Group("/leaderboard"))
	v1.RegisterAchievementRoutes(api.Group("/achievements"))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"status": "healthy", "service": "cosmic-defender-api"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
