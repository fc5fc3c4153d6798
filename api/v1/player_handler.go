package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stellarisdev/CosmicDefender/internal/game"
	"github.com/stellarisdev/CosmicDefender/internal/player"
)

const INVALID_REQUEST = "invalid request"

var PlayerService *player.Service
var GameService *game.Service

func RegisterPlayerRoutes(open *echo.Group, protected *echo.Group) {
	open.POST("", CreatePlayerHandler)
	protected.GET("/:id", GetPlayerHandler)
	protected.PUT("/:id", UpdatePlayerHandler)
	protected.GET("/:id/stats", GetPlayerStatsHandler)
	protected.GET("/:id/achievements", GetPlayerAchievementsHandler)
}

// CreatePlayerHandler creates the player on first contact or returns the
// existing one, plus an identity token either way.
func CreatePlayerHandler(c echo.Context) error {
	var req player.PlayerCreate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	p, err := PlayerService.CreateOrGet(&req)
	if err != nil {
		return err
	}

	token, err := player.GenerateToken(p.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error creating token")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"player": p,
		"token":  token,
	})
}

func GetPlayerHandler(c echo.Context) error {
	p, err := PlayerService.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func UpdatePlayerHandler(c echo.Context) error {
	var update player.PlayerUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	p, err := PlayerService.Update(c.Param("id"), &update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func GetPlayerStatsHandler(c echo.Context) error {
	stats, err := GameService.PlayerStats(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func GetPlayerAchievementsHandler(c echo.Context) error {
	achievements, err := AchievementService.ForPlayer(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, achievements)
}
