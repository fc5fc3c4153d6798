package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stellarisdev/CosmicDefender/internal/achievement"
)

var AchievementService *achievement.Service

func RegisterAchievementRoutes(g *echo.Group) {
	g.GET("", GetAchievementsHandler)
}

// GetAchievementsHandler returns the catalog, annotated with unlock status
// when a player_id is supplied.
func GetAchievementsHandler(c echo.Context) error {
	playerID := c.QueryParam("player_id")

	if playerID == "" {
		achievements, err := AchievementService.All()
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, achievements)
	}

	achievements, err := AchievementService.ForPlayer(playerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, achievements)
}
