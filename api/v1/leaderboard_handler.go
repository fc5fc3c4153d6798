package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stellarisdev/CosmicDefender/internal/leaderboard"
)

var LeaderboardService *leaderboard.Service

func RegisterLeaderboardRoutes(g *echo.Group) {
	g.GET("", GetLeaderboardHandler)
}

func GetLeaderboardHandler(c echo.Context) error {
	limit, err := queryInt(c, "limit", leaderboard.DefaultLimit)
	if err != nil {
		return err
	}
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return err
	}

	board, errBoard := LeaderboardService.Board(limit, skip, c.QueryParam("player_id"))
	if errBoard != nil {
		return errBoard
	}
	return c.JSON(http.StatusOK, board)
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	return val, nil
}
