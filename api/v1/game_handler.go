package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stellarisdev/CosmicDefender/internal/game"
)

func RegisterGameRoutes(g *echo.Group) {
	g.POST("", StartGameHandler)
	g.GET("/:id", GetGameHandler)
	g.PUT("/:id", UpdateGameHandler)
	g.POST("/:id/end", EndGameHandler)
	g.POST("/:id/abandon", AbandonGameHandler)
}

func StartGameHandler(c echo.Context) error {
	var req game.GameSessionCreate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if req.PlayerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "player_id is required")
	}

	session, err := GameService.Start(&req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, session)
}

func GetGameHandler(c echo.Context) error {
	session, err := GameService.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

func UpdateGameHandler(c echo.Context) error {
	var update game.SessionUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	session, err := GameService.Update(c.Param("id"), &update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

// EndGameHandler runs the finalization pipeline and returns its composite
// result.
func EndGameHandler(c echo.Context) error {
	var final game.SessionUpdate
	if err := c.Bind(&final); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	result, err := GameService.Finalize(c.Param("id"), &final)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"game_session":     result.Session,
		"score":            result.Score,
		"new_achievements": result.NewAchievements,
		"player_rank":      result.PlayerRank,
		"success":          true,
	})
}

func AbandonGameHandler(c echo.Context) error {
	session, err := GameService.Abandon(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}
