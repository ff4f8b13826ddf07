package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Unknown users intentionally return zeroed stats rather than 404: the
// extension asks for stats before the user has ever voted.
func (s *Server) getUserStats(c echo.Context) error {
	stats, err := s.voteSvc.GetUserStats(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func (s *Server) getGlobalStats(c echo.Context) error {
	stats, err := s.voteSvc.GetGlobalStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
