package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// costSummaryHandler handles GET /api/v1/costs/summary.
func (s *Server) costSummaryHandler(c *echo.Context) error {
	days, err := daysParam(c, 30)
	if err != nil {
		return err
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	summary, err := s.costs.Summary(c.Request().Context(), since)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
