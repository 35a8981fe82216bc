package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/cache"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// trendingSignalsHandler handles GET /api/v1/signals/trending.
func (s *Server) trendingSignalsHandler(c *echo.Context) error {
	filters := models.SignalFilters{
		Timeframe: models.Timeframe7d,
		Limit:     20,
	}
	if v := c.QueryParam("timeframe"); v != "" {
		switch v {
		case models.Timeframe24h, models.Timeframe7d, models.Timeframe30d:
			filters.Timeframe = v
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid timeframe: must be 24h, 7d, or 30d")
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-100")
		}
		filters.Limit = n
	}
	filters.EntityType = c.QueryParam("entity_type")

	ctx := c.Request().Context()
	key := cache.TrendingKey(filters.Timeframe, filters.Limit, filters.EntityType)
	if body, ok := s.cache.Get(ctx, key); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	rows, err := s.signals.ListTrending(ctx, filters)
	if err != nil {
		return mapServiceError(err)
	}

	body, err := json.Marshal(signalResponses(rows))
	if err != nil {
		return mapServiceError(err)
	}
	s.cache.Set(ctx, key, body, s.ttl.TTLSignals)
	return c.JSONBlob(http.StatusOK, body)
}
