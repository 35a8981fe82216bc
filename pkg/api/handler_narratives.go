package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	entnarrative "github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/cache"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// activeNarrativesHandler handles GET /api/v1/narratives/active.
func (s *Server) activeNarrativesHandler(c *echo.Context) error {
	filters := models.NarrativeFilters{Limit: 20}
	// lifecycle_state is the documented name; state stays as an alias.
	v := c.QueryParam("lifecycle_state")
	if v == "" {
		v = c.QueryParam("state")
	}
	if v != "" {
		if err := entnarrative.LifecycleStateValidator(entnarrative.LifecycleState(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid lifecycle_state: "+v)
		}
		if v == models.StateArchived {
			return echo.NewHTTPError(http.StatusBadRequest, "archived narratives are served by /narratives/archived")
		}
		filters.LifecycleState = v
	}
	limit, err := limitParam(c, 20)
	if err != nil {
		return err
	}
	filters.Limit = limit

	ctx := c.Request().Context()
	key := cache.ActiveNarrativesKey(filters.Limit, filters.LifecycleState)
	if body, ok := s.cache.Get(ctx, key); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	rows, err := s.narratives.ListActive(ctx, filters)
	if err != nil {
		return mapServiceError(err)
	}

	body, err := json.Marshal(narrativeResponses(rows))
	if err != nil {
		return mapServiceError(err)
	}
	s.cache.Set(ctx, key, body, s.ttl.TTLNarratives)
	return c.JSONBlob(http.StatusOK, body)
}

// archivedNarrativesHandler handles GET /api/v1/narratives/archived.
func (s *Server) archivedNarrativesHandler(c *echo.Context) error {
	days, err := daysParam(c, 30)
	if err != nil {
		return err
	}
	limit, err := limitParam(c, 20)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	key := cache.ArchivedNarrativesKey(days, limit)
	if body, ok := s.cache.Get(ctx, key); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	rows, err := s.narratives.ListArchived(ctx, days, limit)
	if err != nil {
		return mapServiceError(err)
	}

	body, err := json.Marshal(narrativeResponses(rows))
	if err != nil {
		return mapServiceError(err)
	}
	s.cache.Set(ctx, key, body, s.ttl.TTLNarratives)
	return c.JSONBlob(http.StatusOK, body)
}

// resurrectionsHandler handles GET /api/v1/narratives/resurrections.
func (s *Server) resurrectionsHandler(c *echo.Context) error {
	days, err := daysParam(c, 7)
	if err != nil {
		return err
	}
	limit, err := limitParam(c, 20)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	key := cache.ResurrectionsKey(days, limit)
	if body, ok := s.cache.Get(ctx, key); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	rows, err := s.narratives.ListResurrections(ctx, days, limit)
	if err != nil {
		return mapServiceError(err)
	}

	body, err := json.Marshal(narrativeResponses(rows))
	if err != nil {
		return mapServiceError(err)
	}
	s.cache.Set(ctx, key, body, s.ttl.TTLNarratives)
	return c.JSONBlob(http.StatusOK, body)
}

// getNarrativeHandler handles GET /api/v1/narratives/:id. Detail
// responses include history and member articles, and skip the cache.
func (s *Server) getNarrativeHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "narrative id is required")
	}

	ctx := c.Request().Context()
	n, err := s.narratives.Get(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}

	resp := narrativeResponse(n, true)
	members, err := s.articles.GetByIDs(ctx, n.ArticleIds)
	if err != nil {
		return mapServiceError(err)
	}
	resp.Articles = make([]ArticleSummary, 0, len(members))
	for _, a := range members {
		resp.Articles = append(resp.Articles, ArticleSummary{
			ID:          a.ID,
			Title:       a.Title,
			URL:         a.URL,
			Source:      a.Source,
			PublishedAt: a.PublishedAt,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func limitParam(c *echo.Context, def int) (int, error) {
	v := c.QueryParam("limit")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 100 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-100")
	}
	return n, nil
}

func daysParam(c *echo.Context, def int) (int, error) {
	v := c.QueryParam("days")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 365 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid days: must be 1-365")
	}
	return n, nil
}
