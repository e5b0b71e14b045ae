package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/marketing-cms-api/internal/config"
)

// pageParams parses page and limit query parameters, clamping them to the
// configured bounds
func pageParams(c *gin.Context, cfg *config.Config) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = cfg.Content.DefaultPageSize
	}
	if limit > cfg.Content.MaxPageSize {
		limit = cfg.Content.MaxPageSize
	}

	return page, limit
}

// boolQuery parses an optional boolean query parameter, returning nil
// when absent or malformed
func boolQuery(c *gin.Context, name string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
