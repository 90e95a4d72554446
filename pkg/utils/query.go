package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const maxCatalogLimit = 100

// GetLimitParam reads the optional limit query parameter, clamped to 1..100.
func GetLimitParam(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	if limit <= 0 || limit > maxCatalogLimit {
		limit = maxCatalogLimit
	}

	return limit
}
