package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// parseIDParam parses the :id path parameter as an int32
func parseIDParam(c echo.Context, name string) (int32, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return int32(id), nil
}

// parseDate parses a YYYY-MM-DD value
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
