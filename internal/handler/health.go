package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers load-balancer and monitoring probes with a plain
// "ok" so the checker does not need to parse JSON.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
