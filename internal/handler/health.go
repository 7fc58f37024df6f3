package handler // HTTP handlers for the insights API

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health returns a liveness handler.  When a ping function is provided it
// also verifies the document store is reachable, answering 503 when the
// store is down so load balancers can drain the instance.
func Health(ping func(context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ping != nil {
			if err := ping(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded", "error": "store unreachable"})
			}
		}
		return c.String(http.StatusOK, "ok")
	}
}
