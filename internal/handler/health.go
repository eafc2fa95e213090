package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// HealthResponse is the liveness payload polled by the container platform.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health is the liveness endpoint used by orchestrators and load balancers
// to verify that the process is up.  It always answers
// {"status":"healthy"} with 200; there is nothing downstream to probe.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
