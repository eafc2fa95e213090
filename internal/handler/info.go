package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// TimestampLayout is ISO-8601 local time with microseconds and no zone,
// the shape Python's datetime.isoformat() produces for this payload's
// existing consumers.  Fixed width keeps successive values sortable.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// InfoResponse is the /api/info payload.  Field names and the static values
// below are part of the wire contract.  Fields are declared in key order.
type InfoResponse struct {
	App           string `json:"app"`
	BuildPack     string `json:"buildPack"`
	Framework     string `json:"framework"`
	Message       string `json:"message"`
	PythonVersion string `json:"pythonVersion"`
	Timestamp     string `json:"timestamp"`
}

var staticInfo = InfoResponse{
	App:           "Python Flask App",
	BuildPack:     "Dockerfile",
	Framework:     "Flask",
	Message:       "Hello from Coolify with Dockerfile! 🐳",
	PythonVersion: "3.11",
}

// InfoHandler reports service metadata.  Now is the clock; nil means time.Now.
type InfoHandler struct {
	Now func() time.Time
}

func NewInfoHandler() *InfoHandler { return &InfoHandler{Now: time.Now} }

// Info returns the static metadata stamped with the current time.
func (h *InfoHandler) Info(c echo.Context) error {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	resp := staticInfo
	resp.Timestamp = now().Format(TimestampLayout)
	return c.JSON(http.StatusOK, resp)
}
