package router // package router defines how HTTP routes are registered for the service

import (
	"strings"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"

	"github.com/kamkoum04/CoolifyExample/internal/config"
	"github.com/kamkoum04/CoolifyExample/internal/handler"
	"github.com/kamkoum04/CoolifyExample/internal/middleware"
)

// Route binds one path to its handler.  Every HTTP method on Path reaches
// Handler; Limited routes go through the rate limiter when it is enabled.
type Route struct {
	Path    string
	Handler echo.HandlerFunc
	Limited bool
}

// Routes is the complete routing table of the service.
func Routes() []Route {
	info := handler.NewInfoHandler()
	return []Route{
		{Path: "/", Handler: handler.Home()},
		{Path: "/api/info", Handler: info.Info, Limited: true},
		// health stays unlimited so probes are never throttled
		{Path: "/api/health", Handler: handler.Health},
	}
}

// New builds the Echo instance for the given configuration and routing
// table.  rdb may be nil, in which case rate limiting is off.
func New(cfg config.Config, rdb *redis.Client, routes []Route) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(parseLevel(cfg.LogLevel))

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger("/api/health"))

	limit := middleware.NewTokenBucket(cfg.RateLimit, rdb)
	Register(e, routes, limit)
	return e
}

// Register adds every route in the table to e, wrapping limited routes
// with limit.
func Register(e *echo.Echo, routes []Route, limit echo.MiddlewareFunc) {
	for _, r := range routes {
		var mw []echo.MiddlewareFunc
		if r.Limited && limit != nil {
			mw = append(mw, limit)
		}
		e.Any(r.Path, r.Handler, mw...)
	}
}

func parseLevel(s string) log.Lvl {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
