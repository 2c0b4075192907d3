package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/san-kum/fraudsim/internal/logger"
)

// requestLogging logs each request and feeds the Prometheus recorder.
func (s *Server) requestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()
			s.rec.Begin()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			latency := time.Since(start)
			s.rec.ObserveRequest(route, req.Method, res.Status, latency)

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("uri", req.RequestURI),
				logger.String("remote", req.RemoteAddr),
				logger.Int("status", res.Status),
				logger.Duration("latency_ms", latency),
			}
			if res.Status >= 500 {
				s.log.Error("http request failed", fields...)
			} else {
				s.log.Debug("http request", fields...)
			}

			return nil
		}
	}
}
