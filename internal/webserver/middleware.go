// SPDX-License-Identifier: MPL-2.0

package webserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// isolationHeaders sets the cross-origin isolation headers on every response.
// Access-Control-Allow-Origin is set here as well so that same-origin
// requests, which the CORS middleware skips, carry it too.
func isolationHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		h.Set("Cross-Origin-Embedder-Policy", "require-corp")
		h.Set("Access-Control-Allow-Origin", "*")
		c.Next()
	}
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	})
}

// observe logs each request at debug level and counts it by route and status.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := c.Writer.Status()

		s.cfg.Metrics.ObserveRequest(route, strconv.Itoa(status))
		s.cfg.Logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"elapsed", time.Since(start),
		)
	}
}
