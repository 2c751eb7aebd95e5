package web

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/analytics"
)

// requestLogger replaces gin's default logger with structured request lines.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := log.Info()
		if c.Writer.Status() >= 500 {
			ev = log.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Bool("htmx", c.GetHeader("HX-Request") == "true").
			Msg("request")
	}
}

var untrackedPrefixes = []string{"/static/", "/admin/", "/favicon", "/privacy", "/healthz"}

func tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// visitTracking records page views with hashed client addresses. Requests carrying DNT: 1 are skipped.
func visitTracking(store *analytics.Store, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		store.Track(c.ClientIP(), c.GetHeader("User-Agent"), path, func(err error) {
			log.Warn().Err(err).Msg("recording visit")
		})
		c.Next()
	}
}
