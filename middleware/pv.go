package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizbudz/bizbudz/store"
)

// PageViewRecorder records page views per day and path, feeding the platform
// stats endpoint's daily-active figure.
func PageViewRecorder(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only record successful page views (2xx-3xx) for GET requests.
		if c.Request.Method != "GET" {
			return
		}
		status := c.Writer.Status()
		if status < 200 || status >= 400 {
			return
		}

		// Ignore non-content endpoints to avoid skewing the count.
		path := c.Request.URL.Path
		if path == "/health" || strings.Contains(path, "/stats") || strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/static/") {
			return
		}

		// The request context may already be canceled once the response is
		// written, so the upsert gets its own.
		_ = st.BumpPageView(context.Background(), time.Now().In(time.Local), path)
	}
}
