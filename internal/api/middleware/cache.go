package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// cachedResponse is a stored GET response body
type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// bodyCapture tees the response body so it can be stored
type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache serves repeated GETs of slow-changing reference data from a
// short-TTL in-memory cache. Only successful responses are stored.
func Cache(ttl time.Duration) gin.HandlerFunc {
	store := cache.New(ttl, 2*ttl)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if entry, found := store.Get(key); found {
			cached := entry.(cachedResponse)
			c.Data(cached.status, cached.contentType, cached.body)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Next()

		if capture.Status() == http.StatusOK {
			store.SetDefault(key, cachedResponse{
				status:      capture.Status(),
				contentType: capture.Header().Get("Content-Type"),
				body:        capture.buf.Bytes(),
			})
		}
	}
}
