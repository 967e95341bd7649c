package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// CacheHeaders sets the browser cache policy for all responses.
// Server-side memoization of feed pages lives in the cache package;
// this only controls client-side caching.
func CacheHeaders(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxAge <= 0 {
			c.Header("cache-control", "no-cache")
		} else {
			c.Header("cache-control", "private, max-age="+strconv.Itoa(maxAge))
		}
		c.Next()
	}
}
