package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_feed_cache_hits_total",
		Help: "Feed pages served straight from the cache.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_feed_cache_misses_total",
		Help: "Feed pages assembled from the database.",
	})
)

func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
