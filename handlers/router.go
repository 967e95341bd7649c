package handlers

import (
	"time"

	"blog/auth"
	"blog/config"
	"blog/db"
	"blog/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

// NewRouter wires the full HTTP surface. main and the tests share it.
func NewRouter() *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	}
	// Feed content changes under readers; keep browsers from caching it.
	// The server-side feed cache is a separate concern.
	router.Use(utils.CacheHeaders(0))

	// Custom auth Router: guests get a 302 to the login page
	authRouter := &auth.Router{Base: router}

	// Public feed surface
	router.GET("/", Index)
	router.GET("/group/:slug/", GroupIndex)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)

	// Writes and the personalized feed need a logged-in user
	authRouter.GET("/create/", PostCreate)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:id/edit/", PostEdit)
	authRouter.POST("/posts/:id/edit/", PostEdit)
	authRouter.POST("/posts/:id/comment", CommentCreate)
	authRouter.GET("/follow/", FollowIndex)
	authRouter.GET("/profile/:username/follow", ProfileFollow)
	authRouter.GET("/profile/:username/unfollow", ProfileUnfollow)

	// Thin account surface; everything beyond login/logout/signup
	// belongs to the separate auth service
	router.POST("/auth/signup/", UserSignup)
	router.GET("/auth/login/", LoginPage)
	router.POST("/auth/login/", UserLogin)
	authRouter.POST("/auth/logout/", UserLogout)

	router.GET("/metrics", Metrics())
	router.GET("/health", Health)
	if config.DEBUG_MODE {
		authRouter.POST("/cache/clear", CacheClear)
	}
	return router
}
