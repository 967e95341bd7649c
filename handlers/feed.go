package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"blog/auth"
	"blog/cache"
	"blog/config"
	"blog/feed"
	"blog/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func pageNumber(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Index serves the global feed through the cache-aside path. The key
// carries the requested page so different pages never cross-contaminate.
// Writes do not invalidate: a page may be stale for up to the TTL.
func Index(c *gin.Context) {
	page := pageNumber(c)
	key := "index:page=" + strconv.Itoa(page)
	if body, ok := cache.Pages.Get(key); ok {
		cacheHits.Inc()
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}
	cacheMisses.Inc()
	feedPage, err := feed.Global(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	body, err := json.Marshal(feedPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	cache.Pages.Set(key, body, time.Duration(config.FEED_CACHE_TTL)*time.Second)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func GroupIndex(c *gin.Context) {
	group, page, err := feed.Group(c.Param("slug"), pageNumber(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, NotFoundResponse)
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group, "page": page})
}

func Profile(c *gin.Context) {
	author, page, err := feed.Profile(c.Param("username"), pageNumber(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, NotFoundResponse)
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	// Follow button state for logged-in visitors
	following := false
	if viewer := auth.LoadSession(c).User(); viewer.ID != 0 {
		following = models.IsFollowing(viewer.ID, author.ID)
	}
	c.JSON(http.StatusOK, gin.H{
		"author":     author,
		"following":  following,
		"post_count": page.TotalPosts,
		"page":       page,
	})
}

func PostDetail(c *gin.Context) {
	post, err := models.PostByID(paramID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post, "comments": comments})
}

// FollowIndex is the personalized feed: posts by followed authors only.
// Not cached; every reader sees a different listing.
func FollowIndex(c *gin.Context, user *models.User) {
	page, err := feed.Personalized(user.ID, pageNumber(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// CacheClear drops all cached feed pages. Wired up in DEBUG_MODE only.
func CacheClear(c *gin.Context, user *models.User) {
	cache.Pages.Clear()
	c.JSON(http.StatusOK, OKResponse)
}
