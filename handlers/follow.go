package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
)

// ProfileFollow creates the follow edge and redirects back to the
// profile. Self-follow and duplicate follow redirect silently too;
// there is no user-visible error for either.
func ProfileFollow(c *gin.Context, user *models.User) {
	username := c.Param("username")
	author, err := models.UserByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	target := "/profile/" + username + "/"
	if err := auth.CanFollow(user, author.ID); err != nil {
		c.Redirect(http.StatusFound, target)
		return
	}
	if _, err := models.FollowAuthor(user.ID, author.ID); err != nil &&
		!errors.Is(err, models.ErrAlreadyFollowing) {
		slog.Error("follow failed", "user", user.ID, "author", author.ID, "error", err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.Redirect(http.StatusFound, target)
}

// ProfileUnfollow removes the edge if present; removing a missing edge
// is fine.
func ProfileUnfollow(c *gin.Context, user *models.User) {
	username := c.Param("username")
	author, err := models.UserByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err := models.UnfollowAuthor(user.ID, author.ID); err != nil {
		slog.Error("unfollow failed", "user", user.ID, "author", author.ID, "error", err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
