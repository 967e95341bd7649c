package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"blog/auth"
	"blog/config"
	"blog/models"
	"blog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

type PostRequest struct {
	Text    string  `form:"text" binding:"required"`
	GroupID *uint64 `form:"group_id"`
}

type CommentRequest struct {
	Text string `form:"text" binding:"required"`
}

func paramID(c *gin.Context) uint64 {
	return utils.StringToUInt64(c.Param("id"))
}

func postDetailPath(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10) + "/"
}

// saveImage stores an optional multipart attachment under MEDIA_DIR.
// Only the generated name is kept on the post.
func saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// No attachment
		return "", nil
	}
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(config.MEDIA_DIR, name)); err != nil {
		return "", err
	}
	return name, nil
}

func PostCreate(c *gin.Context, user *models.User) {
	if c.Request.Method == http.MethodGet {
		// The form itself is rendered client-side; reaching this
		// point just confirms the user may create posts
		c.JSON(http.StatusOK, OKResponse)
		return
	}
	r := PostRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	image, err := saveImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := models.PostCreate(user.ID, r.Text, r.GroupID, image); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// PostEdit lets the author change a post. Anyone else authenticated is
// sent back to the post detail view, never an error page.
func PostEdit(c *gin.Context, user *models.User) {
	post, err := models.PostByID(paramID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if !auth.CanEdit(user, &post) {
		c.Redirect(http.StatusFound, postDetailPath(post.ID))
		return
	}
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{"post": post})
		return
	}
	r := PostRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	image, err := saveImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	post.Text = r.Text
	post.GroupID = r.GroupID
	if image != "" {
		post.Image = image
	}
	if post.Save() != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

func CommentCreate(c *gin.Context, user *models.User) {
	post, err := models.PostByID(paramID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	r := CommentRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := models.CommentCreate(user.ID, post.ID, r.Text); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}
