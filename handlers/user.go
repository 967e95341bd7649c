package handlers

import (
	"net/http"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserSignupRequest struct {
	Username string `form:"username" binding:"required"`
	Name     string `form:"name"`
	Password string `form:"password" binding:"required"`
}

type UserLoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func UserSignup(c *gin.Context) {
	r := UserSignupRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := models.UserCreate(r.Username, r.Name, r.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(&user)
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// LoginPage exists so the redirect-to-login flow has somewhere to land;
// rendering the form is the front-end's job.
func LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, OKResponse)
}

func UserLogin(c *gin.Context) {
	r := UserLoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, success := models.UserLogin(r.Username, r.Password)
	if !success {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(&user)
	c.JSON(http.StatusOK, gin.H{"error": "", "username": user.Username, "name": user.Name})
}

func UserLogout(c *gin.Context, user *models.User) {
	session := auth.LoadSession(c)
	session.LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}
