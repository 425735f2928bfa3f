package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BiniyamTG/Injera-Beyond/services"
)

type UserController struct {
	auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (uc *UserController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := uc.auth.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login accepts form-encoded credentials; the username field carries the
// email, following the OAuth2 password flow shape the original clients use.
func (uc *UserController) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	token, err := uc.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.auth.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
