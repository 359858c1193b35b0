package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/auth"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/middleware"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/models"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthController handles registration, login, logout and profile lookup.
type AuthController struct {
	users      store.UserStore
	secret     string
	bcryptCost int
	log        *zap.Logger
}

func NewAuthController(users store.UserStore, secret string, bcryptCost int, log *zap.Logger) *AuthController {
	return &AuthController{users: users, secret: secret, bcryptCost: bcryptCost, log: log}
}

// RegisterInput request body for registration
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput request body for login
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user with a bcrypt-hashed password.
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(input.Password, ac.bcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ac.users.Create(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			// the store's uniqueness constraint is the only duplicate check
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		ac.log.Error("register: create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login verifies credentials and sets the session cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := ac.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No Such user Found"})
			return
		}
		ac.log.Error("login: user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if err := auth.CheckPassword(user.Password, input.Password); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Please enter correct credentials"})
		return
	}

	token, err := auth.SignToken(ac.secret, user.ID, user.Email)
	if err != nil {
		ac.log.Error("login: token signing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	// Session cookie, no expiry.
	c.SetCookie(middleware.CookieName, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie. The token stays valid if replayed;
// there is no server-side invalidation.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, true)
}

// Profile returns the caller's identity. No cookie yields null rather than
// an error; a user deleted out-of-band yields an empty object.
func (ac *AuthController) Profile(c *gin.Context) {
	tokenStr, err := c.Cookie(middleware.CookieName)
	if err != nil || tokenStr == "" {
		c.JSON(http.StatusOK, nil)
		return
	}

	ident, err := auth.ParseToken(ac.secret, tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := ac.users.FindByID(ctx, ident.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		ac.log.Error("profile: user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  user.Name,
		"email": user.Email,
		"_id":   user.ID,
	})
}
