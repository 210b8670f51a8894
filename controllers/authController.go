package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"blightwatch-be/middlewares"
	"blightwatch-be/models"
	"blightwatch-be/repository"
	"blightwatch-be/utils"
)

func userResponse(u *models.User) gin.H {
	return gin.H{
		"id":           u.ID,
		"name":         u.Name(),
		"email":        u.Email,
		"organization": u.Organization,
		"role":         u.Role,
		"createdAt":    u.CreatedAt,
	}
}

// AdminLogin handles POST /api/admin/login
func (h *Handler) AdminLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter both email and password"})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.respondError(c, resourceUser, err)
		return
	}
	if user == nil || !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your access request is awaiting approval"})
		return
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID.Hex(), user.Role, h.cfg.TokenTTL)
	if err != nil {
		h.respondError(c, resourceUser, err)
		return
	}
	utils.SetCookie(c, h.cookieOptions(), middlewares.AuthCookie, token, int(h.cfg.TokenTTL.Seconds()))

	h.logger.Info("admin signed in", zap.String("user_id", user.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userResponse(user),
	})
}

// AdminLogout handles POST /api/admin/logout by clearing the auth cookie
func (h *Handler) AdminLogout(c *gin.Context) {
	utils.SetCookie(c, h.cookieOptions(), middlewares.AuthCookie, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// AdminSignup handles POST /api/admin/signup. The account is stored as an
// access request and cannot sign in until its role is raised to admin.
func (h *Handler) AdminSignup(c *gin.Context) {
	var input struct {
		FirstName       string `json:"firstName" binding:"required,max=50"`
		LastName        string `json:"lastName" binding:"required,max=50"`
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
		Organization    string `json:"organization" binding:"required,max=100"`
		Role            string `json:"role" binding:"required,max=50"`
		AgreeTerms      bool   `json:"agreeTerms" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	user := &models.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Password:     input.Password,
		Organization: input.Organization,
		Role:         models.RoleRequested,
		Title:        input.Role,
	}
	if err := user.HashPassword(); err != nil {
		h.respondError(c, resourceUser, err)
		return
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
			return
		}
		h.respondError(c, resourceUser, err)
		return
	}

	h.logger.Info("access requested", zap.String("user_id", user.ID.Hex()), zap.String("organization", user.Organization))
	c.JSON(http.StatusCreated, gin.H{
		"message": "Access request submitted",
		"user":    userResponse(user),
	})
}

// AdminMe handles GET /api/admin/me
func (h *Handler) AdminMe(c *gin.Context) {
	objectID, err := primitive.ObjectIDFromHex(c.GetString(middlewares.UserIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), objectID)
	if err != nil {
		h.respondError(c, resourceUser, err)
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}
