package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blightwatch-be/middlewares"
	"blightwatch-be/session"
)

// GetSession handles GET /api/session
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, middlewares.CurrentSession(c))
}

// CitizenLogin handles POST /api/auth/citizen/login. It issues a one-time
// code for the email; delivery is out of scope, so non-production builds
// echo the code back.
func (h *Handler) CitizenLogin(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	code, err := session.NewCode()
	if err != nil {
		h.respondError(c, resourceSession, err)
		return
	}
	if err := h.codes.Issue(c.Request.Context(), input.Email, code, h.cfg.VerificationTTL); err != nil {
		h.respondError(c, resourceSession, err)
		return
	}
	h.logger.Info("verification code issued", zap.String("session_id", middlewares.CurrentSession(c).ID))

	resp := gin.H{
		"message":   "Verification code sent",
		"expiresIn": h.cfg.VerificationTTL.Seconds(),
	}
	if !h.cfg.IsProduction() {
		resp["devCode"] = code
	}
	c.JSON(http.StatusOK, resp)
}

// CitizenVerify handles POST /api/auth/citizen/verify
func (h *Handler) CitizenVerify(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required,len=4,numeric"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	if err := h.codes.Verify(c.Request.Context(), input.Email, input.Code); err != nil {
		h.respondError(c, resourceSession, err)
		return
	}

	sess := middlewares.CurrentSession(c)
	sess.Authenticated = true
	sess.Email = strings.ToLower(strings.TrimSpace(input.Email))
	c.JSON(http.StatusOK, sess)
}
