package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lucien-Luc/Programs/internal/middleware"
	"github.com/Lucien-Luc/Programs/internal/service"
)

type AuthHandler struct {
	svc          *service.AuthService
	cookieName   string
	cookieMaxAge int
	cookieSecure bool
}

func NewAuthHandler(svc *service.AuthService, cookieName string, cookieMaxAge int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieName: cookieName, cookieMaxAge: cookieMaxAge, cookieSecure: cookieSecure}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, maxAge, "/", "", h.cookieSecure, true)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}
	token, sess, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	h.setSessionCookie(c, token, h.cookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": sess})
}

// Signup bootstraps the single admin account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email, password, and username are required"})
		return
	}
	token, sess, err := h.svc.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAdminExists) || errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		respondError(c, err, "User not found")
		return
	}
	h.setSessionCookie(c, token, h.cookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": sess})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, exists := c.Get(middleware.ContextSessionToken)
	if exists {
		if err := h.svc.Logout(c.Request.Context(), token.(string)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to logout"})
			return
		}
	}
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CurrentUser answers the session payload, or JSON null for anonymous
// requests — the client treats null as "not signed in".
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *AuthHandler) AdminExists(c *gin.Context) {
	exists, err := h.svc.AdminExists(c.Request.Context())
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
