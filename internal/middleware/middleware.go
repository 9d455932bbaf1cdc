package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Lucien-Luc/Programs/internal/model"
	"github.com/Lucien-Luc/Programs/internal/pkg/session"
	"github.com/Lucien-Luc/Programs/internal/service"
)

const (
	ContextSession      = "session"
	ContextSessionToken = "session_token"
)

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// SessionMiddleware resolves the session cookie into the request context.
// Anonymous requests pass through untouched; gating happens in RequireAdmin.
type SessionMiddleware struct {
	auth   *service.AuthService
	cookie string
}

func NewSessionMiddleware(auth *service.AuthService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{auth: auth, cookie: cookieName}
}

func (m *SessionMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookie)
		if err == nil && token != "" {
			sess, err := m.auth.CurrentUser(c.Request.Context(), token)
			if err == nil && sess != nil {
				c.Set(ContextSession, sess)
				c.Set(ContextSessionToken, token)
			}
		}
		c.Next()
	}
}

// RequireAdmin gates write endpoints behind an authenticated admin session.
func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil || sess.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the resolved session or nil for anonymous requests.
func SessionFrom(c *gin.Context) *session.Session {
	val, exists := c.Get(ContextSession)
	if !exists {
		return nil
	}
	sess, _ := val.(*session.Session)
	return sess
}
