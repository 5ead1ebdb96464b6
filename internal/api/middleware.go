package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fitforge/plan-generator/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Context and header keys
const (
	ContextUserIDKey    = "userID"
	RequestIDHeader     = "X-Request-ID"
	APIKeyHeader        = "X-API-Key"
	ContextRequestIDKey = "requestID"
)

// jwtClaims is the payload we expect from the upstream identity service.
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RequestIDMiddleware tags every request with an id for log correlation,
// honouring an id supplied by the caller.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// AuthMiddleware builds the authentication middleware for the configured
// mode: "jwt" validates HMAC bearer tokens, "api_key" compares a header
// against a bcrypt hash from config, "none" lets everything through (dev).
func AuthMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	switch cfg.Mode {
	case "jwt":
		return jwtAuth(cfg.JWTSecret)
	case "api_key":
		return apiKeyAuth(cfg.APIKeyHash)
	default:
		return func(c *gin.Context) { c.Next() }
	}
}

func jwtAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}
		tokenString := parts[1]

		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, fmt.Sprintf("Invalid token: %v", err))
			}
			return
		}

		if !token.Valid || claims.UserID == "" {
			abortWithError(c, http.StatusUnauthorized, "Invalid token or missing claims")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

func apiKeyAuth(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			abortWithError(c, http.StatusUnauthorized, "API key is missing")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
			abortWithError(c, http.StatusUnauthorized, "Invalid API key")
			return
		}
		c.Next()
	}
}
