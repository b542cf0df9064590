package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// companyClaims are the claims minted by the external identity service.
// The token is scoped to a single company; company switching happens by
// requesting a new token, never by ambient state inside this service.
type companyClaims struct {
	CompanyID string `json:"cid"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware handler that validates bearer
// tokens. Two credentials are accepted: a JWT from the identity service
// (company-scoped via the cid claim), or the machine API key checked against
// its bcrypt hash from config (full scope, for batch integrations).
func AuthMiddleware(jwtSecret, apiKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if apiKey := c.GetHeader("X-Api-Key"); apiKey != "" && apiKeyHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(apiKey)); err == nil {
				// Machine credential: scope check degrades to the company in
				// the request path.
				ctx := context.WithValue(c.Request.Context(), tokenCompanyKey, c.Param("company_id"))
				ctx = context.WithValue(ctx, tokenSubjectKey, "api-key")
				c.Request = c.Request.WithContext(ctx)
				c.Next()
				return
			}
			logger.Warn("API key rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims := &companyClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			logger.Warn("Token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.CompanyID == "" {
			logger.Warn("Token carries no company scope")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token carries no company scope"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), tokenCompanyKey, claims.CompanyID)
		ctx = context.WithValue(ctx, tokenSubjectKey, claims.Subject)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
