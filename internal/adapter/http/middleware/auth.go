package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"swapcred/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const callerIDKey = "auth.callerID"

// Claims carries the caller identity. There is deliberately no admin flag in
// the token: admin capability is re-checked against the user directory on
// every privileged call.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// RequireAuth validates the bearer token and stores the caller id in the
// request context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid Authorization header format")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		callerID := strings.TrimSpace(claims.UserID)
		if callerID == "" {
			callerID = strings.TrimSpace(claims.Subject)
		}
		if callerID == "" {
			abortUnauthorized(c, "Token carries no caller identity")
			return
		}

		c.Set(callerIDKey, callerID)
		c.Next()
	}
}

// SetCallerID stores the caller id the way RequireAuth does. Used by tests
// and by any future auth scheme that resolves identity differently.
func SetCallerID(c *gin.Context, id string) {
	c.Set(callerIDKey, id)
}

// CallerID returns the authenticated caller id, or "" before RequireAuth ran.
func CallerID(c *gin.Context) string {
	v, ok := c.Get(callerIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
