package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// IdentityKey is the gin context key the gate stores the resolved user under.
const IdentityKey = "currentUser"

// Protect builds the authentication gate: extract a token from the bearer
// header or the jwt cookie, verify it statelessly, resolve the identity and
// check it against the password-change time. Every rejection answers with the
// same 401 body; the specific sub-check only reaches the log.
func Protect(tokenSvc domain.TokenService, userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			reject(c, "no credentials")
			return
		}

		claims, err := tokenSvc.Validate(token)
		if err != nil {
			reject(c, "invalid token: "+err.Error())
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			reject(c, "unknown identity")
			return
		}

		if user.PasswordChangedAfter(claims.IssuedAt) {
			reject(c, "stale password")
			return
		}

		c.Set(IdentityKey, user)
		c.Next()
	}
}

// RestrictTo is the second, composable gate: it assumes Protect already ran
// and rejects identities whose role is not in the allowed set.
func RestrictTo(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !allowed[user.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "fail",
				"message": domain.ErrForbidden.Message,
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity the gate attached to the request, or nil
// outside protected routes.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie("jwt"); err == nil {
		return cookie
	}
	return ""
}

func reject(c *gin.Context, reason string) {
	log.Printf("auth gate rejected %s %s: %s", c.Request.Method, c.Request.URL.Path, reason)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "fail",
		"message": domain.ErrNotLoggedIn.Message,
	})
}
