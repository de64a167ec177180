package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identityapp "github.com/ongcloud/backend/internal/application/identity"
)

// ActorKey is the gin context key holding the resolved Actor.
const ActorKey = "actor"

// ActorMiddleware loads the acting user behind the validated token. It runs
// after JWTAuthMiddleware and rejects tokens whose subject no longer maps to
// a stored user, so deleted accounts cannot keep using old tokens.
func ActorMiddleware(authService *identityapp.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := GetJWTSubject(c)
		if subject == "" {
			// Public path, nothing to resolve.
			c.Next()
			return
		}

		actor, err := authService.ResolveActor(c.Request.Context(), subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_UNAUTHORIZED",
					"message": "Could not validate credentials",
				},
			})
			return
		}

		c.Set(ActorKey, *actor)
		c.Next()
	}
}

// GetActor retrieves the resolved Actor from gin.Context.
func GetActor(c *gin.Context) (identityapp.Actor, bool) {
	if v, exists := c.Get(ActorKey); exists {
		if actor, ok := v.(identityapp.Actor); ok {
			return actor, true
		}
	}
	return identityapp.Actor{}, false
}
