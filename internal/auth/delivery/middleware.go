package delivery

import (
	"net/http"

	authdomain "github.com/albertomonterom/vinkula-backend/internal/auth/domain"
	"github.com/albertomonterom/vinkula-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware verifies the bearer credential before any handler runs
// and stores the decoded principal in the request context.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := authUsecase.ValidateToken(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireDestinationWriter enforces the destination-write role policy.
// Must run after AuthMiddleware.
func RequireDestinationWriter() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
			c.Abort()
			return
		}
		if !authdomain.CanWriteDestination(principal) {
			c.JSON(http.StatusForbidden, gin.H{"message": "role not allowed to manage destinations"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal stored by AuthMiddleware.
func GetPrincipal(c *gin.Context) (authdomain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return authdomain.Principal{}, false
	}
	principal, ok := v.(authdomain.Principal)
	return principal, ok
}
