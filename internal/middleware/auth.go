package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aoyagi/todo-list-api/internal/models"
	"github.com/aoyagi/todo-list-api/internal/repository"
	"github.com/aoyagi/todo-list-api/internal/response"
	"github.com/aoyagi/todo-list-api/internal/token"
)

const contextKeyUser = "current_user"

// RequireAuth validates the bearer token and resolves it to a user before
// any handler runs. A missing, malformed, expired or forged token all abort
// with 401; only the message differs for diagnostics.
func RequireAuth(tokens *token.Maker, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "Not authorized, no token")
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Not authorized, token failed")
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			abortUnauthorized(c, "Not authorized, user not found")
			return
		}

		c.Set(contextKeyUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user resolved by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(contextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, response.ErrorBody{Success: false, Error: message})
	c.Abort()
}
