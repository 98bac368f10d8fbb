package middlewares

import (
	"net/http"

	"gin-shop/models"

	"github.com/gin-gonic/gin"
)

// AdminOnly assumes AuthMiddleware ran first and left the user in the
// context. The admin flag is read from the user row, never from the token.
func AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if !userModel.IsAdmin {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}
