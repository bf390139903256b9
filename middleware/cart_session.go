package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/emberhollow/storefront/utils"
)

// CartKeyContextKey is where the shopper's cart key lands in the gin context.
const CartKeyContextKey = "cartKey"

const sessionField = "cart_key"

// CartSession attaches a stable cart key to every request via the cookie
// session, minting one on first visit. This identifies the shopper's cart
// only; it is not authentication.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		key, _ := session.Get(sessionField).(string)
		if key == "" {
			key = uuid.New().String()
			session.Set(sessionField, key)
			if err := session.Save(); err != nil {
				utils.LogError("Failed to save cart session: %v", err)
			}
			utils.LogInfo("Minted cart key %s", key)
		}

		c.Set(CartKeyContextKey, key)
		c.Next()
	}
}
