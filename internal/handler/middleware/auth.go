package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"priceflow/internal/handler/httperr"
	"priceflow/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ShopAuthMiddleware verifies App Bridge session tokens. They are HS256
// JWTs signed with the app's API secret; the dest claim carries the shop
// domain the token was issued for.
type ShopAuthMiddleware struct {
	apiKey    string
	apiSecret []byte
}

const ctxShopKey = "shop"

func NewShopAuthMiddleware(cfg config.Config) *ShopAuthMiddleware {
	return &ShopAuthMiddleware{
		apiKey:    cfg.Shopify.APIKey,
		apiSecret: []byte(cfg.Shopify.APISecret),
	}
}

func (m *ShopAuthMiddleware) RequireShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrTokenMalformed, "Session token required", nil)
			return
		}

		shop, err := m.verify(token)
		if err != nil {
			slog.Warn("Session token rejected", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session token", nil)
			return
		}

		c.Set(ctxShopKey, shop)
		c.Next()
	}
}

func (m *ShopAuthMiddleware) verify(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (any, error) { return m.apiSecret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithAudience(m.apiKey),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}

	dest, _ := claims["dest"].(string)
	shop := strings.TrimPrefix(dest, "https://")
	if shop == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return shop, nil
}

// GetShop returns the authenticated shop domain set by RequireShop.
func GetShop(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxShopKey)
	if !exists {
		return "", false
	}
	shop, ok := v.(string)
	return shop, ok && shop != ""
}
