//go:build unit

package gid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalization(t *testing.T) {
	t.Run("raw ids get the full prefix", func(t *testing.T) {
		assert.Equal(t, "gid://shopify/Product/123", Product("123"))
		assert.Equal(t, "gid://shopify/ProductVariant/456", Variant("456"))
		assert.Equal(t, "gid://shopify/InventoryItem/789", InventoryItem("789"))
		assert.Equal(t, "gid://shopify/Location/1", Location("1"))
	})

	t.Run("idempotent on already-prefixed ids", func(t *testing.T) {
		id := "gid://shopify/Product/123"
		assert.Equal(t, id, Product(id))
		assert.Equal(t, id, Product(Product(id)))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", Product(""))
		assert.Equal(t, "", Variant(""))
	})
}
