package gid

import "strings"

// The Admin API addresses everything by GID (gid://shopify/Type/123).
// Callers may hold either the GID or the bare numeric id; normalization
// is idempotent, so already-prefixed ids pass through untouched.

const prefix = "gid://"

func Product(id string) string {
	return build("Product", id)
}

func Variant(id string) string {
	return build("ProductVariant", id)
}

func InventoryItem(id string) string {
	return build("InventoryItem", id)
}

func Location(id string) string {
	return build("Location", id)
}

func build(kind, id string) string {
	if id == "" {
		return ""
	}
	if strings.HasPrefix(id, prefix) {
		return id
	}
	return prefix + "shopify/" + kind + "/" + id
}
