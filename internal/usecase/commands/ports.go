package commands

import (
	"context"
	"time"

	"priceflow/internal/domain/schedule"

	"github.com/google/uuid"
)

// VariantPrice is a variant's current price as reported by the catalog.
type VariantPrice struct {
	ID    string
	Price string
}

// VariantPriceUpdate is one variant/price pair of a bulk mutation.
type VariantPriceUpdate struct {
	ID    string
	Price string
}

type InventoryQuantityUpdate struct {
	InventoryItemID string
	Quantity        int
}

// UserError mirrors the catalog API's per-item mutation errors.
type UserError struct {
	Field   []string
	Message string
}

// CatalogAPI is the write-side boundary to the external product catalog,
// scoped to a single shop.
type CatalogAPI interface {
	QueryVariantsForProduct(ctx context.Context, productID string) ([]VariantPrice, error)
	ResolveProductForVariant(ctx context.Context, variantID string) (string, error)
	BulkUpdateVariantPrices(ctx context.Context, productID string, variants []VariantPriceUpdate) ([]UserError, error)
	UpdateProductStatus(ctx context.Context, productID, status string) ([]UserError, error)
	SetInventoryQuantities(ctx context.Context, locationID string, updates []InventoryQuantityUpdate) ([]UserError, error)
}

// CatalogClients hands out a shop-authorized catalog client.
type CatalogClients interface {
	For(ctx context.Context, shop string) (CatalogAPI, error)
}

type ScheduleRepository interface {
	Create(ctx context.Context, rec *schedule.Record) (uuid.UUID, error)
	FindDue(ctx context.Context, shop string, now time.Time, limit int32) ([]*schedule.Record, error)
	// ClaimPending transitions PENDING -> RUNNING and clears the error
	// column. Returns false when the row was not PENDING anymore, i.e.
	// another runner pass won the claim.
	ClaimPending(ctx context.Context, id uuid.UUID, shop string) (bool, error)
	MarkDone(ctx context.Context, id uuid.UUID, shop string) error
	MarkFailed(ctx context.Context, id uuid.UUID, shop string, msg string) error
	ShopsWithDue(ctx context.Context, now time.Time) ([]string, error)
}

type SessionStore interface {
	AccessToken(ctx context.Context, shop string) (string, error)
	Upsert(ctx context.Context, shop, accessToken, scope string) error
}
