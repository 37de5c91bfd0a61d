package queries

import (
	"context"
	"strconv"

	"priceflow/internal/domain/pricing"
	"priceflow/internal/pkg/errs"
)

var ErrNoProductsSelected = errs.New("no products selected")

// Read models over the external catalog; no local persistence backs these.

type ImageView struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

type ProductView struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Handle         string     `json:"handle"`
	Status         string     `json:"status"`
	TotalInventory int        `json:"totalInventory"`
	Image          *ImageView `json:"image,omitempty"`
}

type LocationView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

type InventoryVariantView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	SKU             string `json:"sku,omitempty"`
	InventoryItemID string `json:"inventoryItemId"`
}

type InventoryProductView struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Image    *ImageView             `json:"image,omitempty"`
	Variants []InventoryVariantView `json:"variants"`
}

// VariantSource is a variant as read for preview purposes.
type VariantSource struct {
	ID    string
	Title string
	Price string
	Image *ImageView
}

// ProductSource is a product with its variants as read for preview.
type ProductSource struct {
	ID       string
	Title    string
	Image    *ImageView
	Variants []VariantSource
}

// CatalogReader is the read-side boundary to the external catalog,
// scoped to a single shop.
type CatalogReader interface {
	ListProducts(ctx context.Context, first int) ([]ProductView, error)
	// ProductPreview returns nil (no error) when the product does not exist.
	ProductPreview(ctx context.Context, productID string) (*ProductSource, error)
	ListLocations(ctx context.Context) ([]LocationView, error)
	ListInventoryProducts(ctx context.Context, first int) ([]InventoryProductView, error)
	InventoryLevel(ctx context.Context, inventoryItemID, locationID string) (int, error)
}

type CatalogReaders interface {
	For(ctx context.Context, shop string) (CatalogReader, error)
}

// ---------------------------------------------------------------------------
// Product queries
// ---------------------------------------------------------------------------

type VariantPricePreview struct {
	VariantID    string     `json:"variantId"`
	VariantTitle string     `json:"variantTitle"`
	Image        *ImageView `json:"image,omitempty"`
	OldPrice     float64    `json:"oldPrice"`
	NewPrice     float64    `json:"newPrice"`
}

type ProductPricePreview struct {
	ProductID string                `json:"productId"`
	Title     string                `json:"title"`
	Image     *ImageView            `json:"image,omitempty"`
	Variants  []VariantPricePreview `json:"variants"`
}

type PricePreviewParams struct {
	ProductIDs []string
	Adjustment pricing.Adjustment
}

type ProductQueries interface {
	List(ctx context.Context, shop string) ([]ProductView, error)
	// Preview computes the would-be prices without mutating anything.
	Preview(ctx context.Context, shop string, params PricePreviewParams) ([]*ProductPricePreview, error)
}

type productQueriesImpl struct {
	catalogs CatalogReaders
}

func NewProductQueries(catalogs CatalogReaders) ProductQueries {
	return &productQueriesImpl{catalogs: catalogs}
}

const productPageSize = 50

func (p *productQueriesImpl) List(ctx context.Context, shop string) ([]ProductView, error) {
	reader, err := p.catalogs.For(ctx, shop)
	if err != nil {
		return nil, err
	}
	return reader.ListProducts(ctx, productPageSize)
}

func (p *productQueriesImpl) Preview(ctx context.Context, shop string, params PricePreviewParams) ([]*ProductPricePreview, error) {
	if len(params.ProductIDs) == 0 {
		return nil, ErrNoProductsSelected
	}
	if err := params.Adjustment.Validate(); err != nil {
		return nil, err
	}

	reader, err := p.catalogs.For(ctx, shop)
	if err != nil {
		return nil, err
	}

	previews := make([]*ProductPricePreview, 0, len(params.ProductIDs))
	for _, pid := range params.ProductIDs {
		source, err := reader.ProductPreview(ctx, pid)
		if err != nil {
			return nil, err
		}
		if source == nil {
			previews = append(previews, &ProductPricePreview{
				ProductID: pid,
				Title:     "(Product not found)",
				Variants:  []VariantPricePreview{},
			})
			continue
		}

		variants := make([]VariantPricePreview, len(source.Variants))
		for i, v := range source.Variants {
			old := parsePrice(v.Price)
			variants[i] = VariantPricePreview{
				VariantID:    v.ID,
				VariantTitle: v.Title,
				Image:        v.Image,
				OldPrice:     old,
				NewPrice:     pricing.ComputePrice(old, params.Adjustment),
			}
		}

		previews = append(previews, &ProductPricePreview{
			ProductID: pid,
			Title:     source.Title,
			Image:     source.Image,
			Variants:  variants,
		})
	}

	return previews, nil
}

// parsePrice reads the catalog's string form of a price; unparseable
// values count as 0, matching the calculator's coercion rule.
func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ---------------------------------------------------------------------------
// Inventory queries
// ---------------------------------------------------------------------------

type InventoryQueries interface {
	Products(ctx context.Context, shop string) ([]InventoryProductView, error)
	Locations(ctx context.Context, shop string) ([]LocationView, error)
	Level(ctx context.Context, shop, inventoryItemID, locationID string) (int, error)
}

type inventoryQueriesImpl struct {
	catalogs CatalogReaders
}

func NewInventoryQueries(catalogs CatalogReaders) InventoryQueries {
	return &inventoryQueriesImpl{catalogs: catalogs}
}

func (i *inventoryQueriesImpl) Products(ctx context.Context, shop string) ([]InventoryProductView, error) {
	reader, err := i.catalogs.For(ctx, shop)
	if err != nil {
		return nil, err
	}
	return reader.ListInventoryProducts(ctx, productPageSize)
}

func (i *inventoryQueriesImpl) Locations(ctx context.Context, shop string) ([]LocationView, error) {
	reader, err := i.catalogs.For(ctx, shop)
	if err != nil {
		return nil, err
	}
	return reader.ListLocations(ctx)
}

func (i *inventoryQueriesImpl) Level(ctx context.Context, shop, inventoryItemID, locationID string) (int, error) {
	reader, err := i.catalogs.For(ctx, shop)
	if err != nil {
		return 0, err
	}
	return reader.InventoryLevel(ctx, inventoryItemID, locationID)
}
