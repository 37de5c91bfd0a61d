package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"priceflow/internal/infra"
	"priceflow/internal/pkg/config"
	"priceflow/internal/pkg/gid"
	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"
)

// Clients builds per-shop Admin GraphQL clients. The shop's access token
// comes from the session store; the HTTP client is shared.
type Clients struct {
	cfg      config.ShopifyConfig
	sessions commands.SessionStore
	http     *http.Client
}

func NewClients(cfg config.Config, sessions commands.SessionStore) *Clients {
	return &Clients{
		cfg:      cfg.Shopify,
		sessions: sessions,
		http:     &http.Client{Timeout: cfg.Shopify.Timeout},
	}
}

func (c *Clients) client(ctx context.Context, shop string) (*client, error) {
	token, err := c.sessions.AccessToken(ctx, shop)
	if err != nil {
		return nil, err
	}
	return &client{
		shop:    shop,
		token:   token,
		version: c.cfg.APIVersion,
		http:    c.http,
	}, nil
}

// CommandClients adapts Clients to the write-side boundary.
type CommandClients struct {
	clients *Clients
}

func NewCommandClients(clients *Clients) *CommandClients {
	return &CommandClients{clients: clients}
}

func (c *CommandClients) For(ctx context.Context, shop string) (commands.CatalogAPI, error) {
	return c.clients.client(ctx, shop)
}

// ReaderClients adapts Clients to the read-side boundary.
type ReaderClients struct {
	clients *Clients
}

func NewReaderClients(clients *Clients) *ReaderClients {
	return &ReaderClients{clients: clients}
}

func (c *ReaderClients) For(ctx context.Context, shop string) (queries.CatalogReader, error) {
	return c.clients.client(ctx, shop)
}

type client struct {
	shop    string
	token   string
	version string
	http    *http.Client
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// do posts one GraphQL document and decodes the data envelope into out.
// Top-level GraphQL errors are joined into a single upstream error.
func (c *client) do(ctx context.Context, query string, variables map[string]any, out any) error {
	url := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.shop, c.version)

	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to encode graphql request", err, infra.KindUpstream)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return infra.WrapRepoErr("failed to build catalog request", err, infra.KindUpstream)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapRepoErr("catalog request failed", err, infra.KindUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return infra.WrapRepoErr(fmt.Sprintf("catalog returned status %d", resp.StatusCode), nil, infra.KindUpstream)
	}

	var envelope graphqlEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return infra.WrapRepoErr("failed to decode catalog response", err, infra.KindUpstream)
	}

	if len(envelope.Errors) > 0 {
		msgs := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			msgs[i] = e.Message
		}
		return infra.WrapRepoErr(strings.Join(msgs, ", "), nil, infra.KindUpstream)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return infra.WrapRepoErr("failed to decode catalog data", err, infra.KindUpstream)
		}
	}
	return nil
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

func toUserErrors(in []userError) []commands.UserError {
	if len(in) == 0 {
		return nil
	}
	out := make([]commands.UserError, len(in))
	for i, ue := range in {
		out[i] = commands.UserError{Field: ue.Field, Message: ue.Message}
	}
	return out
}

type imageNode struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

func toImageView(img *imageNode) *queries.ImageView {
	if img == nil || img.URL == "" {
		return nil
	}
	return &queries.ImageView{URL: img.URL, AltText: img.AltText}
}

// ---------------------------------------------------------------------------
// Write side (commands.CatalogAPI)
// ---------------------------------------------------------------------------

const getProductVariantsQuery = `
  query GetProductVariants($id: ID!) {
    product(id: $id) {
      id
      title
      variants(first: 250) {
        nodes {
          id
          price
        }
      }
    }
  }`

func (c *client) QueryVariantsForProduct(ctx context.Context, productID string) ([]commands.VariantPrice, error) {
	var data struct {
		Product *struct {
			ID       string `json:"id"`
			Variants struct {
				Nodes []struct {
					ID    string `json:"id"`
					Price string `json:"price"`
				} `json:"nodes"`
			} `json:"variants"`
		} `json:"product"`
	}

	if err := c.do(ctx, getProductVariantsQuery, map[string]any{"id": gid.Product(productID)}, &data); err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}

	variants := make([]commands.VariantPrice, len(data.Product.Variants.Nodes))
	for i, v := range data.Product.Variants.Nodes {
		variants[i] = commands.VariantPrice{ID: v.ID, Price: v.Price}
	}
	return variants, nil
}

const resolveVariantProductQuery = `
  query ResolveVariantProduct($id: ID!) {
    productVariant(id: $id) {
      id
      product {
        id
      }
    }
  }`

func (c *client) ResolveProductForVariant(ctx context.Context, variantID string) (string, error) {
	var data struct {
		ProductVariant *struct {
			ID      string `json:"id"`
			Product struct {
				ID string `json:"id"`
			} `json:"product"`
		} `json:"productVariant"`
	}

	if err := c.do(ctx, resolveVariantProductQuery, map[string]any{"id": gid.Variant(variantID)}, &data); err != nil {
		return "", err
	}
	if data.ProductVariant == nil || data.ProductVariant.Product.ID == "" {
		return "", infra.WrapRepoErr("variant not found", nil, infra.KindNotFound)
	}
	return data.ProductVariant.Product.ID, nil
}

const variantsBulkUpdateMutation = `
  mutation VariantsBulkUpdate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
    productVariantsBulkUpdate(productId: $productId, variants: $variants) {
      productVariants {
        id
        price
      }
      userErrors {
        field
        message
      }
    }
  }`

func (c *client) BulkUpdateVariantPrices(ctx context.Context, productID string, variants []commands.VariantPriceUpdate) ([]commands.UserError, error) {
	inputs := make([]map[string]any, len(variants))
	for i, v := range variants {
		inputs[i] = map[string]any{
			"id":    gid.Variant(v.ID),
			"price": v.Price,
		}
	}

	var data struct {
		ProductVariantsBulkUpdate struct {
			UserErrors []userError `json:"userErrors"`
		} `json:"productVariantsBulkUpdate"`
	}

	vars := map[string]any{
		"productId": gid.Product(productID),
		"variants":  inputs,
	}
	if err := c.do(ctx, variantsBulkUpdateMutation, vars, &data); err != nil {
		return nil, err
	}
	return toUserErrors(data.ProductVariantsBulkUpdate.UserErrors), nil
}

const productUpdateStatusMutation = `
  mutation UpdateProduct($product: ProductUpdateInput!) {
    productUpdate(product: $product) {
      product {
        id
        status
      }
      userErrors {
        field
        message
      }
    }
  }`

func (c *client) UpdateProductStatus(ctx context.Context, productID, status string) ([]commands.UserError, error) {
	var data struct {
		ProductUpdate struct {
			UserErrors []userError `json:"userErrors"`
		} `json:"productUpdate"`
	}

	vars := map[string]any{
		"product": map[string]any{
			"id":     gid.Product(productID),
			"status": status,
		},
	}
	if err := c.do(ctx, productUpdateStatusMutation, vars, &data); err != nil {
		return nil, err
	}
	return toUserErrors(data.ProductUpdate.UserErrors), nil
}

const inventorySetQuantitiesMutation = `
  mutation SetQty($input: InventorySetQuantitiesInput!) {
    inventorySetQuantities(input: $input) {
      inventoryAdjustmentGroup {
        id
      }
      userErrors {
        field
        message
      }
    }
  }`

func (c *client) SetInventoryQuantities(ctx context.Context, locationID string, updates []commands.InventoryQuantityUpdate) ([]commands.UserError, error) {
	quantities := make([]map[string]any, len(updates))
	for i, u := range updates {
		quantities[i] = map[string]any{
			"inventoryItemId": gid.InventoryItem(u.InventoryItemID),
			"locationId":      gid.Location(locationID),
			"quantity":        u.Quantity,
		}
	}

	var data struct {
		InventorySetQuantities struct {
			UserErrors []userError `json:"userErrors"`
		} `json:"inventorySetQuantities"`
	}

	vars := map[string]any{
		"input": map[string]any{
			"name":                  "available",
			"reason":                "correction",
			"ignoreCompareQuantity": true,
			"quantities":            quantities,
		},
	}
	if err := c.do(ctx, inventorySetQuantitiesMutation, vars, &data); err != nil {
		return nil, err
	}
	return toUserErrors(data.InventorySetQuantities.UserErrors), nil
}

// ---------------------------------------------------------------------------
// Read side (queries.CatalogReader)
// ---------------------------------------------------------------------------

const listProductsQuery = `
  query ListProducts($first: Int!) {
    products(first: $first) {
      nodes {
        id
        title
        handle
        status
        totalInventory
        images(first: 1) {
          nodes {
            url
            altText
          }
        }
      }
    }
  }`

func (c *client) ListProducts(ctx context.Context, first int) ([]queries.ProductView, error) {
	var data struct {
		Products struct {
			Nodes []struct {
				ID             string `json:"id"`
				Title          string `json:"title"`
				Handle         string `json:"handle"`
				Status         string `json:"status"`
				TotalInventory int    `json:"totalInventory"`
				Images         struct {
					Nodes []imageNode `json:"nodes"`
				} `json:"images"`
			} `json:"nodes"`
		} `json:"products"`
	}

	if err := c.do(ctx, listProductsQuery, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}

	products := make([]queries.ProductView, len(data.Products.Nodes))
	for i, n := range data.Products.Nodes {
		var img *imageNode
		if len(n.Images.Nodes) > 0 {
			img = &n.Images.Nodes[0]
		}
		products[i] = queries.ProductView{
			ID:             n.ID,
			Title:          n.Title,
			Handle:         n.Handle,
			Status:         n.Status,
			TotalInventory: n.TotalInventory,
			Image:          toImageView(img),
		}
	}
	return products, nil
}

const productPreviewQuery = `
  query GetProductPreview($id: ID!) {
    product(id: $id) {
      id
      title
      featuredImage {
        url
        altText
      }
      variants(first: 100) {
        nodes {
          id
          title
          price
          image {
            url
            altText
          }
        }
      }
    }
  }`

func (c *client) ProductPreview(ctx context.Context, productID string) (*queries.ProductSource, error) {
	var data struct {
		Product *struct {
			ID            string     `json:"id"`
			Title         string     `json:"title"`
			FeaturedImage *imageNode `json:"featuredImage"`
			Variants      struct {
				Nodes []struct {
					ID    string     `json:"id"`
					Title string     `json:"title"`
					Price string     `json:"price"`
					Image *imageNode `json:"image"`
				} `json:"nodes"`
			} `json:"variants"`
		} `json:"product"`
	}

	if err := c.do(ctx, productPreviewQuery, map[string]any{"id": gid.Product(productID)}, &data); err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, nil
	}

	source := &queries.ProductSource{
		ID:    data.Product.ID,
		Title: data.Product.Title,
		Image: toImageView(data.Product.FeaturedImage),
	}
	for _, v := range data.Product.Variants.Nodes {
		source.Variants = append(source.Variants, queries.VariantSource{
			ID:    v.ID,
			Title: v.Title,
			Price: v.Price,
			Image: toImageView(v.Image),
		})
	}
	return source, nil
}

const listLocationsQuery = `
  query ListLocations {
    locations(first: 50) {
      nodes {
        id
        name
        isActive
      }
    }
  }`

func (c *client) ListLocations(ctx context.Context) ([]queries.LocationView, error) {
	var data struct {
		Locations struct {
			Nodes []struct {
				ID       string `json:"id"`
				Name     string `json:"name"`
				IsActive bool   `json:"isActive"`
			} `json:"nodes"`
		} `json:"locations"`
	}

	if err := c.do(ctx, listLocationsQuery, nil, &data); err != nil {
		return nil, err
	}

	locations := make([]queries.LocationView, len(data.Locations.Nodes))
	for i, n := range data.Locations.Nodes {
		locations[i] = queries.LocationView{ID: n.ID, Name: n.Name, IsActive: n.IsActive}
	}
	return locations, nil
}

const inventoryProductsQuery = `
  query InventoryProducts($first: Int!) {
    products(first: $first) {
      nodes {
        id
        title
        featuredImage {
          url
          altText
        }
        variants(first: 50) {
          nodes {
            id
            title
            sku
            inventoryItem {
              id
            }
          }
        }
      }
    }
  }`

func (c *client) ListInventoryProducts(ctx context.Context, first int) ([]queries.InventoryProductView, error) {
	var data struct {
		Products struct {
			Nodes []struct {
				ID            string     `json:"id"`
				Title         string     `json:"title"`
				FeaturedImage *imageNode `json:"featuredImage"`
				Variants      struct {
					Nodes []struct {
						ID            string `json:"id"`
						Title         string `json:"title"`
						SKU           string `json:"sku"`
						InventoryItem struct {
							ID string `json:"id"`
						} `json:"inventoryItem"`
					} `json:"nodes"`
				} `json:"variants"`
			} `json:"nodes"`
		} `json:"products"`
	}

	if err := c.do(ctx, inventoryProductsQuery, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}

	products := make([]queries.InventoryProductView, len(data.Products.Nodes))
	for i, n := range data.Products.Nodes {
		view := queries.InventoryProductView{
			ID:       n.ID,
			Title:    n.Title,
			Image:    toImageView(n.FeaturedImage),
			Variants: make([]queries.InventoryVariantView, len(n.Variants.Nodes)),
		}
		for j, v := range n.Variants.Nodes {
			view.Variants[j] = queries.InventoryVariantView{
				ID:              v.ID,
				Title:           v.Title,
				SKU:             v.SKU,
				InventoryItemID: v.InventoryItem.ID,
			}
		}
		products[i] = view
	}
	return products, nil
}

const inventoryLevelQuery = `
  query GetInventoryLevel($inventoryItemId: ID!, $locationId: ID!) {
    inventoryItem(id: $inventoryItemId) {
      id
      inventoryLevel(locationId: $locationId) {
        quantities(names: ["available"]) {
          name
          quantity
        }
      }
    }
  }`

func (c *client) InventoryLevel(ctx context.Context, inventoryItemID, locationID string) (int, error) {
	var data struct {
		InventoryItem *struct {
			ID             string `json:"id"`
			InventoryLevel *struct {
				Quantities []struct {
					Name     string `json:"name"`
					Quantity int    `json:"quantity"`
				} `json:"quantities"`
			} `json:"inventoryLevel"`
		} `json:"inventoryItem"`
	}

	vars := map[string]any{
		"inventoryItemId": gid.InventoryItem(inventoryItemID),
		"locationId":      gid.Location(locationID),
	}
	if err := c.do(ctx, inventoryLevelQuery, vars, &data); err != nil {
		return 0, err
	}

	if data.InventoryItem == nil || data.InventoryItem.InventoryLevel == nil {
		return 0, nil
	}
	for _, q := range data.InventoryItem.InventoryLevel.Quantities {
		if q.Name == "available" {
			return q.Quantity, nil
		}
	}
	return 0, nil
}
