package response

import (
	"priceflow/internal/usecase/queries"
)

type InventoryProductsResponse struct {
	OK       bool                           `json:"ok"`
	Products []queries.InventoryProductView `json:"products"`
}

type LocationsResponse struct {
	OK        bool                   `json:"ok"`
	Locations []queries.LocationView `json:"locations"`
}

type InventoryLevelResponse struct {
	OK       bool `json:"ok"`
	Quantity int  `json:"quantity"`
}

type SetInventoryLevelResponse struct {
	OK bool `json:"ok"`
}

type BulkInventoryUpdateResponse struct {
	OK      bool `json:"ok"`
	Updated int  `json:"updated"`
}
