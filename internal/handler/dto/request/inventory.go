package request

type SetInventoryLevelRequest struct {
	InventoryItemID string `json:"inventoryItemId"`
	LocationID      string `json:"locationId"`
	Quantity        int    `json:"quantity"`
}

type BulkInventoryUpdateRequest struct {
	LocationID string                 `json:"locationId"`
	Updates    []InventoryUpdateEntry `json:"updates"`
}

type InventoryUpdateEntry struct {
	InventoryItemID string `json:"inventoryItemId"`
	Quantity        int    `json:"quantity"`
}
