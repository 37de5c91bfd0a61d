package request

type UpdateProductStatusRequest struct {
	ProductIDs []string `json:"productIds"`
	Status     string   `json:"status"`
}
