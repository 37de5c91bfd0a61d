package response

import (
	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"
)

type ListProductsResponse struct {
	OK       bool                  `json:"ok"`
	Products []queries.ProductView `json:"products"`
}

type ProductStatusResultResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ProductStatusErrorResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdateProductStatusResponse struct {
	OK      bool                          `json:"ok"`
	Updated []ProductStatusResultResponse `json:"updated"`
	Errors  []ProductStatusErrorResponse  `json:"errors"`
}

func FromStatusReport(report *commands.StatusReport) *UpdateProductStatusResponse {
	resp := &UpdateProductStatusResponse{
		OK:      report.OK,
		Updated: make([]ProductStatusResultResponse, len(report.Updated)),
		Errors:  make([]ProductStatusErrorResponse, len(report.Errors)),
	}
	for i, u := range report.Updated {
		resp.Updated[i] = ProductStatusResultResponse{ID: u.ID, Status: u.Status}
	}
	for i, e := range report.Errors {
		resp.Errors[i] = ProductStatusErrorResponse{ID: e.ID, Message: e.Message}
	}
	return resp
}
