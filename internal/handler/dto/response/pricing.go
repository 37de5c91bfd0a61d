package response

import (
	"fmt"

	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"
)

type ProductAdjustResultResponse struct {
	ProductID string `json:"productId"`
	Updated   int    `json:"updated"`
	Note      string `json:"note,omitempty"`
}

type UserErrorResponse struct {
	Field   []string `json:"field,omitempty"`
	Message string   `json:"message"`
}

type ProductAdjustErrorResponse struct {
	ProductID  string              `json:"productId"`
	Message    string              `json:"message"`
	UserErrors []UserErrorResponse `json:"userErrors,omitempty"`
}

type BulkAdjustResponse struct {
	OK      bool                          `json:"ok"`
	Message string                        `json:"message"`
	Results []ProductAdjustResultResponse `json:"results"`
	Errors  []ProductAdjustErrorResponse  `json:"errors"`
}

func FromBulkAdjustReport(report *commands.BulkAdjustReport) *BulkAdjustResponse {
	resp := &BulkAdjustResponse{
		OK:      report.OK,
		Results: make([]ProductAdjustResultResponse, len(report.Results)),
		Errors:  make([]ProductAdjustErrorResponse, len(report.Errors)),
	}
	for i, r := range report.Results {
		resp.Results[i] = ProductAdjustResultResponse{ProductID: r.ProductID, Updated: r.Updated, Note: r.Note}
	}
	for i, e := range report.Errors {
		entry := ProductAdjustErrorResponse{ProductID: e.ProductID, Message: e.Message}
		for _, ue := range e.UserErrors {
			entry.UserErrors = append(entry.UserErrors, UserErrorResponse{Field: ue.Field, Message: ue.Message})
		}
		resp.Errors[i] = entry
	}
	resp.Message = fmt.Sprintf("Updated %d of %d products", len(report.Results), len(report.Results)+len(report.Errors))
	return resp
}

type PricePreviewResponse struct {
	OK       bool                           `json:"ok"`
	Products []*queries.ProductPricePreview `json:"products"`
}
