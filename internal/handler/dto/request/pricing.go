package request

import (
	"priceflow/internal/domain/pricing"
)

// AdjustmentRequest is shared by the immediate bulk adjust and the
// preview endpoints; both take product ids plus adjustment parameters.
type AdjustmentRequest struct {
	ProductIDs  []string `json:"productIds"`
	AdjustType  string   `json:"adjustType"`
	AmountType  string   `json:"amountType"`
	Percentage  *float64 `json:"percentage,omitempty"`
	FixedAmount *float64 `json:"fixedAmount,omitempty"`
	Rounding    string   `json:"rounding,omitempty"`
}

func (r AdjustmentRequest) ToAdjustment() pricing.Adjustment {
	return pricing.Adjustment{
		AdjustType:  pricing.AdjustType(r.AdjustType),
		AmountType:  pricing.AmountType(r.AmountType),
		Percentage:  r.Percentage,
		FixedAmount: r.FixedAmount,
		Rounding:    pricing.Rounding(r.Rounding),
	}
}
