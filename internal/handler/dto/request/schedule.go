package request

import (
	"priceflow/internal/domain/schedule"
)

// CreateScheduleRequest mirrors the stored payload shape: the timing
// block, the adjustment parameters, and the precomputed per-variant
// prices captured client-side at preview time.
type CreateScheduleRequest struct {
	Schedule    schedule.Spec   `json:"schedule" binding:"required"`
	ProductIDs  []string        `json:"productIds,omitempty"`
	AdjustType  string          `json:"adjustType,omitempty"`
	AmountType  string          `json:"amountType,omitempty"`
	Percentage  *float64        `json:"percentage,omitempty"`
	FixedAmount *float64        `json:"fixedAmount,omitempty"`
	Rounding    string          `json:"rounding,omitempty"`
	Items       []schedule.Item `json:"items"`
}

func (r CreateScheduleRequest) ToPayload() schedule.Payload {
	return schedule.Payload{
		Schedule:    r.Schedule,
		ProductIDs:  r.ProductIDs,
		AdjustType:  r.AdjustType,
		AmountType:  r.AmountType,
		Percentage:  r.Percentage,
		FixedAmount: r.FixedAmount,
		Rounding:    r.Rounding,
		Items:       r.Items,
	}
}
