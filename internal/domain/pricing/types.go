package pricing

import "errors"

var (
	ErrInvalidAdjustType  = errors.New("invalid adjustType (use increase/decrease)")
	ErrInvalidAmountType  = errors.New("invalid amountType (use percentage/fixed)")
	ErrInvalidRounding    = errors.New("invalid rounding option")
	ErrPercentageRequired = errors.New("percentage is required")
	ErrPercentageRange    = errors.New("percentage must be between 0 and 100")
	ErrFixedRequired      = errors.New("fixedAmount is required")
	ErrFixedNegative      = errors.New("fixedAmount must be >= 0")
)

type AdjustType string

const (
	AdjustIncrease AdjustType = "increase"
	AdjustDecrease AdjustType = "decrease"
)

func (t AdjustType) IsValid() bool {
	switch t {
	case AdjustIncrease, AdjustDecrease:
		return true
	default:
		return false
	}
}

type AmountType string

const (
	AmountPercentage AmountType = "percentage"
	AmountFixed      AmountType = "fixed"
)

func (t AmountType) IsValid() bool {
	switch t {
	case AmountPercentage, AmountFixed:
		return true
	default:
		return false
	}
}

type Rounding string

const (
	RoundNone         Rounding = "none"
	RoundNearestWhole Rounding = "nearest_whole"
	RoundDownWhole    Rounding = "down_whole"
	RoundUp99         Rounding = "up_99"
)

func (r Rounding) IsValid() bool {
	switch r {
	case RoundNone, RoundNearestWhole, RoundDownWhole, RoundUp99:
		return true
	default:
		return false
	}
}

// Adjustment describes one bulk price change: direction, amount and rounding.
type Adjustment struct {
	AdjustType  AdjustType
	AmountType  AmountType
	Percentage  *float64
	FixedAmount *float64
	Rounding    Rounding
}

func (a Adjustment) Validate() error {
	if !a.AdjustType.IsValid() {
		return ErrInvalidAdjustType
	}
	if !a.AmountType.IsValid() {
		return ErrInvalidAmountType
	}
	// An absent rounding means "none".
	if a.Rounding != "" && !a.Rounding.IsValid() {
		return ErrInvalidRounding
	}
	if a.AmountType == AmountPercentage {
		if a.Percentage == nil {
			return ErrPercentageRequired
		}
		if *a.Percentage < 0 || *a.Percentage > 100 {
			return ErrPercentageRange
		}
	}
	if a.AmountType == AmountFixed {
		if a.FixedAmount == nil {
			return ErrFixedRequired
		}
		if *a.FixedAmount < 0 {
			return ErrFixedNegative
		}
	}
	return nil
}
