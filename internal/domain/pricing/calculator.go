package pricing

import (
	"math"
	"strconv"
)

// ComputePrice derives the new price for a variant from its old price and
// an adjustment. Pure and deterministic; never returns a negative value.
func ComputePrice(oldPrice float64, adj Adjustment) float64 {
	oldVal := coerce(oldPrice)

	next := oldVal
	switch adj.AmountType {
	case AmountPercentage:
		pct := 0.0
		if adj.Percentage != nil {
			pct = coerce(*adj.Percentage) / 100
		}
		if adj.AdjustType == AdjustIncrease {
			next = oldVal * (1 + pct)
		} else {
			next = oldVal * (1 - pct)
		}
	default:
		amt := 0.0
		if adj.FixedAmount != nil {
			amt = coerce(*adj.FixedAmount)
		}
		if adj.AdjustType == AdjustIncrease {
			next = oldVal + amt
		} else {
			next = oldVal - amt
		}
	}

	if next < 0 {
		next = 0
	}

	return round(next, adj.Rounding)
}

// ComputePriceFromString is ComputePrice over the catalog's string form of
// a price. Unparseable input is treated as 0, matching coerce.
func ComputePriceFromString(oldPrice string, adj Adjustment) float64 {
	v, err := strconv.ParseFloat(oldPrice, 64)
	if err != nil {
		v = 0
	}
	return ComputePrice(v, adj)
}

// FormatPrice renders a computed price the way the catalog API expects it:
// no exponent, no trailing zeros ("125", "70.99").
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round(v float64, r Rounding) float64 {
	switch r {
	case RoundNearestWhole:
		return math.Round(v)
	case RoundDownWhole:
		return math.Floor(v)
	case RoundUp99:
		// floor keeps the whole part before adding .99, so a price
		// already at a whole value moves up (10.00 -> 10.99).
		return roundCents(math.Floor(v) + 0.99)
	default:
		return roundCents(v)
	}
}

// roundCents rounds half-up at the cent.
func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
