//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"priceflow/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestComputePrice(t *testing.T) {
	type testCase struct {
		name     string
		oldPrice float64
		adj      pricing.Adjustment
		expected float64
	}

	t.Run("percentage adjustments", func(t *testing.T) {
		cases := []testCase{
			{
				name:     "increase by 25 percent",
				oldPrice: 100,
				adj: pricing.Adjustment{
					AdjustType: pricing.AdjustIncrease,
					AmountType: pricing.AmountPercentage,
					Percentage: f64(25),
				},
				expected: 125,
			},
			{
				name:     "decrease by 50 percent",
				oldPrice: 80,
				adj: pricing.Adjustment{
					AdjustType: pricing.AdjustDecrease,
					AmountType: pricing.AmountPercentage,
					Percentage: f64(50),
				},
				expected: 40,
			},
			{
				name:     "zero percent keeps the price",
				oldPrice: 19.99,
				adj: pricing.Adjustment{
					AdjustType: pricing.AdjustIncrease,
					AmountType: pricing.AmountPercentage,
					Percentage: f64(0),
				},
				expected: 19.99,
			},
			{
				name:     "decrease by 100 percent hits zero",
				oldPrice: 49.5,
				adj: pricing.Adjustment{
					AdjustType: pricing.AdjustDecrease,
					AmountType: pricing.AmountPercentage,
					Percentage: f64(100),
				},
				expected: 0,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.InDelta(t, tc.expected, pricing.ComputePrice(tc.oldPrice, tc.adj), 1e-9)
			})
		}
	})

	t.Run("fixed adjustments", func(t *testing.T) {
		cases := []testCase{
			{
				name:     "increase by fixed amount",
				oldPrice: 10,
				adj: pricing.Adjustment{
					AdjustType:  pricing.AdjustIncrease,
					AmountType:  pricing.AmountFixed,
					FixedAmount: f64(2.5),
				},
				expected: 12.5,
			},
			{
				name:     "decrease below zero clamps to zero",
				oldPrice: 5,
				adj: pricing.Adjustment{
					AdjustType:  pricing.AdjustDecrease,
					AmountType:  pricing.AmountFixed,
					FixedAmount: f64(10),
				},
				expected: 0,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.InDelta(t, tc.expected, pricing.ComputePrice(tc.oldPrice, tc.adj), 1e-9)
			})
		}
	})

	t.Run("rounding", func(t *testing.T) {
		cases := []testCase{
			{
				name:     "default rounds to cents",
				oldPrice: 10,
				adj: pricing.Adjustment{
					AdjustType: pricing.AdjustIncrease,
					AmountType: pricing.AmountPercentage,
					Percentage: f64(33.333),
					Rounding:   pricing.RoundNone,
				},
				expected: 13.33,
			},
			{
				name:     "nearest whole rounds up at half",
				oldPrice: 10,
				adj: pricing.Adjustment{
					AdjustType: pricing.AdjustIncrease,
					AmountType: pricing.AmountPercentage,
					Percentage: f64(25),
					Rounding:   pricing.RoundNearestWhole,
				},
				expected: 13,
			},
			{
				name:     "down whole floors",
				oldPrice: 10,
				adj: pricing.Adjustment{
					AdjustType: pricing.AdjustIncrease,
					AmountType: pricing.AmountPercentage,
					Percentage: f64(29),
					Rounding:   pricing.RoundDownWhole,
				},
				expected: 12,
			},
			{
				name:     "up 99 ends at .99",
				oldPrice: 100,
				adj: pricing.Adjustment{
					AdjustType:  pricing.AdjustDecrease,
					AmountType:  pricing.AmountFixed,
					FixedAmount: f64(30),
					Rounding:    pricing.RoundUp99,
				},
				expected: 70.99,
			},
			{
				name:     "up 99 moves a whole price up",
				oldPrice: 10,
				adj: pricing.Adjustment{
					AdjustType: pricing.AdjustIncrease,
					AmountType: pricing.AmountPercentage,
					Percentage: f64(0),
					Rounding:   pricing.RoundUp99,
				},
				expected: 10.99,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.InDelta(t, tc.expected, pricing.ComputePrice(tc.oldPrice, tc.adj), 1e-9)
			})
		}
	})

	t.Run("whole-number rounding always yields integers", func(t *testing.T) {
		adjNearest := pricing.Adjustment{
			AdjustType: pricing.AdjustIncrease,
			AmountType: pricing.AmountPercentage,
			Percentage: f64(7.77),
			Rounding:   pricing.RoundNearestWhole,
		}
		adjDown := adjNearest
		adjDown.Rounding = pricing.RoundDownWhole

		for _, old := range []float64{0, 0.01, 1.49, 9.99, 123.45, 10000} {
			got := pricing.ComputePrice(old, adjNearest)
			assert.Equal(t, math.Trunc(got), got, "nearest_whole must be an integer for %v", old)

			got = pricing.ComputePrice(old, adjDown)
			assert.Equal(t, math.Trunc(got), got, "down_whole must be an integer for %v", old)
		}
	})

	t.Run("never negative", func(t *testing.T) {
		adjs := []pricing.Adjustment{
			{AdjustType: pricing.AdjustDecrease, AmountType: pricing.AmountFixed, FixedAmount: f64(1000)},
			{AdjustType: pricing.AdjustDecrease, AmountType: pricing.AmountPercentage, Percentage: f64(100)},
		}
		for _, adj := range adjs {
			for _, old := range []float64{0, 0.5, 99.99} {
				assert.GreaterOrEqual(t, pricing.ComputePrice(old, adj), 0.0)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		adj := pricing.Adjustment{
			AdjustType: pricing.AdjustIncrease,
			AmountType: pricing.AmountPercentage,
			Percentage: f64(12.5),
			Rounding:   pricing.RoundUp99,
		}
		first := pricing.ComputePrice(19.99, adj)
		for range 10 {
			assert.Equal(t, first, pricing.ComputePrice(19.99, adj))
		}
	})

	t.Run("non-finite input collapses to zero", func(t *testing.T) {
		adj := pricing.Adjustment{
			AdjustType:  pricing.AdjustIncrease,
			AmountType:  pricing.AmountFixed,
			FixedAmount: f64(5),
		}
		assert.InDelta(t, 5, pricing.ComputePrice(math.NaN(), adj), 1e-9)
		assert.InDelta(t, 5, pricing.ComputePrice(math.Inf(1), adj), 1e-9)
	})
}

func TestComputePriceFromString(t *testing.T) {
	adj := pricing.Adjustment{
		AdjustType: pricing.AdjustIncrease,
		AmountType: pricing.AmountPercentage,
		Percentage: f64(25),
	}

	assert.InDelta(t, 125, pricing.ComputePriceFromString("100", adj), 1e-9)
	assert.InDelta(t, 125, pricing.ComputePriceFromString("100.00", adj), 1e-9)

	// Unparseable prices behave like zero.
	assert.InDelta(t, 0, pricing.ComputePriceFromString("abc", adj), 1e-9)
	assert.InDelta(t, 0, pricing.ComputePriceFromString("", adj), 1e-9)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "125", pricing.FormatPrice(125))
	assert.Equal(t, "70.99", pricing.FormatPrice(70.99))
	assert.Equal(t, "0", pricing.FormatPrice(0))
	assert.Equal(t, "12.5", pricing.FormatPrice(12.5))
}

func TestAdjustmentValidate(t *testing.T) {
	type testCase struct {
		name  string
		adj   pricing.Adjustment
		errIs error
	}

	cases := []testCase{
		{
			name: "valid percentage increase",
			adj: pricing.Adjustment{
				AdjustType: pricing.AdjustIncrease,
				AmountType: pricing.AmountPercentage,
				Percentage: f64(25),
			},
		},
		{
			name: "valid fixed decrease with rounding",
			adj: pricing.Adjustment{
				AdjustType:  pricing.AdjustDecrease,
				AmountType:  pricing.AmountFixed,
				FixedAmount: f64(3),
				Rounding:    pricing.RoundUp99,
			},
		},
		{
			name:  "bad adjust type",
			adj:   pricing.Adjustment{AdjustType: "double", AmountType: pricing.AmountFixed, FixedAmount: f64(1)},
			errIs: pricing.ErrInvalidAdjustType,
		},
		{
			name:  "bad amount type",
			adj:   pricing.Adjustment{AdjustType: pricing.AdjustIncrease, AmountType: "points", Percentage: f64(1)},
			errIs: pricing.ErrInvalidAmountType,
		},
		{
			name: "bad rounding",
			adj: pricing.Adjustment{
				AdjustType: pricing.AdjustIncrease,
				AmountType: pricing.AmountPercentage,
				Percentage: f64(1),
				Rounding:   "banker",
			},
			errIs: pricing.ErrInvalidRounding,
		},
		{
			name:  "percentage missing",
			adj:   pricing.Adjustment{AdjustType: pricing.AdjustIncrease, AmountType: pricing.AmountPercentage},
			errIs: pricing.ErrPercentageRequired,
		},
		{
			name: "percentage out of range",
			adj: pricing.Adjustment{
				AdjustType: pricing.AdjustDecrease,
				AmountType: pricing.AmountPercentage,
				Percentage: f64(101),
			},
			errIs: pricing.ErrPercentageRange,
		},
		{
			name:  "fixed amount missing",
			adj:   pricing.Adjustment{AdjustType: pricing.AdjustIncrease, AmountType: pricing.AmountFixed},
			errIs: pricing.ErrFixedRequired,
		},
		{
			name: "fixed amount negative",
			adj: pricing.Adjustment{
				AdjustType:  pricing.AdjustIncrease,
				AmountType:  pricing.AmountFixed,
				FixedAmount: f64(-1),
			},
			errIs: pricing.ErrFixedNegative,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.adj.Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
