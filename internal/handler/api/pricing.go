package api

import (
	"errors"
	"net/http"

	"priceflow/internal/domain/pricing"
	reqdto "priceflow/internal/handler/dto/request"
	resdto "priceflow/internal/handler/dto/response"
	"priceflow/internal/handler/middleware"
	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingCommands commands.PricingCommands
	productQueries  queries.ProductQueries
}

func NewPricingHandler(pricingCommands commands.PricingCommands, productQueries queries.ProductQueries) *PricingHandler {
	return &PricingHandler{
		pricingCommands: pricingCommands,
		productQueries:  productQueries,
	}
}

func (h *PricingHandler) BulkAdjust(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AdjustmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.BulkAdjustParams{
		ProductIDs: req.ProductIDs,
		Adjustment: req.ToAdjustment(),
	}

	report, err := h.pricingCommands.BulkAdjust(c.Request.Context(), shop, params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoProductsSelected):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No products selected",
			})
		case isAdjustmentError(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBulkAdjustReport(report))
}

func (h *PricingHandler) Preview(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AdjustmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := queries.PricePreviewParams{
		ProductIDs: req.ProductIDs,
		Adjustment: req.ToAdjustment(),
	}

	products, err := h.productQueries.Preview(c.Request.Context(), shop, params)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNoProductsSelected):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No products selected",
			})
		case isAdjustmentError(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PricePreviewResponse{OK: true, Products: products})
}

// isAdjustmentError reports whether err is one of the adjustment
// parameter validation failures, all of which map to a 400.
func isAdjustmentError(err error) bool {
	for _, target := range []error{
		pricing.ErrInvalidAdjustType,
		pricing.ErrInvalidAmountType,
		pricing.ErrInvalidRounding,
		pricing.ErrPercentageRequired,
		pricing.ErrPercentageRange,
		pricing.ErrFixedRequired,
		pricing.ErrFixedNegative,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
