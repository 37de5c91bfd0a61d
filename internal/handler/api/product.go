package api

import (
	"errors"
	"net/http"

	reqdto "priceflow/internal/handler/dto/request"
	resdto "priceflow/internal/handler/dto/response"
	"priceflow/internal/handler/middleware"
	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productCommands commands.ProductCommands
	productQueries  queries.ProductQueries
}

func NewProductHandler(productCommands commands.ProductCommands, productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{
		productCommands: productCommands,
		productQueries:  productQueries,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	products, err := h.productQueries.List(c.Request.Context(), shop)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load products from catalog",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ListProductsResponse{OK: true, Products: products})
}

func (h *ProductHandler) UpdateStatus(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateProductStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	report, err := h.productCommands.UpdateStatus(c.Request.Context(), shop, req.ProductIDs, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoProductIDs):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No product ids provided",
			})
		case errors.Is(err, commands.ErrInvalidProductStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Status must be one of DRAFT, ACTIVE, ARCHIVED",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatusReport(report))
}
