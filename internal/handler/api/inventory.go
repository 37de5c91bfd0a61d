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

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands, inventoryQueries queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

func (h *InventoryHandler) Products(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	products, err := h.inventoryQueries.Products(c.Request.Context(), shop)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load inventory from catalog",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.InventoryProductsResponse{OK: true, Products: products})
}

func (h *InventoryHandler) Locations(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	locations, err := h.inventoryQueries.Locations(c.Request.Context(), shop)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load locations from catalog",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.LocationsResponse{OK: true, Locations: locations})
}

func (h *InventoryHandler) Level(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SetInventoryLevelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if req.InventoryItemID == "" || req.LocationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "inventoryItemId and locationId required",
		})
		return
	}

	quantity, err := h.inventoryQueries.Level(c.Request.Context(), shop, req.InventoryItemID, req.LocationID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load inventory level from catalog",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.InventoryLevelResponse{OK: true, Quantity: quantity})
}

func (h *InventoryHandler) SetLevel(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SetInventoryLevelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.inventoryCommands.SetLevel(c.Request.Context(), shop, req.InventoryItemID, req.LocationID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInventoryFieldsRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "inventoryItemId, locationId and quantity required",
			})
		case errors.Is(err, commands.ErrCatalogRejected):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SetInventoryLevelResponse{OK: true})
}

func (h *InventoryHandler) BulkUpdate(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BulkInventoryUpdateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updates := make([]commands.InventoryQuantityUpdate, len(req.Updates))
	for i, u := range req.Updates {
		updates[i] = commands.InventoryQuantityUpdate{InventoryItemID: u.InventoryItemID, Quantity: u.Quantity}
	}

	updated, err := h.inventoryCommands.BulkSetLevels(c.Request.Context(), shop, req.LocationID, updates)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInventoryFieldsRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "locationId and updates required",
			})
		case errors.Is(err, commands.ErrNoValidUpdates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No valid updates",
			})
		case errors.Is(err, commands.ErrCatalogRejected):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.BulkInventoryUpdateResponse{OK: true, Updated: updated})
}
