package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "priceflow/internal/handler/dto/request"
	resdto "priceflow/internal/handler/dto/response"
	"priceflow/internal/handler/middleware"
	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
	scheduleRunner   commands.ScheduleRunner
	scheduleQueries  queries.ScheduleQueries
}

func NewScheduleHandler(
	scheduleCommands commands.ScheduleCommands,
	scheduleRunner commands.ScheduleRunner,
	scheduleQueries queries.ScheduleQueries,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleCommands: scheduleCommands,
		scheduleRunner:   scheduleRunner,
		scheduleQueries:  scheduleQueries,
	}
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.scheduleCommands.Create(c.Request.Context(), shop, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrScheduleDetailsMissing):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Schedule details missing (changeMode=later with runAtIso required)",
			})
		case errors.Is(err, commands.ErrItemsRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Items required (variantId + newPrice)",
			})
		case errors.Is(err, commands.ErrInvalidRunAt):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid runAtIso",
			})
		case errors.Is(err, commands.ErrInvalidRevertAt):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid revertAtIso",
			})
		case errors.Is(err, commands.ErrRevertBeforeRunAt):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "revertAtIso must be after runAtIso",
			})
		case errors.Is(err, commands.ErrVariantNotResolved):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Could not resolve product for one or more variants",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateScheduleResponse{OK: true, ID: id})
}

func (h *ScheduleHandler) List(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		// An explicit value clamps to at least 1; only an absent
		// param falls through to the query layer's default.
		if n < 1 {
			n = 1
		}
		limit = n
	}

	var status *string
	if raw := c.Query("status"); raw != "" {
		status = &raw
	}

	summaries, err := h.scheduleQueries.List(c.Request.Context(), shop, limit, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ListSchedulesResponse{OK: true, Schedules: summaries})
}

func (h *ScheduleHandler) Run(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	report, err := h.scheduleRunner.RunDue(c.Request.Context(), shop)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRunReport(report))
}
