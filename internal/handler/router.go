package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"priceflow/internal/handler/api"
	"priceflow/internal/handler/middleware"
	"priceflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	scheduleHandler *api.ScheduleHandler,
	pricingHandler *api.PricingHandler,
	productHandler *api.ProductHandler,
	inventoryHandler *api.InventoryHandler,
	shopAuth *middleware.ShopAuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, scheduleHandler, pricingHandler, productHandler, inventoryHandler, shopAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	scheduleHandler *api.ScheduleHandler,
	pricingHandler *api.PricingHandler,
	productHandler *api.ProductHandler,
	inventoryHandler *api.InventoryHandler,
	shopAuth *middleware.ShopAuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(shopAuth.RequireShop())
	{
		schedules := apiGroup.Group("/schedules")
		{
			addRoutes(schedules, []route{
				{Method: http.MethodPost, Path: "", Handler: scheduleHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: scheduleHandler.List},
				{Method: http.MethodPost, Path: "/run", Handler: scheduleHandler.Run},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: productHandler.List},
				{Method: http.MethodPost, Path: "/status", Handler: productHandler.UpdateStatus},
				{Method: http.MethodPost, Path: "/bulk-price-adjust", Handler: pricingHandler.BulkAdjust},
				{Method: http.MethodPost, Path: "/bulk-price-preview", Handler: pricingHandler.Preview},
			})
		}

		inventory := apiGroup.Group("/inventory")
		{
			addRoutes(inventory, []route{
				{Method: http.MethodGet, Path: "/list", Handler: inventoryHandler.Products},
				{Method: http.MethodGet, Path: "/locations", Handler: inventoryHandler.Locations},
				{Method: http.MethodPost, Path: "/level", Handler: inventoryHandler.Level},
				{Method: http.MethodPost, Path: "/update", Handler: inventoryHandler.SetLevel},
				{Method: http.MethodPost, Path: "/update-bulk", Handler: inventoryHandler.BulkUpdate},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
