//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"priceflow/internal/handler/api"
	reqdto "priceflow/internal/handler/dto/request"
	resdto "priceflow/internal/handler/dto/response"
	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"
	"priceflow/tests/common/httptest"
	"priceflow/tests/common/testutil"
	commandsmock "priceflow/tests/mock/commands"
	queriesmock "priceflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/products", withShop(s.handler.List))
	s.router.POST("/api/products/status", withShop(s.handler.UpdateStatus))
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestList() {
	url := "/api/products"

	s.Run("success: returns catalog products", func() {
		products := []queries.ProductView{
			{
				ID:             "gid://shopify/Product/1",
				Title:          "Sample Tee",
				Handle:         "sample-tee",
				Status:         "ACTIVE",
				TotalInventory: 12,
				Image:          &queries.ImageView{URL: "https://cdn.example.com/tee.png"},
			},
		}
		s.mockQueries.EXPECT().List(gomock.Any(), testShop).Return(products, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ListProductsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OK)
		s.Require().Len(response.Products, 1)
		s.Equal("Sample Tee", response.Products[0].Title)
		s.Equal(12, response.Products[0].TotalInventory)
	})

	s.Run("error: 502 when the catalog is unreachable", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), testShop).
			Return(nil, errors.New("connection refused")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to load products")
	})
}

func (s *ProductHandlerTestSuite) TestUpdateStatus() {
	url := "/api/products/status"

	body := func(t *testing.T) map[string]any {
		return testutil.DtoMap(t, reqdto.UpdateProductStatusRequest{
			ProductIDs: []string{"gid://shopify/Product/1", "gid://shopify/Product/2"},
			Status:     "ARCHIVED",
		})
	}

	s.Run("success: reports per-product outcomes", func() {
		report := &commands.StatusReport{
			OK: false,
			Updated: []commands.ProductStatusResult{
				{ID: "gid://shopify/Product/1", Status: "ARCHIVED"},
			},
			Errors: []commands.ProductStatusError{
				{ID: "gid://shopify/Product/2", Message: "Product not found"},
			},
		}
		s.mockCommands.EXPECT().
			UpdateStatus(gomock.Any(), testShop, []string{"gid://shopify/Product/1", "gid://shopify/Product/2"}, "ARCHIVED").
			Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body(s.T()), "")

		var response resdto.UpdateProductStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.OK)
		s.Require().Len(response.Updated, 1)
		s.Equal("ARCHIVED", response.Updated[0].Status)
		s.Require().Len(response.Errors, 1)
		s.Equal("Product not found", response.Errors[0].Message)
	})

	s.Run("error: 400 when no product ids are given", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), testShop, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrNoProductIDs).Times(1)
		b := body(s.T())
		testutil.Field("productIds", []string{})(b)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No product ids")
	})

	s.Run("error: 400 on an unknown status value", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), testShop, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidProductStatus).Times(1)
		b := body(s.T())
		testutil.Field("status", "DELETED")(b)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "DRAFT, ACTIVE, ARCHIVED")
	})

	s.Run("error: 500 on catalog transport failure", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), testShop, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body(s.T()), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
