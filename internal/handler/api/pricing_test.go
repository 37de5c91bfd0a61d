//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"priceflow/internal/domain/pricing"
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

type PricingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPricingCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPricingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/products/bulk-price-adjust", withShop(s.handler.BulkAdjust))
	s.router.POST("/api/products/bulk-price-preview", withShop(s.handler.Preview))
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func validAdjustmentBody(t *testing.T) map[string]any {
	pct := 10.0
	return testutil.DtoMap(t, reqdto.AdjustmentRequest{
		ProductIDs: []string{"gid://shopify/Product/1", "gid://shopify/Product/2"},
		AdjustType: string(pricing.AdjustIncrease),
		AmountType: string(pricing.AmountPercentage),
		Percentage: &pct,
	})
}

func (s *PricingHandlerTestSuite) TestBulkAdjust() {
	url := "/api/products/bulk-price-adjust"

	s.Run("success: partial report comes back as 200", func() {
		report := &commands.BulkAdjustReport{
			OK: false,
			Results: []commands.ProductAdjustResult{
				{ProductID: "gid://shopify/Product/1", Updated: 3},
			},
			Errors: []commands.ProductAdjustError{
				{
					ProductID:  "gid://shopify/Product/2",
					Message:    "Price too low",
					UserErrors: []commands.UserError{{Field: []string{"price"}, Message: "Price too low"}},
				},
			},
		}
		s.mockCommands.EXPECT().BulkAdjust(gomock.Any(), testShop, gomock.Any()).
			Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAdjustmentBody(s.T()), "")

		var response resdto.BulkAdjustResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.OK)
		s.Equal("Updated 1 of 2 products", response.Message)
		s.Require().Len(response.Results, 1)
		s.Equal(3, response.Results[0].Updated)
		s.Require().Len(response.Errors, 1)
		s.Equal("Price too low", response.Errors[0].Message)
	})

	s.Run("success: adjustment params reach the command intact", func() {
		s.mockCommands.EXPECT().BulkAdjust(gomock.Any(), testShop, gomock.Any()).
			DoAndReturn(func(_ any, _ string, params commands.BulkAdjustParams) (*commands.BulkAdjustReport, error) {
				s.Equal([]string{"gid://shopify/Product/1", "gid://shopify/Product/2"}, params.ProductIDs)
				s.Equal(pricing.AdjustIncrease, params.Adjustment.AdjustType)
				s.Equal(pricing.AmountPercentage, params.Adjustment.AmountType)
				s.Require().NotNil(params.Adjustment.Percentage)
				s.Equal(10.0, *params.Adjustment.Percentage)
				return &commands.BulkAdjustReport{OK: true}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAdjustmentBody(s.T()), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when no products are selected", func() {
		s.mockCommands.EXPECT().BulkAdjust(gomock.Any(), testShop, gomock.Any()).
			Return(nil, commands.ErrNoProductsSelected).Times(1)
		body := validAdjustmentBody(s.T())
		testutil.Field("productIds", []string{})(body)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No products selected")
	})

	s.Run("error: 400 on invalid adjustment params", func() {
		cases := []struct {
			name string
			err  error
		}{
			{"bad adjust type", pricing.ErrInvalidAdjustType},
			{"bad amount type", pricing.ErrInvalidAmountType},
			{"bad rounding", pricing.ErrInvalidRounding},
			{"percentage missing", pricing.ErrPercentageRequired},
			{"percentage out of range", pricing.ErrPercentageRange},
			{"fixed amount missing", pricing.ErrFixedRequired},
			{"fixed amount negative", pricing.ErrFixedNegative},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BulkAdjust(gomock.Any(), testShop, gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAdjustmentBody(s.T()), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.err.Error())
			})
		}
	})

	s.Run("error: 500 on catalog transport failure", func() {
		s.mockCommands.EXPECT().BulkAdjust(gomock.Any(), testShop, gomock.Any()).
			Return(nil, commands.ErrDatabaseOperationFailed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAdjustmentBody(s.T()), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "[]", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *PricingHandlerTestSuite) TestPreview() {
	url := "/api/products/bulk-price-preview"

	s.Run("success: returns computed prices without mutating", func() {
		previews := []*queries.ProductPricePreview{
			{
				ProductID: "gid://shopify/Product/1",
				Title:     "Sample Tee",
				Variants: []queries.VariantPricePreview{
					{VariantID: "gid://shopify/ProductVariant/11", OldPrice: 10, NewPrice: 11},
				},
			},
		}
		s.mockQueries.EXPECT().Preview(gomock.Any(), testShop, gomock.Any()).
			Return(previews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAdjustmentBody(s.T()), "")

		var response resdto.PricePreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OK)
		s.Require().Len(response.Products, 1)
		s.Equal("Sample Tee", response.Products[0].Title)
		s.Equal(11.0, response.Products[0].Variants[0].NewPrice)
	})

	s.Run("error: 400 when no products are selected", func() {
		s.mockQueries.EXPECT().Preview(gomock.Any(), testShop, gomock.Any()).
			Return(nil, queries.ErrNoProductsSelected).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAdjustmentBody(s.T()), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No products selected")
	})

	s.Run("error: 400 on invalid adjustment params", func() {
		s.mockQueries.EXPECT().Preview(gomock.Any(), testShop, gomock.Any()).
			Return(nil, pricing.ErrPercentageRequired).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validAdjustmentBody(s.T()), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, pricing.ErrPercentageRequired.Error())
	})
}
