//go:build unit

package queries_test

import (
	"context"
	"testing"

	"priceflow/internal/domain/pricing"
	"priceflow/internal/usecase/queries"
	queriesmock "priceflow/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductQueriesTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockReaders *queriesmock.MockCatalogReaders
	mockReader  *queriesmock.MockCatalogReader
	queries     queries.ProductQueries
}

func (s *ProductQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReaders = queriesmock.NewMockCatalogReaders(s.mockCtrl)
	s.mockReader = queriesmock.NewMockCatalogReader(s.mockCtrl)
	s.queries = queries.NewProductQueries(s.mockReaders)
}

func (s *ProductQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductQueriesSuite(t *testing.T) {
	suite.Run(t, new(ProductQueriesTestSuite))
}

func (s *ProductQueriesTestSuite) expectReader() {
	s.mockReaders.EXPECT().For(gomock.Any(), testShop).Return(s.mockReader, nil)
}

func (s *ProductQueriesTestSuite) TestPreview() {
	ctx := context.Background()
	pct := 10.0
	adjustment := pricing.Adjustment{
		AdjustType: pricing.AdjustIncrease,
		AmountType: pricing.AmountPercentage,
		Percentage: &pct,
	}

	s.Run("success: computes old and new price per variant", func() {
		s.expectReader()
		s.mockReader.EXPECT().ProductPreview(gomock.Any(), "gid://shopify/Product/1").
			Return(&queries.ProductSource{
				ID:    "gid://shopify/Product/1",
				Title: "Sample Tee",
				Variants: []queries.VariantSource{
					{ID: "gid://shopify/ProductVariant/11", Title: "Small", Price: "10"},
					{ID: "gid://shopify/ProductVariant/12", Title: "Large", Price: "19.99"},
				},
			}, nil)

		previews, err := s.queries.Preview(ctx, testShop, queries.PricePreviewParams{
			ProductIDs: []string{"gid://shopify/Product/1"},
			Adjustment: adjustment,
		})
		s.Require().NoError(err)
		s.Require().Len(previews, 1)
		s.Equal("Sample Tee", previews[0].Title)
		s.Require().Len(previews[0].Variants, 2)
		s.Equal(10.0, previews[0].Variants[0].OldPrice)
		s.Equal(11.0, previews[0].Variants[0].NewPrice)
		s.Equal(21.99, previews[0].Variants[1].NewPrice)
	})

	s.Run("missing product becomes a placeholder row", func() {
		s.expectReader()
		s.mockReader.EXPECT().ProductPreview(gomock.Any(), "gid://shopify/Product/404").
			Return(nil, nil)

		previews, err := s.queries.Preview(ctx, testShop, queries.PricePreviewParams{
			ProductIDs: []string{"gid://shopify/Product/404"},
			Adjustment: adjustment,
		})
		s.Require().NoError(err)
		s.Require().Len(previews, 1)
		s.Equal("(Product not found)", previews[0].Title)
		s.Empty(previews[0].Variants)
	})

	s.Run("unparseable catalog price counts as zero", func() {
		s.expectReader()
		s.mockReader.EXPECT().ProductPreview(gomock.Any(), "gid://shopify/Product/1").
			Return(&queries.ProductSource{
				ID:    "gid://shopify/Product/1",
				Title: "Sample Tee",
				Variants: []queries.VariantSource{
					{ID: "gid://shopify/ProductVariant/11", Price: "free"},
				},
			}, nil)

		previews, err := s.queries.Preview(ctx, testShop, queries.PricePreviewParams{
			ProductIDs: []string{"gid://shopify/Product/1"},
			Adjustment: adjustment,
		})
		s.Require().NoError(err)
		s.Equal(0.0, previews[0].Variants[0].OldPrice)
		s.Equal(0.0, previews[0].Variants[0].NewPrice)
	})

	s.Run("error: empty selection", func() {
		_, err := s.queries.Preview(ctx, testShop, queries.PricePreviewParams{Adjustment: adjustment})
		s.Require().ErrorIs(err, queries.ErrNoProductsSelected)
	})

	s.Run("error: invalid adjustment surfaces the sentinel", func() {
		_, err := s.queries.Preview(ctx, testShop, queries.PricePreviewParams{
			ProductIDs: []string{"gid://shopify/Product/1"},
			Adjustment: pricing.Adjustment{AdjustType: "triple", AmountType: pricing.AmountPercentage},
		})
		s.Require().ErrorIs(err, pricing.ErrInvalidAdjustType)
	})
}
