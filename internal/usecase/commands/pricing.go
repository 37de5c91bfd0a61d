package commands

import (
	"context"

	"priceflow/internal/domain/pricing"
	"priceflow/internal/infra"
	"priceflow/internal/pkg/errs"
)

var ErrNoProductsSelected = errs.New("no products selected")

type BulkAdjustParams struct {
	ProductIDs []string
	Adjustment pricing.Adjustment
}

type ProductAdjustResult struct {
	ProductID string
	Updated   int
	Note      string
}

type ProductAdjustError struct {
	ProductID  string
	Message    string
	UserErrors []UserError
}

// BulkAdjustReport keeps per-product outcomes; unlike schedules, an
// immediate bulk adjustment tolerates partial success.
type BulkAdjustReport struct {
	OK      bool
	Results []ProductAdjustResult
	Errors  []ProductAdjustError
}

type PricingCommands interface {
	BulkAdjust(ctx context.Context, shop string, params BulkAdjustParams) (*BulkAdjustReport, error)
}

type pricingCommandsImpl struct {
	catalogs CatalogClients
}

func NewPricingCommands(catalogs CatalogClients) PricingCommands {
	return &pricingCommandsImpl{catalogs: catalogs}
}

func (p *pricingCommandsImpl) BulkAdjust(ctx context.Context, shop string, params BulkAdjustParams) (*BulkAdjustReport, error) {
	if len(params.ProductIDs) == 0 {
		return nil, ErrNoProductsSelected
	}
	if err := params.Adjustment.Validate(); err != nil {
		return nil, err
	}

	api, err := p.catalogs.For(ctx, shop)
	if err != nil {
		return nil, err
	}

	report := &BulkAdjustReport{Results: []ProductAdjustResult{}, Errors: []ProductAdjustError{}}

	for _, pid := range params.ProductIDs {
		variants, err := api.QueryVariantsForProduct(ctx, pid)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				report.Errors = append(report.Errors, ProductAdjustError{ProductID: pid, Message: "Product not found"})
				continue
			}
			return nil, err
		}

		if len(variants) == 0 {
			report.Results = append(report.Results, ProductAdjustResult{ProductID: pid, Updated: 0, Note: "No variants found"})
			continue
		}

		updates := make([]VariantPriceUpdate, len(variants))
		for i, v := range variants {
			newPrice := pricing.ComputePriceFromString(v.Price, params.Adjustment)
			updates[i] = VariantPriceUpdate{ID: v.ID, Price: pricing.FormatPrice(newPrice)}
		}

		userErrs, err := api.BulkUpdateVariantPrices(ctx, pid, updates)
		if err != nil {
			return nil, err
		}
		if len(userErrs) > 0 {
			report.Errors = append(report.Errors, ProductAdjustError{
				ProductID:  pid,
				Message:    userErrs[0].Message,
				UserErrors: userErrs,
			})
			continue
		}

		report.Results = append(report.Results, ProductAdjustResult{ProductID: pid, Updated: len(updates)})
	}

	report.OK = len(report.Errors) == 0
	return report, nil
}
