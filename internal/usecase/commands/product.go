package commands

import (
	"context"

	"priceflow/internal/pkg/errs"
)

var (
	ErrNoProductIDs         = errs.New("no product ids provided")
	ErrInvalidProductStatus = errs.New("invalid status")
)

var validProductStatuses = map[string]struct{}{
	"DRAFT":    {},
	"ACTIVE":   {},
	"ARCHIVED": {},
}

type ProductStatusResult struct {
	ID     string
	Status string
}

type ProductStatusError struct {
	ID      string
	Message string
}

type StatusReport struct {
	OK      bool
	Updated []ProductStatusResult
	Errors  []ProductStatusError
}

type ProductCommands interface {
	UpdateStatus(ctx context.Context, shop string, productIDs []string, status string) (*StatusReport, error)
}

type productCommandsImpl struct {
	catalogs CatalogClients
}

func NewProductCommands(catalogs CatalogClients) ProductCommands {
	return &productCommandsImpl{catalogs: catalogs}
}

// UpdateStatus flips each product to the given status, collecting per-id
// failures instead of aborting the batch.
func (p *productCommandsImpl) UpdateStatus(ctx context.Context, shop string, productIDs []string, status string) (*StatusReport, error) {
	if len(productIDs) == 0 {
		return nil, ErrNoProductIDs
	}
	if _, ok := validProductStatuses[status]; !ok {
		return nil, ErrInvalidProductStatus
	}

	api, err := p.catalogs.For(ctx, shop)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{Updated: []ProductStatusResult{}, Errors: []ProductStatusError{}}

	for _, id := range productIDs {
		userErrs, err := api.UpdateProductStatus(ctx, id, status)
		if err != nil {
			report.Errors = append(report.Errors, ProductStatusError{ID: id, Message: err.Error()})
			continue
		}
		if len(userErrs) > 0 {
			report.Errors = append(report.Errors, ProductStatusError{ID: id, Message: joinUserErrors(userErrs)})
			continue
		}
		report.Updated = append(report.Updated, ProductStatusResult{ID: id, Status: status})
	}

	report.OK = len(report.Errors) == 0
	return report, nil
}
