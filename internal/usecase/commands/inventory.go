package commands

import (
	"context"

	"priceflow/internal/pkg/errs"
)

var (
	ErrInventoryFieldsRequired = errs.New("inventoryItemId, locationId, quantity required")
	ErrNoValidUpdates          = errs.New("no valid updates")
	// ErrCatalogRejected marks business rejections from the catalog API
	// (userErrors), as opposed to transport failures.
	ErrCatalogRejected = errs.New("catalog rejected the mutation")
)

type InventoryCommands interface {
	SetLevel(ctx context.Context, shop, inventoryItemID, locationID string, quantity int) error
	BulkSetLevels(ctx context.Context, shop, locationID string, updates []InventoryQuantityUpdate) (int, error)
}

type inventoryCommandsImpl struct {
	catalogs CatalogClients
}

func NewInventoryCommands(catalogs CatalogClients) InventoryCommands {
	return &inventoryCommandsImpl{catalogs: catalogs}
}

func (i *inventoryCommandsImpl) SetLevel(ctx context.Context, shop, inventoryItemID, locationID string, quantity int) error {
	if inventoryItemID == "" || locationID == "" {
		return ErrInventoryFieldsRequired
	}

	api, err := i.catalogs.For(ctx, shop)
	if err != nil {
		return err
	}

	userErrs, err := api.SetInventoryQuantities(ctx, locationID, []InventoryQuantityUpdate{
		{InventoryItemID: inventoryItemID, Quantity: quantity},
	})
	if err != nil {
		return err
	}
	if len(userErrs) > 0 {
		return errs.Mark(errs.New(userErrs[0].Message), ErrCatalogRejected)
	}
	return nil
}

// BulkSetLevels applies all valid updates at one location in a single
// catalog mutation and returns how many were applied.
func (i *inventoryCommandsImpl) BulkSetLevels(ctx context.Context, shop, locationID string, updates []InventoryQuantityUpdate) (int, error) {
	if locationID == "" || len(updates) == 0 {
		return 0, ErrInventoryFieldsRequired
	}

	valid := make([]InventoryQuantityUpdate, 0, len(updates))
	for _, u := range updates {
		if u.InventoryItemID == "" {
			continue
		}
		valid = append(valid, u)
	}
	if len(valid) == 0 {
		return 0, ErrNoValidUpdates
	}

	api, err := i.catalogs.For(ctx, shop)
	if err != nil {
		return 0, err
	}

	userErrs, err := api.SetInventoryQuantities(ctx, locationID, valid)
	if err != nil {
		return 0, err
	}
	if len(userErrs) > 0 {
		return 0, errs.Mark(errs.New(userErrs[0].Message), ErrCatalogRejected)
	}
	return len(valid), nil
}
