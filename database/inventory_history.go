package database

import (
	"fmt"

	"cemboard/model"
)

// InsertInventoryHistory appends one audit record. The table has no UPDATE
// or DELETE path anywhere in the codebase; the AUTOINCREMENT id gives the
// total ordering consumers use to reconstruct a row's quantity trajectory.
func InsertInventoryHistory(dbtx DBTX, h *model.InventoryHistory) error {
	const q = `
		INSERT INTO inventory_history
			(inventory_id, shop_id, product_id, previous_quantity, new_quantity,
			 change_amount, change_type, reason, changed_by, created_at)
		VALUES
			(:inventory_id, :shop_id, :product_id, :previous_quantity, :new_quantity,
			 :change_amount, :change_type, :reason, :changed_by, :created_at)`
	res, err := dbtx.NamedExec(q, h)
	if err != nil {
		return fmt.Errorf("failed to insert inventory history for inventory %d: %w", h.InventoryID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted history id: %w", err)
	}
	h.ID = id
	return nil
}

func ListHistoryByInventoryID(dbtx DBTX, inventoryID int64) ([]model.InventoryHistory, error) {
	var records []model.InventoryHistory
	const q = `
		SELECT id, inventory_id, shop_id, product_id, previous_quantity, new_quantity,
			change_amount, change_type, reason, changed_by, created_at
		FROM inventory_history
		WHERE inventory_id = ?
		ORDER BY id`
	if err := dbtx.Select(&records, q, inventoryID); err != nil {
		return nil, fmt.Errorf("failed to list history for inventory %d: %w", inventoryID, err)
	}
	return records, nil
}

// ListHistoryByPair serves the audit screen after an inventory row has been
// cleaned up: history outlives the row, so lookup by (shop, product) still
// works.
func ListHistoryByPair(dbtx DBTX, shopID, productID string) ([]model.InventoryHistory, error) {
	var records []model.InventoryHistory
	const q = `
		SELECT id, inventory_id, shop_id, product_id, previous_quantity, new_quantity,
			change_amount, change_type, reason, changed_by, created_at
		FROM inventory_history
		WHERE shop_id = ? AND product_id = ?
		ORDER BY id`
	if err := dbtx.Select(&records, q, shopID, productID); err != nil {
		return nil, fmt.Errorf("failed to list history for (%s, %s): %w", shopID, productID, err)
	}
	return records, nil
}
