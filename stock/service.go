// Package stock owns every quantity mutation. No other code path updates
// inventory.quantity, which is what keeps the history table a faithful
// reconstruction of each row's trajectory.
package stock

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cemboard/database"
	"cemboard/model"
)

var (
	ErrInventoryNotFound = errors.New("inventory row not found")
	ErrNegativeQuantity  = errors.New("quantity must not be negative")
	ErrInvalidChangeType = errors.New("unrecognized change type")
)

// ChangeRequest is one quantity mutation, validated at the boundary.
type ChangeRequest struct {
	InventoryID int64  `json:"inventoryId"`
	NewQuantity int    `json:"newQuantity"`
	ChangeType  string `json:"changeType"`
	Reason      string `json:"reason"`
	ChangedBy   string `json:"changedBy"`
}

// ApplyChange sets an inventory row's quantity and appends the matching
// history record in one transaction. A crash cannot leave a quantity update
// without its audit record, or the other way around.
func ApplyChange(conn *sqlx.DB, req ChangeRequest) (*model.InventoryHistory, error) {
	tx, err := conn.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for quantity change: %w", err)
	}
	defer tx.Rollback()

	history, err := ApplyChangeInTx(tx, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit quantity change for inventory %d: %w", req.InventoryID, err)
	}
	return history, nil
}

// ApplyChangeInTx is ApplyChange inside a caller-owned transaction, for
// flows that pair the stock movement with another write (order completion).
// It is the only place in the codebase that touches inventory.quantity.
func ApplyChangeInTx(dbtx database.DBTX, req ChangeRequest) (*model.InventoryHistory, error) {
	if req.NewQuantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if !model.IsValidChangeType(req.ChangeType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChangeType, req.ChangeType)
	}

	inv, err := database.GetInventoryByID(dbtx, req.InventoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrInventoryNotFound, req.InventoryID)
		}
		return nil, fmt.Errorf("failed to read inventory %d: %w", req.InventoryID, err)
	}

	now := database.NowStamp()
	if err := database.UpdateInventoryQuantity(dbtx, inv.ID, req.NewQuantity, now); err != nil {
		return nil, err
	}

	history := &model.InventoryHistory{
		InventoryID:      inv.ID,
		ShopID:           inv.ShopID,
		ProductID:        inv.ProductID,
		PreviousQuantity: inv.Quantity,
		NewQuantity:      req.NewQuantity,
		ChangeAmount:     req.NewQuantity - inv.Quantity,
		ChangeType:       req.ChangeType,
		Reason:           req.Reason,
		ChangedBy:        req.ChangedBy,
		CreatedAt:        now,
	}
	if err := database.InsertInventoryHistory(dbtx, history); err != nil {
		return nil, err
	}

	return history, nil
}
