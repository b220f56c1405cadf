// Package orders manages purchase and sale orders. Completing an order is
// the only way an order touches stock, and it does so through the stock
// package's single mutation entry point so the audit trail stays complete.
package orders

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cemboard/database"
	"cemboard/model"
	"cemboard/stock"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotOpen      = errors.New("order is not in an open state")
	ErrInsufficientStock = errors.New("insufficient stock for sale order")
	ErrInvalidOrder      = errors.New("invalid order")
)

// CreateOrder validates and stores a new order in pending state.
func CreateOrder(conn *sqlx.DB, o model.Order) (*model.Order, error) {
	if o.ShopID == "" || o.ProductID == "" {
		return nil, fmt.Errorf("%w: shopId and productId are required", ErrInvalidOrder)
	}
	if o.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidOrder)
	}
	if o.Kind != model.OrderKindPurchase && o.Kind != model.OrderKindSale {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidOrder, o.Kind)
	}

	now := database.NowStamp()
	o.OrderID = uuid.NewString()
	o.Status = model.OrderStatusPending
	o.CreatedAt = now
	o.UpdatedAt = now

	if err := database.InsertOrder(conn, o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CompleteOrder marks an open order delivered (purchase) or dispatched
// (sale) and applies the stock movement in the same transaction. The
// movement and its history record land atomically with the status flip, so
// a retried completion can never double-apply.
func CompleteOrder(conn *sqlx.DB, orderID, actor string) (*model.InventoryHistory, error) {
	tx, err := conn.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for order completion: %w", err)
	}
	defer tx.Rollback()

	o, err := database.GetOrderByID(tx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to read order %s: %w", orderID, err)
	}
	if o.Status != model.OrderStatusPending && o.Status != model.OrderStatusConfirmed {
		return nil, fmt.Errorf("%w: %s is %s", ErrOrderNotOpen, orderID, o.Status)
	}

	inv, err := database.GetInventoryByPair(tx, o.ShopID, o.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no inventory row for shop %s product %s; run a sync first", o.ShopID, o.ProductID)
		}
		return nil, fmt.Errorf("failed to read inventory for order %s: %w", orderID, err)
	}

	var (
		newQuantity int
		changeType  string
		newStatus   string
	)
	switch o.Kind {
	case model.OrderKindPurchase:
		newQuantity = inv.Quantity + o.Quantity
		changeType = model.ChangeTypeRestock
		newStatus = model.OrderStatusDelivered
	case model.OrderKindSale:
		newQuantity = inv.Quantity - o.Quantity
		if newQuantity < 0 {
			return nil, fmt.Errorf("%w: have %d, order needs %d", ErrInsufficientStock, inv.Quantity, o.Quantity)
		}
		changeType = model.ChangeTypeSale
		newStatus = model.OrderStatusDispatched
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidOrder, o.Kind)
	}

	history, err := stock.ApplyChangeInTx(tx, stock.ChangeRequest{
		InventoryID: inv.ID,
		NewQuantity: newQuantity,
		ChangeType:  changeType,
		Reason:      fmt.Sprintf("order %s", o.OrderID),
		ChangedBy:   actor,
	})
	if err != nil {
		return nil, err
	}

	if err := database.UpdateOrderStatus(tx, o.OrderID, newStatus, database.NowStamp()); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit completion of order %s: %w", orderID, err)
	}
	return history, nil
}

// CancelOrder closes an open order without touching stock.
func CancelOrder(conn *sqlx.DB, orderID string) error {
	o, err := database.GetOrderByID(conn, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return fmt.Errorf("failed to read order %s: %w", orderID, err)
	}
	if o.Status != model.OrderStatusPending && o.Status != model.OrderStatusConfirmed {
		return fmt.Errorf("%w: %s is %s", ErrOrderNotOpen, orderID, o.Status)
	}
	return database.UpdateOrderStatus(conn, orderID, model.OrderStatusCancelled, database.NowStamp())
}
