package database

import (
	"fmt"

	"cemboard/model"
)

func ListOrders(dbtx DBTX, shopID, status string) ([]model.Order, error) {
	q := `
		SELECT order_id, kind, shop_id, product_id, supplier_id, route_id,
			quantity, status, created_by, created_at, updated_at
		FROM orders`
	args := []interface{}{}
	where := ""
	if shopID != "" {
		where = ` WHERE shop_id = ?`
		args = append(args, shopID)
	}
	if status != "" {
		if where == "" {
			where = ` WHERE status = ?`
		} else {
			where += ` AND status = ?`
		}
		args = append(args, status)
	}
	q += where + ` ORDER BY created_at DESC`

	var orders []model.Order
	if err := dbtx.Select(&orders, q, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func GetOrderByID(dbtx DBTX, orderID string) (*model.Order, error) {
	var o model.Order
	const q = `
		SELECT order_id, kind, shop_id, product_id, supplier_id, route_id,
			quantity, status, created_by, created_at, updated_at
		FROM orders
		WHERE order_id = ?`
	if err := dbtx.Get(&o, q, orderID); err != nil {
		return nil, err
	}
	return &o, nil
}

func InsertOrder(dbtx DBTX, o model.Order) error {
	const q = `
		INSERT INTO orders
			(order_id, kind, shop_id, product_id, supplier_id, route_id,
			 quantity, status, created_by, created_at, updated_at)
		VALUES
			(:order_id, :kind, :shop_id, :product_id, :supplier_id, :route_id,
			 :quantity, :status, :created_by, :created_at, :updated_at)`
	if _, err := dbtx.NamedExec(q, o); err != nil {
		return fmt.Errorf("failed to insert order %s: %w", o.OrderID, err)
	}
	return nil
}

func UpdateOrderStatus(dbtx DBTX, orderID, status, now string) error {
	if _, err := dbtx.Exec(`UPDATE orders SET status = ?, updated_at = ? WHERE order_id = ?`, status, now, orderID); err != nil {
		return fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}
	return nil
}
