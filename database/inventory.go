package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"cemboard/model"
)

// PairKey builds the composite lookup key for one shop x product pair.
func PairKey(shopID, productID string) string {
	return shopID + "|" + productID
}

// GetInventoryPairSet returns the set of (shop, product) pairs that already
// have an inventory row, keyed by PairKey.
func GetInventoryPairSet(dbtx DBTX) (map[string]struct{}, error) {
	var pairs []struct {
		ShopID    string `db:"shop_id"`
		ProductID string `db:"product_id"`
	}
	if err := dbtx.Select(&pairs, `SELECT shop_id, product_id FROM inventory`); err != nil {
		return nil, fmt.Errorf("failed to load inventory pair set: %w", err)
	}
	set := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		set[PairKey(p.ShopID, p.ProductID)] = struct{}{}
	}
	return set, nil
}

// InsertInventoryIfAbsent creates a zero-quantity row for a pair. The UNIQUE
// index on (shop_id, product_id) turns a duplicate insert into a no-op, so
// two overlapping completeness runs cannot create the pair twice. Returns
// the number of rows actually inserted (0 or 1).
func InsertInventoryIfAbsent(dbtx DBTX, shopID, productID string, minStock, maxStock int, now string) (int64, error) {
	const q = `
		INSERT INTO inventory (shop_id, product_id, quantity, min_stock_level, max_stock_level, updated_at)
		VALUES (?, ?, 0, ?, ?, ?)
		ON CONFLICT(shop_id, product_id) DO NOTHING`
	res, err := dbtx.Exec(q, shopID, productID, minStock, maxStock, now)
	if err != nil {
		return 0, fmt.Errorf("failed to insert inventory for (%s, %s): %w", shopID, productID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected for (%s, %s): %w", shopID, productID, err)
	}
	return n, nil
}

// DeleteInventoryNotIn removes every inventory row whose shop is outside
// activeShopIDs or whose product is outside activeProductIDs. History rows
// are left untouched. An empty active set means every row on that side is
// stale.
func DeleteInventoryNotIn(dbtx DBTX, activeShopIDs, activeProductIDs []string) (int64, error) {
	if len(activeShopIDs) == 0 || len(activeProductIDs) == 0 {
		res, err := dbtx.Exec(`DELETE FROM inventory`)
		if err != nil {
			return 0, fmt.Errorf("failed to delete all inventory rows: %w", err)
		}
		return res.RowsAffected()
	}

	query, args, err := sqlx.In(`
		DELETE FROM inventory
		WHERE shop_id NOT IN (?) OR product_id NOT IN (?)`,
		activeShopIDs, activeProductIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to construct IN query for inventory cleanup: %w", err)
	}
	query = dbtx.Rebind(query)

	res, err := dbtx.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale inventory rows: %w", err)
	}
	return res.RowsAffected()
}

func GetInventoryByID(dbtx DBTX, id int64) (*model.Inventory, error) {
	var inv model.Inventory
	const q = `
		SELECT id, shop_id, product_id, quantity, min_stock_level, max_stock_level, updated_at
		FROM inventory
		WHERE id = ?`
	if err := dbtx.Get(&inv, q, id); err != nil {
		return nil, err
	}
	return &inv, nil
}

func UpdateInventoryQuantity(dbtx DBTX, id int64, quantity int, now string) error {
	if _, err := dbtx.Exec(`UPDATE inventory SET quantity = ?, updated_at = ? WHERE id = ?`, quantity, now, id); err != nil {
		return fmt.Errorf("failed to update quantity for inventory %d: %w", id, err)
	}
	return nil
}

func UpdateInventoryThresholds(dbtx DBTX, id int64, minStock, maxStock int) error {
	if _, err := dbtx.Exec(`UPDATE inventory SET min_stock_level = ?, max_stock_level = ? WHERE id = ?`, minStock, maxStock, id); err != nil {
		return fmt.Errorf("failed to update thresholds for inventory %d: %w", id, err)
	}
	return nil
}

// ListInventoryItems returns the joined dashboard view, optionally filtered
// by shop.
func ListInventoryItems(dbtx DBTX, shopID string) ([]model.InventoryItem, error) {
	q := `
		SELECT i.id, i.shop_id, s.shop_name, i.product_id, p.product_name, p.brand,
			i.quantity, i.min_stock_level, i.max_stock_level, i.updated_at
		FROM inventory i
		JOIN shops s ON s.shop_id = i.shop_id
		JOIN products p ON p.product_id = i.product_id`
	args := []interface{}{}
	if shopID != "" {
		q += ` WHERE i.shop_id = ?`
		args = append(args, shopID)
	}
	q += ` ORDER BY s.shop_name, p.product_name`

	var items []model.InventoryItem
	if err := dbtx.Select(&items, q, args...); err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

func GetInventoryByPair(dbtx DBTX, shopID, productID string) (*model.Inventory, error) {
	var inv model.Inventory
	const q = `
		SELECT id, shop_id, product_id, quantity, min_stock_level, max_stock_level, updated_at
		FROM inventory
		WHERE shop_id = ? AND product_id = ?`
	if err := dbtx.Get(&inv, q, shopID, productID); err != nil {
		return nil, err
	}
	return &inv, nil
}
