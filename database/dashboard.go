package database

import (
	"fmt"

	"cemboard/model"
)

// GetLowStockItems returns rows at or under their minimum threshold, for the
// reorder warning widget.
func GetLowStockItems(dbtx DBTX) ([]model.LowStockItem, error) {
	var items []model.LowStockItem
	const q = `
		SELECT i.id, i.shop_id, s.shop_name, i.product_id, p.product_name,
			i.quantity, i.min_stock_level
		FROM inventory i
		JOIN shops s ON s.shop_id = i.shop_id
		JOIN products p ON p.product_id = i.product_id
		WHERE i.quantity <= i.min_stock_level
		ORDER BY i.quantity, s.shop_name`
	if err := dbtx.Select(&items, q); err != nil {
		return nil, fmt.Errorf("failed to get low stock items: %w", err)
	}
	return items, nil
}

// GetShopStockSummaries feeds the per-shop totals chart.
func GetShopStockSummaries(dbtx DBTX) ([]model.ShopStockSummary, error) {
	var summaries []model.ShopStockSummary
	const q = `
		SELECT s.shop_id, s.shop_name,
			COUNT(i.id) AS product_count,
			COALESCE(SUM(i.quantity), 0) AS total_bags
		FROM shops s
		LEFT JOIN inventory i ON i.shop_id = s.shop_id
		WHERE s.is_active = 1
		GROUP BY s.shop_id, s.shop_name
		ORDER BY s.shop_name`
	if err := dbtx.Select(&summaries, q); err != nil {
		return nil, fmt.Errorf("failed to get shop stock summaries: %w", err)
	}
	return summaries, nil
}
