package database

import (
	"fmt"

	"cemboard/model"
)

func ListShops(dbtx DBTX) ([]model.Shop, error) {
	var shops []model.Shop
	const q = `
		SELECT shop_id, shop_name, location, phone, is_active
		FROM shops
		ORDER BY shop_name`
	if err := dbtx.Select(&shops, q); err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return shops, nil
}

func GetShopByID(dbtx DBTX, shopID string) (*model.Shop, error) {
	var s model.Shop
	const q = `
		SELECT shop_id, shop_name, location, phone, is_active
		FROM shops
		WHERE shop_id = ?`
	if err := dbtx.Get(&s, q, shopID); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListActiveShopIDs reads the active set fresh on every call; callers must
// not cache it across reconciliation passes.
func ListActiveShopIDs(dbtx DBTX) ([]string, error) {
	var ids []string
	if err := dbtx.Select(&ids, `SELECT shop_id FROM shops WHERE is_active = 1 ORDER BY shop_id`); err != nil {
		return nil, fmt.Errorf("failed to list active shop ids: %w", err)
	}
	return ids, nil
}

func InsertShop(dbtx DBTX, s model.Shop) error {
	const q = `
		INSERT INTO shops (shop_id, shop_name, location, phone, is_active)
		VALUES (:shop_id, :shop_name, :location, :phone, :is_active)`
	if _, err := dbtx.NamedExec(q, s); err != nil {
		return fmt.Errorf("failed to insert shop %s: %w", s.ShopID, err)
	}
	return nil
}

func UpdateShop(dbtx DBTX, s model.Shop) error {
	const q = `
		UPDATE shops
		SET shop_name = :shop_name, location = :location, phone = :phone, is_active = :is_active
		WHERE shop_id = :shop_id`
	if _, err := dbtx.NamedExec(q, s); err != nil {
		return fmt.Errorf("failed to update shop %s: %w", s.ShopID, err)
	}
	return nil
}

// SetShopActive is the soft delete: the row stays, only the flag flips.
func SetShopActive(dbtx DBTX, shopID string, active bool) error {
	if _, err := dbtx.Exec(`UPDATE shops SET is_active = ? WHERE shop_id = ?`, active, shopID); err != nil {
		return fmt.Errorf("failed to set shop %s active=%v: %w", shopID, active, err)
	}
	return nil
}
