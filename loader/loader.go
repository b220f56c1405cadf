package loader

import (
	_ "embed"
	"fmt"
	"io"
	"log"

	"github.com/jmoiron/sqlx"

	"cemboard/parsers"
)

//go:embed schema.sql
var schemaSQL string

// InitDatabase applies the schema. Safe to call on every startup; all
// statements are IF NOT EXISTS.
func InitDatabase(db *sqlx.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// ImportShopCSV upserts shop master rows from a CSV stream. Imported shops
// are marked active; deactivation is only ever done explicitly from the
// master screen.
func ImportShopCSV(db *sqlx.DB, r io.Reader) (int, error) {
	records, err := parsers.ParseShopCSV(r)
	if err != nil {
		return 0, fmt.Errorf("failed to parse shop CSV: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for shop import: %w", err)
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO shops (shop_id, shop_name, location, phone, is_active)
		VALUES (?, ?, ?, ?, 1)
		ON CONFLICT(shop_id) DO UPDATE SET
			shop_name = excluded.shop_name,
			location = excluded.location,
			phone = excluded.phone`
	for _, rec := range records {
		if _, err := tx.Exec(q, rec.ShopID, rec.ShopName, rec.Location, rec.Phone); err != nil {
			return 0, fmt.Errorf("failed to upsert shop %s: %w", rec.ShopID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit shop import: %w", err)
	}
	log.Printf("Imported %d shop master records.", len(records))
	return len(records), nil
}

// ImportProductCSV upserts product master rows from a CSV stream.
func ImportProductCSV(db *sqlx.DB, r io.Reader) (int, error) {
	records, err := parsers.ParseProductCSV(r)
	if err != nil {
		return 0, fmt.Errorf("failed to parse product CSV: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for product import: %w", err)
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO products (product_id, product_name, brand, grade, bag_weight_kg, unit_price, is_active)
		VALUES (?, ?, ?, ?, ?, ?, 1)
		ON CONFLICT(product_id) DO UPDATE SET
			product_name = excluded.product_name,
			brand = excluded.brand,
			grade = excluded.grade,
			bag_weight_kg = excluded.bag_weight_kg,
			unit_price = excluded.unit_price`
	for _, rec := range records {
		if _, err := tx.Exec(q, rec.ProductID, rec.ProductName, rec.Brand, rec.Grade, rec.BagWeightKg, rec.UnitPrice); err != nil {
			return 0, fmt.Errorf("failed to upsert product %s: %w", rec.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit product import: %w", err)
	}
	log.Printf("Imported %d product master records.", len(records))
	return len(records), nil
}
