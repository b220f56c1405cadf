package database

import (
	"fmt"

	"cemboard/model"
)

func ListProducts(dbtx DBTX) ([]model.Product, error) {
	var products []model.Product
	const q = `
		SELECT product_id, product_name, brand, grade, bag_weight_kg, unit_price, is_active
		FROM products
		ORDER BY product_name`
	if err := dbtx.Select(&products, q); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func GetProductByID(dbtx DBTX, productID string) (*model.Product, error) {
	var p model.Product
	const q = `
		SELECT product_id, product_name, brand, grade, bag_weight_kg, unit_price, is_active
		FROM products
		WHERE product_id = ?`
	if err := dbtx.Get(&p, q, productID); err != nil {
		return nil, err
	}
	return &p, nil
}

func ListActiveProductIDs(dbtx DBTX) ([]string, error) {
	var ids []string
	if err := dbtx.Select(&ids, `SELECT product_id FROM products WHERE is_active = 1 ORDER BY product_id`); err != nil {
		return nil, fmt.Errorf("failed to list active product ids: %w", err)
	}
	return ids, nil
}

func InsertProduct(dbtx DBTX, p model.Product) error {
	const q = `
		INSERT INTO products (product_id, product_name, brand, grade, bag_weight_kg, unit_price, is_active)
		VALUES (:product_id, :product_name, :brand, :grade, :bag_weight_kg, :unit_price, :is_active)`
	if _, err := dbtx.NamedExec(q, p); err != nil {
		return fmt.Errorf("failed to insert product %s: %w", p.ProductID, err)
	}
	return nil
}

func UpdateProduct(dbtx DBTX, p model.Product) error {
	const q = `
		UPDATE products
		SET product_name = :product_name, brand = :brand, grade = :grade,
			bag_weight_kg = :bag_weight_kg, unit_price = :unit_price, is_active = :is_active
		WHERE product_id = :product_id`
	if _, err := dbtx.NamedExec(q, p); err != nil {
		return fmt.Errorf("failed to update product %s: %w", p.ProductID, err)
	}
	return nil
}

func SetProductActive(dbtx DBTX, productID string, active bool) error {
	if _, err := dbtx.Exec(`UPDATE products SET is_active = ? WHERE product_id = ?`, active, productID); err != nil {
		return fmt.Errorf("failed to set product %s active=%v: %w", productID, active, err)
	}
	return nil
}
