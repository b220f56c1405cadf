package database

import (
	"fmt"

	"cemboard/model"
)

func ListSuppliers(dbtx DBTX) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	const q = `
		SELECT supplier_id, supplier_name, contact_name, phone, address
		FROM suppliers
		ORDER BY supplier_name`
	if err := dbtx.Select(&suppliers, q); err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func UpsertSupplier(dbtx DBTX, s model.Supplier) error {
	const q = `
		INSERT INTO suppliers (supplier_id, supplier_name, contact_name, phone, address)
		VALUES (:supplier_id, :supplier_name, :contact_name, :phone, :address)
		ON CONFLICT(supplier_id) DO UPDATE SET
			supplier_name = excluded.supplier_name,
			contact_name = excluded.contact_name,
			phone = excluded.phone,
			address = excluded.address`
	if _, err := dbtx.NamedExec(q, s); err != nil {
		return fmt.Errorf("failed to upsert supplier %s: %w", s.SupplierID, err)
	}
	return nil
}

func DeleteSupplier(dbtx DBTX, supplierID string) error {
	if _, err := dbtx.Exec(`DELETE FROM suppliers WHERE supplier_id = ?`, supplierID); err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	return nil
}
