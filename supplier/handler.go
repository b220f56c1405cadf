package supplier

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"cemboard/database"
	"cemboard/model"
)

func ListSuppliersHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		suppliers, err := database.ListSuppliers(conn)
		if err != nil {
			http.Error(w, "Failed to list suppliers: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(suppliers)
	}
}

func SaveSupplierHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var s model.Supplier
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if s.SupplierID == "" || s.SupplierName == "" {
			http.Error(w, "supplierId and supplierName are required", http.StatusBadRequest)
			return
		}

		if err := database.UpsertSupplier(conn, s); err != nil {
			http.Error(w, "Failed to save supplier: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Supplier saved."})
	}
}

// DeleteSupplierHandler handles DELETE /api/suppliers/{id}. Suppliers are
// plain master data with no audit requirement, so this is a hard delete.
func DeleteSupplierHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		supplierID := strings.TrimPrefix(r.URL.Path, "/api/suppliers/")
		if supplierID == "" {
			http.Error(w, "Supplier id is required", http.StatusBadRequest)
			return
		}

		if err := database.DeleteSupplier(conn, supplierID); err != nil {
			http.Error(w, "Failed to delete supplier: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Supplier deleted."})
	}
}
