package stock

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"

	"cemboard/database"
)

// AdjustQuantityHandler applies one quantity change and returns the created
// history record.
func AdjustQuantityHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req ChangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		history, err := ApplyChange(conn, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrInventoryNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrNegativeQuantity), errors.Is(err, ErrInvalidChangeType):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				log.Printf("ERROR: quantity change for inventory %d failed: %v", req.InventoryID, err)
				http.Error(w, "Failed to apply quantity change: "+err.Error(), http.StatusInternalServerError)
			}
			return
		}

		log.Printf("Inventory %d quantity %d -> %d (%s) by %s",
			history.InventoryID, history.PreviousQuantity, history.NewQuantity, history.ChangeType, history.ChangedBy)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}

// ListInventoryHandler returns the joined inventory view, optionally
// filtered with ?shopId=.
func ListInventoryHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := database.ListInventoryItems(conn, r.URL.Query().Get("shopId"))
		if err != nil {
			http.Error(w, "Failed to list inventory: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

// HistoryHandler returns the audit trail for one inventory row
// (?inventoryId=) or for a pair (?shopId=&productId=) when the row itself
// has already been cleaned up.
func HistoryHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if idStr := q.Get("inventoryId"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				http.Error(w, "inventoryId must be an integer", http.StatusBadRequest)
				return
			}
			records, err := database.ListHistoryByInventoryID(conn, id)
			if err != nil {
				http.Error(w, "Failed to list history: "+err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(records)
			return
		}

		shopID, productID := q.Get("shopId"), q.Get("productId")
		if shopID == "" || productID == "" {
			http.Error(w, "inventoryId or shopId+productId is required", http.StatusBadRequest)
			return
		}
		records, err := database.ListHistoryByPair(conn, shopID, productID)
		if err != nil {
			http.Error(w, "Failed to list history: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

// UpdateThresholdsHandler edits min/max stock levels. Thresholds are
// administrative data, not quantity, so no history record is written.
func UpdateThresholdsHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var payload struct {
			InventoryID   int64 `json:"inventoryId"`
			MinStockLevel int   `json:"minStockLevel"`
			MaxStockLevel int   `json:"maxStockLevel"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if payload.MinStockLevel < 0 || payload.MaxStockLevel < payload.MinStockLevel {
			http.Error(w, "Invalid stock thresholds", http.StatusBadRequest)
			return
		}

		if err := database.UpdateInventoryThresholds(conn, payload.InventoryID, payload.MinStockLevel, payload.MaxStockLevel); err != nil {
			http.Error(w, "Failed to update thresholds: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Stock thresholds updated."})
	}
}
