package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"

	"cemboard/database"
)

// LowStockHandler feeds the reorder warning widget.
func LowStockHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := database.GetLowStockItems(conn)
		if err != nil {
			http.Error(w, "Failed to get low stock items: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

// ShopSummaryHandler feeds the per-shop stock totals chart.
func ShopSummaryHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := database.GetShopStockSummaries(conn)
		if err != nil {
			http.Error(w, "Failed to get shop summaries: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summaries)
	}
}
