package reconcile

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
)

// SyncHandler is the manual trigger for a full reconciliation pass. The
// scheduler in main calls Sync directly.
func SyncHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		result, err := Sync(conn)
		if err != nil {
			log.Printf("ERROR: inventory sync failed: %v", err)
			http.Error(w, "Inventory sync failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		log.Printf("Inventory sync: %s", result.Message)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func EnsureCompletenessHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		result, err := EnsureCompleteness(conn)
		if err != nil {
			log.Printf("ERROR: completeness check failed: %v", err)
			http.Error(w, "Completeness check failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func CleanupInactiveHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		result, err := CleanupInactive(conn)
		if err != nil {
			log.Printf("ERROR: inventory cleanup failed: %v", err)
			http.Error(w, "Inventory cleanup failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
