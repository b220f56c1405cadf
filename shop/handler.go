package shop

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"

	"cemboard/database"
	"cemboard/model"
)

func ListShopsHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shops, err := database.ListShops(conn)
		if err != nil {
			http.Error(w, "Failed to list shops: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(shops)
	}
}

func SaveShopHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var s model.Shop
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if s.ShopID == "" || s.ShopName == "" {
			http.Error(w, "shopId and shopName are required", http.StatusBadRequest)
			return
		}

		if _, err := database.GetShopByID(conn, s.ShopID); err != nil {
			if err := database.InsertShop(conn, s); err != nil {
				http.Error(w, "Failed to create shop: "+err.Error(), http.StatusInternalServerError)
				return
			}
		} else {
			if err := database.UpdateShop(conn, s); err != nil {
				http.Error(w, "Failed to update shop: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Shop saved."})
	}
}

// SetActiveHandler flips the soft-delete flag. A deactivated shop keeps its
// row and its history; the next reconciliation pass removes its inventory.
func SetActiveHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var payload struct {
			ShopID   string `json:"shopId"`
			IsActive bool   `json:"isActive"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if payload.ShopID == "" {
			http.Error(w, "shopId is required", http.StatusBadRequest)
			return
		}

		if err := database.SetShopActive(conn, payload.ShopID, payload.IsActive); err != nil {
			http.Error(w, "Failed to update shop state: "+err.Error(), http.StatusInternalServerError)
			return
		}
		log.Printf("Shop %s active=%v", payload.ShopID, payload.IsActive)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Shop state updated."})
	}
}
