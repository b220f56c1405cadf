package product

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"

	"cemboard/database"
	"cemboard/model"
)

func ListProductsHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := database.ListProducts(conn)
		if err != nil {
			http.Error(w, "Failed to list products: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}
}

func SaveProductHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var p model.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if p.ProductID == "" || p.ProductName == "" {
			http.Error(w, "productId and productName are required", http.StatusBadRequest)
			return
		}

		if _, err := database.GetProductByID(conn, p.ProductID); err != nil {
			if err := database.InsertProduct(conn, p); err != nil {
				http.Error(w, "Failed to create product: "+err.Error(), http.StatusInternalServerError)
				return
			}
		} else {
			if err := database.UpdateProduct(conn, p); err != nil {
				http.Error(w, "Failed to update product: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Product saved."})
	}
}

func SetActiveHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var payload struct {
			ProductID string `json:"productId"`
			IsActive  bool   `json:"isActive"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if payload.ProductID == "" {
			http.Error(w, "productId is required", http.StatusBadRequest)
			return
		}

		if err := database.SetProductActive(conn, payload.ProductID, payload.IsActive); err != nil {
			http.Error(w, "Failed to update product state: "+err.Error(), http.StatusInternalServerError)
			return
		}
		log.Printf("Product %s active=%v", payload.ProductID, payload.IsActive)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Product state updated."})
	}
}
