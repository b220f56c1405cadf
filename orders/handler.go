package orders

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"

	"cemboard/database"
	"cemboard/model"
)

func ListOrdersHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		list, err := database.ListOrders(conn, q.Get("shopId"), q.Get("status"))
		if err != nil {
			http.Error(w, "Failed to list orders: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}

func CreateOrderHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var o model.Order
		if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		created, err := CreateOrder(conn, o)
		if err != nil {
			if errors.Is(err, ErrInvalidOrder) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to create order: "+err.Error(), http.StatusInternalServerError)
			return
		}

		log.Printf("Order %s created: %s %d x %s for shop %s", created.OrderID, created.Kind, created.Quantity, created.ProductID, created.ShopID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(created)
	}
}

// CompleteOrderHandler finishes an order and returns the stock history
// record the completion produced.
func CompleteOrderHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var payload struct {
			OrderID   string `json:"orderId"`
			ChangedBy string `json:"changedBy"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if payload.OrderID == "" {
			http.Error(w, "orderId is required", http.StatusBadRequest)
			return
		}

		history, err := CompleteOrder(conn, payload.OrderID, payload.ChangedBy)
		if err != nil {
			switch {
			case errors.Is(err, ErrOrderNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrOrderNotOpen), errors.Is(err, ErrInsufficientStock):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				log.Printf("ERROR: completing order %s failed: %v", payload.OrderID, err)
				http.Error(w, "Failed to complete order: "+err.Error(), http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}

func CancelOrderHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var payload struct {
			OrderID string `json:"orderId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		if err := CancelOrder(conn, payload.OrderID); err != nil {
			switch {
			case errors.Is(err, ErrOrderNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrOrderNotOpen):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "Failed to cancel order: "+err.Error(), http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Order cancelled."})
	}
}
