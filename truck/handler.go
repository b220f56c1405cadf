package truck

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"cemboard/database"
	"cemboard/model"
)

func ListTrucksHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trucks, err := database.ListTrucks(conn)
		if err != nil {
			http.Error(w, "Failed to list trucks: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(trucks)
	}
}

func SaveTruckHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var t model.Truck
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if t.TruckID == "" || t.PlateNumber == "" {
			http.Error(w, "truckId and plateNumber are required", http.StatusBadRequest)
			return
		}

		if err := database.UpsertTruck(conn, t); err != nil {
			http.Error(w, "Failed to save truck: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Truck saved."})
	}
}

func DeleteTruckHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		truckID := strings.TrimPrefix(r.URL.Path, "/api/trucks/")
		if truckID == "" {
			http.Error(w, "Truck id is required", http.StatusBadRequest)
			return
		}

		if err := database.DeleteTruck(conn, truckID); err != nil {
			http.Error(w, "Failed to delete truck: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Truck deleted."})
	}
}
