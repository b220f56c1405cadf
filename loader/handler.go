package loader

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
)

// UploadShopCSVHandler imports a shop master CSV posted as multipart form
// data under the "file" field.
func UploadShopCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "Failed to read uploaded CSV: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		count, err := ImportShopCSV(db, file)
		if err != nil {
			log.Printf("ERROR: shop CSV import failed: %v", err)
			http.Error(w, "Failed to import shop CSV: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": fmt.Sprintf("Imported %d shop records.", count),
		})
	}
}

// UploadProductCSVHandler imports a product master CSV.
func UploadProductCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "Failed to read uploaded CSV: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		count, err := ImportProductCSV(db, file)
		if err != nil {
			log.Printf("ERROR: product CSV import failed: %v", err)
			http.Error(w, "Failed to import product CSV: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": fmt.Sprintf("Imported %d product records.", count),
		})
	}
}
