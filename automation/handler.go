package automation

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"

	"cemboard/config"
	"cemboard/loader"
)

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// DownloadPriceListHandler runs the portal automation and imports the
// downloaded price list into the product master.
func DownloadPriceListHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			writeJSONError(w, "Failed to load config: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if cfg.PortalURL == "" || cfg.PortalUserID == "" || cfg.PortalPassword == "" {
			writeJSONError(w, "Supplier portal URL or credentials are not configured.", http.StatusBadRequest)
			return
		}

		saveDir := cfg.MasterFolderPath
		if saveDir == "" {
			saveDir = os.TempDir()
			log.Printf("No master folder configured; using temp dir: %s", saveDir)
		}

		log.Println("Starting supplier portal automation...")
		filePath, err := DownloadPriceList(cfg.PortalURL, cfg.PortalUserID, cfg.PortalPassword, saveDir)
		if err != nil {
			log.Printf("ERROR: portal automation failed: %v", err)
			writeJSONError(w, "Portal download failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if filePath == NoData {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{
				"status":  "no_data",
				"message": "The portal reported no new price list.",
			})
			return
		}

		file, err := os.Open(filePath)
		if err != nil {
			writeJSONError(w, "Failed to open downloaded file: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer file.Close()

		count, err := loader.ImportProductCSV(db, file)
		if err != nil {
			writeJSONError(w, "Failed to import downloaded price list: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":   "success",
			"message":  fmt.Sprintf("Downloaded and imported %d products.", count),
			"filePath": filePath,
		})
	}
}
