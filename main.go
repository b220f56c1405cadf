package main

import (
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"cemboard/config"
	"cemboard/loader"
	"cemboard/reconcile"
)

func main() {
	log.Println("Connecting to database...")
	dbConn, err := sqlx.Open("sqlite3", "./cemboard.db?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer dbConn.Close()
	log.Println("Database connection successful.")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
		cfg = config.GetConfig()
	}

	if err := loader.InitDatabase(dbConn); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	log.Println("Database initialization complete.")

	// Align inventory with the masters once at startup, then on the
	// configured interval. A failed pass is only logged; both passes are
	// idempotent and the next tick retries the whole thing.
	if result, err := reconcile.Sync(dbConn); err != nil {
		log.Printf("WARN: startup inventory sync failed: %v", err)
	} else {
		log.Printf("Startup inventory sync: %s", result.Message)
	}
	go runSyncScheduler(dbConn, cfg.SyncIntervalMinutes)

	mux := http.NewServeMux()

	if info, err := os.Stat("static"); err == nil && info.IsDir() {
		mux.Handle("/", http.FileServer(http.Dir("./static")))
	} else {
		log.Println("WARN: 'static' directory not found; serving API only.")
	}

	SetupRoutes(mux, dbConn)

	port := ":8080"
	log.Printf("Starting server on http://localhost%s", port)

	openBrowser("http://localhost:8080")

	if err := http.ListenAndServe(port, mux); err != nil {
		log.Fatalf("server start error: %v", err)
	}
}

func runSyncScheduler(dbConn *sqlx.DB, intervalMinutes int) {
	if intervalMinutes <= 0 {
		log.Println("Scheduled inventory sync disabled.")
		return
	}
	ticker := time.NewTicker(time.Duration(intervalMinutes) * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		result, err := reconcile.Sync(dbConn)
		if err != nil {
			log.Printf("WARN: scheduled inventory sync failed: %v", err)
			continue
		}
		log.Printf("Scheduled inventory sync: %s", result.Message)
	}
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Printf("failed to open browser: %v", err)
	}
}
