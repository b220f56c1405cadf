package deliveryroute

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"cemboard/database"
	"cemboard/model"
)

func ListRoutesHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routes, err := database.ListDeliveryRoutes(conn)
		if err != nil {
			http.Error(w, "Failed to list delivery routes: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(routes)
	}
}

func SaveRouteHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var route model.DeliveryRoute
		if err := json.NewDecoder(r.Body).Decode(&route); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if route.RouteID == "" || route.RouteName == "" {
			http.Error(w, "routeId and routeName are required", http.StatusBadRequest)
			return
		}

		if err := database.UpsertDeliveryRoute(conn, route); err != nil {
			http.Error(w, "Failed to save delivery route: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Delivery route saved."})
	}
}

func DeleteRouteHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		routeID := strings.TrimPrefix(r.URL.Path, "/api/routes/")
		if routeID == "" {
			http.Error(w, "Route id is required", http.StatusBadRequest)
			return
		}

		if err := database.DeleteDeliveryRoute(conn, routeID); err != nil {
			http.Error(w, "Failed to delete delivery route: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Delivery route deleted."})
	}
}
