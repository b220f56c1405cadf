package database

import (
	"fmt"

	"cemboard/model"
)

func ListDeliveryRoutes(dbtx DBTX) ([]model.DeliveryRoute, error) {
	var routes []model.DeliveryRoute
	const q = `
		SELECT route_id, route_name, area, truck_id
		FROM delivery_routes
		ORDER BY route_name`
	if err := dbtx.Select(&routes, q); err != nil {
		return nil, fmt.Errorf("failed to list delivery routes: %w", err)
	}
	return routes, nil
}

func UpsertDeliveryRoute(dbtx DBTX, r model.DeliveryRoute) error {
	const q = `
		INSERT INTO delivery_routes (route_id, route_name, area, truck_id)
		VALUES (:route_id, :route_name, :area, :truck_id)
		ON CONFLICT(route_id) DO UPDATE SET
			route_name = excluded.route_name,
			area = excluded.area,
			truck_id = excluded.truck_id`
	if _, err := dbtx.NamedExec(q, r); err != nil {
		return fmt.Errorf("failed to upsert delivery route %s: %w", r.RouteID, err)
	}
	return nil
}

func DeleteDeliveryRoute(dbtx DBTX, routeID string) error {
	if _, err := dbtx.Exec(`DELETE FROM delivery_routes WHERE route_id = ?`, routeID); err != nil {
		return fmt.Errorf("failed to delete delivery route %s: %w", routeID, err)
	}
	return nil
}
