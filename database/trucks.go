package database

import (
	"fmt"

	"cemboard/model"
)

func ListTrucks(dbtx DBTX) ([]model.Truck, error) {
	var trucks []model.Truck
	const q = `
		SELECT truck_id, plate_number, driver_name, capacity_bags
		FROM trucks
		ORDER BY plate_number`
	if err := dbtx.Select(&trucks, q); err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}
	return trucks, nil
}

func UpsertTruck(dbtx DBTX, t model.Truck) error {
	const q = `
		INSERT INTO trucks (truck_id, plate_number, driver_name, capacity_bags)
		VALUES (:truck_id, :plate_number, :driver_name, :capacity_bags)
		ON CONFLICT(truck_id) DO UPDATE SET
			plate_number = excluded.plate_number,
			driver_name = excluded.driver_name,
			capacity_bags = excluded.capacity_bags`
	if _, err := dbtx.NamedExec(q, t); err != nil {
		return fmt.Errorf("failed to upsert truck %s: %w", t.TruckID, err)
	}
	return nil
}

func DeleteTruck(dbtx DBTX, truckID string) error {
	if _, err := dbtx.Exec(`DELETE FROM trucks WHERE truck_id = ?`, truckID); err != nil {
		return fmt.Errorf("failed to delete truck %s: %w", truckID, err)
	}
	return nil
}
