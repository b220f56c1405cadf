package model

type Shop struct {
	ShopID   string `db:"shop_id" json:"shopId"`
	ShopName string `db:"shop_name" json:"shopName"`
	Location string `db:"location" json:"location"`
	Phone    string `db:"phone" json:"phone"`
	IsActive bool   `db:"is_active" json:"isActive"`
}

type Product struct {
	ProductID   string  `db:"product_id" json:"productId"`
	ProductName string  `db:"product_name" json:"productName"`
	Brand       string  `db:"brand" json:"brand"`
	Grade       string  `db:"grade" json:"grade"`
	BagWeightKg float64 `db:"bag_weight_kg" json:"bagWeightKg"`
	UnitPrice   float64 `db:"unit_price" json:"unitPrice"`
	IsActive    bool    `db:"is_active" json:"isActive"`
}

type Supplier struct {
	SupplierID   string `db:"supplier_id" json:"supplierId"`
	SupplierName string `db:"supplier_name" json:"supplierName"`
	ContactName  string `db:"contact_name" json:"contactName"`
	Phone        string `db:"phone" json:"phone"`
	Address      string `db:"address" json:"address"`
}

type Truck struct {
	TruckID      string  `db:"truck_id" json:"truckId"`
	PlateNumber  string  `db:"plate_number" json:"plateNumber"`
	DriverName   string  `db:"driver_name" json:"driverName"`
	CapacityBags float64 `db:"capacity_bags" json:"capacityBags"`
}

type DeliveryRoute struct {
	RouteID   string `db:"route_id" json:"routeId"`
	RouteName string `db:"route_name" json:"routeName"`
	Area      string `db:"area" json:"area"`
	TruckID   string `db:"truck_id" json:"truckId"`
}
