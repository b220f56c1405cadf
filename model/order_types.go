package model

// Order statuses. Purchase orders end at "delivered" (stock in), sale orders
// end at "dispatched" (stock out); both transitions write inventory history.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusDelivered  = "delivered"
	OrderStatusDispatched = "dispatched"
	OrderStatusCancelled  = "cancelled"
)

const (
	OrderKindPurchase = "purchase"
	OrderKindSale     = "sale"
)

type Order struct {
	OrderID    string `db:"order_id" json:"orderId"`
	Kind       string `db:"kind" json:"kind"`
	ShopID     string `db:"shop_id" json:"shopId"`
	ProductID  string `db:"product_id" json:"productId"`
	SupplierID string `db:"supplier_id" json:"supplierId"`
	RouteID    string `db:"route_id" json:"routeId"`
	Quantity   int    `db:"quantity" json:"quantity"`
	Status     string `db:"status" json:"status"`
	CreatedBy  string `db:"created_by" json:"createdBy"`
	CreatedAt  string `db:"created_at" json:"createdAt"`
	UpdatedAt  string `db:"updated_at" json:"updatedAt"`
}
