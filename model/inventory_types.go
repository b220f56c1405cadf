package model

// Change types accepted by the quantity mutation endpoint. Every stock
// movement in the system goes through that single entry point, so these are
// the only values that ever appear in inventory_history.change_type.
const (
	ChangeTypeIncrease   = "increase"
	ChangeTypeDecrease   = "decrease"
	ChangeTypeRestock    = "restock"
	ChangeTypeAdjustment = "adjustment"
	ChangeTypeSale       = "sale"
	ChangeTypeReturn     = "return"
)

func IsValidChangeType(t string) bool {
	switch t {
	case ChangeTypeIncrease, ChangeTypeDecrease, ChangeTypeRestock,
		ChangeTypeAdjustment, ChangeTypeSale, ChangeTypeReturn:
		return true
	}
	return false
}

type Inventory struct {
	ID            int64  `db:"id" json:"id"`
	ShopID        string `db:"shop_id" json:"shopId"`
	ProductID     string `db:"product_id" json:"productId"`
	Quantity      int    `db:"quantity" json:"quantity"`
	MinStockLevel int    `db:"min_stock_level" json:"minStockLevel"`
	MaxStockLevel int    `db:"max_stock_level" json:"maxStockLevel"`
	UpdatedAt     string `db:"updated_at" json:"updatedAt"`
}

// InventoryItem is the joined view returned to the dashboard list screens.
type InventoryItem struct {
	ID            int64  `db:"id" json:"id"`
	ShopID        string `db:"shop_id" json:"shopId"`
	ShopName      string `db:"shop_name" json:"shopName"`
	ProductID     string `db:"product_id" json:"productId"`
	ProductName   string `db:"product_name" json:"productName"`
	Brand         string `db:"brand" json:"brand"`
	Quantity      int    `db:"quantity" json:"quantity"`
	MinStockLevel int    `db:"min_stock_level" json:"minStockLevel"`
	MaxStockLevel int    `db:"max_stock_level" json:"maxStockLevel"`
	UpdatedAt     string `db:"updated_at" json:"updatedAt"`
}

// InventoryHistory is append-only. Rows are never updated or deleted, and
// they survive cleanup of the inventory row they reference.
type InventoryHistory struct {
	ID               int64  `db:"id" json:"id"`
	InventoryID      int64  `db:"inventory_id" json:"inventoryId"`
	ShopID           string `db:"shop_id" json:"shopId"`
	ProductID        string `db:"product_id" json:"productId"`
	PreviousQuantity int    `db:"previous_quantity" json:"previousQuantity"`
	NewQuantity      int    `db:"new_quantity" json:"newQuantity"`
	ChangeAmount     int    `db:"change_amount" json:"changeAmount"`
	ChangeType       string `db:"change_type" json:"changeType"`
	Reason           string `db:"reason" json:"reason"`
	ChangedBy        string `db:"changed_by" json:"changedBy"`
	CreatedAt        string `db:"created_at" json:"createdAt"`
}
