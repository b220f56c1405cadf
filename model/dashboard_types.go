package model

type LowStockItem struct {
	ID            int64  `db:"id" json:"id"`
	ShopID        string `db:"shop_id" json:"shopId"`
	ShopName      string `db:"shop_name" json:"shopName"`
	ProductID     string `db:"product_id" json:"productId"`
	ProductName   string `db:"product_name" json:"productName"`
	Quantity      int    `db:"quantity" json:"quantity"`
	MinStockLevel int    `db:"min_stock_level" json:"minStockLevel"`
}

type ShopStockSummary struct {
	ShopID       string `db:"shop_id" json:"shopId"`
	ShopName     string `db:"shop_name" json:"shopName"`
	ProductCount int    `db:"product_count" json:"productCount"`
	TotalBags    int    `db:"total_bags" json:"totalBags"`
}
