package main

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"cemboard/automation"
	"cemboard/dashboard"
	"cemboard/deliveryroute"
	"cemboard/loader"
	"cemboard/orders"
	"cemboard/product"
	"cemboard/reconcile"
	"cemboard/shop"
	"cemboard/stock"
	"cemboard/supplier"
	"cemboard/truck"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB) {

	mux.HandleFunc("/api/reconcile/sync", reconcile.SyncHandler(dbConn))
	mux.HandleFunc("/api/reconcile/completeness", reconcile.EnsureCompletenessHandler(dbConn))
	mux.HandleFunc("/api/reconcile/cleanup", reconcile.CleanupInactiveHandler(dbConn))

	mux.HandleFunc("/api/inventory", stock.ListInventoryHandler(dbConn))
	mux.HandleFunc("/api/inventory/quantity", stock.AdjustQuantityHandler(dbConn))
	mux.HandleFunc("/api/inventory/thresholds", stock.UpdateThresholdsHandler(dbConn))
	mux.HandleFunc("/api/inventory/history", stock.HistoryHandler(dbConn))

	mux.HandleFunc("/api/shops", shop.ListShopsHandler(dbConn))
	mux.HandleFunc("/api/shops/save", shop.SaveShopHandler(dbConn))
	mux.HandleFunc("/api/shops/set_active", shop.SetActiveHandler(dbConn))
	mux.HandleFunc("/api/shops/import", loader.UploadShopCSVHandler(dbConn))

	mux.HandleFunc("/api/products", product.ListProductsHandler(dbConn))
	mux.HandleFunc("/api/products/save", product.SaveProductHandler(dbConn))
	mux.HandleFunc("/api/products/set_active", product.SetActiveHandler(dbConn))
	mux.HandleFunc("/api/products/import", loader.UploadProductCSVHandler(dbConn))

	mux.HandleFunc("/api/suppliers", supplier.ListSuppliersHandler(dbConn))
	mux.HandleFunc("/api/suppliers/save", supplier.SaveSupplierHandler(dbConn))
	mux.HandleFunc("/api/suppliers/", supplier.DeleteSupplierHandler(dbConn))

	mux.HandleFunc("/api/trucks", truck.ListTrucksHandler(dbConn))
	mux.HandleFunc("/api/trucks/save", truck.SaveTruckHandler(dbConn))
	mux.HandleFunc("/api/trucks/", truck.DeleteTruckHandler(dbConn))

	mux.HandleFunc("/api/routes", deliveryroute.ListRoutesHandler(dbConn))
	mux.HandleFunc("/api/routes/save", deliveryroute.SaveRouteHandler(dbConn))
	mux.HandleFunc("/api/routes/", deliveryroute.DeleteRouteHandler(dbConn))

	mux.HandleFunc("/api/orders", orders.ListOrdersHandler(dbConn))
	mux.HandleFunc("/api/orders/create", orders.CreateOrderHandler(dbConn))
	mux.HandleFunc("/api/orders/complete", orders.CompleteOrderHandler(dbConn))
	mux.HandleFunc("/api/orders/cancel", orders.CancelOrderHandler(dbConn))

	mux.HandleFunc("/api/dashboard/low_stock", dashboard.LowStockHandler(dbConn))
	mux.HandleFunc("/api/dashboard/shop_summary", dashboard.ShopSummaryHandler(dbConn))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/automation/pricelist/download", automation.DownloadPriceListHandler(dbConn))
}
