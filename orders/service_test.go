package orders

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cemboard/database"
	"cemboard/loader"
	"cemboard/model"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, loader.InitDatabase(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func seedPair(t *testing.T, db *sqlx.DB, quantity int) {
	t.Helper()
	require.NoError(t, database.InsertShop(db, model.Shop{ShopID: "S1", ShopName: "North Yard", IsActive: true}))
	require.NoError(t, database.InsertProduct(db, model.Product{ProductID: "P1", ProductName: "Portland 32.5", IsActive: true}))
	_, err := database.InsertInventoryIfAbsent(db, "S1", "P1", 10, 1000, database.NowStamp())
	require.NoError(t, err)
	if quantity != 0 {
		inv, err := database.GetInventoryByPair(db, "S1", "P1")
		require.NoError(t, err)
		require.NoError(t, database.UpdateInventoryQuantity(db, inv.ID, quantity, database.NowStamp()))
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	db := openTestDB(t)

	_, err := CreateOrder(db, model.Order{Kind: model.OrderKindSale, ShopID: "S1"})
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = CreateOrder(db, model.Order{Kind: model.OrderKindSale, ShopID: "S1", ProductID: "P1", Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = CreateOrder(db, model.Order{Kind: "loan", ShopID: "S1", ProductID: "P1", Quantity: 5})
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestCompleteOrder_PurchaseRestocks(t *testing.T) {
	db := openTestDB(t)
	seedPair(t, db, 0)

	o, err := CreateOrder(db, model.Order{
		Kind: model.OrderKindPurchase, ShopID: "S1", ProductID: "P1", Quantity: 200, CreatedBy: "admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, o.OrderID)
	require.Equal(t, model.OrderStatusPending, o.Status)

	history, err := CompleteOrder(db, o.OrderID, "admin")
	require.NoError(t, err)
	assert.Equal(t, 0, history.PreviousQuantity)
	assert.Equal(t, 200, history.NewQuantity)
	assert.Equal(t, model.ChangeTypeRestock, history.ChangeType)

	inv, err := database.GetInventoryByPair(db, "S1", "P1")
	require.NoError(t, err)
	assert.Equal(t, 200, inv.Quantity)

	stored, err := database.GetOrderByID(db, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, stored.Status)
}

func TestCompleteOrder_SaleDispatches(t *testing.T) {
	db := openTestDB(t)
	seedPair(t, db, 50)

	o, err := CreateOrder(db, model.Order{
		Kind: model.OrderKindSale, ShopID: "S1", ProductID: "P1", Quantity: 20,
	})
	require.NoError(t, err)

	history, err := CompleteOrder(db, o.OrderID, "clerk")
	require.NoError(t, err)
	assert.Equal(t, 50, history.PreviousQuantity)
	assert.Equal(t, 30, history.NewQuantity)
	assert.Equal(t, model.ChangeTypeSale, history.ChangeType)

	stored, err := database.GetOrderByID(db, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDispatched, stored.Status)
}

func TestCompleteOrder_InsufficientStock(t *testing.T) {
	db := openTestDB(t)
	seedPair(t, db, 5)

	o, err := CreateOrder(db, model.Order{
		Kind: model.OrderKindSale, ShopID: "S1", ProductID: "P1", Quantity: 20,
	})
	require.NoError(t, err)

	_, err = CompleteOrder(db, o.OrderID, "clerk")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// The failed completion left no trace: quantity, status and history
	// are all untouched.
	inv, err := database.GetInventoryByPair(db, "S1", "P1")
	require.NoError(t, err)
	assert.Equal(t, 5, inv.Quantity)

	stored, err := database.GetOrderByID(db, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, stored.Status)

	records, err := database.ListHistoryByInventoryID(db, inv.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCompleteOrder_AlreadyCompleted(t *testing.T) {
	db := openTestDB(t)
	seedPair(t, db, 0)

	o, err := CreateOrder(db, model.Order{
		Kind: model.OrderKindPurchase, ShopID: "S1", ProductID: "P1", Quantity: 10,
	})
	require.NoError(t, err)

	_, err = CompleteOrder(db, o.OrderID, "admin")
	require.NoError(t, err)

	_, err = CompleteOrder(db, o.OrderID, "admin")
	assert.ErrorIs(t, err, ErrOrderNotOpen)
}

func TestCancelOrder(t *testing.T) {
	db := openTestDB(t)
	seedPair(t, db, 0)

	o, err := CreateOrder(db, model.Order{
		Kind: model.OrderKindSale, ShopID: "S1", ProductID: "P1", Quantity: 10,
	})
	require.NoError(t, err)

	require.NoError(t, CancelOrder(db, o.OrderID))

	stored, err := database.GetOrderByID(db, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, stored.Status)

	err = CancelOrder(db, o.OrderID)
	assert.ErrorIs(t, err, ErrOrderNotOpen)

	err = CancelOrder(db, "missing-id")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
