package reconcile

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cemboard/database"
	"cemboard/loader"
	"cemboard/model"
	"cemboard/stock"
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

func seedShop(t *testing.T, db *sqlx.DB, id string, active bool) {
	t.Helper()
	require.NoError(t, database.InsertShop(db, model.Shop{
		ShopID: id, ShopName: "Shop " + id, IsActive: active,
	}))
}

func seedProduct(t *testing.T, db *sqlx.DB, id string, active bool) {
	t.Helper()
	require.NoError(t, database.InsertProduct(db, model.Product{
		ProductID: id, ProductName: "Cement " + id, IsActive: active,
	}))
}

func TestEnsureCompleteness_CreatesMissingPairs(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", true)
	seedShop(t, db, "S2", true)
	seedProduct(t, db, "P1", true)
	seedProduct(t, db, "P2", true)
	seedProduct(t, db, "P3", true)

	result, err := EnsureCompleteness(db)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Created)
	assert.Equal(t, 6, result.Checked)

	items, err := database.ListInventoryItems(db, "")
	require.NoError(t, err)
	require.Len(t, items, 6)
	for _, item := range items {
		assert.Equal(t, 0, item.Quantity)
		assert.Equal(t, 10, item.MinStockLevel)
		assert.Equal(t, 1000, item.MaxStockLevel)
	}
}

func TestEnsureCompleteness_Idempotent(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", true)
	seedProduct(t, db, "P1", true)
	seedProduct(t, db, "P2", true)

	first, err := EnsureCompleteness(db)
	require.NoError(t, err)
	require.Equal(t, 2, first.Created)

	second, err := EnsureCompleteness(db)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Checked)
}

func TestEnsureCompleteness_NoActiveEntities(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", false)
	seedProduct(t, db, "P1", true)

	result, err := EnsureCompleteness(db)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Checked)
	assert.NotEmpty(t, result.Message)
}

func TestEnsureCompleteness_IgnoresInactive(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", true)
	seedShop(t, db, "S2", false)
	seedProduct(t, db, "P1", true)
	seedProduct(t, db, "P2", false)

	result, err := EnsureCompleteness(db)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Checked)

	_, err = database.GetInventoryByPair(db, "S2", "P1")
	assert.Error(t, err)
}

func TestEnsureCompleteness_LeavesExistingRowsAlone(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", true)
	seedProduct(t, db, "P1", true)

	_, err := EnsureCompleteness(db)
	require.NoError(t, err)

	inv, err := database.GetInventoryByPair(db, "S1", "P1")
	require.NoError(t, err)
	_, err = stock.ApplyChange(db, stock.ChangeRequest{
		InventoryID: inv.ID, NewQuantity: 40, ChangeType: model.ChangeTypeRestock,
	})
	require.NoError(t, err)

	_, err = EnsureCompleteness(db)
	require.NoError(t, err)

	after, err := database.GetInventoryByPair(db, "S1", "P1")
	require.NoError(t, err)
	assert.Equal(t, 40, after.Quantity)

	// No history beyond the single explicit change: completeness never
	// mutates existing rows.
	records, err := database.ListHistoryByInventoryID(db, inv.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCleanupInactive_RemovesStaleRows(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", true)
	seedShop(t, db, "S2", true)
	seedProduct(t, db, "P1", true)
	seedProduct(t, db, "P2", true)
	seedProduct(t, db, "P3", true)

	_, err := EnsureCompleteness(db)
	require.NoError(t, err)

	require.NoError(t, database.SetShopActive(db, "S2", false))

	result, err := CleanupInactive(db)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Removed)

	items, err := database.ListInventoryItems(db, "")
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, "S1", item.ShopID)
	}
}

func TestCleanupInactive_Idempotent(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", true)
	seedProduct(t, db, "P1", true)
	seedProduct(t, db, "P2", true)

	_, err := EnsureCompleteness(db)
	require.NoError(t, err)
	require.NoError(t, database.SetProductActive(db, "P2", false))

	first, err := CleanupInactive(db)
	require.NoError(t, err)
	require.Equal(t, 1, first.Removed)

	second, err := CleanupInactive(db)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Removed)
}

func TestCleanupInactive_RetainsHistory(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", true)
	seedProduct(t, db, "P1", true)

	_, err := EnsureCompleteness(db)
	require.NoError(t, err)

	inv, err := database.GetInventoryByPair(db, "S1", "P1")
	require.NoError(t, err)
	_, err = stock.ApplyChange(db, stock.ChangeRequest{
		InventoryID: inv.ID, NewQuantity: 25, ChangeType: model.ChangeTypeRestock,
	})
	require.NoError(t, err)

	require.NoError(t, database.SetShopActive(db, "S1", false))
	result, err := CleanupInactive(db)
	require.NoError(t, err)
	require.Equal(t, 1, result.Removed)

	records, err := database.ListHistoryByPair(db, "S1", "P1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 25, records[0].NewQuantity)
}

func TestSync_AggregatesBothPasses(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", true)
	seedProduct(t, db, "P1", true)
	seedProduct(t, db, "P2", false)

	// Stale row for the inactive product; the active pair is missing.
	_, err := database.InsertInventoryIfAbsent(db, "S1", "P2", 10, 1000, database.NowStamp())
	require.NoError(t, err)

	result, err := Sync(db)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Removed)
	assert.Equal(t, 1, result.Checked)
	assert.Equal(t, "Sync complete: 1 created, 1 removed", result.Message)

	items, err := database.ListInventoryItems(db, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "P1", items[0].ProductID)
}
