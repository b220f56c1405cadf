package loader

import (
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cemboard/database"
	"cemboard/model"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, InitDatabase(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInitDatabase_Idempotent(t *testing.T) {
	db := openTestDB(t)
	// Re-applying the schema must not fail or drop data.
	require.NoError(t, database.InsertShop(db, model.Shop{ShopID: "S1", ShopName: "Central Depot", IsActive: true}))
	require.NoError(t, InitDatabase(db))
	shops, err := database.ListShops(db)
	require.NoError(t, err)
	assert.Len(t, shops, 1)
}

func TestImportShopCSV_Upserts(t *testing.T) {
	db := openTestDB(t)

	count, err := ImportShopCSV(db, strings.NewReader(
		"shop_id,shop_name,location\nS1,Central Depot,Main Road\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Re-import with a changed name updates in place.
	count, err = ImportShopCSV(db, strings.NewReader(
		"shop_id,shop_name,location\nS1,Central Depot Renamed,Main Road\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	shops, err := database.ListShops(db)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "Central Depot Renamed", shops[0].ShopName)
	assert.True(t, shops[0].IsActive)
}

func TestImportProductCSV(t *testing.T) {
	db := openTestDB(t)

	count, err := ImportProductCSV(db, strings.NewReader(
		"product_id,product_name,brand,grade,bag_weight_kg,unit_price\n"+
			"P1,Portland 42.5,Summit,42.5N,50,7.80\n"+
			"P2,Masonry Mix,Summit,M,40,6.10\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	products, err := database.ListProducts(db)
	require.NoError(t, err)
	require.Len(t, products, 2)
}
