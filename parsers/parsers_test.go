package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShopCSV_PlainUTF8(t *testing.T) {
	input := "shop_id,shop_name,location,phone\n" +
		"S1,Central Depot,Main Road,0123456\n" +
		"S2,North Yard,Harbor St,\n"

	records, err := ParseShopCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "S1", records[0].ShopID)
	assert.Equal(t, "Central Depot", records[0].ShopName)
	assert.Equal(t, "Harbor St", records[1].Location)
}

func TestParseShopCSV_UTF8BOM(t *testing.T) {
	input := "\xEF\xBB\xBF" + "shop_id,shop_name\nS1,Central Depot\n"

	records, err := ParseShopCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	// The BOM must not leak into the first header cell.
	assert.Equal(t, "S1", records[0].ShopID)
}

func TestParseShopCSV_SkipsRowsWithoutID(t *testing.T) {
	input := "shop_id,shop_name\n,No ID Shop\nS2,Real Shop\n"

	records, err := ParseShopCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "S2", records[0].ShopID)
}

func TestParseShopCSV_MissingHeader(t *testing.T) {
	input := "code,name\nS1,Central Depot\n"

	_, err := ParseShopCSV(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseProductCSV(t *testing.T) {
	input := "product_id,product_name,brand,grade,bag_weight_kg,unit_price\n" +
		"P1,Portland 42.5,Summit,42.5N,50,7.80\n" +
		"P2,Rapid Set,Summit,,25,not-a-number\n"

	records, err := ParseProductCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 50.0, records[0].BagWeightKg)
	assert.Equal(t, 7.80, records[0].UnitPrice)
	// Unparseable numbers degrade to zero instead of failing the import.
	assert.Equal(t, 0.0, records[1].UnitPrice)
}
