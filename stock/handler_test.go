package stock

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cemboard/model"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/quantity", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAdjustQuantityHandler_Success(t *testing.T) {
	db := openTestDB(t)
	id := seedInventory(t, db)

	rec := postJSON(t, AdjustQuantityHandler(db), ChangeRequest{
		InventoryID: id,
		NewQuantity: 30,
		ChangeType:  model.ChangeTypeRestock,
		Reason:      "truck unload",
		ChangedBy:   "admin",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var history model.InventoryHistory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Equal(t, 0, history.PreviousQuantity)
	assert.Equal(t, 30, history.NewQuantity)
	assert.Equal(t, 30, history.ChangeAmount)
}

func TestAdjustQuantityHandler_Validation(t *testing.T) {
	db := openTestDB(t)
	id := seedInventory(t, db)

	rec := postJSON(t, AdjustQuantityHandler(db), ChangeRequest{
		InventoryID: id, NewQuantity: -3, ChangeType: model.ChangeTypeSale,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, AdjustQuantityHandler(db), ChangeRequest{
		InventoryID: id, NewQuantity: 3, ChangeType: "bogus",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdjustQuantityHandler_NotFound(t *testing.T) {
	db := openTestDB(t)

	rec := postJSON(t, AdjustQuantityHandler(db), ChangeRequest{
		InventoryID: 4242, NewQuantity: 3, ChangeType: model.ChangeTypeSale,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdjustQuantityHandler_MethodNotAllowed(t *testing.T) {
	db := openTestDB(t)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/quantity", nil)
	rec := httptest.NewRecorder()
	AdjustQuantityHandler(db)(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
