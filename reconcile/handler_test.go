package reconcile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cemboard/model"
)

func TestSyncHandler(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", true)
	seedProduct(t, db, "P1", true)

	req := httptest.NewRequest(http.MethodPost, "/api/reconcile/sync", nil)
	rec := httptest.NewRecorder()
	SyncHandler(db)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.SyncResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Removed)
	assert.Equal(t, 1, result.Checked)
	assert.Equal(t, "Sync complete: 1 created, 0 removed", result.Message)
}

func TestSyncHandler_MethodNotAllowed(t *testing.T) {
	db := openTestDB(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reconcile/sync", nil)
	rec := httptest.NewRecorder()
	SyncHandler(db)(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestEnsureCompletenessHandler(t *testing.T) {
	db := openTestDB(t)
	seedShop(t, db, "S1", true)
	seedProduct(t, db, "P1", true)
	seedProduct(t, db, "P2", true)

	req := httptest.NewRequest(http.MethodPost, "/api/reconcile/completeness", nil)
	rec := httptest.NewRecorder()
	EnsureCompletenessHandler(db)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.CompletenessResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 2, result.Checked)
}

func TestCleanupInactiveHandler(t *testing.T) {
	db := openTestDB(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reconcile/cleanup", nil)
	rec := httptest.NewRecorder()
	CleanupInactiveHandler(db)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.CleanupResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 0, result.Removed)
}
