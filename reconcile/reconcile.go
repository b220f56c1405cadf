// Package reconcile keeps the inventory table aligned with the active
// shop/product masters: the completeness pass creates missing shop x product
// rows, the cleanup pass removes rows whose shop or product was retired.
// Both passes are idempotent and safe to re-run after a partial failure.
package reconcile

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"

	"cemboard/config"
	"cemboard/database"
	"cemboard/model"
)

// EnsureCompleteness creates a zero-quantity inventory row for every active
// shop x active product pair that does not have one. Existing rows are never
// touched, so no history is written here. Checked reports the full pair
// count examined, not just the missing ones.
func EnsureCompleteness(conn *sqlx.DB) (model.CompletenessResult, error) {
	shopIDs, err := database.ListActiveShopIDs(conn)
	if err != nil {
		return model.CompletenessResult{}, fmt.Errorf("completeness: %w", err)
	}
	productIDs, err := database.ListActiveProductIDs(conn)
	if err != nil {
		return model.CompletenessResult{}, fmt.Errorf("completeness: %w", err)
	}

	if len(shopIDs) == 0 || len(productIDs) == 0 {
		return model.CompletenessResult{
			Created: 0,
			Checked: 0,
			Message: "No active shops or products; nothing to check.",
		}, nil
	}

	existing, err := database.GetInventoryPairSet(conn)
	if err != nil {
		return model.CompletenessResult{}, fmt.Errorf("completeness: %w", err)
	}

	cfg := config.GetConfig()
	now := database.NowStamp()
	created := 0

	for _, shopID := range shopIDs {
		for _, productID := range productIDs {
			if _, ok := existing[database.PairKey(shopID, productID)]; ok {
				continue
			}
			// The unique index absorbs the race with a concurrent run:
			// a pair inserted in between simply counts 0 here.
			n, err := database.InsertInventoryIfAbsent(conn, shopID, productID,
				cfg.DefaultMinStockLevel, cfg.DefaultMaxStockLevel, now)
			if err != nil {
				return model.CompletenessResult{}, fmt.Errorf("completeness: %w", err)
			}
			created += int(n)
		}
	}

	checked := len(shopIDs) * len(productIDs)
	return model.CompletenessResult{
		Created: created,
		Checked: checked,
		Message: fmt.Sprintf("Completeness check done: %d pairs checked, %d inventory rows created.", checked, created),
	}, nil
}

// CleanupInactive deletes inventory rows referencing an inactive shop or
// product. The active sets are read and the delete issued inside one
// transaction, so a failed active-set query removes nothing. History rows
// are never touched; the audit trail outlives the inventory row.
func CleanupInactive(conn *sqlx.DB) (model.CleanupResult, error) {
	tx, err := conn.Beginx()
	if err != nil {
		return model.CleanupResult{}, fmt.Errorf("cleanup: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	shopIDs, err := database.ListActiveShopIDs(tx)
	if err != nil {
		return model.CleanupResult{}, fmt.Errorf("cleanup: %w", err)
	}
	productIDs, err := database.ListActiveProductIDs(tx)
	if err != nil {
		return model.CleanupResult{}, fmt.Errorf("cleanup: %w", err)
	}

	removed, err := database.DeleteInventoryNotIn(tx, shopIDs, productIDs)
	if err != nil {
		return model.CleanupResult{}, fmt.Errorf("cleanup: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.CleanupResult{}, fmt.Errorf("cleanup: failed to commit: %w", err)
	}

	return model.CleanupResult{
		Removed: int(removed),
		Message: fmt.Sprintf("Cleanup done: %d stale inventory rows removed.", removed),
	}, nil
}

// Sync runs the completeness and cleanup passes concurrently and aggregates
// their counts. The two have disjoint write sets (insert-missing vs
// delete-stale) and each re-reads the active sets itself, so no shared
// snapshot is needed. If either pass fails, Sync reports the error and no
// success counts, though the other pass's effects may already be committed;
// both passes are idempotent, so a retry of the whole Sync is safe.
func Sync(conn *sqlx.DB) (model.SyncResult, error) {
	var (
		comp     model.CompletenessResult
		clean    model.CleanupResult
		compErr  error
		cleanErr error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		comp, compErr = EnsureCompleteness(conn)
	}()
	go func() {
		defer wg.Done()
		clean, cleanErr = CleanupInactive(conn)
	}()
	wg.Wait()

	if compErr != nil || cleanErr != nil {
		return model.SyncResult{}, fmt.Errorf("sync: %w", errors.Join(compErr, cleanErr))
	}

	return model.SyncResult{
		Created: comp.Created,
		Removed: clean.Removed,
		Checked: comp.Checked,
		Message: fmt.Sprintf("Sync complete: %d created, %d removed", comp.Created, clean.Removed),
	}, nil
}
